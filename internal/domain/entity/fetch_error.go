package entity

import "fmt"

// FetchStage names the network stage of a balance query.
type FetchStage string

const (
	StageBalances FetchStage = "balances"
	StageMetadata FetchStage = "metadata"
)

// FetchError represents an error that occurred while fetching balances or
// token metadata for a queried address.
type FetchError struct {
	Stage           FetchStage
	WalletAddress   string
	ContractAddress string
	Err             error
}

func (e *FetchError) Error() string {
	if e.ContractAddress != "" {
		return fmt.Sprintf("%s fetch for %s (contract %s) failed: %v", e.Stage, e.WalletAddress, e.ContractAddress, e.Err)
	}
	return fmt.Sprintf("%s fetch for %s failed: %v", e.Stage, e.WalletAddress, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
