package entity

// QueryResult pairs Balances[i] with Metadata[i]. The pairing is positional,
// both slices always have the same length.
type QueryResult struct {
	Address  string          `json:"address"`
	Balances []TokenBalance  `json:"balances"`
	Metadata []TokenMetadata `json:"metadata"`
}

// Len returns the number of paired entries.
func (r *QueryResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Balances)
}

// TokenCard is one rendered grid entry.
type TokenCard struct {
	ContractAddress string `json:"contractAddress"`
	Symbol          string `json:"symbol"`
	Balance         string `json:"balance"`
	LogoURL         string `json:"logoUrl"`
	DefaultLogo     bool   `json:"defaultLogo"`
}

// QueryOutcome is what a completed query hands back to its caller.
type QueryOutcome struct {
	Address AddressResult `json:"address"`
	Cards   []TokenCard   `json:"cards"`
}
