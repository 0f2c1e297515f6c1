package entity

// TokenBalance is one ERC-20 contract balance held by the queried address,
// exactly as the indexing API reported it.
type TokenBalance struct {
	ContractAddress string `json:"contractAddress"`
	// RawBalance is an unscaled integer, hex ("0x...") or decimal.
	RawBalance string `json:"tokenBalance"`
}
