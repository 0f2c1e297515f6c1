package entity

// TokenMetadata holds the details of a token contract. Every field may be
// absent upstream, hence the pointers.
type TokenMetadata struct {
	Name     *string `json:"name"`
	Symbol   *string `json:"symbol"`
	Decimals *int    `json:"decimals"`
	Logo     *string `json:"logo"`
}
