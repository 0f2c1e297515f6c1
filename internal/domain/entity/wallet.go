package entity

// WalletConnection is the result of asking the wallet provider for an account.
type WalletConnection struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}
