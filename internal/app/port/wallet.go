package port

import "context"

// WalletProvider is an injected wallet able to authorize accounts.
type WalletProvider interface {
	// RequestAccounts asks the wallet for account access and returns the authorized accounts.
	RequestAccounts(ctx context.Context) ([]string, error)
}
