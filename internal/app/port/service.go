package port

import (
	"context"

	"erc20_indexer/internal/domain/entity"
)

// NameResolver turns a name or address string into a checksummed address.
// It never fails: failures are reported through AddressResult.Failure.
type NameResolver interface {
	Resolve(ctx context.Context, input string) entity.AddressResult
}

// AddressValidator decides whether user input names a usable address.
type AddressValidator interface {
	Validate(ctx context.Context, input string) entity.AddressResult
}

// BalanceFetcher retrieves balances and their metadata, index-aligned.
type BalanceFetcher interface {
	Fetch(ctx context.Context, address string) (*entity.QueryResult, error)
}

// WalletConnector requests an account from the wallet provider, if any.
type WalletConnector interface {
	Connect(ctx context.Context) entity.WalletConnection
}
