package port

import (
	"context"

	"erc20_indexer/internal/domain/entity"
)

// IndexingClient is the hosted indexing API boundary.
type IndexingClient interface {
	// GetTokenBalances returns every ERC-20 balance held by the address, in API order.
	GetTokenBalances(ctx context.Context, address string) ([]entity.TokenBalance, error)
	// GetTokenMetadata returns symbol, decimals and logo of a token contract.
	GetTokenMetadata(ctx context.Context, contractAddress string) (entity.TokenMetadata, error)
}

// TokenMetadataProvider serves token metadata, possibly from a cache.
type TokenMetadataProvider interface {
	GetTokenMetadata(ctx context.Context, contractAddress string) (entity.TokenMetadata, error)
}
