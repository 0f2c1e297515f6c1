package service

import (
	"context"
	"time"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/infrastructure/configloader"
	"erc20_indexer/internal/pkg/metrics"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BalanceFetcherImpl implements port.BalanceFetcher.
type BalanceFetcherImpl struct {
	indexer       port.IndexingClient
	metadata      port.TokenMetadataProvider
	logger        port.Logger
	maxConcurrent int
	limiter       *rate.Limiter
}

// NewBalanceFetcher creates a new BalanceFetcher. Metadata requests are
// bounded by indexer.maxConcurrentMetadata and paced by indexer.rateLimit when
// those are set.
func NewBalanceFetcher(
	indexer port.IndexingClient,
	metadata port.TokenMetadataProvider,
	cfg *configloader.Config,
	logger port.Logger,
) port.BalanceFetcher {
	f := &BalanceFetcherImpl{
		indexer:       indexer,
		metadata:      metadata,
		logger:        logger,
		maxConcurrent: cfg.Indexer.MaxConcurrentMetadata,
	}
	if cfg.Indexer.RateLimit > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(cfg.Indexer.RateLimit), cfg.Indexer.BurstLimit)
	}
	return f
}

// Fetch lists the balances of address and then loads the metadata of every
// listed token concurrently. Metadata[i] always belongs to Balances[i]. If
// any request fails the whole result is discarded.
func (f *BalanceFetcherImpl) Fetch(ctx context.Context, address string) (*entity.QueryResult, error) {
	start := time.Now()
	f.logger.Debug("Fetching token balances", "address", address)

	balances, err := f.indexer.GetTokenBalances(ctx, address)
	if err != nil {
		f.logger.Error("Failed to fetch token balances", "address", address, "error", err)
		return nil, &entity.FetchError{Stage: entity.StageBalances, WalletAddress: address, Err: err}
	}

	metadata := make([]entity.TokenMetadata, len(balances))
	g, gctx := errgroup.WithContext(ctx)
	if f.maxConcurrent > 0 {
		g.SetLimit(f.maxConcurrent)
	}
	for i, balance := range balances {
		g.Go(func() error {
			if f.limiter != nil {
				if err := f.limiter.Wait(gctx); err != nil {
					return &entity.FetchError{Stage: entity.StageMetadata, WalletAddress: address, ContractAddress: balance.ContractAddress, Err: err}
				}
			}
			md, err := f.metadata.GetTokenMetadata(gctx, balance.ContractAddress)
			if err != nil {
				return &entity.FetchError{Stage: entity.StageMetadata, WalletAddress: address, ContractAddress: balance.ContractAddress, Err: err}
			}
			metadata[i] = md
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		f.logger.Error("Failed to fetch token metadata", "address", address, "tokens", len(balances), "error", err)
		return nil, err
	}

	metrics.TokensPerQuery.Observe(float64(len(balances)))
	f.logger.Info("Fetched token balances", "address", address, "tokens", len(balances), "duration", time.Since(start))
	return &entity.QueryResult{Address: address, Balances: balances, Metadata: metadata}, nil
}
