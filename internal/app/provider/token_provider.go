package provider

import (
	"context"
	"strings"
	"time"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/pkg/metrics"

	"github.com/patrickmn/go-cache"
)

type tokenProviderImpl struct {
	indexer port.IndexingClient
	cache   *cache.Cache
	logger  port.Logger
}

// NewTokenMetadataProvider wraps the indexing client with an in-memory
// metadata cache. Token metadata does not change per contract, so entries
// only expire to bound memory. A ttl of zero disables caching.
func NewTokenMetadataProvider(indexer port.IndexingClient, ttl time.Duration, logger port.Logger) port.TokenMetadataProvider {
	if ttl <= 0 {
		logger.Info("Token metadata cache disabled")
		return indexer
	}
	return &tokenProviderImpl{
		indexer: indexer,
		cache:   cache.New(ttl, 2*ttl),
		logger:  logger,
	}
}

// GetTokenMetadata returns cached metadata or fetches it. Failures are not cached.
func (p *tokenProviderImpl) GetTokenMetadata(ctx context.Context, contractAddress string) (entity.TokenMetadata, error) {
	key := strings.ToLower(contractAddress)
	if cached, found := p.cache.Get(key); found {
		metrics.MetadataCacheLookups.WithLabelValues("hit").Inc()
		p.logger.Debug("Returning cached token metadata", "contract", contractAddress)
		return cached.(entity.TokenMetadata), nil
	}
	metrics.MetadataCacheLookups.WithLabelValues("miss").Inc()

	md, err := p.indexer.GetTokenMetadata(ctx, contractAddress)
	if err != nil {
		return entity.TokenMetadata{}, err
	}
	p.cache.Set(key, md, cache.DefaultExpiration)
	return md, nil
}
