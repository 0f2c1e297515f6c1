package networkdefinition

import (
	"testing"

	"erc20_indexer/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNetworkDefinitionProvider(t *testing.T) {
	p, err := NewNetworkDefinitionProvider(logger.NewNopAdapter(), "ETH-Mainnet", "")
	require.NoError(t, err)

	active := p.Active()
	assert.Equal(t, uint64(1), active.ChainID)
	assert.True(t, active.SupportsENS())
	assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2", active.IndexerBaseURL)

	def, ok := p.GetNetworkDefinitionByName("base-mainnet")
	require.True(t, ok)
	assert.False(t, def.SupportsENS())

	all := p.GetAllNetworkDefinitions()
	require.Len(t, all, len(allKnownDefinitions))
	assert.Equal(t, uint64(1), all[0].ChainID)
}

func TestNewNetworkDefinitionProviderOverridesBaseURL(t *testing.T) {
	p, err := NewNetworkDefinitionProvider(logger.NewNopAdapter(), "eth-sepolia", "http://127.0.0.1:8545/v2/")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8545/v2", p.Active().IndexerBaseURL)

	def, ok := p.GetNetworkDefinitionByName("eth-sepolia")
	require.True(t, ok)
	assert.Equal(t, "http://127.0.0.1:8545/v2", def.IndexerBaseURL)
}

func TestNewNetworkDefinitionProviderUnknown(t *testing.T) {
	_, err := NewNetworkDefinitionProvider(logger.NewNopAdapter(), "solana-mainnet", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eth-mainnet")
}
