package networkdefinition

import (
	"fmt"
	"sort"
	"strings"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"
)

// ENSRegistryAddress is the ENS registry (with fallback) deployed on mainnet and Sepolia.
const ENSRegistryAddress = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

// NetworkDefinitionProvider provides network definitions.
type NetworkDefinitionProvider struct {
	logger           port.Logger
	allNetworkDefs   map[string]entity.NetworkDefinition
	activeNetworkDef entity.NetworkDefinition
}

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	EthereumMainnet = entity.NetworkDefinition{
		ChainID:          1,
		Name:             "Ethereum Mainnet",
		Identifier:       "eth-mainnet",
		IndexerBaseURL:   "https://eth-mainnet.g.alchemy.com/v2",
		ENSRegistry:      ENSRegistryAddress,
		BlockExplorerURL: "https://etherscan.io",
	}
	EthereumSepolia = entity.NetworkDefinition{
		ChainID:          11155111,
		Name:             "Ethereum Sepolia",
		Identifier:       "eth-sepolia",
		IndexerBaseURL:   "https://eth-sepolia.g.alchemy.com/v2",
		ENSRegistry:      ENSRegistryAddress,
		BlockExplorerURL: "https://sepolia.etherscan.io",
	}
	PolygonMainnet = entity.NetworkDefinition{
		ChainID:          137,
		Name:             "Polygon PoS",
		Identifier:       "polygon-mainnet",
		IndexerBaseURL:   "https://polygon-mainnet.g.alchemy.com/v2",
		BlockExplorerURL: "https://polygonscan.com",
	}
	ArbitrumMainnet = entity.NetworkDefinition{
		ChainID:          42161,
		Name:             "Arbitrum One",
		Identifier:       "arb-mainnet",
		IndexerBaseURL:   "https://arb-mainnet.g.alchemy.com/v2",
		BlockExplorerURL: "https://arbiscan.io",
	}
	OptimismMainnet = entity.NetworkDefinition{
		ChainID:          10,
		Name:             "OP Mainnet",
		Identifier:       "opt-mainnet",
		IndexerBaseURL:   "https://opt-mainnet.g.alchemy.com/v2",
		BlockExplorerURL: "https://optimistic.etherscan.io",
	}
	BaseMainnet = entity.NetworkDefinition{
		ChainID:          8453,
		Name:             "Base Mainnet",
		Identifier:       "base-mainnet",
		IndexerBaseURL:   "https://base-mainnet.g.alchemy.com/v2",
		BlockExplorerURL: "https://basescan.org",
	}
)

var allKnownDefinitions = map[string]entity.NetworkDefinition{ //nolint:gochecknoglobals
	EthereumMainnet.Identifier: EthereumMainnet,
	EthereumSepolia.Identifier: EthereumSepolia,
	PolygonMainnet.Identifier:  PolygonMainnet,
	ArbitrumMainnet.Identifier: ArbitrumMainnet,
	OptimismMainnet.Identifier: OptimismMainnet,
	BaseMainnet.Identifier:     BaseMainnet,
}

// NewNetworkDefinitionProvider creates a provider with exactly one active
// network. indexerBaseURL, when not empty, replaces the network's default
// indexing API endpoint.
func NewNetworkDefinitionProvider(log port.Logger, identifier string, indexerBaseURL string) (*NetworkDefinitionProvider, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	def, ok := allKnownDefinitions[identifier]
	if !ok {
		return nil, fmt.Errorf("unknown network %q, known networks: %s", identifier, strings.Join(knownIdentifiers(), ", "))
	}
	if indexerBaseURL != "" {
		def.IndexerBaseURL = strings.TrimRight(indexerBaseURL, "/")
	}

	p := &NetworkDefinitionProvider{
		logger:           log,
		allNetworkDefs:   allKnownDefinitions,
		activeNetworkDef: def,
	}
	if !def.SupportsENS() {
		p.logger.Warn("ENS is not deployed on the selected network. Only hex addresses will be accepted.", "network", def.Identifier)
	}
	p.logger.Info(fmt.Sprintf("NetworkDefinitionProvider initialized. Active network: %s (ChainID: %d)", def.Name, def.ChainID))
	return p, nil
}

// Active returns the network every query runs against.
func (p *NetworkDefinitionProvider) Active() entity.NetworkDefinition {
	return p.activeNetworkDef
}

// GetAllNetworkDefinitions returns every network the indexing API is known to serve, sorted by chain ID.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	defs := make([]entity.NetworkDefinition, 0, len(p.allNetworkDefs))
	for _, def := range p.allNetworkDefs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ChainID < defs[j].ChainID })
	return defs
}

// GetNetworkDefinitionByName returns a specific network definition by its identifier.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	identifier = strings.ToLower(identifier)
	if identifier == p.activeNetworkDef.Identifier {
		return p.activeNetworkDef, true
	}
	def, ok := p.allNetworkDefs[identifier]
	return def, ok
}

func knownIdentifiers() []string {
	ids := make([]string, 0, len(allKnownDefinitions))
	for id := range allKnownDefinitions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
