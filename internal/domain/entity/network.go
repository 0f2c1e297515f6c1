package entity

// NetworkDefinition holds what the indexer needs to know about a network the
// indexing API serves.
type NetworkDefinition struct {
	ChainID          uint64 `json:"chainId" yaml:"chainId"`
	Name             string `json:"name" yaml:"name"`
	Identifier       string `json:"identifier" yaml:"identifier"` // indexing API slug, e.g. "eth-mainnet"
	IndexerBaseURL   string `json:"indexerBaseUrl" yaml:"indexerBaseUrl"`
	ENSRegistry      string `json:"ensRegistry,omitempty" yaml:"ensRegistry,omitempty"` // empty when ENS is not deployed
	BlockExplorerURL string `json:"blockExplorerUrl,omitempty" yaml:"blockExplorerUrl,omitempty"`
}

// SupportsENS reports whether names can be resolved on this network.
func (n NetworkDefinition) SupportsENS() bool {
	return n.ENSRegistry != ""
}
