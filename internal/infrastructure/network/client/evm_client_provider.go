package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/infrastructure/configloader"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	// ErrNoRPCEndpoint is returned when no JSON-RPC node is configured.
	ErrNoRPCEndpoint = errors.New("no JSON-RPC endpoint configured")
	// ErrENSUnsupported is returned for networks without an ENS registry.
	ErrENSUnsupported = errors.New("ENS is not deployed on this network")
)

// evmNode is the part of *ethclient.Client the provider needs.
type evmNode interface {
	port.ContractCaller
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

func dialEthClient(ctx context.Context, rpcURL string) (evmNode, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

// evmClientProvider implements port.NameBackendProvider. It dials the
// configured nodes lazily and caches one backend per network.
type evmClientProvider struct {
	rpcURLs           []string
	clients           map[string]port.NameBackend
	mu                sync.Mutex
	loggerInfo        func(msg string, args ...any)
	loggerError       func(msg string, args ...any)
	connectionTimeout time.Duration
	rpcCallTimeout    time.Duration
	dial              func(ctx context.Context, rpcURL string) (evmNode, error)
}

// NewEVMClientProvider creates a new EVMClientProvider.
func NewEVMClientProvider(
	cfg *configloader.Config,
	loggerInfo func(msg string, args ...any),
	loggerError func(msg string, args ...any),
) port.NameBackendProvider {
	var rpcURLs []string
	if cfg.Ethereum.RPCURL != "" {
		rpcURLs = append(rpcURLs, cfg.Ethereum.RPCURL)
	}
	rpcURLs = append(rpcURLs, cfg.Ethereum.FallbackRPCURLs...)

	return &evmClientProvider{
		rpcURLs:           rpcURLs,
		clients:           make(map[string]port.NameBackend),
		loggerInfo:        loggerInfo,
		loggerError:       loggerError,
		connectionTimeout: time.Duration(cfg.Ethereum.ConnectionTimeoutMs) * time.Millisecond,
		rpcCallTimeout:    time.Duration(cfg.Ethereum.RPCTimeoutMs) * time.Millisecond,
		dial:              dialEthClient,
	}
}

// GetNameBackend returns the cached backend for the network or dials one.
func (p *evmClientProvider) GetNameBackend(ctx context.Context, netDef entity.NetworkDefinition) (port.NameBackend, error) {
	if !netDef.SupportsENS() {
		return nil, fmt.Errorf("%w: %s", ErrENSUnsupported, netDef.Identifier)
	}
	if len(p.rpcURLs) == 0 {
		return nil, ErrNoRPCEndpoint
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if backend, exists := p.clients[netDef.Identifier]; exists {
		return backend, nil
	}

	p.loggerInfo("Creating new EVM client", "network", netDef.Name, "rpc_primary", p.rpcURLs[0])
	node, err := p.connect(ctx, netDef)
	if err != nil {
		p.loggerError("Failed to create EVM client", "network", netDef.Name, "error", err)
		return nil, err
	}

	backend := NewENSClient(node, common.HexToAddress(netDef.ENSRegistry), p.rpcCallTimeout)
	p.clients[netDef.Identifier] = backend
	p.loggerInfo("Successfully created and cached new EVM client", "network", netDef.Name)
	return backend, nil
}

// connect tries every configured URL in order and keeps the first node that
// answers with the expected chain ID.
func (p *evmClientProvider) connect(ctx context.Context, netDef entity.NetworkDefinition) (evmNode, error) {
	var lastErr error
	for _, rpcURL := range p.rpcURLs {
		dialCtx, cancel := context.WithTimeout(ctx, p.connectionTimeout)
		node, err := p.dial(dialCtx, rpcURL)
		if err != nil {
			cancel()
			lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
			continue
		}

		chainID, err := node.ChainID(dialCtx)
		cancel()
		if err != nil {
			node.Close()
			lastErr = fmt.Errorf("failed to verify chainID for %s: %w", rpcURL, err)
			continue
		}
		if chainID.Uint64() != netDef.ChainID {
			node.Close()
			lastErr = fmt.Errorf("chainID mismatch for %s: expected %d, got %d", rpcURL, netDef.ChainID, chainID.Uint64())
			continue
		}
		return node, nil
	}
	return nil, fmt.Errorf("all RPC connection attempts failed for network %s: %w", netDef.Name, lastErr)
}
