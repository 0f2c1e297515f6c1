package port

import (
	"context"
	"errors"
	"math/big"

	"erc20_indexer/internal/domain/entity"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrMalformedName is returned for names with empty labels.
	ErrMalformedName = errors.New("malformed ENS name")
	// ErrNoResolver is returned when the registry has no resolver for a name.
	ErrNoResolver = errors.New("no resolver set for name")
	// ErrNoAddress is returned when the resolver has no address record for a name.
	ErrNoAddress = errors.New("no address record for name")
)

// ContractCaller executes read-only contract calls. *ethclient.Client satisfies it.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// NameBackend resolves ENS names to addresses.
type NameBackend interface {
	// ResolveName returns the address a name points to. Errors wrap
	// ErrMalformedName, ErrNoResolver or ErrNoAddress when the name itself is
	// the problem; anything else is a transport failure.
	ResolveName(ctx context.Context, name string) (common.Address, error)
}

// NameBackendProvider hands out a NameBackend for a network, dialing lazily.
type NameBackendProvider interface {
	GetNameBackend(ctx context.Context, networkDefinition entity.NetworkDefinition) (NameBackend, error)
}

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	// GetAllNetworkDefinitions returns all available network definitions as a slice.
	GetAllNetworkDefinitions() []entity.NetworkDefinition

	// GetNetworkDefinitionByName returns a specific network definition by its identifier.
	GetNetworkDefinitionByName(nameOrIdentifier string) (entity.NetworkDefinition, bool)
}
