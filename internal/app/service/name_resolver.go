package service

import (
	"context"
	"errors"
	"strings"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"
)

// NameResolverImpl implements port.NameResolver on top of ENS.
type NameResolverImpl struct {
	backends port.NameBackendProvider
	network  entity.NetworkDefinition
	logger   port.Logger
}

// NewNameResolver creates a resolver for names registered on network.
// backends may be nil, in which case every name fails as unavailable.
func NewNameResolver(backends port.NameBackendProvider, network entity.NetworkDefinition, logger port.Logger) port.NameResolver {
	return &NameResolverImpl{
		backends: backends,
		network:  network,
		logger:   logger,
	}
}

// Resolve returns the checksummed address input refers to. It never fails;
// the reason for an empty address is carried in the result.
func (r *NameResolverImpl) Resolve(ctx context.Context, input string) entity.AddressResult {
	name := strings.TrimSpace(input)
	if name == "" {
		return entity.FailedAddress(input, entity.FailureEmptyInput)
	}
	if isAddressSyntax(name) {
		return entity.ResolvedAddress(input, checksummed(name), entity.AddressSourceHex)
	}

	if r.backends == nil {
		r.logger.Debug("Name resolution unavailable, no node configured", "name", name)
		return entity.FailedAddress(input, entity.FailureResolverUnavailable)
	}
	backend, err := r.backends.GetNameBackend(ctx, r.network)
	if err != nil {
		r.logger.Warn("Name resolution unavailable", "network", r.network.Identifier, "error", err)
		return entity.FailedAddress(input, entity.FailureResolverUnavailable)
	}

	addr, err := backend.ResolveName(ctx, name)
	if err != nil {
		reason := classifyResolveError(err)
		r.logger.Debug("Failed to resolve name", "name", name, "reason", reason, "error", err)
		return entity.FailedAddress(input, reason)
	}

	r.logger.Debug("Resolved name", "name", name, "address", addr.Hex())
	return entity.ResolvedAddress(input, addr.Hex(), entity.AddressSourceENS)
}

func classifyResolveError(err error) entity.FailureReason {
	switch {
	case errors.Is(err, port.ErrMalformedName):
		return entity.FailureMalformedName
	case errors.Is(err, port.ErrNoResolver), errors.Is(err, port.ErrNoAddress):
		return entity.FailureUnresolvableName
	default:
		return entity.FailureResolverError
	}
}
