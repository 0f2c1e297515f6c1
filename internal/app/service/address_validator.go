package service

import (
	"context"
	"strings"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/pkg/metrics"
)

// AddressValidatorImpl implements port.AddressValidator.
type AddressValidatorImpl struct {
	resolver port.NameResolver
	logger   port.Logger
}

// NewAddressValidator creates a validator that falls back to resolver for
// anything that is not a hex address.
func NewAddressValidator(resolver port.NameResolver, logger port.Logger) port.AddressValidator {
	return &AddressValidatorImpl{resolver: resolver, logger: logger}
}

// Validate accepts hex addresses with a valid checksum without touching the
// resolver, and otherwise accepts names that resolve to a valid address.
func (v *AddressValidatorImpl) Validate(ctx context.Context, input string) entity.AddressResult {
	result := v.validate(ctx, input)
	if !result.Valid() {
		metrics.ValidationFailuresTotal.WithLabelValues(string(result.Failure)).Inc()
		v.logger.Info("Rejected address input", "input", input, "reason", result.Failure)
	}
	return result
}

func (v *AddressValidatorImpl) validate(ctx context.Context, input string) entity.AddressResult {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return entity.FailedAddress(input, entity.FailureEmptyInput)
	}

	if isAddressSyntax(trimmed) {
		if !hasValidChecksum(trimmed) {
			return entity.FailedAddress(input, entity.FailureBadChecksum)
		}
		return entity.ResolvedAddress(input, checksummed(trimmed), entity.AddressSourceHex)
	}

	// "0x..." without a dot is a mistyped address, not a name.
	if strings.HasPrefix(strings.ToLower(trimmed), "0x") && !strings.Contains(trimmed, ".") {
		return entity.FailedAddress(input, entity.FailureMalformedAddress)
	}

	result := v.resolver.Resolve(ctx, trimmed)
	result.Input = input
	if !result.Valid() {
		if result.Failure == entity.FailureNone {
			result.Failure = entity.FailureUnresolvableName
		}
		result.Address = ""
		return result
	}
	if !isAddressSyntax(result.Address) || !hasValidChecksum(result.Address) {
		return entity.FailedAddress(input, entity.FailureBadChecksum)
	}
	return result
}
