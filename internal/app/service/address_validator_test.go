package service

import (
	"context"
	"errors"
	"testing"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const vitalik = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

var mainnet = entity.NetworkDefinition{ChainID: 1, Identifier: "eth-mainnet", ENSRegistry: "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"}

func TestValidateAddressesSkipsResolver(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"checksummed", vitalik},
		{"lowercase", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"},
		{"uppercase", "0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045"},
		{"surrounding whitespace", "  " + vitalik + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &mockResolver{}
			v := NewAddressValidator(resolver, logger.NewNopAdapter())

			result := v.Validate(context.Background(), tt.input)

			assert.True(t, result.Valid())
			assert.Equal(t, vitalik, result.Address)
			assert.Equal(t, entity.AddressSourceHex, result.Source)
			resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		})
	}
}

func TestValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected entity.FailureReason
	}{
		{"empty", "   ", entity.FailureEmptyInput},
		{"broken checksum", "0xd8da6bf26964af9d7eed9e03e53415d37aA96045", entity.FailureBadChecksum},
		{"mixed case typo", "0xD8dA6BF26964aF9D7eEd9e03E53415D37aA96045", entity.FailureBadChecksum},
		{"too short", "0x1234", entity.FailureMalformedAddress},
		{"not hex", "0xzz8da6bf26964af9d7eed9e03e53415d37aa9604", entity.FailureMalformedAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &mockResolver{}
			v := NewAddressValidator(resolver, logger.NewNopAdapter())

			result := v.Validate(context.Background(), tt.input)

			assert.False(t, result.Valid())
			assert.Empty(t, result.Address)
			assert.Equal(t, tt.expected, result.Failure)
			resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
		})
	}
}

func TestValidateResolvesNamesToChecksumForm(t *testing.T) {
	ctx := context.Background()
	backend := &mockBackend{}
	backend.On("ResolveName", ctx, "vitalik.eth").Return(common.HexToAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"), nil)
	backends := &mockBackendProvider{}
	backends.On("GetNameBackend", ctx, mainnet).Return(backend, nil)

	resolver := NewNameResolver(backends, mainnet, logger.NewNopAdapter())
	v := NewAddressValidator(resolver, logger.NewNopAdapter())

	result := v.Validate(ctx, "vitalik.eth")

	assert.True(t, result.Valid())
	assert.Equal(t, vitalik, result.Address)
	assert.Equal(t, entity.AddressSourceENS, result.Source)
	assert.Equal(t, "vitalik.eth", result.Input)
}

func TestValidateUnresolvableNames(t *testing.T) {
	ctx := context.Background()
	backend := &mockBackend{}
	backend.On("ResolveName", ctx, "nobody.eth").Return(common.Address{}, port.ErrNoResolver)
	backend.On("ResolveName", ctx, "flaky.eth").Return(common.Address{}, errors.New("i/o timeout"))
	backend.On("ResolveName", ctx, "bad..eth").Return(common.Address{}, port.ErrMalformedName)
	backends := &mockBackendProvider{}
	backends.On("GetNameBackend", ctx, mainnet).Return(backend, nil)

	v := NewAddressValidator(NewNameResolver(backends, mainnet, logger.NewNopAdapter()), logger.NewNopAdapter())

	assert.Equal(t, entity.FailureUnresolvableName, v.Validate(ctx, "nobody.eth").Failure)
	assert.Equal(t, entity.FailureResolverError, v.Validate(ctx, "flaky.eth").Failure)
	assert.Equal(t, entity.FailureMalformedName, v.Validate(ctx, "bad..eth").Failure)
}

func TestValidateWithoutNameBackend(t *testing.T) {
	ctx := context.Background()
	backends := &mockBackendProvider{}
	backends.On("GetNameBackend", ctx, mainnet).Return(nil, errors.New("no JSON-RPC endpoint configured"))

	v := NewAddressValidator(NewNameResolver(backends, mainnet, logger.NewNopAdapter()), logger.NewNopAdapter())
	assert.Equal(t, entity.FailureResolverUnavailable, v.Validate(ctx, "vitalik.eth").Failure)

	v = NewAddressValidator(NewNameResolver(nil, mainnet, logger.NewNopAdapter()), logger.NewNopAdapter())
	assert.Equal(t, entity.FailureResolverUnavailable, v.Validate(ctx, "vitalik.eth").Failure)
	// Hex input still works without a node.
	assert.True(t, v.Validate(ctx, vitalik).Valid())
}

func TestValidateRechecksResolvedAddress(t *testing.T) {
	ctx := context.Background()
	resolver := &mockResolver{}
	resolver.On("Resolve", ctx, "weird.eth").Return(entity.ResolvedAddress("weird.eth", "0xD8dA6BF26964aF9D7eEd9e03E53415D37aA96045", entity.AddressSourceENS))

	v := NewAddressValidator(resolver, logger.NewNopAdapter())
	result := v.Validate(ctx, "weird.eth")

	assert.Equal(t, entity.FailureBadChecksum, result.Failure)
	assert.Empty(t, result.Address)
}
