package service

import (
	"context"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type mockIndexer struct {
	mock.Mock
}

func (m *mockIndexer) GetTokenBalances(ctx context.Context, address string) ([]entity.TokenBalance, error) {
	args := m.Called(ctx, address)
	balances, _ := args.Get(0).([]entity.TokenBalance)
	return balances, args.Error(1)
}

func (m *mockIndexer) GetTokenMetadata(ctx context.Context, contractAddress string) (entity.TokenMetadata, error) {
	args := m.Called(ctx, contractAddress)
	return args.Get(0).(entity.TokenMetadata), args.Error(1)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, input string) entity.AddressResult {
	return m.Called(ctx, input).Get(0).(entity.AddressResult)
}

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) ResolveName(ctx context.Context, name string) (common.Address, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(common.Address), args.Error(1)
}

type mockBackendProvider struct {
	mock.Mock
}

func (m *mockBackendProvider) GetNameBackend(ctx context.Context, network entity.NetworkDefinition) (port.NameBackend, error) {
	args := m.Called(ctx, network)
	backend, _ := args.Get(0).(port.NameBackend)
	return backend, args.Error(1)
}

type mockWallet struct {
	mock.Mock
}

func (m *mockWallet) RequestAccounts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]string)
	return accounts, args.Error(1)
}

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) Validate(ctx context.Context, input string) entity.AddressResult {
	return m.Called(ctx, input).Get(0).(entity.AddressResult)
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, address string) (*entity.QueryResult, error) {
	args := m.Called(ctx, address)
	result, _ := args.Get(0).(*entity.QueryResult)
	return result, args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
