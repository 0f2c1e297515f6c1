package client

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/infrastructure/configloader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	fakeCaller
	chainID  *big.Int
	chainErr error
	closed   bool
}

func (n *fakeNode) ChainID(context.Context) (*big.Int, error) {
	return n.chainID, n.chainErr
}

func (n *fakeNode) Close() { n.closed = true }

var testMainnet = entity.NetworkDefinition{
	ChainID:     1,
	Name:        "Ethereum Mainnet",
	Identifier:  "eth-mainnet",
	ENSRegistry: testRegistry.Hex(),
}

func newTestProvider(urls []string, nodes map[string]*fakeNode) (*evmClientProvider, *[]string) {
	cfg := &configloader.Config{}
	if len(urls) > 0 {
		cfg.Ethereum.RPCURL = urls[0]
		cfg.Ethereum.FallbackRPCURLs = urls[1:]
	}
	cfg.Ethereum.ConnectionTimeoutMs = 1000
	nop := func(string, ...any) {}

	p := NewEVMClientProvider(cfg, nop, nop).(*evmClientProvider)
	dialed := &[]string{}
	p.dial = func(_ context.Context, rpcURL string) (evmNode, error) {
		*dialed = append(*dialed, rpcURL)
		node, ok := nodes[rpcURL]
		if !ok {
			return nil, errors.New("dial failed")
		}
		return node, nil
	}
	return p, dialed
}

func TestGetNameBackendFallsBackAndCaches(t *testing.T) {
	wrongChain := &fakeNode{chainID: big.NewInt(137)}
	good := &fakeNode{chainID: big.NewInt(1)}
	p, dialed := newTestProvider(
		[]string{"http://down", "http://polygon", "http://mainnet"},
		map[string]*fakeNode{"http://polygon": wrongChain, "http://mainnet": good},
	)

	backend, err := p.GetNameBackend(context.Background(), testMainnet)
	require.NoError(t, err)
	require.NotNil(t, backend)
	assert.True(t, wrongChain.closed)
	assert.False(t, good.closed)

	again, err := p.GetNameBackend(context.Background(), testMainnet)
	require.NoError(t, err)
	assert.Same(t, backend, again)
	assert.Equal(t, []string{"http://down", "http://polygon", "http://mainnet"}, *dialed)
}

func TestGetNameBackendErrors(t *testing.T) {
	p, _ := newTestProvider(nil, nil)
	_, err := p.GetNameBackend(context.Background(), testMainnet)
	assert.ErrorIs(t, err, ErrNoRPCEndpoint)

	p, _ = newTestProvider([]string{"http://mainnet"}, map[string]*fakeNode{
		"http://mainnet": {chainErr: errors.New("timeout")},
	})
	_, err = p.GetNameBackend(context.Background(), testMainnet)
	assert.ErrorContains(t, err, "all RPC connection attempts failed")

	noENS := testMainnet
	noENS.ENSRegistry = ""
	_, err = p.GetNameBackend(context.Background(), noENS)
	assert.ErrorIs(t, err, ErrENSUnsupported)
}
