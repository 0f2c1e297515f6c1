package client

import (
	"context"
	stdjson "encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rpcCall struct {
	Method string               `json:"method"`
	Params []stdjson.RawMessage `json:"params"`
	ID     uint64               `json:"id"`
}

// fakeAlchemy serves canned JSON-RPC results keyed by method.
type fakeAlchemy struct {
	t       *testing.T
	mu      sync.Mutex
	calls   []rpcCall
	handler func(call rpcCall) (result interface{}, rpcErr map[string]interface{}, status int)
}

func (f *fakeAlchemy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, "/v2/test-key", r.URL.Path)
	assert.Equal(f.t, http.MethodPost, r.Method)

	var call rpcCall
	if !assert.NoError(f.t, stdjson.NewDecoder(r.Body).Decode(&call)) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	result, rpcErr, status := f.handler(call)
	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("upstream unavailable"))
		return
	}

	resp := map[string]interface{}{"jsonrpc": "2.0", "id": call.ID}
	if rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(f.t, stdjson.NewEncoder(w).Encode(resp))
}

func newTestClient(t *testing.T, fake *fakeAlchemy, maxPages int) *alchemyClientImpl {
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	c := NewAlchemyClient(srv.URL+"/v2/", "test-key", 2*time.Second, zap.NewNop(), maxPages)
	return c.(*alchemyClientImpl)
}

func TestGetTokenBalancesFollowsPages(t *testing.T) {
	fake := &fakeAlchemy{t: t}
	fake.handler = func(call rpcCall) (interface{}, map[string]interface{}, int) {
		assert.Equal(t, methodGetTokenBalances, call.Method)
		if len(call.Params) == 2 {
			return map[string]interface{}{
				"address": "0xabc",
				"tokenBalances": []map[string]interface{}{
					{"contractAddress": "0x1", "tokenBalance": "0x01", "error": nil},
					{"contractAddress": "0x2", "tokenBalance": "0x02", "error": nil},
				},
				"pageKey": "page-2",
			}, nil, 0
		}
		var opts map[string]string
		assert.NoError(t, stdjson.Unmarshal(call.Params[2], &opts))
		assert.Equal(t, "page-2", opts["pageKey"])
		return map[string]interface{}{
			"address": "0xabc",
			"tokenBalances": []map[string]interface{}{
				{"contractAddress": "0x3", "tokenBalance": "0x03", "error": nil},
				{"contractAddress": "0x4", "tokenBalance": nil, "error": "execution reverted"},
			},
		}, nil, 0
	}
	c := newTestClient(t, fake, 5)

	balances, err := c.GetTokenBalances(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, balances, 3)
	assert.Equal(t, "0x1", balances[0].ContractAddress)
	assert.Equal(t, "0x02", balances[1].RawBalance)
	assert.Equal(t, "0x3", balances[2].ContractAddress)
	assert.Len(t, fake.calls, 2)

	var tokenSpec string
	require.NoError(t, stdjson.Unmarshal(fake.calls[0].Params[1], &tokenSpec))
	assert.Equal(t, "erc20", tokenSpec)
}

func TestGetTokenBalancesStopsAtPageLimit(t *testing.T) {
	fake := &fakeAlchemy{t: t}
	fake.handler = func(call rpcCall) (interface{}, map[string]interface{}, int) {
		return map[string]interface{}{
			"tokenBalances": []map[string]interface{}{{"contractAddress": "0x1", "tokenBalance": "0x01"}},
			"pageKey":       "more",
		}, nil, 0
	}
	c := newTestClient(t, fake, 2)

	balances, err := c.GetTokenBalances(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Len(t, balances, 2)
	assert.Len(t, fake.calls, 2)
}

func TestGetTokenMetadata(t *testing.T) {
	fake := &fakeAlchemy{t: t}
	fake.handler = func(call rpcCall) (interface{}, map[string]interface{}, int) {
		assert.Equal(t, methodGetTokenMetadata, call.Method)
		var contract string
		assert.NoError(t, stdjson.Unmarshal(call.Params[0], &contract))
		if contract == "0xnull" {
			return map[string]interface{}{"name": nil, "symbol": nil, "decimals": nil, "logo": nil}, nil, 0
		}
		return map[string]interface{}{"name": "USD Coin", "symbol": "USDC", "decimals": 6, "logo": "https://logo/usdc.png"}, nil, 0
	}
	c := newTestClient(t, fake, 1)

	md, err := c.GetTokenMetadata(context.Background(), "0xusdc")
	require.NoError(t, err)
	require.NotNil(t, md.Symbol)
	require.NotNil(t, md.Decimals)
	require.NotNil(t, md.Logo)
	assert.Equal(t, "USDC", *md.Symbol)
	assert.Equal(t, 6, *md.Decimals)
	assert.Equal(t, "https://logo/usdc.png", *md.Logo)

	md, err = c.GetTokenMetadata(context.Background(), "0xnull")
	require.NoError(t, err)
	assert.Nil(t, md.Symbol)
	assert.Nil(t, md.Decimals)
	assert.Nil(t, md.Logo)
}

func TestCallErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		rpcErr  map[string]interface{}
		wantErr error
	}{
		{name: "http status", status: http.StatusTooManyRequests, wantErr: ErrHTTPStatus},
		{name: "rpc error", rpcErr: map[string]interface{}{"code": -32602, "message": "invalid address"}, wantErr: ErrRPC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAlchemy{t: t}
			fake.handler = func(call rpcCall) (interface{}, map[string]interface{}, int) {
				return nil, tt.rpcErr, tt.status
			}
			c := newTestClient(t, fake, 1)

			_, err := c.GetTokenBalances(context.Background(), "0xabc")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			_, err = c.GetTokenMetadata(context.Background(), "0x1")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCallUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewAlchemyClient(url, "test-key", 500*time.Millisecond, zap.NewNop(), 1)
	_, err := c.GetTokenMetadata(context.Background(), "0x1")
	require.Error(t, err)
}
