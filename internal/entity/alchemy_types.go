package entity

import "encoding/json"

// JSONRPCRequest is a single JSON-RPC 2.0 call sent to the indexing API.
type JSONRPCRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// JSONRPCError is the error object of a failed call.
type JSONRPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// JSONRPCResponse wraps either a result or an error.
type JSONRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *JSONRPCError   `json:"error"`
}

// TokenBalancesPageOptions continues a paginated alchemy_getTokenBalances call.
type TokenBalancesPageOptions struct {
	PageKey string `json:"pageKey"`
}

// TokenBalancesResult is the result of alchemy_getTokenBalances.
type TokenBalancesResult struct {
	Address       string              `json:"address"`
	TokenBalances []TokenBalanceEntry `json:"tokenBalances"`
	PageKey       string              `json:"pageKey,omitempty"`
}

// TokenBalanceEntry is one contract balance. TokenBalance is null when the
// API could not read the balance, in which case Error explains why.
type TokenBalanceEntry struct {
	ContractAddress string          `json:"contractAddress"`
	TokenBalance    *string         `json:"tokenBalance"`
	Error           json.RawMessage `json:"error,omitempty"`
}

// Failed reports whether the API flagged this entry as unreadable.
func (e TokenBalanceEntry) Failed() bool {
	return e.TokenBalance == nil || (len(e.Error) > 0 && string(e.Error) != "null")
}

// TokenMetadataResult is the result of alchemy_getTokenMetadata. Any field may be null.
type TokenMetadataResult struct {
	Name     *string `json:"name"`
	Symbol   *string `json:"symbol"`
	Decimals *int    `json:"decimals"`
	Logo     *string `json:"logo"`
}
