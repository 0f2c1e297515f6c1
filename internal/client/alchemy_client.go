package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"erc20_indexer/internal/app/port"
	domain "erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/entity"
	"erc20_indexer/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	methodGetTokenBalances = "alchemy_getTokenBalances"
	methodGetTokenMetadata = "alchemy_getTokenMetadata"

	// erc20TokenSpec asks for every ERC-20 the address has interacted with.
	erc20TokenSpec = "erc20"
)

var (
	// ErrHTTPStatus is returned when the indexing API answers with a non-200 status.
	ErrHTTPStatus = errors.New("unexpected HTTP status from indexing API")
	// ErrRPC is returned when the indexing API answers with a JSON-RPC error object.
	ErrRPC = errors.New("indexing API returned an error")
)

// alchemyClientImpl talks JSON-RPC to the Alchemy enhanced API over fasthttp.
type alchemyClientImpl struct {
	client   *fasthttp.Client
	endpoint string
	timeout  time.Duration
	logger   *zap.Logger
	maxPages int
	nextID   atomic.Uint64
}

// NewAlchemyClient creates an indexing API client. The API key is appended to
// baseURL as a path segment and never logged.
func NewAlchemyClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, maxPages int) port.IndexingClient {
	if maxPages <= 0 {
		maxPages = 1
	}
	return &alchemyClientImpl{
		client:   &fasthttp.Client{Name: "erc20-indexer"},
		endpoint: strings.TrimRight(baseURL, "/") + "/" + apiKey,
		timeout:  timeout,
		logger:   logger.Named("AlchemyClient"),
		maxPages: maxPages,
	}
}

// GetTokenBalances implements port.IndexingClient. It follows pageKey until
// the list is exhausted or maxPages pages have been read.
func (c *alchemyClientImpl) GetTokenBalances(ctx context.Context, address string) ([]domain.TokenBalance, error) {
	var (
		balances []domain.TokenBalance
		pageKey  string
	)

	for page := 0; page < c.maxPages; page++ {
		params := []interface{}{address, erc20TokenSpec}
		if pageKey != "" {
			params = append(params, entity.TokenBalancesPageOptions{PageKey: pageKey})
		}

		var result entity.TokenBalancesResult
		if err := c.call(ctx, methodGetTokenBalances, params, &result); err != nil {
			return nil, err
		}

		for _, tb := range result.TokenBalances {
			if tb.Failed() {
				c.logger.Warn("Indexing API could not read token balance, skipping entry",
					zap.String("address", address),
					zap.String("contractAddress", tb.ContractAddress),
					zap.ByteString("error", tb.Error))
				continue
			}
			balances = append(balances, domain.TokenBalance{
				ContractAddress: tb.ContractAddress,
				RawBalance:      *tb.TokenBalance,
			})
		}

		if result.PageKey == "" {
			c.logger.Debug("Fetched token balances",
				zap.String("address", address),
				zap.Int("pages", page+1),
				zap.Int("count", len(balances)))
			return balances, nil
		}
		pageKey = result.PageKey
	}

	c.logger.Warn("Token balance list truncated at page limit",
		zap.String("address", address),
		zap.Int("maxPages", c.maxPages),
		zap.Int("count", len(balances)))
	return balances, nil
}

// GetTokenMetadata implements port.IndexingClient.
func (c *alchemyClientImpl) GetTokenMetadata(ctx context.Context, contractAddress string) (domain.TokenMetadata, error) {
	var result entity.TokenMetadataResult
	if err := c.call(ctx, methodGetTokenMetadata, []interface{}{contractAddress}, &result); err != nil {
		return domain.TokenMetadata{}, err
	}
	return domain.TokenMetadata{
		Name:     result.Name,
		Symbol:   result.Symbol,
		Decimals: result.Decimals,
		Logo:     result.Logo,
	}, nil
}

func (c *alchemyClientImpl) call(ctx context.Context, method string, params []interface{}, out interface{}) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstream(method, start, err) }()

	body, err := json.Marshal(entity.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	c.logger.Debug("Calling indexing API", zap.String("method", method))

	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		c.logger.Error("Failed to execute request to indexing API", zap.String("method", method), zap.Error(err))
		return fmt.Errorf("failed to execute %s: %w", method, err)
	}

	rawBody := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Indexing API request failed",
			zap.String("method", method),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody))
		return fmt.Errorf("%w: %s answered %d: %s", ErrHTTPStatus, method, resp.StatusCode(), string(rawBody))
	}

	var rpcResp entity.JSONRPCResponse
	if err = json.Unmarshal(rawBody, &rpcResp); err != nil {
		c.logger.Error("Failed to unmarshal indexing API response",
			zap.String("method", method),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err))
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		c.logger.Warn("Indexing API returned an error",
			zap.String("method", method),
			zap.Int("code", rpcResp.Error.Code),
			zap.String("message", rpcResp.Error.Message))
		err = fmt.Errorf("%w: %s: %d %s", ErrRPC, method, rpcResp.Error.Code, rpcResp.Error.Message)
		return err
	}
	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		err = fmt.Errorf("%w: %s returned no result", ErrRPC, method)
		return err
	}

	if err = json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	return nil
}
