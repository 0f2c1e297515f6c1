package client

import (
	"context"
	"fmt"
	"time"

	"erc20_indexer/internal/app/port"

	"github.com/ethereum/go-ethereum/rpc"
)

// WalletRPCClient asks a wallet's JSON-RPC endpoint for account access.
type WalletRPCClient struct {
	rpcClient *rpc.Client
	timeout   time.Duration
}

// NewWalletRPCClient wraps an already dialed RPC client.
func NewWalletRPCClient(rpcClient *rpc.Client, timeout time.Duration) port.WalletProvider {
	return &WalletRPCClient{rpcClient: rpcClient, timeout: timeout}
}

// DialWallet connects to the wallet endpoint at rpcURL.
func DialWallet(ctx context.Context, rpcURL string, timeout time.Duration) (port.WalletProvider, error) {
	c, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to wallet RPC %s: %w", rpcURL, err)
	}
	return NewWalletRPCClient(c, timeout), nil
}

// RequestAccounts implements port.WalletProvider via eth_requestAccounts.
func (c *WalletRPCClient) RequestAccounts(ctx context.Context) ([]string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var accounts []string
	if err := c.rpcClient.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, fmt.Errorf("eth_requestAccounts failed: %w", err)
	}
	return accounts, nil
}
