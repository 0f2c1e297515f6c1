package provider

import (
	"context"
	"sync"
	"time"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/infrastructure/network/client"
)

type walletProviderImpl struct {
	rpcURL  string
	timeout time.Duration
	logger  port.Logger

	mu     sync.Mutex
	wallet port.WalletProvider
	dial   func(ctx context.Context, rpcURL string, timeout time.Duration) (port.WalletProvider, error)
}

// NewWalletProvider creates a WalletProvider for the wallet endpoint at
// rpcURL. It returns nil when no endpoint is configured, which callers treat
// as "no wallet available".
func NewWalletProvider(rpcURL string, timeout time.Duration, logger port.Logger) port.WalletProvider {
	if rpcURL == "" {
		logger.Info("No wallet provider configured, wallet connection disabled")
		return nil
	}
	return &walletProviderImpl{
		rpcURL:  rpcURL,
		timeout: timeout,
		logger:  logger,
		dial:    client.DialWallet,
	}
}

// RequestAccounts dials the wallet on first use and asks it for accounts.
func (p *walletProviderImpl) RequestAccounts(ctx context.Context) ([]string, error) {
	wallet, err := p.connect(ctx)
	if err != nil {
		p.logger.Error("Failed to connect to wallet provider", "error", err)
		return nil, err
	}

	p.logger.Debug("Requesting wallet accounts")
	accounts, err := wallet.RequestAccounts(ctx)
	if err != nil {
		p.logger.Warn("Wallet account request failed", "error", err)
		return nil, err
	}
	p.logger.Info("Wallet accounts received", "count", len(accounts))
	return accounts, nil
}

func (p *walletProviderImpl) connect(ctx context.Context) (port.WalletProvider, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.wallet != nil {
		return p.wallet, nil
	}
	wallet, err := p.dial(ctx, p.rpcURL, p.timeout)
	if err != nil {
		return nil, err
	}
	p.wallet = wallet
	return wallet, nil
}
