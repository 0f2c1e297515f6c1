package service

import (
	"context"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"
)

// WalletConnectorImpl implements port.WalletConnector.
type WalletConnectorImpl struct {
	wallet port.WalletProvider
	logger port.Logger
}

// NewWalletConnector creates a connector. wallet may be nil when no wallet
// provider is available.
func NewWalletConnector(wallet port.WalletProvider, logger port.Logger) port.WalletConnector {
	return &WalletConnectorImpl{wallet: wallet, logger: logger}
}

// Connect asks the wallet for account access and returns the first account.
// Without a wallet, or when the request fails, the result is not connected.
func (c *WalletConnectorImpl) Connect(ctx context.Context) entity.WalletConnection {
	if c.wallet == nil {
		c.logger.Debug("Connect requested but no wallet provider is available")
		return entity.WalletConnection{}
	}

	accounts, err := c.wallet.RequestAccounts(ctx)
	if err != nil {
		c.logger.Warn("Wallet connection failed", "error", err)
		return entity.WalletConnection{}
	}
	if len(accounts) == 0 {
		c.logger.Warn("Wallet returned no accounts")
		return entity.WalletConnection{}
	}

	account := accounts[0]
	if isAddressSyntax(account) {
		account = checksummed(account)
	}
	return entity.WalletConnection{Connected: true, Address: account}
}
