package view

import "erc20_indexer/internal/domain/entity"

const (
	// PromptMessage is shown in place of the grid until a query completes.
	PromptMessage = "Please make a query! This may take a few seconds..."
	// FetchFailedMessage is the notification for a failed balance or metadata fetch.
	FetchFailedMessage = "Failed to fetch token balances"
	// PositionBottomRight is the only notification position the page uses.
	PositionBottomRight = "bottom-right"

	checkLabel     = "Check ERC-20 Token Balances"
	loadingLabel   = "loading.."
	connectLabel   = "Connect Wallet"
	connectedLabel = "Connected"
)

// Notification is a transient toast. It is cleared after one render.
type Notification struct {
	Message  string `json:"message"`
	Position string `json:"position"`
}

// State is everything the page shows for one browser session.
type State struct {
	Input           string             `json:"input"`
	ResolvedAddress string             `json:"resolvedAddress,omitempty"`
	WalletConnected bool               `json:"walletConnected"`
	Loading         bool               `json:"loading"`
	HasQueried      bool               `json:"hasQueried"`
	Cards           []entity.TokenCard `json:"cards,omitempty"`
	Notification    *Notification      `json:"notification,omitempty"`
	// QuerySeq identifies the most recently started query. Completions
	// carrying an older sequence number are ignored.
	QuerySeq uint64 `json:"querySeq"`
}

// ShowPrompt reports whether the prompt replaces the grid.
func (s State) ShowPrompt() bool {
	return !s.HasQueried
}

// CheckButtonLabel is the label of the query button.
func (s State) CheckButtonLabel() string {
	if s.Loading {
		return loadingLabel
	}
	return checkLabel
}

// ConnectButtonLabel is the label of the wallet button.
func (s State) ConnectButtonLabel() string {
	if s.WalletConnected {
		return connectedLabel
	}
	return connectLabel
}
