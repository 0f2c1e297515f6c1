package view

import (
	"erc20_indexer/internal/domain/entity"
	"erc20_indexer/internal/pkg/logger"
	"erc20_indexer/internal/pkg/utils"
)

const (
	// DefaultLogoURL is the placeholder image for tokens without a logo.
	DefaultLogoURL = "/static/erc20token.svg"
	// UnknownSymbol is shown when a token reports no symbol.
	UnknownSymbol = "UNKNOWN"
	// DefaultDecimals is assumed when a token reports no decimals.
	DefaultDecimals = 18
	// UnreadableBalance is shown when the raw balance is not an integer or the
	// reported decimals fall outside the ERC-20 uint8 range.
	UnreadableBalance = "-"

	maxSymbolLength = 7
	balancePlaces   = 2
)

// RenderCards projects a query result into grid cards, keeping index order.
func RenderCards(result *entity.QueryResult) []entity.TokenCard {
	cards := make([]entity.TokenCard, 0, result.Len())
	for i := 0; i < result.Len(); i++ {
		var md entity.TokenMetadata
		if i < len(result.Metadata) {
			md = result.Metadata[i]
		}
		cards = append(cards, RenderCard(result.Balances[i], md))
	}
	return cards
}

// RenderCard formats one balance with its metadata.
func RenderCard(balance entity.TokenBalance, md entity.TokenMetadata) entity.TokenCard {
	card := entity.TokenCard{
		ContractAddress: balance.ContractAddress,
		Symbol:          "$" + utils.TruncateRunes(symbolOf(md), maxSymbolLength),
		Balance:         formatBalance(balance, md),
	}
	if md.Logo != nil && *md.Logo != "" {
		card.LogoURL = *md.Logo
	} else {
		card.LogoURL = DefaultLogoURL
		card.DefaultLogo = true
	}
	return card
}

func symbolOf(md entity.TokenMetadata) string {
	if md.Symbol == nil || *md.Symbol == "" {
		return UnknownSymbol
	}
	return *md.Symbol
}

func formatBalance(balance entity.TokenBalance, md entity.TokenMetadata) string {
	decimals := int32(DefaultDecimals)
	if md.Decimals != nil {
		if !utils.ValidTokenDecimals(*md.Decimals) {
			logger.Debug("Token reports decimals outside the uint8 range, balance not rendered",
				"contract", balance.ContractAddress, "decimals", *md.Decimals)
			return UnreadableBalance
		}
		decimals = int32(*md.Decimals)
	}

	amount, err := utils.ParseRawBalance(balance.RawBalance)
	if err != nil {
		logger.Debug("Unreadable raw balance", "contract", balance.ContractAddress, "raw", balance.RawBalance)
		return UnreadableBalance
	}
	return utils.FormatUnitsFixed(amount, decimals, balancePlaces)
}
