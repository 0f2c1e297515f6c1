package restapi

import (
	"net/http"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/app/service"
	"erc20_indexer/internal/app/view"
	"erc20_indexer/internal/domain/entity"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BalancesRequest тело запроса POST /api/v1/balances.
type BalancesRequest struct {
	Address string `json:"address"`
}

// BalancesResponse ответ эндпоинта балансов.
type BalancesResponse struct {
	Address entity.AddressResult `json:"address"`
	Cards   []entity.TokenCard   `json:"cards"`
}

// ErrorResponse описывает ошибку API.
type ErrorResponse struct {
	Error  string               `json:"error"`
	Reason entity.FailureReason `json:"reason,omitempty"`
}

// BalanceHandler обрабатывает JSON API запросы.
type BalanceHandler struct {
	queries  *service.QueryService
	resolver port.NameResolver
	wallet   port.WalletConnector
	logger   *zap.Logger
}

// NewBalanceHandler создает новый экземпляр BalanceHandler.
func NewBalanceHandler(queries *service.QueryService, resolver port.NameResolver, wallet port.WalletConnector, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		queries:  queries,
		resolver: resolver,
		wallet:   wallet,
		logger:   logger.Named("BalanceHandler"),
	}
}

// PostBalances validates the address or name and returns its rendered balances.
func (h *BalanceHandler) PostBalances(c *gin.Context) {
	var req BalancesRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be a JSON object with an address field"})
		return
	}

	outcome, err := h.queries.Run(c.Request.Context(), req.Address)
	if err != nil {
		h.logger.Warn("Balance query failed", zap.String("address", outcome.Address.Address), zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: view.FetchFailedMessage})
		return
	}
	if !outcome.Address.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: entity.InvalidAddressMessage, Reason: outcome.Address.Failure})
		return
	}

	cards := outcome.Cards
	if cards == nil {
		cards = []entity.TokenCard{}
	}
	c.JSON(http.StatusOK, BalancesResponse{Address: outcome.Address, Cards: cards})
}

// GetResolve resolves a name (or normalizes an address) without fetching balances.
func (h *BalanceHandler) GetResolve(c *gin.Context) {
	result := h.resolver.Resolve(c.Request.Context(), c.Param("name"))
	if !result.Valid() {
		c.JSON(http.StatusNotFound, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PostWalletConnect asks the configured wallet for an account.
func (h *BalanceHandler) PostWalletConnect(c *gin.Context) {
	c.JSON(http.StatusOK, h.wallet.Connect(c.Request.Context()))
}
