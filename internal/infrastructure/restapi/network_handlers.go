package restapi

import (
	"net/http"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// NetworksResponse ответ эндпоинта сетей.
type NetworksResponse struct {
	Active   entity.NetworkDefinition   `json:"active"`
	Networks []entity.NetworkDefinition `json:"networks"`
}

// NetworkHandler отдает сети, которые обслуживает indexing API.
type NetworkHandler struct {
	networks port.NetworkDefinitionProvider
	active   entity.NetworkDefinition
}

// NewNetworkHandler создает новый экземпляр NetworkHandler.
func NewNetworkHandler(networks port.NetworkDefinitionProvider, active entity.NetworkDefinition) *NetworkHandler {
	return &NetworkHandler{networks: networks, active: active}
}

// GetNetwork returns one network by identifier.
func (h *NetworkHandler) GetNetwork(c *gin.Context) {
	def, ok := h.networks.GetNetworkDefinitionByName(c.Param("identifier"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown network"})
		return
	}
	c.JSON(http.StatusOK, def)
}

// GetNetworks lists the known networks and the one queries run against.
func (h *NetworkHandler) GetNetworks(c *gin.Context) {
	c.JSON(http.StatusOK, NetworksResponse{Active: h.active, Networks: h.networks.GetAllNetworkDefinitions()})
}
