package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wpgo/wealth-projector/internal/api/models"
	"github.com/wpgo/wealth-projector/internal/pricefeed"
)

// PriceHandler proxies the spot-quote provider so browser frontends can
// prefill the starting price. A failed fetch is the caller's concern: they
// fall back to a manually entered value.
type PriceHandler struct {
	Client *pricefeed.Client
}

// NewPriceHandler creates a new price handler.
func NewPriceHandler(client *pricefeed.Client) *PriceHandler {
	return &PriceHandler{Client: client}
}

// Spot handles GET /api/v1/price?asset=bitcoin&currency=aud
func (h *PriceHandler) Spot(c *gin.Context) {
	asset := c.DefaultQuery("asset", "bitcoin")
	currency := c.DefaultQuery("currency", "aud")

	price, err := h.Client.Spot(c.Request.Context(), asset, currency)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PRICE_UNAVAILABLE",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"asset":    asset,
		"currency": currency,
		"price":    price,
	})
}
