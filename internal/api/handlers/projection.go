package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wpgo/wealth-projector/internal/api/models"
	"github.com/wpgo/wealth-projector/internal/calculation"
	"github.com/wpgo/wealth-projector/internal/config"
)

// ProjectionHandler runs the projection engine for API callers.
type ProjectionHandler struct {
	Engine *calculation.Engine
	Parser *config.InputParser
}

// NewProjectionHandler creates a new projection handler.
func NewProjectionHandler(engine *calculation.Engine) *ProjectionHandler {
	return &ProjectionHandler{
		Engine: engine,
		Parser: config.NewInputParser(),
	}
}

// RunProjection handles POST /api/v1/projection
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := req.Config
	h.Parser.ApplyDefaults(&cfg)

	summary, err := h.Engine.RunScenario(c.Request.Context(), &cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIGURATION",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.ProjectionResponse{Summary: summary})
}

// Health handles GET /api/v1/health
func (h *ProjectionHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
