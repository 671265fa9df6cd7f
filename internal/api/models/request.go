package models

import (
	"github.com/wpgo/wealth-projector/internal/domain"
)

// ProjectionRequest carries a full engine configuration. The API holds no
// state: every request is a self-contained run.
type ProjectionRequest struct {
	Config domain.Configuration `json:"config" binding:"required"`
}
