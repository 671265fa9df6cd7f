package models

import (
	"github.com/wpgo/wealth-projector/internal/domain"
)

// ProjectionResponse wraps the summary (which carries the full ledger).
type ProjectionResponse struct {
	Summary *domain.ScenarioSummary `json:"summary"`
}

// ErrorDetail describes a single API error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all API errors.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
