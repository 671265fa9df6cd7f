package output

import (
	"encoding/json"

	"github.com/wpgo/wealth-projector/internal/domain"
)

// JSONFormatter serializes the scenario summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.ScenarioSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}
