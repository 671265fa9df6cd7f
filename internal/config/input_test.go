package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpgo/wealth-projector/internal/domain"
)

const validDrawdownYAML = `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 150000
holdings: 10
rates:
  inflation: 0.03
  cash_interest: 0.04
  tax_rate: 0.23
growth_model:
  kind: power_law
  scenario_sd: 0
scenario: drawdown
drawdown:
  costs:
    - name: parents_spend
      annual: 120000
      start_year: 1
  lump_sums:
    - year: 10
      amount: 200000
  safety_multiple: 25
`

func TestParse_ValidDrawdown(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.Parse([]byte(validDrawdownYAML))
	require.NoError(t, err)

	assert.Equal(t, domain.ScenarioDrawdown, cfg.Scenario)
	assert.True(t, cfg.StartingPrice.Equal(decimal.NewFromInt(150000)))
	assert.True(t, cfg.Rates.TaxRate.Equal(decimal.NewFromFloat(0.23)))
	require.Len(t, cfg.Drawdown.Costs, 1)
	assert.Equal(t, "parents_spend", cfg.Drawdown.Costs[0].Name)

	// Omitted fields picked up their defaults.
	assert.Equal(t, DefaultDrawdownHorizon, cfg.HorizonYears)
	assert.True(t, cfg.GrowthModel.FXRate.Equal(DefaultFXRate))
}

func TestParse_DefaultHorizonByScenario(t *testing.T) {
	yamlDoc := `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 10000
growth_model:
  kind: manual_cycles
scenario: accumulation
accumulation:
  contribution_amount: 500
  contribution_frequency: monthly
`
	parser := NewInputParser()
	cfg, err := parser.Parse([]byte(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, DefaultHorizon, cfg.HorizonYears)
}

func TestParseAt_FillsMissingAsOfDate(t *testing.T) {
	yamlDoc := `
starting_price: 10000
growth_model:
  kind: manual_cycles
scenario: accumulation
accumulation:
  contribution_amount: 500
`
	parser := NewInputParser()

	// Without a fallback the date is required.
	_, err := parser.Parse([]byte(yamlDoc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "as_of_date")

	asOf := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	cfg, err := parser.ParseAt([]byte(yamlDoc), asOf)
	require.NoError(t, err)
	assert.True(t, cfg.AsOfDate.Equal(asOf))

	// A frequency default also kicked in.
	assert.Equal(t, domain.FrequencyAnnual, cfg.Accumulation.ContributionFrequency)
}

func TestParseAt_ExplicitDateWins(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.ParseAt([]byte(validDrawdownYAML), time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2026, cfg.AsOfDate.Year())
}

func TestParse_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "malformed yaml",
			yaml: `starting_price: [`,
		},
		{
			name: "negative starting price",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: -1
growth_model:
  kind: manual_cycles
scenario: drawdown
drawdown:
  safety_multiple: 25
`,
			wantErr: "starting_price",
		},
		{
			name: "tax rate at one",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 100
rates:
  tax_rate: 1
growth_model:
  kind: manual_cycles
scenario: drawdown
drawdown:
  safety_multiple: 25
`,
			wantErr: "tax_rate",
		},
		{
			name: "cycle growth at total loss",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 100
growth_model:
  kind: manual_cycles
  manual_cycles:
    - year: 1
      growth_pct: -1
scenario: drawdown
drawdown:
  safety_multiple: 25
`,
			wantErr: "growth_pct",
		},
		{
			name: "unknown growth model kind",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 100
growth_model:
  kind: random_walk
scenario: drawdown
drawdown:
  safety_multiple: 25
`,
			wantErr: "growth model",
		},
		{
			name: "unknown scenario",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 100
growth_model:
  kind: manual_cycles
scenario: speculation
`,
			wantErr: "scenario",
		},
		{
			name: "missing plan for scenario",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 100
growth_model:
  kind: manual_cycles
scenario: accumulation
`,
			wantErr: "accumulation plan",
		},
		{
			name: "bad contribution frequency",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 100
growth_model:
  kind: manual_cycles
scenario: accumulation
accumulation:
  contribution_amount: 100
  contribution_frequency: daily
`,
			wantErr: "contribution_frequency",
		},
		{
			name: "lump sum before year one",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 100
growth_model:
  kind: manual_cycles
scenario: drawdown
drawdown:
  lump_sums:
    - year: 0
      amount: 1000
  safety_multiple: 25
`,
			wantErr: "lump_sums",
		},
		{
			name: "horizon beyond cap",
			yaml: `
as_of_date: 2026-01-01T00:00:00Z
starting_price: 100
horizon_years: 80
growth_model:
  kind: manual_cycles
scenario: drawdown
drawdown:
  safety_multiple: 25
`,
			wantErr: "horizon_years",
		},
	}
	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.yaml))
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExampleConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(example))

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.WriteExampleConfiguration(path, domain.ScenarioDrawdown))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, example.Scenario, loaded.Scenario)
	assert.True(t, loaded.StartingPrice.Equal(example.StartingPrice))
	assert.True(t, loaded.Drawdown.SafetyMultiple.Equal(example.Drawdown.SafetyMultiple))
}

func TestExampleAccumulationConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleAccumulationConfiguration()
	require.NoError(t, parser.ValidateConfiguration(example))

	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, parser.WriteExampleConfiguration(path, domain.ScenarioAccumulation))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ScenarioAccumulation, loaded.Scenario)
	assert.Equal(t, domain.FrequencyFortnightly, loaded.Accumulation.ContributionFrequency)
	assert.Len(t, loaded.GrowthModel.ManualCycles, DefaultHorizon)
}

func TestWriteExampleConfiguration_UnknownScenario(t *testing.T) {
	parser := NewInputParser()
	err := parser.WriteExampleConfiguration(filepath.Join(t.TempDir(), "x.yaml"), domain.ScenarioNetWorth)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no example available")
}

func TestDefaultManualCycles(t *testing.T) {
	cycles := DefaultManualCycles(12)
	require.Len(t, cycles, 12)
	assert.True(t, cycles[0].GrowthPct.Equal(decimal.NewFromFloat(0.50)))
	assert.True(t, cycles[2].GrowthPct.Equal(decimal.NewFromFloat(-0.20)))
	assert.True(t, cycles[9].GrowthPct.Equal(decimal.NewFromFloat(0.12)))
	assert.True(t, cycles[11].GrowthPct.Equal(decimal.NewFromFloat(0.07)))
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
