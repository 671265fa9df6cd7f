package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/wpgo/wealth-projector/internal/domain"
)

// Default horizons applied when the file omits horizon_years: drawdown plans
// project the long way out, the other scenarios a working lifetime.
const (
	DefaultDrawdownHorizon = 50
	DefaultHorizon         = 20
)

// DefaultFXRate converts the USD median curve to the home currency when the
// file omits fx_rate.
var DefaultFXRate = decimal.NewFromFloat(0.65)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file, applies defaults and
// validates it. The file must carry its own as_of_date.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	return ip.LoadFromFileAt(filename, time.Time{})
}

// LoadFromFileAt loads like LoadFromFile but fills a missing as_of_date with
// the given date before validation. This keeps the wall-clock dependency at
// the caller: the engine itself only ever sees the explicit date.
func (ip *InputParser) LoadFromFileAt(filename string, defaultAsOf time.Time) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseAt(data, defaultAsOf)
}

// Parse decodes YAML bytes into a validated configuration.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	return ip.ParseAt(data, time.Time{})
}

// ParseAt decodes YAML bytes, filling a missing as_of_date with defaultAsOf.
func (ip *InputParser) ParseAt(data []byte, defaultAsOf time.Time) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.AsOfDate.IsZero() {
		config.AsOfDate = defaultAsOf
	}
	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ApplyDefaults fills the optional fields a concise file may omit. It never
// touches the as-of date: determinism requires the caller to choose it.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.HorizonYears == 0 {
		if config.Scenario == domain.ScenarioDrawdown {
			config.HorizonYears = DefaultDrawdownHorizon
		} else {
			config.HorizonYears = DefaultHorizon
		}
	}
	if config.GrowthModel.Kind == domain.GrowthPowerLaw || config.GrowthModel.Kind == domain.GrowthAnchoredPowerLaw {
		if config.GrowthModel.FXRate.IsZero() {
			config.GrowthModel.FXRate = DefaultFXRate
		}
	}
	if config.Accumulation != nil && config.Accumulation.ContributionFrequency == "" {
		config.Accumulation.ContributionFrequency = domain.FrequencyAnnual
	}
}

// ValidateConfiguration validates the loaded configuration at the schema
// level; the engine repeats the numeric invariants before every run.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.AsOfDate.IsZero() {
		return fmt.Errorf("as_of_date is required")
	}
	if !config.StartingPrice.IsPositive() {
		return fmt.Errorf("starting_price must be positive")
	}
	if config.Holdings.IsNegative() {
		return fmt.Errorf("holdings cannot be negative")
	}
	if config.HorizonYears < 1 || config.HorizonYears > 50 {
		return fmt.Errorf("horizon_years must be between 1 and 50")
	}

	if err := ip.validateRates(&config.Rates); err != nil {
		return fmt.Errorf("rates validation failed: %w", err)
	}
	if err := ip.validateGrowthModel(&config.GrowthModel); err != nil {
		return fmt.Errorf("growth model validation failed: %w", err)
	}
	if err := ip.validateScenario(config); err != nil {
		return fmt.Errorf("scenario validation failed: %w", err)
	}

	return nil
}

func (ip *InputParser) validateRates(rates *domain.Rates) error {
	one := decimal.NewFromInt(1)
	if rates.Inflation.IsNegative() || rates.Inflation.GreaterThanOrEqual(one) {
		return fmt.Errorf("inflation must be in [0, 1)")
	}
	if rates.CashInterest.IsNegative() || rates.CashInterest.GreaterThanOrEqual(one) {
		return fmt.Errorf("cash_interest must be in [0, 1)")
	}
	if rates.TaxRate.IsNegative() || rates.TaxRate.GreaterThanOrEqual(one) {
		return fmt.Errorf("tax_rate must be in [0, 1)")
	}
	return nil
}

func (ip *InputParser) validateGrowthModel(gm *domain.GrowthModelConfig) error {
	switch gm.Kind {
	case domain.GrowthManualCycles:
		for i, cycle := range gm.ManualCycles {
			if cycle.Year < 1 {
				return fmt.Errorf("manual_cycles[%d]: year must be at least 1", i)
			}
			if cycle.GrowthPct.LessThanOrEqual(decimal.NewFromInt(-1)) {
				return fmt.Errorf("manual_cycles[%d]: growth_pct must be greater than -1", i)
			}
		}
	case domain.GrowthPowerLaw, domain.GrowthAnchoredPowerLaw:
		if !gm.FXRate.IsPositive() {
			return fmt.Errorf("fx_rate must be positive")
		}
	case "":
		return fmt.Errorf("growth model kind is required")
	default:
		return fmt.Errorf("unknown growth model kind %q", gm.Kind)
	}
	return nil
}

func (ip *InputParser) validateScenario(config *domain.Configuration) error {
	switch config.Scenario {
	case domain.ScenarioAccumulation:
		if config.Accumulation == nil {
			return fmt.Errorf("accumulation plan is required")
		}
		if config.Accumulation.ContributionAmount.IsNegative() {
			return fmt.Errorf("contribution_amount cannot be negative")
		}
		if config.Accumulation.ContributionFrequency.PeriodsPerYear() == 0 {
			return fmt.Errorf("unknown contribution_frequency %q", config.Accumulation.ContributionFrequency)
		}
	case domain.ScenarioNetWorth:
		if config.Budget == nil {
			return fmt.Errorf("budget is required")
		}
		for i, expense := range config.Budget.Expenses {
			if expense.Name == "" {
				return fmt.Errorf("expenses[%d]: name is required", i)
			}
			if expense.Amount.IsNegative() {
				return fmt.Errorf("expense %q cannot be negative", expense.Name)
			}
		}
	case domain.ScenarioDrawdown:
		if config.Drawdown == nil {
			return fmt.Errorf("drawdown plan is required")
		}
		if !config.Drawdown.SafetyMultiple.IsPositive() {
			return fmt.Errorf("safety_multiple must be positive")
		}
		for i, cost := range config.Drawdown.Costs {
			if cost.Name == "" {
				return fmt.Errorf("costs[%d]: name is required", i)
			}
			if cost.Annual.IsNegative() {
				return fmt.Errorf("cost %q cannot have a negative baseline", cost.Name)
			}
		}
		for i, ev := range config.Drawdown.LumpSums {
			if ev.Year < 1 {
				return fmt.Errorf("lump_sums[%d]: year must be at least 1", i)
			}
			if ev.Amount.IsNegative() {
				return fmt.Errorf("lump_sums[%d]: amount cannot be negative", i)
			}
		}
	case "":
		return fmt.Errorf("scenario is required")
	default:
		return fmt.Errorf("unknown scenario %q", config.Scenario)
	}
	return nil
}

// DefaultManualCycles returns the stock growth table: a strong first cycle
// year, a correction in year three, then decaying steady growth.
func DefaultManualCycles(years int) []domain.ManualCycle {
	cycles := make([]domain.ManualCycle, 0, years)
	for y := 1; y <= years; y++ {
		var pct decimal.Decimal
		switch {
		case y == 1:
			pct = decimal.NewFromFloat(0.50)
		case y == 2:
			pct = decimal.NewFromFloat(0.15)
		case y == 3:
			pct = decimal.NewFromFloat(-0.20)
		case y <= 10:
			pct = decimal.NewFromFloat(0.12)
		default:
			pct = decimal.NewFromFloat(0.07)
		}
		cycles = append(cycles, domain.ManualCycle{Year: y, GrowthPct: pct})
	}
	return cycles
}

// CreateExampleConfiguration creates a complete runnable drawdown example.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	asOf, _ := time.Parse("2006-01-02", "2026-01-01")

	return &domain.Configuration{
		AsOfDate:      asOf,
		StartingPrice: decimal.NewFromInt(150000),
		Holdings:      decimal.NewFromInt(10),
		Cash:          decimal.Zero,
		Rates: domain.Rates{
			Inflation:    decimal.NewFromFloat(0.03),
			CashInterest: decimal.NewFromFloat(0.04),
			TaxRate:      decimal.NewFromFloat(0.23),
		},
		GrowthModel: domain.GrowthModelConfig{
			Kind:       domain.GrowthPowerLaw,
			ScenarioSD: decimal.Zero,
			FXRate:     DefaultFXRate,
		},
		HorizonYears: DefaultDrawdownHorizon,
		Scenario:     domain.ScenarioDrawdown,
		Drawdown: &domain.DrawdownPlan{
			Costs: []domain.CostCategory{
				{Name: "parents_spend", Annual: decimal.NewFromInt(120000), StartYear: 1},
				{Name: "kids_allowance", Annual: decimal.NewFromInt(180000), StartYear: 15},
			},
			LumpSums: []domain.LumpSumEvent{
				{Year: 10, Amount: decimal.NewFromInt(200000)},
				{Year: 12, Amount: decimal.NewFromInt(200000)},
			},
			SafetyMultiple: decimal.NewFromInt(25),
		},
	}
}

// CreateExampleAccumulationConfiguration creates a runnable DCA example on the
// stock manual-cycle growth table.
func (ip *InputParser) CreateExampleAccumulationConfiguration() *domain.Configuration {
	asOf, _ := time.Parse("2006-01-02", "2026-01-01")

	return &domain.Configuration{
		AsOfDate:      asOf,
		StartingPrice: decimal.NewFromInt(150000),
		Holdings:      decimal.NewFromFloat(0.5),
		Cash:          decimal.NewFromInt(20000),
		Rates: domain.Rates{
			Inflation:    decimal.NewFromFloat(0.03),
			CashInterest: decimal.NewFromFloat(0.04),
			TaxRate:      decimal.NewFromFloat(0.23),
		},
		GrowthModel: domain.GrowthModelConfig{
			Kind:         domain.GrowthManualCycles,
			ManualCycles: DefaultManualCycles(DefaultHorizon),
		},
		HorizonYears: DefaultHorizon,
		Scenario:     domain.ScenarioAccumulation,
		Accumulation: &domain.AccumulationPlan{
			ContributionAmount:    decimal.NewFromInt(500),
			ContributionFrequency: domain.FrequencyFortnightly,
		},
	}
}

// WriteExampleConfiguration marshals an example configuration for the given
// scenario to a file. Drawdown is the default.
func (ip *InputParser) WriteExampleConfiguration(filename string, scenario domain.ScenarioKind) error {
	var cfg *domain.Configuration
	switch scenario {
	case domain.ScenarioAccumulation:
		cfg = ip.CreateExampleAccumulationConfiguration()
	case domain.ScenarioDrawdown, "":
		cfg = ip.CreateExampleConfiguration()
	default:
		return fmt.Errorf("no example available for scenario %q", scenario)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
