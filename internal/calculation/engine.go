package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wpgo/wealth-projector/internal/domain"
)

// Engine orchestrates a full projection run: validate the configuration,
// derive the growth model and cash-flow rules, build the ledger, reduce it to
// a summary. It is stateless between invocations and performs no I/O.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunScenario projects the configuration over its horizon and returns the
// summary with the full ledger attached. Configuration errors abort the run
// with no partial ledger.
func (e *Engine) RunScenario(ctx context.Context, cfg *domain.Configuration) (*domain.ScenarioSummary, error) {
	if err := e.ValidateConfiguration(cfg); err != nil {
		return nil, err
	}

	model, err := NewGrowthModel(cfg)
	if err != nil {
		return nil, err
	}

	var ledger domain.Ledger
	switch cfg.Scenario {
	case domain.ScenarioAccumulation:
		ledger = e.runAccumulation(cfg, model)
	case domain.ScenarioNetWorth:
		ledger = e.runNetWorth(cfg, model)
	case domain.ScenarioDrawdown:
		ledger, err = e.runDrawdown(cfg, model)
		if err != nil {
			return nil, err
		}
	}

	summary := e.Summarize(cfg, model, ledger)
	e.Logger.Infof("scenario %s projected %d years: final portfolio %s",
		cfg.Scenario, cfg.HorizonYears, summary.FinalPortfolioValue.StringFixed(2))
	return summary, nil
}

// ValidateConfiguration checks the invariants a run depends on. Violations
// are fatal to the run, not recovered.
func (e *Engine) ValidateConfiguration(cfg *domain.Configuration) error {
	if !cfg.StartingPrice.IsPositive() {
		return fmt.Errorf("starting_price must be positive, got %s", cfg.StartingPrice.String())
	}
	if cfg.Holdings.IsNegative() {
		return fmt.Errorf("holdings cannot be negative, got %s", cfg.Holdings.String())
	}
	if cfg.HorizonYears < 1 {
		return fmt.Errorf("horizon_years must be at least 1, got %d", cfg.HorizonYears)
	}

	one := decimal.NewFromInt(1)
	if cfg.Rates.Inflation.IsNegative() || cfg.Rates.Inflation.GreaterThanOrEqual(one) {
		return fmt.Errorf("inflation must be in [0, 1), got %s", cfg.Rates.Inflation.String())
	}
	if cfg.Rates.CashInterest.IsNegative() || cfg.Rates.CashInterest.GreaterThanOrEqual(one) {
		return fmt.Errorf("cash_interest must be in [0, 1), got %s", cfg.Rates.CashInterest.String())
	}
	if cfg.Rates.TaxRate.IsNegative() || cfg.Rates.TaxRate.GreaterThanOrEqual(one) {
		return fmt.Errorf("tax_rate must be in [0, 1), got %s", cfg.Rates.TaxRate.String())
	}

	if cfg.GrowthModel.Kind == domain.GrowthManualCycles {
		// A rate at or below -100% drives the price to zero and every
		// per-unit quantity after it is undefined.
		for _, cycle := range cfg.GrowthModel.ManualCycles {
			if cycle.GrowthPct.LessThanOrEqual(one.Neg()) {
				return fmt.Errorf("manual cycle year %d: growth_pct must be greater than -1, got %s",
					cycle.Year, cycle.GrowthPct.String())
			}
		}
	}

	switch cfg.Scenario {
	case domain.ScenarioAccumulation:
		if cfg.Accumulation == nil {
			return fmt.Errorf("accumulation scenario requires an accumulation plan")
		}
		if cfg.Accumulation.ContributionAmount.IsNegative() {
			return fmt.Errorf("contribution_amount cannot be negative, got %s", cfg.Accumulation.ContributionAmount.String())
		}
		if cfg.Accumulation.ContributionFrequency.PeriodsPerYear() == 0 {
			return fmt.Errorf("contribution_frequency %q must be weekly, fortnightly, monthly or annual",
				cfg.Accumulation.ContributionFrequency)
		}
	case domain.ScenarioNetWorth:
		if cfg.Budget == nil {
			return fmt.Errorf("net_worth scenario requires a budget")
		}
	case domain.ScenarioDrawdown:
		if cfg.Drawdown == nil {
			return fmt.Errorf("drawdown scenario requires a drawdown plan")
		}
		if !cfg.Drawdown.SafetyMultiple.IsPositive() {
			return fmt.Errorf("safety_multiple must be positive, got %s", cfg.Drawdown.SafetyMultiple.String())
		}
		for _, cost := range cfg.Drawdown.Costs {
			if cost.Name == "" {
				return fmt.Errorf("drawdown cost categories must be named")
			}
			if cost.Annual.IsNegative() {
				return fmt.Errorf("cost %q cannot have a negative baseline, got %s", cost.Name, cost.Annual.String())
			}
		}
	default:
		return fmt.Errorf("scenario %q must be %q, %q or %q",
			cfg.Scenario, domain.ScenarioAccumulation, domain.ScenarioNetWorth, domain.ScenarioDrawdown)
	}

	return nil
}
