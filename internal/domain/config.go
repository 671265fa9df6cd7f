package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScenarioKind selects the update rule the projection loop applies each year.
type ScenarioKind string

const (
	// ScenarioAccumulation buys units with a recurring contribution at the
	// year's average price (dollar-cost averaging).
	ScenarioAccumulation ScenarioKind = "accumulation"
	// ScenarioNetWorth grows a cash balance with interest and indexed savings
	// alongside a fixed asset position.
	ScenarioNetWorth ScenarioKind = "net_worth"
	// ScenarioDrawdown sells units to cover inflation-indexed spending, after
	// grossing up for the sell tax.
	ScenarioDrawdown ScenarioKind = "drawdown"
)

// GrowthModelKind identifies a variant of the growth-model union.
type GrowthModelKind string

const (
	GrowthManualCycles     GrowthModelKind = "manual_cycles"
	GrowthPowerLaw         GrowthModelKind = "power_law"
	GrowthAnchoredPowerLaw GrowthModelKind = "anchored_power_law"
)

// Rates holds the macro assumptions shared by all scenarios.
type Rates struct {
	Inflation    decimal.Decimal `yaml:"inflation" json:"inflation"`
	CashInterest decimal.Decimal `yaml:"cash_interest" json:"cash_interest"`
	TaxRate      decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
}

// ManualCycle is one row of the editable per-year growth table.
// GrowthPct is a fraction: 0.5 means +50% for that year.
type ManualCycle struct {
	Year      int             `yaml:"year" json:"year"`
	GrowthPct decimal.Decimal `yaml:"growth_pct" json:"growth_pct"`
}

// GrowthModelConfig is the tagged union selecting the price model.
// Exactly one variant's fields are meaningful for a given Kind.
type GrowthModelConfig struct {
	Kind GrowthModelKind `yaml:"kind" json:"kind"`

	// Manual cycles variant.
	ManualCycles []ManualCycle `yaml:"manual_cycles,omitempty" json:"manual_cycles,omitempty"`

	// Power-law variants. ScenarioSD is the log-space offset from the median
	// curve (explicit-SD variant only; the anchored variant derives its
	// multiplier from the starting price instead).
	ScenarioSD decimal.Decimal `yaml:"scenario_sd,omitempty" json:"scenario_sd,omitempty"`
	FXRate     decimal.Decimal `yaml:"fx_rate,omitempty" json:"fx_rate,omitempty"`
}

// ContributionFrequency converts a per-period contribution to annual.
type ContributionFrequency string

const (
	FrequencyWeekly      ContributionFrequency = "weekly"
	FrequencyFortnightly ContributionFrequency = "fortnightly"
	FrequencyMonthly     ContributionFrequency = "monthly"
	FrequencyAnnual      ContributionFrequency = "annual"
)

// PeriodsPerYear returns the number of contribution periods in a year,
// or 0 for an unknown frequency.
func (f ContributionFrequency) PeriodsPerYear() int {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyFortnightly:
		return 26
	case FrequencyMonthly:
		return 12
	case FrequencyAnnual:
		return 1
	}
	return 0
}

// AccumulationPlan configures the accumulation scenario.
type AccumulationPlan struct {
	ContributionAmount    decimal.Decimal       `yaml:"contribution_amount" json:"contribution_amount"`
	ContributionFrequency ContributionFrequency `yaml:"contribution_frequency" json:"contribution_frequency"`
}

// AnnualContribution is the per-period amount scaled to a full year.
func (p *AccumulationPlan) AnnualContribution() decimal.Decimal {
	periods := p.ContributionFrequency.PeriodsPerYear()
	return p.ContributionAmount.Mul(decimal.NewFromInt(int64(periods)))
}

// ExpenseLine is one named expense in the annual budget.
type ExpenseLine struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// Budget holds annual income against named expenses. Savings may be negative.
type Budget struct {
	AnnualIncome decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	Expenses     []ExpenseLine   `yaml:"expenses" json:"expenses"`
}

// TotalExpenses sums all expense lines.
func (b *Budget) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// AnnualSavings is income minus total expenses.
func (b *Budget) AnnualSavings() decimal.Decimal {
	return b.AnnualIncome.Sub(b.TotalExpenses())
}

// SavingsRate is savings divided by income, zero when income is not positive.
func (b *Budget) SavingsRate() decimal.Decimal {
	if !b.AnnualIncome.IsPositive() {
		return decimal.Zero
	}
	return b.AnnualSavings().Div(b.AnnualIncome)
}

// CostCategory is a recurring baseline cost in the drawdown plan.
// StartYear is the first projection year the cost applies (1 = immediately);
// indexing always compounds from year 0 regardless of when the cost starts.
type CostCategory struct {
	Name      string          `yaml:"name" json:"name"`
	Annual    decimal.Decimal `yaml:"annual" json:"annual"`
	StartYear int             `yaml:"start_year" json:"start_year"`
}

// LumpSumEvent is a one-off nominal cash event in a specific year.
type LumpSumEvent struct {
	Year   int             `yaml:"year" json:"year"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// DrawdownPlan configures the drawdown scenario.
type DrawdownPlan struct {
	Costs    []CostCategory `yaml:"costs" json:"costs"`
	LumpSums []LumpSumEvent `yaml:"lump_sums,omitempty" json:"lump_sums,omitempty"`

	// SafetyMultiple is the number of years of spend the portfolio must cover
	// for the solvency threshold to be considered reached.
	SafetyMultiple decimal.Decimal `yaml:"safety_multiple" json:"safety_multiple"`
}

// Configuration is the immutable input for one engine run. The engine never
// reads state outside of it; in particular AsOfDate replaces any wall-clock
// dependency so runs are reproducible.
type Configuration struct {
	AsOfDate      time.Time         `yaml:"as_of_date" json:"as_of_date"`
	StartingPrice decimal.Decimal   `yaml:"starting_price" json:"starting_price"`
	Holdings      decimal.Decimal   `yaml:"holdings" json:"holdings"`
	Cash          decimal.Decimal   `yaml:"cash" json:"cash"`
	Rates         Rates             `yaml:"rates" json:"rates"`
	GrowthModel   GrowthModelConfig `yaml:"growth_model" json:"growth_model"`
	HorizonYears  int               `yaml:"horizon_years" json:"horizon_years"`
	Scenario      ScenarioKind      `yaml:"scenario" json:"scenario"`

	Accumulation *AccumulationPlan `yaml:"accumulation,omitempty" json:"accumulation,omitempty"`
	Budget       *Budget           `yaml:"budget,omitempty" json:"budget,omitempty"`
	Drawdown     *DrawdownPlan     `yaml:"drawdown,omitempty" json:"drawdown,omitempty"`
}
