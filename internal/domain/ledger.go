package domain

import (
	"github.com/shopspring/decimal"
)

// SolvencyStatus is the per-year state of a drawdown scenario.
// Sustainable is the initial state; Failed is terminal.
type SolvencyStatus string

const (
	StatusSustainable SolvencyStatus = "sustainable"
	StatusFailed      SolvencyStatus = "failed"
)

// YearNone marks a year metric that never occurred within the horizon.
const YearNone = -1

// LedgerRow holds every derived quantity for one projected year.
// Rows are append-only; the loop never revisits a past row.
type LedgerRow struct {
	Year           int             `json:"year"`
	Price          decimal.Decimal `json:"price"`
	Holdings       decimal.Decimal `json:"holdings"`
	CashBalance    decimal.Decimal `json:"cash_balance"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`

	// Cash flows for the year, keyed by category name. Categories not active
	// this year are absent; an active category costing nothing appears as 0.
	CashFlows map[string]decimal.Decimal `json:"cash_flows,omitempty"`

	// Drawdown quantities.
	NetNeed        decimal.Decimal `json:"net_need"`
	GrossSold      decimal.Decimal `json:"gross_sold"`
	TaxPaid        decimal.Decimal `json:"tax_paid"`
	UnitsSold      decimal.Decimal `json:"units_sold"`
	SolvencyTarget decimal.Decimal `json:"solvency_target"`
	Status         SolvencyStatus  `json:"status"`

	// Accumulation quantities.
	UnitsBought   decimal.Decimal `json:"units_bought"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	ROIMultiple   decimal.Decimal `json:"roi_multiple"`
}

// Ledger is the year-ascending output of one projection run, row 0 being a
// snapshot of the starting configuration.
type Ledger []LedgerRow

// Final returns the last row. The ledger always has at least the year-0 row.
func (l Ledger) Final() LedgerRow {
	return l[len(l)-1]
}

// FirstFailedYear returns the first year with Failed status, or YearNone.
func (l Ledger) FirstFailedYear() int {
	for _, row := range l {
		if row.Status == StatusFailed {
			return row.Year
		}
	}
	return YearNone
}

// IsFailed reports whether any row reached the Failed status.
func (l Ledger) IsFailed() bool {
	return l.FirstFailedYear() != YearNone
}

// ScenarioSummary holds the single-value metrics derived from a finished
// ledger. Year markers use YearNone when the event never occurred.
type ScenarioSummary struct {
	Scenario ScenarioKind `json:"scenario"`

	FinalPortfolioValue decimal.Decimal `json:"final_portfolio_value"`
	FinalHoldings       decimal.Decimal `json:"final_holdings"`
	FinalCashBalance    decimal.Decimal `json:"final_cash_balance"`

	// Accumulation metrics.
	TotalInvested decimal.Decimal `json:"total_invested"`
	ROIMultiple   decimal.Decimal `json:"roi_multiple"`

	// Budget metrics (net-worth scenarios).
	AnnualSavings decimal.Decimal `json:"annual_savings"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`

	// Drawdown metrics.
	FirstFailedYear     int `json:"first_failed_year"`
	SolvencyReachedYear int `json:"solvency_reached_year"`

	// ScenarioBand labels the power-law deviation band being projected,
	// empty for manual-cycle runs.
	ScenarioBand string `json:"scenario_band,omitempty"`

	Ledger Ledger `json:"ledger"`
}
