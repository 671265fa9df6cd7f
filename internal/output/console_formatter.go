package output

import (
	"fmt"
	"strings"

	"github.com/wpgo/wealth-projector/internal/domain"
	"github.com/wpgo/wealth-projector/pkg/money"
)

// ConsoleFormatter renders the headline metrics and the full ledger as a
// plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.ScenarioSummary) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "SCENARIO: %s\n", summary.Scenario)
	if summary.ScenarioBand != "" {
		fmt.Fprintf(&b, "Projection band:       %s\n", summary.ScenarioBand)
	}
	fmt.Fprintf(&b, "Final portfolio value: %s\n", money.FormatCompact(summary.FinalPortfolioValue))
	fmt.Fprintf(&b, "Final holdings:        %s\n", money.FormatUnits(summary.FinalHoldings))

	switch summary.Scenario {
	case domain.ScenarioAccumulation:
		fmt.Fprintf(&b, "Total cash invested:   %s\n", money.Format(summary.TotalInvested))
		fmt.Fprintf(&b, "Capital multiplier:    %s\n", money.FormatMultiple(summary.ROIMultiple))
	case domain.ScenarioNetWorth:
		fmt.Fprintf(&b, "Final cash balance:    %s\n", money.Format(summary.FinalCashBalance))
		fmt.Fprintf(&b, "Annual savings:        %s\n", money.Format(summary.AnnualSavings))
		fmt.Fprintf(&b, "Savings rate:          %s%%\n", summary.SavingsRate.Mul(hundred).StringFixed(1))
	case domain.ScenarioDrawdown:
		if summary.FirstFailedYear == domain.YearNone {
			fmt.Fprintf(&b, "Feasibility:           sustainable for the full horizon\n")
		} else {
			fmt.Fprintf(&b, "Feasibility:           FAILED in year %d\n", summary.FirstFailedYear)
		}
		if summary.SolvencyReachedYear == domain.YearNone {
			fmt.Fprintf(&b, "Safe solvency:         not reached within horizon\n")
		} else {
			fmt.Fprintf(&b, "Safe solvency:         reached in year %d\n", summary.SolvencyReachedYear)
		}
	}

	b.WriteString("\n")
	c.writeLedger(&b, summary)

	return []byte(b.String()), nil
}

func (c ConsoleFormatter) writeLedger(b *strings.Builder, summary *domain.ScenarioSummary) {
	fmt.Fprintf(b, "%-5s %-14s %-12s %-14s %-14s %-12s %-12s\n",
		"Year", "Price", "Holdings", "Cash", "Portfolio", "Tax Paid", "Status")
	fmt.Fprintln(b, strings.Repeat("-", 88))

	for _, row := range summary.Ledger {
		status := ""
		if summary.Scenario == domain.ScenarioDrawdown {
			status = string(row.Status)
		}
		fmt.Fprintf(b, "%-5d %-14s %-12s %-14s %-14s %-12s %-12s\n",
			row.Year,
			money.Format(row.Price),
			money.FormatUnits(row.Holdings),
			money.Format(row.CashBalance),
			money.Format(row.PortfolioValue),
			money.Format(row.TaxPaid),
			status)
	}
}
