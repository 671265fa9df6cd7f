package calculation

import (
	"github.com/wpgo/wealth-projector/internal/domain"
)

// Summarize reduces a finished ledger to its headline metrics. All reductions
// tolerate a ledger holding only the year-0 row.
func (e *Engine) Summarize(cfg *domain.Configuration, model GrowthModel, ledger domain.Ledger) *domain.ScenarioSummary {
	final := ledger.Final()

	summary := &domain.ScenarioSummary{
		Scenario:            cfg.Scenario,
		FinalPortfolioValue: final.PortfolioValue,
		FinalHoldings:       final.Holdings,
		FinalCashBalance:    final.CashBalance,
		TotalInvested:       final.TotalInvested,
		ROIMultiple:         final.ROIMultiple,
		FirstFailedYear:     domain.YearNone,
		SolvencyReachedYear: domain.YearNone,
		Ledger:              ledger,
	}

	if cfg.Budget != nil {
		summary.AnnualSavings = cfg.Budget.AnnualSavings()
		summary.SavingsRate = cfg.Budget.SavingsRate()
	}

	if cfg.Scenario == domain.ScenarioDrawdown {
		summary.FirstFailedYear = ledger.FirstFailedYear()
		summary.SolvencyReachedYear = SolvencyReachedYear(ledger)
	}

	switch m := model.(type) {
	case *PowerLawModel:
		summary.ScenarioBand = SDLabel(m.ScenarioSD())
	case *AnchoredPowerLawModel:
		summary.ScenarioBand = SDLabel(m.ImpliedSD())
	}

	return summary
}

// SolvencyReachedYear returns the first projected year whose portfolio value
// covers the solvency target while the scenario is still Sustainable, or
// YearNone. The marker fires at most once: scanning ascending years and
// stopping at the first Failed row makes re-firing impossible.
func SolvencyReachedYear(ledger domain.Ledger) int {
	for _, row := range ledger {
		if row.Status != domain.StatusSustainable {
			break
		}
		if row.Year == 0 {
			continue
		}
		if row.PortfolioValue.GreaterThanOrEqual(row.SolvencyTarget) {
			return row.Year
		}
	}
	return domain.YearNone
}
