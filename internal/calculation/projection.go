package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wpgo/wealth-projector/internal/domain"
)

// CategoryContribution and CategorySavings are the breakdown keys used by the
// accumulation and net-worth update rules.
const (
	CategoryContribution = "contribution"
	CategorySavings      = "savings_contribution"
)

// runAccumulation advances the DCA update rule: each year buys units with the
// annual contribution at the average of the year's opening and closing price,
// which models spreading purchases across the year.
func (e *Engine) runAccumulation(cfg *domain.Configuration, model GrowthModel) domain.Ledger {
	contribution := cfg.Accumulation.AnnualContribution()
	price := model.PriceAt(0)

	// Cash is treated as a lump sum invested on day one.
	holdings := cfg.Holdings
	if cfg.Cash.IsPositive() {
		holdings = holdings.Add(cfg.Cash.Div(price))
	}
	invested := cfg.Holdings.Mul(price).Add(cfg.Cash)

	ledger := make(domain.Ledger, 0, cfg.HorizonYears+1)
	ledger = append(ledger, domain.LedgerRow{
		Year:           0,
		Price:          price,
		Holdings:       holdings,
		PortfolioValue: holdings.Mul(price),
		TotalInvested:  invested,
		ROIMultiple:    roiMultiple(holdings.Mul(price), invested),
		Status:         domain.StatusSustainable,
	})

	for year := 1; year <= cfg.HorizonYears; year++ {
		prevPrice := model.PriceAt(year - 1)
		price = model.PriceAt(year)

		avgPrice := prevPrice.Add(price).Div(decimal.NewFromInt(2))
		unitsBought := decimal.Zero
		if contribution.IsPositive() {
			unitsBought = contribution.Div(avgPrice)
		}
		holdings = holdings.Add(unitsBought)
		invested = invested.Add(contribution)

		portfolio := holdings.Mul(price)
		ledger = append(ledger, domain.LedgerRow{
			Year:           year,
			Price:          price,
			Holdings:       holdings,
			PortfolioValue: portfolio,
			CashFlows:      map[string]decimal.Decimal{CategoryContribution: contribution},
			UnitsBought:    unitsBought,
			TotalInvested:  invested,
			ROIMultiple:    roiMultiple(portfolio, invested),
			Status:         domain.StatusSustainable,
		})
	}

	return ledger
}

// runNetWorth advances a fixed asset position alongside a cash balance that
// earns interest and receives the budget's inflation-indexed annual savings.
func (e *Engine) runNetWorth(cfg *domain.Configuration, model GrowthModel) domain.Ledger {
	savings := cfg.Budget.AnnualSavings()
	interestFactor := decimal.NewFromInt(1).Add(cfg.Rates.CashInterest)
	inflationFactor := decimal.NewFromInt(1).Add(cfg.Rates.Inflation)

	price := model.PriceAt(0)
	cash := cfg.Cash

	ledger := make(domain.Ledger, 0, cfg.HorizonYears+1)
	ledger = append(ledger, domain.LedgerRow{
		Year:           0,
		Price:          price,
		Holdings:       cfg.Holdings,
		CashBalance:    cash,
		PortfolioValue: cfg.Holdings.Mul(price).Add(cash),
		Status:         domain.StatusSustainable,
	})

	for year := 1; year <= cfg.HorizonYears; year++ {
		price = model.PriceAt(year)

		indexedSavings := savings.Mul(inflationFactor.Pow(decimal.NewFromInt(int64(year))))
		cash = cash.Mul(interestFactor).Add(indexedSavings)

		ledger = append(ledger, domain.LedgerRow{
			Year:           year,
			Price:          price,
			Holdings:       cfg.Holdings,
			CashBalance:    cash,
			PortfolioValue: cfg.Holdings.Mul(price).Add(cash),
			CashFlows:      map[string]decimal.Decimal{CategorySavings: indexedSavings},
			Status:         domain.StatusSustainable,
		})
	}

	return ledger
}

// runDrawdown sells units each year to cover the grossed-up net need.
// Once a required sale would exhaust the holdings, the scenario transitions
// to Failed and stays there; holdings are clamped at zero, never negative.
func (e *Engine) runDrawdown(cfg *domain.Configuration, model GrowthModel) (domain.Ledger, error) {
	evaluator := NewCashFlowEvaluator(cfg.Drawdown, cfg.Rates.Inflation)
	taxCalc := NewTaxCalculator(cfg.Rates.TaxRate)
	safety := cfg.Drawdown.SafetyMultiple

	price := model.PriceAt(0)
	holdings := cfg.Holdings
	status := domain.StatusSustainable

	ledger := make(domain.Ledger, 0, cfg.HorizonYears+1)
	ledger = append(ledger, domain.LedgerRow{
		Year:           0,
		Price:          price,
		Holdings:       holdings,
		PortfolioValue: holdings.Mul(price),
		SolvencyTarget: evaluator.BaselineNeed().Mul(safety),
		Status:         status,
	})

	for year := 1; year <= cfg.HorizonYears; year++ {
		price = model.PriceAt(year)

		need, breakdown := evaluator.NetNeed(year)
		grossUp, err := taxCalc.GrossUp(need)
		if err != nil {
			return nil, err
		}
		unitsSold := decimal.Zero
		if grossUp.Gross.IsPositive() {
			unitsSold = grossUp.Gross.Div(price)
		}

		remaining := holdings.Sub(unitsSold)
		if status == domain.StatusSustainable && unitsSold.IsPositive() && !remaining.IsPositive() {
			status = domain.StatusFailed
			e.Logger.Debugf("drawdown failed in year %d: need %s exceeds holdings %s at price %s",
				year, need.StringFixed(2), holdings.String(), price.StringFixed(2))
		}
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		holdings = remaining

		ledger = append(ledger, domain.LedgerRow{
			Year:           year,
			Price:          price,
			Holdings:       holdings,
			PortfolioValue: holdings.Mul(price),
			CashFlows:      breakdown,
			NetNeed:        need,
			GrossSold:      grossUp.Gross,
			TaxPaid:        grossUp.Tax,
			UnitsSold:      unitsSold,
			SolvencyTarget: need.Mul(safety),
			Status:         status,
		})
	}

	return ledger, nil
}

// roiMultiple guards the degenerate ratio: zero invested means zero ROI,
// not an exception.
func roiMultiple(portfolio, invested decimal.Decimal) decimal.Decimal {
	if !invested.IsPositive() {
		return decimal.Zero
	}
	return portfolio.Div(invested)
}
