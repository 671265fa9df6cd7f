package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wpgo/wealth-projector/internal/domain"
)

// CategoryOneOff is the breakdown key lump-sum events are reported under.
const CategoryOneOff = "one_off_events"

// CashFlowEvaluator computes the net cash need for a projection year from the
// drawdown plan's baseline costs and sparse lump-sum events. All amounts are
// indexed by full inflation compounding from year 0, regardless of when a
// category activates.
type CashFlowEvaluator struct {
	costs     []domain.CostCategory
	lumpSums  map[int]decimal.Decimal
	inflation decimal.Decimal
}

// NewCashFlowEvaluator derives an evaluator from the plan. Lump sums sharing a
// year are summed; a cost with no start year activates in year 1.
func NewCashFlowEvaluator(plan *domain.DrawdownPlan, inflation decimal.Decimal) *CashFlowEvaluator {
	costs := make([]domain.CostCategory, len(plan.Costs))
	copy(costs, plan.Costs)
	for i := range costs {
		if costs[i].StartYear < 1 {
			costs[i].StartYear = 1
		}
	}

	lumpSums := make(map[int]decimal.Decimal, len(plan.LumpSums))
	for _, ev := range plan.LumpSums {
		lumpSums[ev.Year] = lumpSums[ev.Year].Add(ev.Amount)
	}

	return &CashFlowEvaluator{
		costs:     costs,
		lumpSums:  lumpSums,
		inflation: inflation,
	}
}

// IndexFactor returns (1 + inflation)^year.
func (cf *CashFlowEvaluator) IndexFactor(year int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(cf.inflation).Pow(decimal.NewFromInt(int64(year)))
}

// NetNeed returns the total indexed cash need for the year and its breakdown
// by category. Inactive categories are absent from the breakdown; an active
// category with a zero baseline appears with value 0.
func (cf *CashFlowEvaluator) NetNeed(year int) (decimal.Decimal, map[string]decimal.Decimal) {
	idx := cf.IndexFactor(year)
	total := decimal.Zero
	breakdown := make(map[string]decimal.Decimal, len(cf.costs)+1)

	for _, cost := range cf.costs {
		if year < cost.StartYear {
			continue
		}
		indexed := cost.Annual.Mul(idx)
		breakdown[cost.Name] = indexed
		total = total.Add(indexed)
	}

	if nominal, ok := cf.lumpSums[year]; ok {
		indexed := nominal.Mul(idx)
		breakdown[CategoryOneOff] = indexed
		total = total.Add(indexed)
	}

	return total, breakdown
}

// BaselineNeed is the un-indexed annual total of the costs active from year 1.
// It seeds the year-0 solvency target before any spending occurs.
func (cf *CashFlowEvaluator) BaselineNeed() decimal.Decimal {
	total := decimal.Zero
	for _, cost := range cf.costs {
		if cost.StartYear <= 1 {
			total = total.Add(cost.Annual)
		}
	}
	return total
}
