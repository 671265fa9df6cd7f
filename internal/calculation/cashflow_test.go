package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wpgo/wealth-projector/internal/domain"
)

func testPlan() *domain.DrawdownPlan {
	return &domain.DrawdownPlan{
		Costs: []domain.CostCategory{
			{Name: "parents_spend", Annual: decimal.NewFromInt(120000), StartYear: 1},
			{Name: "kids_allowance", Annual: decimal.NewFromInt(60000), StartYear: 15},
		},
		LumpSums: []domain.LumpSumEvent{
			{Year: 10, Amount: decimal.NewFromInt(200000)},
		},
		SafetyMultiple: decimal.NewFromInt(25),
	}
}

func TestNetNeed_ActivationYears(t *testing.T) {
	cf := NewCashFlowEvaluator(testPlan(), decimal.Zero)

	total, breakdown := cf.NetNeed(1)
	if !total.Equal(decimal.NewFromInt(120000)) {
		t.Fatalf("year 1 need: expected 120000, got %s", total.String())
	}
	if _, ok := breakdown["kids_allowance"]; ok {
		t.Fatalf("kids_allowance must be absent before its start year")
	}

	total, breakdown = cf.NetNeed(15)
	if !total.Equal(decimal.NewFromInt(180000)) {
		t.Fatalf("year 15 need: expected 180000, got %s", total.String())
	}
	if !breakdown["kids_allowance"].Equal(decimal.NewFromInt(60000)) {
		t.Fatalf("kids_allowance: got %s", breakdown["kids_allowance"].String())
	}
}

func TestNetNeed_InflationCompoundsFromYearZero(t *testing.T) {
	// A category starting in year 15 is still indexed by 15 years of
	// inflation, not by time since activation.
	cf := NewCashFlowEvaluator(testPlan(), decimal.NewFromFloat(0.03))

	idx := decimal.NewFromFloat(1.03).Pow(decimal.NewFromInt(15))
	_, breakdown := cf.NetNeed(15)

	want := decimal.NewFromInt(60000).Mul(idx)
	if !breakdown["kids_allowance"].Equal(want) {
		t.Fatalf("expected %s, got %s", want.String(), breakdown["kids_allowance"].String())
	}
}

func TestNetNeed_LumpSums(t *testing.T) {
	inflation := decimal.NewFromFloat(0.03)
	cf := NewCashFlowEvaluator(testPlan(), inflation)

	// No entry for the year means no contribution at all.
	_, breakdown := cf.NetNeed(9)
	if _, ok := breakdown[CategoryOneOff]; ok {
		t.Fatalf("no lump sum expected in year 9")
	}

	// Present entries are inflation-indexed like everything else.
	_, breakdown = cf.NetNeed(10)
	want := decimal.NewFromInt(200000).Mul(decimal.NewFromInt(1).Add(inflation).Pow(decimal.NewFromInt(10)))
	if !breakdown[CategoryOneOff].Equal(want) {
		t.Fatalf("expected %s, got %s", want.String(), breakdown[CategoryOneOff].String())
	}
}

func TestNetNeed_LumpSumsSameYearAggregate(t *testing.T) {
	plan := &domain.DrawdownPlan{
		LumpSums: []domain.LumpSumEvent{
			{Year: 3, Amount: decimal.NewFromInt(50000)},
			{Year: 3, Amount: decimal.NewFromInt(25000)},
		},
		SafetyMultiple: decimal.NewFromInt(25),
	}
	cf := NewCashFlowEvaluator(plan, decimal.Zero)

	total, _ := cf.NetNeed(3)
	assert.True(t, total.Equal(decimal.NewFromInt(75000)), "got %s", total.String())
}

func TestNetNeed_ActiveZeroVersusInactive(t *testing.T) {
	plan := &domain.DrawdownPlan{
		Costs: []domain.CostCategory{
			{Name: "buffer", Annual: decimal.Zero, StartYear: 1},
			{Name: "later", Annual: decimal.NewFromInt(1000), StartYear: 5},
		},
		SafetyMultiple: decimal.NewFromInt(10),
	}
	cf := NewCashFlowEvaluator(plan, decimal.Zero)

	_, breakdown := cf.NetNeed(2)
	// Active-but-zero is reported; inactive is absent.
	got, ok := breakdown["buffer"]
	assert.True(t, ok, "active zero-cost category must appear in the breakdown")
	assert.True(t, got.IsZero())
	_, ok = breakdown["later"]
	assert.False(t, ok)
}

func TestBaselineNeed(t *testing.T) {
	cf := NewCashFlowEvaluator(testPlan(), decimal.NewFromFloat(0.03))
	// Only the immediately active category counts, un-indexed.
	assert.True(t, cf.BaselineNeed().Equal(decimal.NewFromInt(120000)))
}

func TestNewCashFlowEvaluator_DefaultsStartYear(t *testing.T) {
	plan := &domain.DrawdownPlan{
		Costs:          []domain.CostCategory{{Name: "living", Annual: decimal.NewFromInt(1000)}},
		SafetyMultiple: decimal.NewFromInt(10),
	}
	cf := NewCashFlowEvaluator(plan, decimal.Zero)

	total, _ := cf.NetNeed(1)
	assert.True(t, total.Equal(decimal.NewFromInt(1000)))
}
