package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GrossUpResult is the pre-tax sale required to net a target amount, and the
// tax paid on it.
type GrossUpResult struct {
	Gross decimal.Decimal
	Tax   decimal.Decimal
}

// TaxCalculator grosses up net cash needs for a flat sell-side tax rate.
type TaxCalculator struct {
	Rate decimal.Decimal
}

// NewTaxCalculator creates a calculator for the given flat rate.
func NewTaxCalculator(rate decimal.Decimal) *TaxCalculator {
	return &TaxCalculator{Rate: rate}
}

// GrossUp computes gross = net / (1 - rate) and tax = gross - net. A rate at
// or above 100% is a configuration error, never a silent fallback.
func (tc *TaxCalculator) GrossUp(net decimal.Decimal) (GrossUpResult, error) {
	one := decimal.NewFromInt(1)
	if tc.Rate.GreaterThanOrEqual(one) {
		return GrossUpResult{}, fmt.Errorf("tax rate must be below 1, got %s", tc.Rate.String())
	}
	if net.IsZero() {
		return GrossUpResult{Gross: decimal.Zero, Tax: decimal.Zero}, nil
	}
	gross := net.Div(one.Sub(tc.Rate))
	return GrossUpResult{Gross: gross, Tax: gross.Sub(net)}, nil
}
