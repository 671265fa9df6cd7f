package calculation

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wpgo/wealth-projector/internal/domain"
	"github.com/wpgo/wealth-projector/pkg/dateutil"
)

// PowerLawEpoch is the reference date day counts are measured from. All
// projected dates must fall strictly after it.
var PowerLawEpoch = time.Date(2009, time.January, 3, 0, 0, 0, 0, time.UTC)

const (
	// PowerLawCoefficient and PowerLawExponent define the median trend curve
	// median(days) = coefficient * days^exponent (in USD, before FX).
	PowerLawCoefficient = 1e-17
	PowerLawExponent    = 5.82

	// PowerLawLogSD is the fixed standard deviation of the price around the
	// median curve, in log10 space.
	PowerLawLogSD = 0.35

	// DaysPerYear is the projection step in days.
	DaysPerYear = 365
)

// DefaultCycleGrowth is substituted for any year absent from the manual cycle
// table. This is a documented policy, not an error.
var DefaultCycleGrowth = decimal.NewFromFloat(0.05)

// GrowthModel maps a projection year to an asset price. Implementations are
// deterministic and callable in any order.
type GrowthModel interface {
	PriceAt(year int) decimal.Decimal
}

// NewGrowthModel builds the model selected by the configuration's growth
// union. The accumulation and net-worth scenarios use the anchored power-law
// variant; drawdown uses the explicit scenario-SD variant.
func NewGrowthModel(cfg *domain.Configuration) (GrowthModel, error) {
	switch cfg.GrowthModel.Kind {
	case domain.GrowthManualCycles:
		return NewManualCycleModel(cfg.StartingPrice, cfg.GrowthModel.ManualCycles), nil

	case domain.GrowthPowerLaw, domain.GrowthAnchoredPowerLaw:
		startDays := dateutil.DaysBetween(PowerLawEpoch, cfg.AsOfDate)
		if startDays <= 0 {
			return nil, fmt.Errorf("as_of_date %s must be after the reference epoch %s",
				cfg.AsOfDate.Format("2006-01-02"), PowerLawEpoch.Format("2006-01-02"))
		}
		fxRate := cfg.GrowthModel.FXRate
		if !fxRate.IsPositive() {
			return nil, fmt.Errorf("power-law fx_rate must be positive, got %s", fxRate.String())
		}
		if cfg.GrowthModel.Kind == domain.GrowthAnchoredPowerLaw {
			return NewAnchoredPowerLawModel(cfg.StartingPrice, startDays, fxRate), nil
		}
		return NewPowerLawModel(startDays, fxRate, cfg.GrowthModel.ScenarioSD), nil
	}

	return nil, fmt.Errorf("growth model kind %q is not one of %q, %q, %q",
		cfg.GrowthModel.Kind, domain.GrowthManualCycles, domain.GrowthPowerLaw, domain.GrowthAnchoredPowerLaw)
}

// ManualCycleModel applies a per-year growth table as a cumulative product of
// (1 + rate) factors, so prices are randomly accessible despite the recurrence.
type ManualCycleModel struct {
	rates  map[int]decimal.Decimal
	prices []decimal.Decimal
}

// NewManualCycleModel creates a manual-cycle model starting at the given
// year-0 price. Duplicate years in the table keep the last entry.
func NewManualCycleModel(startingPrice decimal.Decimal, cycles []domain.ManualCycle) *ManualCycleModel {
	rates := make(map[int]decimal.Decimal, len(cycles))
	for _, c := range cycles {
		rates[c.Year] = c.GrowthPct
	}
	return &ManualCycleModel{
		rates:  rates,
		prices: []decimal.Decimal{startingPrice},
	}
}

// Rate returns the table's growth rate for the year, or DefaultCycleGrowth
// when the year has no explicit entry.
func (m *ManualCycleModel) Rate(year int) decimal.Decimal {
	if r, ok := m.rates[year]; ok {
		return r
	}
	return DefaultCycleGrowth
}

// PriceAt returns the price after applying growth for years 1..year.
func (m *ManualCycleModel) PriceAt(year int) decimal.Decimal {
	if year < 0 {
		year = 0
	}
	one := decimal.NewFromInt(1)
	for len(m.prices) <= year {
		y := len(m.prices)
		prev := m.prices[y-1]
		m.prices = append(m.prices, prev.Mul(one.Add(m.Rate(y))))
	}
	return m.prices[year]
}

// PowerLawModel projects along a fixed deviation band of the median curve,
// chosen as a scenario offset in standard deviations.
type PowerLawModel struct {
	startDays  int
	fxRate     decimal.Decimal
	scenarioSD decimal.Decimal
	multiplier decimal.Decimal
}

// NewPowerLawModel creates the explicit-SD power-law model. startDays is the
// day count from the reference epoch to the as-of date and must be positive.
func NewPowerLawModel(startDays int, fxRate, scenarioSD decimal.Decimal) *PowerLawModel {
	return &PowerLawModel{
		startDays:  startDays,
		fxRate:     fxRate,
		scenarioSD: scenarioSD,
		multiplier: SDMultiplier(scenarioSD),
	}
}

// ScenarioSD returns the configured deviation offset.
func (p *PowerLawModel) ScenarioSD() decimal.Decimal { return p.scenarioSD }

func (p *PowerLawModel) PriceAt(year int) decimal.Decimal {
	days := p.startDays + year*DaysPerYear
	return MedianPrice(days, p.fxRate).Mul(p.multiplier)
}

// AnchoredPowerLawModel preserves the as-of price's deviation from the median
// curve instead of resetting to a chosen band: the multiplier is the ratio of
// the starting price to today's median.
type AnchoredPowerLawModel struct {
	startingPrice decimal.Decimal
	startDays     int
	fxRate        decimal.Decimal
	anchorRatio   decimal.Decimal
}

// NewAnchoredPowerLawModel creates the anchored variant. PriceAt(0) returns
// the starting price exactly.
func NewAnchoredPowerLawModel(startingPrice decimal.Decimal, startDays int, fxRate decimal.Decimal) *AnchoredPowerLawModel {
	return &AnchoredPowerLawModel{
		startingPrice: startingPrice,
		startDays:     startDays,
		fxRate:        fxRate,
		anchorRatio:   startingPrice.Div(MedianPrice(startDays, fxRate)),
	}
}

// AnchorRatio returns the implied premium over the median curve.
func (a *AnchoredPowerLawModel) AnchorRatio() decimal.Decimal { return a.anchorRatio }

// ImpliedSD reports the deviation band the anchored starting price sits on.
func (a *AnchoredPowerLawModel) ImpliedSD() decimal.Decimal {
	return PriceToSD(a.startingPrice, MedianPrice(a.startDays, a.fxRate))
}

func (a *AnchoredPowerLawModel) PriceAt(year int) decimal.Decimal {
	if year <= 0 {
		return a.startingPrice
	}
	days := a.startDays + year*DaysPerYear
	return MedianPrice(days, a.fxRate).Mul(a.anchorRatio)
}

// MedianPrice evaluates the median power-law curve at a day offset, converted
// through the FX rate. The fractional exponent forces a float64 round trip;
// callers stay in decimal.
func MedianPrice(days int, fxRate decimal.Decimal) decimal.Decimal {
	fx, _ := fxRate.Float64()
	raw := PowerLawCoefficient * math.Pow(float64(days), PowerLawExponent) / fx
	return decimal.NewFromFloat(raw)
}

// SDMultiplier converts a deviation offset to a price multiplier:
// 10^(sd * PowerLawLogSD).
func SDMultiplier(sd decimal.Decimal) decimal.Decimal {
	f, _ := sd.Float64()
	return decimal.NewFromFloat(math.Pow(10, f*PowerLawLogSD))
}

// PriceToSD reports how many deviations a price sits above or below the
// median, zero when either input is not positive.
func PriceToSD(price, median decimal.Decimal) decimal.Decimal {
	if !price.IsPositive() || !median.IsPositive() {
		return decimal.Zero
	}
	ratio, _ := price.Div(median).Float64()
	return decimal.NewFromFloat(math.Log10(ratio) / PowerLawLogSD)
}

// SDLabel names the deviation band a scenario projects along.
func SDLabel(sd decimal.Decimal) string {
	f, _ := sd.Float64()
	switch {
	case f <= -1.5:
		return "Very Conservative"
	case f <= -0.5:
		return "Conservative"
	case f <= 0.5:
		return "Median"
	case f <= 1.5:
		return "Optimistic"
	default:
		return "Very Optimistic"
	}
}
