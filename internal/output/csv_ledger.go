package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/wpgo/wealth-projector/internal/domain"
)

// CSVLedgerExporter writes one CSV row per projected year.
type CSVLedgerExporter struct{}

func (e CSVLedgerExporter) Name() string { return "csv" }

var hundred = decimal.NewFromInt(100)

func (e CSVLedgerExporter) Format(summary *domain.ScenarioSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"year", "price", "holdings", "cash_balance", "portfolio_value",
		"net_need", "gross_sold", "tax_paid", "units_sold",
		"units_bought", "total_invested", "roi_multiple",
		"solvency_target", "status",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range summary.Ledger {
		record := []string{
			strconv.Itoa(row.Year),
			row.Price.StringFixed(2),
			row.Holdings.StringFixed(8),
			row.CashBalance.StringFixed(2),
			row.PortfolioValue.StringFixed(2),
			row.NetNeed.StringFixed(2),
			row.GrossSold.StringFixed(2),
			row.TaxPaid.StringFixed(2),
			row.UnitsSold.StringFixed(8),
			row.UnitsBought.StringFixed(8),
			row.TotalInvested.StringFixed(2),
			row.ROIMultiple.StringFixed(4),
			row.SolvencyTarget.StringFixed(2),
			string(row.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
