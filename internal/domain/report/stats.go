package report

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DailyStats accumulates one calendar day of financial activity.
// Gross/net profit and margin are derived on read and never stored;
// the whole struct is a recomputed view, not persisted state.
type DailyStats struct {
	Date time.Time // local midnight of the bucket day

	Revenue        decimal.Decimal
	COGS           decimal.Decimal
	OperatingCosts decimal.Decimal
	IncurredFees   decimal.Decimal
}

// GrossProfit is revenue − COGS.
func (s DailyStats) GrossProfit() decimal.Decimal {
	return s.Revenue.Sub(s.COGS)
}

// NetProfit is gross profit minus operating costs and incurred fees.
func (s DailyStats) NetProfit() decimal.Decimal {
	return s.GrossProfit().Sub(s.OperatingCosts.Add(s.IncurredFees))
}

// ProfitMargin is netProfit / revenue × 100, or 0 for a zero-revenue
// day.
func (s DailyStats) ProfitMargin() decimal.Decimal {
	if s.Revenue.IsZero() {
		return decimal.Zero
	}
	return s.NetProfit().Div(s.Revenue).Mul(hundred)
}
