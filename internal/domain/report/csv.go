package report

import (
	"fmt"

	"github.com/gocarina/gocsv"
)

// csvRow is the export shape; headers are the Vietnamese report
// columns the mobile app renders.
type csvRow struct {
	Date           string `csv:"Ngày"`
	Revenue        string `csv:"Doanh thu"`
	COGS           string `csv:"Giá vốn (COGS)"`
	OperatingCosts string `csv:"Chi phí vận hành"`
	IncurredFees   string `csv:"Chi phí phát sinh"`
	NetProfit      string `csv:"Lợi nhuận ròng"`
	Margin         string `csv:"Tỷ suất (%)"`
}

// ExportCSV renders stats as UTF-8 CSV: dates as dd/MM/yyyy, amounts
// as plain decimals without thousands separators, and the margin with
// two decimals plus a trailing % in the cell itself.
func ExportCSV(stats []DailyStats) ([]byte, error) {
	rows := make([]csvRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, csvRow{
			Date:           s.Date.Format("02/01/2006"),
			Revenue:        s.Revenue.String(),
			COGS:           s.COGS.String(),
			OperatingCosts: s.OperatingCosts.String(),
			IncurredFees:   s.IncurredFees.String(),
			NetProfit:      s.NetProfit().String(),
			Margin:         s.ProfitMargin().StringFixed(2) + "%",
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report CSV: %w", err)
	}
	return out, nil
}
