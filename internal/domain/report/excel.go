package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var excelHeaders = []string{
	"Ngày",
	"Doanh thu",
	"Giá vốn (COGS)",
	"Chi phí vận hành",
	"Chi phí phát sinh",
	"Lợi nhuận ròng",
	"Tỷ suất (%)",
}

// ExportExcel renders the same report shape as ExportCSV into an xlsx
// workbook, with numeric columns as numbers so spreadsheets can sum
// them.
func ExportExcel(stats []DailyStats) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Báo cáo"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, s := range stats {
		values := []any{
			s.Date.Format("02/01/2006"),
			s.Revenue.InexactFloat64(),
			s.COGS.InexactFloat64(),
			s.OperatingCosts.InexactFloat64(),
			s.IncurredFees.InexactFloat64(),
			s.NetProfit().InexactFloat64(),
			s.ProfitMargin().InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write report workbook: %w", err)
	}
	return buf.Bytes(), nil
}
