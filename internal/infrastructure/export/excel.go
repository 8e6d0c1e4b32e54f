package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/cashflow"
)

const sheetName = "Cash Flow"

// MonthWorkbook renders a projected month as an xlsx workbook: a merged
// title row, a header row, and one row per day with its payment details.
func MonthWorkbook(month cashflow.Month, entries []cashflow.DayEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.MergeCell(sheetName, "A1", "H1"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, "A1", fmt.Sprintf("Cash Flow Report - %s", month)); err != nil {
		return nil, err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 16, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "H1", titleStyle); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Day", "Sales", "Opening", "Payments", "Ending", "Status", "Details"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A3", "H3", headerStyle); err != nil {
		return nil, err
	}

	for i, entry := range entries {
		row := i + 4
		values := []interface{}{
			entry.Date,
			entry.Day,
			entry.Sales.InexactFloat64(),
			entry.OpeningCash.InexactFloat64(),
			entry.TotalPayments.InexactFloat64(),
			entry.EndingCash.InexactFloat64(),
			string(entry.Status),
			paymentDetails(entry.Payments),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "H", 15); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

// paymentDetails joins a day's payments into one readable cell
func paymentDetails(payments []cashflow.Payment) string {
	if len(payments) == 0 {
		return ""
	}
	lines := make([]string, 0, len(payments))
	for _, p := range payments {
		line := fmt.Sprintf("%s: %s", p.RecipientName, p.Amount)
		if p.Description != "" {
			line += " - " + p.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
