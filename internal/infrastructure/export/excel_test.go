package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/cashflow"
)

func TestMonthWorkbook(t *testing.T) {
	month, err := cashflow.ParseMonth("2026-03")
	require.NoError(t, err)

	settings := cashflow.NewDefaultSettings()
	entries := cashflow.ProjectMonth(month, settings, nil)

	buf, err := MonthWorkbook(month, entries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Cash Flow Report - 2026-03", title)

	header, err := f.GetCellValue(sheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	// One row per day, starting at row 4.
	firstDate, err := f.GetCellValue(sheetName, "A4")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", firstDate)

	lastDate, err := f.GetCellValue(sheetName, "A34")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-31", lastDate)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 34)
}
