package cashflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	t.Run("accepts YYYY-MM", func(t *testing.T) {
		m, err := ParseMonth("2026-02")
		require.NoError(t, err)
		assert.Equal(t, 2026, m.Year)
		assert.Equal(t, time.Month(2), m.Month)
		assert.Equal(t, "2026-02", m.String())
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, token := range []string{"", "2026", "2026-13", "2026-00", "2026-2", "02-2026", "2026/02"} {
			_, err := ParseMonth(token)
			assert.Error(t, err, "token %q", token)
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("accepts YYYY-MM-DD", func(t *testing.T) {
		d, err := ParseDate("2026-02-28")
		require.NoError(t, err)
		assert.Equal(t, "2026-02-28", d)
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		for _, date := range []string{"2026-02-30", "2026-00-01", "not-a-date", "2026-2-1"} {
			_, err := ParseDate(date)
			assert.Error(t, err, "date %q", date)
		}
	})
}

func TestMonthDays(t *testing.T) {
	cases := map[string]int{
		"2026-01": 31,
		"2026-02": 28,
		"2024-02": 29,
		"2000-02": 29,
		"1900-02": 28,
		"2026-04": 30,
		"2026-12": 31,
	}
	for token, want := range cases {
		m, err := ParseMonth(token)
		require.NoError(t, err)
		assert.Equal(t, want, m.Days(), "month %s", token)
	}
}

func TestMonthBounds(t *testing.T) {
	m, err := ParseMonth("2024-02")
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01", m.Start())
	assert.Equal(t, "2024-02-29", m.End())
	assert.Equal(t, "2024-02-05", m.DateOf(5))
}
