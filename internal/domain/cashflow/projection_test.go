package cashflow

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *Settings {
	s := NewDefaultSettings()
	s.DefaultDailySales = decimal.NewFromInt(6000)
	s.SafetyThreshold = decimal.NewFromInt(2000)
	return s
}

func mustMonth(t *testing.T, token string) Month {
	m, err := ParseMonth(token)
	require.NoError(t, err)
	return m
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestProjectMonth_Completeness(t *testing.T) {
	settings := testSettings()

	t.Run("produces one entry per calendar day in ascending order", func(t *testing.T) {
		cases := []struct {
			token string
			days  int
		}{
			{"2026-01", 31},
			{"2026-02", 28},
			{"2024-02", 29},
			{"2026-04", 30},
		}
		for _, tc := range cases {
			month := mustMonth(t, tc.token)
			entries := ProjectMonth(month, settings, nil)
			require.Len(t, entries, tc.days, "month %s", tc.token)
			for i, e := range entries {
				assert.Equal(t, month.DateOf(i+1), e.Date)
			}
		}
	})

	t.Run("weekday names match the calendar", func(t *testing.T) {
		month := mustMonth(t, "2026-06")
		entries := ProjectMonth(month, settings, nil)
		// 2026-06-01 is a Monday.
		assert.Equal(t, "Monday", entries[0].Day)
		assert.Equal(t, "Sunday", entries[6].Day)
	})
}

func TestProjectMonth_DefaultBootstrap(t *testing.T) {
	settings := testSettings()
	month := mustMonth(t, "2026-03")

	entries := ProjectMonth(month, settings, nil)

	t.Run("day one opens at zero", func(t *testing.T) {
		assert.True(t, entries[0].OpeningCash.IsZero())
		assert.True(t, entries[0].EndingCash.Equal(dec(6000)))
	})

	t.Run("every day uses default sales and carries the ending forward", func(t *testing.T) {
		for i, e := range entries {
			assert.True(t, e.Sales.Equal(settings.DefaultDailySales), "day %d", i+1)
			assert.True(t, e.UseDefaultSales, "day %d", i+1)
			assert.True(t, e.TotalPayments.IsZero(), "day %d", i+1)
			if i > 0 {
				assert.True(t, e.OpeningCash.Equal(entries[i-1].EndingCash), "day %d", i+1)
			}
		}
	})

	t.Run("status derives from the threshold", func(t *testing.T) {
		// 6000 >= 2000 from the first day onward.
		for i, e := range entries {
			assert.Equal(t, DayStatusSafe, e.Status, "day %d", i+1)
		}
	})
}

func TestProjectMonth_PinInvariant(t *testing.T) {
	settings := testSettings()
	month := mustMonth(t, "2026-03")

	pinned := dec(500)
	records := []DayRecord{
		{Date: month.DateOf(10), OpeningCash: &pinned, IsOpeningCashManual: true, UseDefaultSales: true, DeductSameDay: true},
	}

	entries := ProjectMonth(month, settings, records)

	t.Run("carry-forward never overwrites a manual pin", func(t *testing.T) {
		assert.True(t, entries[9].OpeningCash.Equal(pinned))
		assert.True(t, entries[9].IsOpeningCashManual)
		// Day 9 ended far above 500, which must not leak into day 10.
		assert.True(t, entries[8].EndingCash.GreaterThan(pinned))
	})

	t.Run("carry resumes from the pinned day's ending", func(t *testing.T) {
		assert.True(t, entries[10].OpeningCash.Equal(entries[9].EndingCash))
	})
}

func TestProjectMonth_SameDayPolicy(t *testing.T) {
	settings := testSettings()
	month := mustMonth(t, "2026-03")

	opening := dec(1000)
	day1 := DayRecord{
		Date:                month.DateOf(1),
		OpeningCash:         &opening,
		IsOpeningCashManual: true,
		UseDefaultSales:     true,
		DeductSameDay:       true,
		Payments: []Payment{
			{Date: month.DateOf(1), Amount: dec(2000), RecipientName: "vendor"},
		},
	}

	entries := ProjectMonth(month, settings, []DayRecord{day1})

	assert.True(t, entries[0].EndingCash.Equal(dec(5000)), "1000 + 6000 - 2000")
	assert.True(t, entries[0].TomorrowPayments.IsZero())
}

func TestProjectMonth_ShiftPolicy(t *testing.T) {
	settings := testSettings()
	month := mustMonth(t, "2026-03")

	t.Run("shifted payments reduce the previous day", func(t *testing.T) {
		day5 := DayRecord{
			Date:            month.DateOf(5),
			UseDefaultSales: true,
			DeductSameDay:   false,
			Payments: []Payment{
				{Date: month.DateOf(5), Amount: dec(1500), RecipientName: "vendor"},
			},
		}
		entries := ProjectMonth(month, settings, []DayRecord{day5})
		base := ProjectMonth(month, settings, nil)

		// Day 4 loses the 1500 and records it as tomorrow's payments.
		assert.True(t, entries[3].EndingCash.Equal(base[3].EndingCash.Sub(dec(1500))))
		assert.True(t, entries[3].TomorrowPayments.Equal(dec(1500)))
		// Day 5's own ending excludes its payments.
		assert.True(t, entries[4].EndingCash.Equal(entries[4].OpeningCash.Add(dec(6000))))
	})

	t.Run("first-day shift has nowhere to go and is dropped", func(t *testing.T) {
		day1 := DayRecord{
			Date:            month.DateOf(1),
			UseDefaultSales: true,
			DeductSameDay:   false,
			Payments: []Payment{
				{Date: month.DateOf(1), Amount: dec(1500), RecipientName: "vendor"},
			},
		}
		entries := ProjectMonth(month, settings, []DayRecord{day1})

		// Not subtracted anywhere: day 1 ends at 0 + 6000.
		assert.True(t, entries[0].EndingCash.Equal(dec(6000)))
		assert.True(t, entries[0].TomorrowPayments.IsZero())
		for _, e := range entries {
			assert.NotEqual(t, DayStatusDeficit, e.Status)
		}
	})
}

func TestProjectMonth_EndToEndScenario(t *testing.T) {
	settings := testSettings()
	month := mustMonth(t, "2026-03")

	opening := dec(5000)
	day1 := DayRecord{
		Date:                month.DateOf(1),
		OpeningCash:         &opening,
		IsOpeningCashManual: true,
		UseDefaultSales:     true,
		DeductSameDay:       true,
		Payments: []Payment{
			{Date: month.DateOf(1), Amount: dec(1000), RecipientName: "vendor"},
		},
	}
	day2 := DayRecord{
		Date:            month.DateOf(2),
		UseDefaultSales: true,
		DeductSameDay:   false,
		Payments: []Payment{
			{Date: month.DateOf(2), Amount: dec(9000), RecipientName: "vendor"},
		},
	}

	entries := ProjectMonth(month, settings, []DayRecord{day1, day2})

	// Day 1: 5000 + 6000 - 1000 = 10000, then reduced to 1000 by day 2's
	// shifted payment.
	assert.True(t, entries[0].OpeningCash.Equal(dec(5000)))
	assert.True(t, entries[0].TotalPayments.Equal(dec(1000)))
	assert.True(t, entries[0].EndingCash.Equal(dec(1000)))
	assert.True(t, entries[0].TomorrowPayments.Equal(dec(9000)))
	assert.Equal(t, DayStatusWarning, entries[0].Status)

	// Day 2 carried 10000 before the shift adjustment was applied to day 1.
	assert.True(t, entries[1].OpeningCash.Equal(dec(10000)))
	assert.True(t, entries[1].EndingCash.Equal(dec(16000)))
	assert.Equal(t, DayStatusSafe, entries[1].Status)
}

func TestProjectMonth_Idempotence(t *testing.T) {
	settings := testSettings()
	month := mustMonth(t, "2026-03")

	opening := dec(750)
	records := []DayRecord{
		{Date: month.DateOf(2), OpeningCash: &opening, IsOpeningCashManual: true, UseDefaultSales: true, DeductSameDay: true},
		{Date: month.DateOf(3), UseDefaultSales: true, DeductSameDay: false, Payments: []Payment{
			{Date: month.DateOf(3), Amount: dec(300), RecipientName: "vendor"},
		}},
	}

	first := ProjectMonth(month, settings, records)
	second := ProjectMonth(month, settings, records)
	assert.Equal(t, first, second)
}

func TestClassifyStatus(t *testing.T) {
	threshold := dec(2000)

	t.Run("ending equal to threshold is Safe", func(t *testing.T) {
		assert.Equal(t, DayStatusSafe, ClassifyStatus(dec(2000), threshold))
	})

	t.Run("zero ending is Warning unless it meets the threshold", func(t *testing.T) {
		assert.Equal(t, DayStatusWarning, ClassifyStatus(decimal.Zero, threshold))
		assert.Equal(t, DayStatusSafe, ClassifyStatus(decimal.Zero, decimal.Zero))
	})

	t.Run("any negative ending is Deficit", func(t *testing.T) {
		assert.Equal(t, DayStatusDeficit, ClassifyStatus(dec(-0.01), threshold))
	})
}
