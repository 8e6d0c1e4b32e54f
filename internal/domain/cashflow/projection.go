package cashflow

import (
	"github.com/shopspring/decimal"
)

// DayStatus classifies a day's ending balance against the safety threshold.
type DayStatus string

const (
	DayStatusSafe    DayStatus = "Safe"
	DayStatusWarning DayStatus = "Warning"
	DayStatusDeficit DayStatus = "Deficit"
)

// ClassifyStatus derives the status for an ending balance: at or above the
// threshold is Safe, non-negative below it is Warning, negative is Deficit.
func ClassifyStatus(endingCash, safetyThreshold decimal.Decimal) DayStatus {
	switch {
	case endingCash.GreaterThanOrEqual(safetyThreshold):
		return DayStatusSafe
	case endingCash.GreaterThanOrEqual(decimal.Zero):
		return DayStatusWarning
	default:
		return DayStatusDeficit
	}
}

// DayEntry is a fully resolved projection row for one calendar date. It is
// derived on every read and never persisted.
type DayEntry struct {
	Date                string          `json:"date"`
	Day                 string          `json:"day"`
	Sales               decimal.Decimal `json:"sales"`
	OpeningCash         decimal.Decimal `json:"opening_cash"`
	EndingCash          decimal.Decimal `json:"ending_cash"`
	TomorrowPayments    decimal.Decimal `json:"tomorrow_payments"`
	Payments            []Payment       `json:"payments"`
	TotalPayments       decimal.Decimal `json:"total_payments"`
	Status              DayStatus       `json:"status"`
	DeductSameDay       bool            `json:"deduct_same_day"`
	IsOpeningCashManual bool            `json:"is_opening_cash_manual"`
	UseDefaultSales     bool            `json:"use_default_sales"`
}

// resolveSales picks the day's sales figure: a manual override wins, otherwise
// the settings default applies. An absent record always means the default.
func resolveSales(record *DayRecord, settings *Settings) decimal.Decimal {
	if record != nil && !record.UseDefaultSales {
		return record.Sales
	}
	return settings.DefaultDailySales
}

// resolveOpeningCash picks the day's opening balance before any carry-forward:
// a manual pin is authoritative, a stored value is used as-is, and everything
// else bootstraps to zero. Carry-forward from the previous day's ending is
// applied during propagation, never here.
func resolveOpeningCash(record *DayRecord) decimal.Decimal {
	if record == nil {
		return decimal.Zero
	}
	if record.IsOpeningCashManual && record.OpeningCash != nil {
		return *record.OpeningCash
	}
	if record.OpeningCash != nil {
		return *record.OpeningCash
	}
	return decimal.Zero
}

// resolveDeductSameDay picks the day's payment policy; days without a record
// deduct payments the same day.
func resolveDeductSameDay(record *DayRecord) bool {
	if record == nil {
		return true
	}
	return record.DeductSameDay
}

// ProjectMonth reconstructs the full day-by-day ledger for a month from the
// sparse persisted records. It is a pure function: settings and records are
// passed in explicitly and nothing is written back.
//
// The reconstruction needs two passes because the recurrence looks both ways:
// a day's ending balance feeds the next day's opening (carry-forward), while a
// day running the shift policy pushes its payments back onto the previous
// day's already-final ending. Entries are indexed by day-of-month so the carry
// and shift adjustments stay position-addressable.
func ProjectMonth(month Month, settings *Settings, records []DayRecord) []DayEntry {
	byDate := make(map[string]*DayRecord, len(records))
	for i := range records {
		byDate[records[i].Date] = &records[i]
	}

	days := month.Days()
	entries := make([]DayEntry, days)

	// Pass 1: materialize one provisional entry per calendar day. Ending
	// balances and tomorrow-payments stay zero until propagation.
	for d := 1; d <= days; d++ {
		record := byDate[month.DateOf(d)]

		payments := []Payment{}
		totalPayments := decimal.Zero
		if record != nil {
			payments = record.Payments
			totalPayments = record.TotalPayments()
		}

		isManual := record != nil && record.IsOpeningCashManual

		entries[d-1] = DayEntry{
			Date:                month.DateOf(d),
			Day:                 month.WeekdayName(d),
			Sales:               resolveSales(record, settings),
			OpeningCash:         resolveOpeningCash(record),
			EndingCash:          decimal.Zero,
			TomorrowPayments:    decimal.Zero,
			Payments:            payments,
			TotalPayments:       totalPayments,
			Status:              DayStatusSafe,
			DeductSameDay:       resolveDeductSameDay(record),
			IsOpeningCashManual: isManual,
			UseDefaultSales:     record == nil || record.UseDefaultSales,
		}
	}

	// Pass 2: propagate balances in ascending order.
	for i := range entries {
		entry := &entries[i]

		var endingCash decimal.Decimal

		if entry.DeductSameDay {
			endingCash = entry.OpeningCash.Add(entry.Sales).Sub(entry.TotalPayments)
		} else {
			// Shift policy: this day's payments reduce the previous day's
			// final ending instead of its own, and show up there as tomorrow's
			// payments. On the first day of the month there is no previous day
			// and the shift is deliberately a no-op.
			if i > 0 {
				prev := &entries[i-1]
				prev.EndingCash = prev.EndingCash.Sub(entry.TotalPayments)
				prev.TomorrowPayments = entry.TotalPayments
				prev.Status = ClassifyStatus(prev.EndingCash, settings.SafetyThreshold)
			}
			endingCash = entry.OpeningCash.Add(entry.Sales)
		}

		entry.EndingCash = endingCash
		entry.Status = ClassifyStatus(endingCash, settings.SafetyThreshold)

		// Carry the ending forward unless the next day's opening is pinned.
		// The shift adjustment above intentionally does not re-carry: the next
		// day keeps the opening it inherited before the shift was applied.
		if i+1 < len(entries) && !entries[i+1].IsOpeningCashManual {
			entries[i+1].OpeningCash = endingCash
		}
	}

	return entries
}
