package cashflow

import (
	"fmt"
	"time"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// DateLayout is the canonical layout for day keys ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// MonthLayout is the canonical layout for month tokens ("YYYY-MM").
const MonthLayout = "2006-01"

// Month identifies a calendar month. Day records are keyed by date strings,
// so a Month is the unit the projection engine and the reset operation work on.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" token into a Month.
func ParseMonth(token string) (Month, error) {
	t, err := time.Parse(MonthLayout, token)
	if err != nil {
		return Month{}, shared.NewDomainError("INVALID_MONTH", fmt.Sprintf("Invalid month token %q, expected YYYY-MM", token))
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// ParseDate validates a "YYYY-MM-DD" date string and returns it normalized.
func ParseDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", shared.NewDomainError("INVALID_DATE", fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", date))
	}
	return t.Format(DateLayout), nil
}

// String returns the "YYYY-MM" token.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Days returns the number of calendar days in the month.
func (m Month) Days() int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOf returns the date string for the given 1-based day of the month.
func (m Month) DateOf(day int) string {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// Start returns the first date of the month.
func (m Month) Start() string {
	return m.DateOf(1)
}

// End returns the last date of the month.
func (m Month) End() string {
	return m.DateOf(m.Days())
}

// WeekdayName returns the English weekday name for the given 1-based day.
func (m Month) WeekdayName(day int) string {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC).Weekday().String()
}
