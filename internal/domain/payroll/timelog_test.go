package payroll

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLog_Close(t *testing.T) {
	employeeID := uuid.New()
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("computes hours and earnings rounded to cents", func(t *testing.T) {
		log := NewTimeLog(employeeID, start)

		// 7.5 hours at 21.30 per hour.
		err := log.Close(start.Add(7*time.Hour+30*time.Minute), decimal.NewFromFloat(21.30))
		require.NoError(t, err)

		assert.Equal(t, TimeLogStatusCompleted, log.Status)
		require.NotNil(t, log.HoursWorked)
		require.NotNil(t, log.EarnedSalary)
		assert.True(t, log.HoursWorked.Equal(decimal.NewFromFloat(7.5)))
		assert.True(t, log.EarnedSalary.Equal(decimal.NewFromFloat(159.75)))
	})

	t.Run("rounds fractional hours", func(t *testing.T) {
		log := NewTimeLog(employeeID, start)

		// 100 minutes is 1.666... hours.
		err := log.Close(start.Add(100*time.Minute), decimal.NewFromInt(30))
		require.NoError(t, err)

		assert.True(t, log.HoursWorked.Equal(decimal.NewFromFloat(1.67)))
		assert.True(t, log.EarnedSalary.Equal(decimal.NewFromFloat(50.1)))
	})

	t.Run("cannot close twice", func(t *testing.T) {
		log := NewTimeLog(employeeID, start)
		require.NoError(t, log.Close(start.Add(time.Hour), decimal.NewFromInt(10)))

		err := log.Close(start.Add(2*time.Hour), decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("rejects clock-out before clock-in", func(t *testing.T) {
		log := NewTimeLog(employeeID, start)
		err := log.Close(start.Add(-time.Minute), decimal.NewFromInt(10))
		assert.Error(t, err)
		assert.Equal(t, TimeLogStatusActive, log.Status)
	})
}
