package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDayRecordRepository_DateScansVerbatim(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewGormDayRecordRepository(db)

	id := uuid.New()
	now := time.Now()
	dayRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "date", "sales", "use_default_sales", "deduct_same_day"}).
		AddRow(id.String(), now, now, "2026-03-01", "150.00", true, true)

	// The date column is char(10), not a SQL date type. A date type would
	// come back through the driver as time.Time and land in the string
	// field as an RFC3339 timestamp, which no longer matches the
	// "YYYY-MM-DD" keys the projection looks days up by.
	mock.ExpectQuery(`SELECT \* FROM "cashflow_days" WHERE date >= \$1 AND date <= \$2 ORDER BY date ASC`).
		WithArgs("2026-03-01", "2026-03-31").
		WillReturnRows(dayRows)
	mock.ExpectQuery(`SELECT \* FROM "cashflow_payments"`).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_record_id", "date", "amount", "recipient_name"}))

	records, err := repo.FindRange(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2026-03-01", records[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}
