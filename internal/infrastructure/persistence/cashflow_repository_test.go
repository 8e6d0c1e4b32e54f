package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/cashflow"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// setupCashflowTestDB creates an in-memory SQLite database for testing
func setupCashflowTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&cashflow.Settings{},
		&cashflow.BaseCash{},
		&cashflow.DayRecord{},
		&cashflow.Payment{},
	)
	require.NoError(t, err)

	return db
}

func TestGormCashflowSettingsRepository_Get(t *testing.T) {
	db := setupCashflowTestDB(t)
	repo := NewGormCashflowSettingsRepository(db)
	ctx := context.Background()

	t.Run("creates defaults on first access", func(t *testing.T) {
		settings, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.True(t, settings.DefaultDailySales.Equal(cashflow.DefaultDailySales))
		assert.True(t, settings.SafetyThreshold.Equal(cashflow.DefaultSafetyThreshold))
	})

	t.Run("returns the same row on subsequent access", func(t *testing.T) {
		first, err := repo.Get(ctx)
		require.NoError(t, err)

		sales := decimal.NewFromInt(8000)
		require.NoError(t, first.Update(&sales, nil))
		require.NoError(t, repo.Save(ctx, first))

		second, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.DefaultDailySales.Equal(sales))
	})
}

func TestGormBaseCashRepository_Get(t *testing.T) {
	db := setupCashflowTestDB(t)
	repo := NewGormBaseCashRepository(db)
	ctx := context.Background()

	cash, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cash.Amount.IsZero())

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cash.ID, again.ID)
}

func TestGormDayRecordRepository(t *testing.T) {
	db := setupCashflowTestDB(t)
	repo := NewGormDayRecordRepository(db)
	paymentRepo := NewGormCashflowPaymentRepository(db)
	ctx := context.Background()

	settings := cashflow.NewDefaultSettings()

	t.Run("FindByDate returns ErrNotFound for missing dates", func(t *testing.T) {
		_, err := repo.FindByDate(ctx, "2026-03-01")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("Save then FindByDate round-trips with payments", func(t *testing.T) {
		record := cashflow.NewDayRecord("2026-03-05", settings)
		require.NoError(t, repo.Save(ctx, record))

		payment, err := cashflow.NewPayment(record.ID, "2026-03-05", decimal.NewFromInt(250), "Al Noor Trading", "")
		require.NoError(t, err)
		require.NoError(t, paymentRepo.Save(ctx, payment))

		found, err := repo.FindByDate(ctx, "2026-03-05")
		require.NoError(t, err)
		require.Len(t, found.Payments, 1)
		assert.True(t, found.Payments[0].Amount.Equal(decimal.NewFromInt(250)))
	})

	t.Run("FindRange returns records ascending within bounds", func(t *testing.T) {
		for _, date := range []string{"2026-04-10", "2026-04-02", "2026-05-01"} {
			require.NoError(t, repo.Save(ctx, cashflow.NewDayRecord(date, settings)))
		}

		records, err := repo.FindRange(ctx, "2026-04-01", "2026-04-30")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "2026-04-02", records[0].Date)
		assert.Equal(t, "2026-04-10", records[1].Date)
	})

	t.Run("GetOrCreate converges duplicate writers on one row", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, cashflow.NewDayRecord("2026-06-15", settings))
		require.NoError(t, err)

		// A second writer racing on the same fresh date loses the insert
		// but gets handed the surviving record, not a unique-index error.
		loser := cashflow.NewDayRecord("2026-06-15", settings)
		second, err := repo.GetOrCreate(ctx, loser)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.NotEqual(t, loser.ID, second.ID)

		records, err := repo.FindRange(ctx, "2026-06-01", "2026-06-30")
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("DeleteRange removes only the month", func(t *testing.T) {
		require.NoError(t, repo.DeleteRange(ctx, "2026-04-01", "2026-04-30"))

		records, err := repo.FindRange(ctx, "2026-04-01", "2026-04-30")
		require.NoError(t, err)
		assert.Empty(t, records)

		_, err = repo.FindByDate(ctx, "2026-05-01")
		assert.NoError(t, err)
	})
}

func TestGormCashflowPaymentRepository(t *testing.T) {
	db := setupCashflowTestDB(t)
	dayRepo := NewGormDayRecordRepository(db)
	repo := NewGormCashflowPaymentRepository(db)
	ctx := context.Background()

	settings := cashflow.NewDefaultSettings()
	day := cashflow.NewDayRecord("2026-03-07", settings)
	require.NoError(t, dayRepo.Save(ctx, day))

	first, err := cashflow.NewPayment(day.ID, "2026-03-07", decimal.NewFromInt(100), "vendor a", "")
	require.NoError(t, err)
	second, err := cashflow.NewPayment(day.ID, "2026-03-08", decimal.NewFromInt(200), "vendor b", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	t.Run("FindAll orders by date descending", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "2026-03-08", all[0].Date)
	})

	t.Run("Delete removes a single payment", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, first.ID))

		_, err := repo.FindByID(ctx, first.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		// The sibling payment and the day record are untouched.
		_, err = repo.FindByID(ctx, second.ID)
		assert.NoError(t, err)
		_, err = dayRepo.FindByDate(ctx, "2026-03-07")
		assert.NoError(t, err)
	})

	t.Run("Delete of a missing payment reports ErrNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, first.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
