package cashflow

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/cashflow"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/partner"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/config"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/notify"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/persistence"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&cashflow.Settings{},
		&cashflow.BaseCash{},
		&cashflow.DayRecord{},
		&cashflow.Payment{},
		&partner.Supplier{},
		&partner.CashflowNote{},
	))

	notifier := notify.NewWhatsAppNotifier(config.WhatsAppConfig{}, zap.NewNop())
	svc := NewService(
		persistence.NewGormCashflowSettingsRepository(db),
		persistence.NewGormBaseCashRepository(db),
		persistence.NewGormDayRecordRepository(db),
		persistence.NewGormCashflowPaymentRepository(db),
		persistence.NewGormSupplierRepository(db),
		persistence.NewGormCashflowNoteRepository(db),
		notifier,
		zap.NewNop(),
	)
	return svc, db
}

func TestService_SettingsLifecycle(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.DefaultDailySales.Equal(decimal.NewFromInt(6000)))

	sales := decimal.NewFromInt(8500)
	updated, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{DefaultDailySales: &sales})
	require.NoError(t, err)
	assert.True(t, updated.DefaultDailySales.Equal(sales))
	assert.True(t, updated.SafetyThreshold.Equal(decimal.NewFromInt(2000)))

	again, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
	assert.True(t, again.DefaultDailySales.Equal(sales))
}

func TestService_ProjectMonth_UsesStoredDays(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.SetOpeningCash(ctx, SetOpeningCashRequest{
		Date:   "2026-03-01",
		Amount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	_, err = svc.SetSales(ctx, SetSalesRequest{
		Date:   "2026-03-01",
		Amount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	entries, err := svc.ProjectMonth(ctx, "2026-03")
	require.NoError(t, err)
	require.Len(t, entries, 31)

	first := entries[0]
	assert.Equal(t, "2026-03-01", first.Date)
	assert.True(t, first.OpeningCash.Equal(decimal.NewFromInt(5000)))
	assert.True(t, first.Sales.Equal(decimal.NewFromInt(1000)))
	assert.True(t, first.EndingCash.Equal(decimal.NewFromInt(6000)))

	// day 2 carries day 1's ending and falls back to default sales
	second := entries[1]
	assert.True(t, second.OpeningCash.Equal(decimal.NewFromInt(6000)))
	assert.True(t, second.Sales.Equal(decimal.NewFromInt(6000)))
}

func TestService_ProjectMonth_RejectsBadToken(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ProjectMonth(context.Background(), "03-2026")
	assert.Error(t, err)
}

func TestService_AddPayment(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	t.Run("creates the day record on first write", func(t *testing.T) {
		payment, err := svc.AddPayment(ctx, AddPaymentRequest{
			Date:          "2026-03-10",
			Amount:        decimal.NewFromInt(750),
			RecipientName: "Al Waleed Trading",
			Description:   "flour",
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10", payment.Date)

		var dayCount int64
		require.NoError(t, db.Model(&cashflow.DayRecord{}).Count(&dayCount).Error)
		assert.EqualValues(t, 1, dayCount)
	})

	t.Run("echoes a note when the recipient matches a supplier", func(t *testing.T) {
		supplier, err := partner.NewSupplier("Golden Mills", "0599000000")
		require.NoError(t, err)
		require.NoError(t, db.Create(supplier).Error)

		_, err = svc.AddPayment(ctx, AddPaymentRequest{
			Date:          "2026-03-11",
			Amount:        decimal.NewFromInt(1200),
			RecipientName: "golden mills",
		})
		require.NoError(t, err)

		var notes []partner.CashflowNote
		require.NoError(t, db.Where("supplier_id = ?", supplier.ID).Find(&notes).Error)
		require.Len(t, notes, 1)
		assert.True(t, notes[0].Amount.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("no note for an unknown recipient", func(t *testing.T) {
		_, err := svc.AddPayment(ctx, AddPaymentRequest{
			Date:          "2026-03-12",
			Amount:        decimal.NewFromInt(90),
			RecipientName: "Walk-in vendor",
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, db.Model(&partner.CashflowNote{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		_, err := svc.AddPayment(ctx, AddPaymentRequest{
			Date:          "2026-03-13",
			Amount:        decimal.Zero,
			RecipientName: "Anyone",
		})
		assert.Error(t, err)
	})
}

func TestService_DeletePayment(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	payment, err := svc.AddPayment(ctx, AddPaymentRequest{
		Date:          "2026-03-05",
		Amount:        decimal.NewFromInt(300),
		RecipientName: "Cleaner",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePayment(ctx, payment.ID))

	err = svc.DeletePayment(ctx, payment.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_ResetMonth(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	_, err := svc.AddPayment(ctx, AddPaymentRequest{
		Date:          "2026-03-08",
		Amount:        decimal.NewFromInt(400),
		RecipientName: "Vendor A",
	})
	require.NoError(t, err)
	_, err = svc.SetSales(ctx, SetSalesRequest{Date: "2026-04-01", Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)

	require.NoError(t, svc.ResetMonth(ctx, "2026-03"))

	var dayCount, paymentCount int64
	require.NoError(t, db.Model(&cashflow.DayRecord{}).Count(&dayCount).Error)
	require.NoError(t, db.Model(&cashflow.Payment{}).Count(&paymentCount).Error)
	assert.EqualValues(t, 1, dayCount) // april day survives
	assert.EqualValues(t, 0, paymentCount)

	// settings survive the reset
	_, err = svc.GetSettings(ctx)
	require.NoError(t, err)
}

func TestService_UpdateDay(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	deduct := false
	day, err := svc.UpdateDay(ctx, "2026-03-20", UpdateDayRequest{DeductSameDay: &deduct})
	require.NoError(t, err)
	assert.False(t, day.DeductSameDay)

	entries, err := svc.ProjectMonth(ctx, "2026-03")
	require.NoError(t, err)
	assert.False(t, entries[19].DeductSameDay)
}

func TestService_BaseCash(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	cash, err := svc.GetBaseCash(ctx)
	require.NoError(t, err)
	assert.True(t, cash.Amount.IsZero())

	notes := "safe drawer"
	updated, err := svc.UpdateBaseCash(ctx, UpdateBaseCashRequest{
		Amount: decimal.NewFromInt(2500),
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, "safe drawer", updated.Notes)
}

func TestService_ExportMonth(t *testing.T) {
	svc, _ := setupService(t)

	buf, filename, err := svc.ExportMonth(context.Background(), "2026-03")
	require.NoError(t, err)
	assert.Equal(t, "cashflow-2026-03.xlsx", filename)
	assert.Greater(t, buf.Len(), 0)
}
