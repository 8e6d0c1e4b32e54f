package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/cashflow"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// GormCashflowSettingsRepository implements cashflow.SettingsRepository using GORM
type GormCashflowSettingsRepository struct {
	db *gorm.DB
}

// NewGormCashflowSettingsRepository creates a new GormCashflowSettingsRepository
func NewGormCashflowSettingsRepository(db *gorm.DB) *GormCashflowSettingsRepository {
	return &GormCashflowSettingsRepository{db: db}
}

// Get returns the settings singleton, creating it with defaults on first access
func (r *GormCashflowSettingsRepository) Get(ctx context.Context) (*cashflow.Settings, error) {
	var settings cashflow.Settings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := cashflow.NewDefaultSettings()
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

// Save persists the settings singleton
func (r *GormCashflowSettingsRepository) Save(ctx context.Context, settings *cashflow.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

// GormBaseCashRepository implements cashflow.BaseCashRepository using GORM
type GormBaseCashRepository struct {
	db *gorm.DB
}

// NewGormBaseCashRepository creates a new GormBaseCashRepository
func NewGormBaseCashRepository(db *gorm.DB) *GormBaseCashRepository {
	return &GormBaseCashRepository{db: db}
}

// Get returns the base-cash singleton, creating it with zeros on first access
func (r *GormBaseCashRepository) Get(ctx context.Context) (*cashflow.BaseCash, error) {
	var cash cashflow.BaseCash
	err := r.db.WithContext(ctx).First(&cash).Error
	if err == nil {
		return &cash, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := cashflow.NewBaseCash()
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

// Save persists the base-cash singleton
func (r *GormBaseCashRepository) Save(ctx context.Context, cash *cashflow.BaseCash) error {
	return r.db.WithContext(ctx).Save(cash).Error
}

// GormDayRecordRepository implements cashflow.DayRecordRepository using GORM
type GormDayRecordRepository struct {
	db *gorm.DB
}

// NewGormDayRecordRepository creates a new GormDayRecordRepository
func NewGormDayRecordRepository(db *gorm.DB) *GormDayRecordRepository {
	return &GormDayRecordRepository{db: db}
}

// FindByDate finds the day record for a date
func (r *GormDayRecordRepository) FindByDate(ctx context.Context, date string) (*cashflow.DayRecord, error) {
	var record cashflow.DayRecord
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		First(&record, "date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindRange finds all day records with dates in [start, end], ascending
func (r *GormDayRecordRepository) FindRange(ctx context.Context, start, end string) ([]cashflow.DayRecord, error) {
	var records []cashflow.DayRecord
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetOrCreate inserts fresh with ON CONFLICT (date) DO NOTHING and re-reads
// the surviving row, so two writers racing on a fresh date both end up on
// the same record. The unique index serializes them at the storage layer.
func (r *GormDayRecordRepository) GetOrCreate(ctx context.Context, fresh *cashflow.DayRecord) (*cashflow.DayRecord, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoNothing: true,
		}).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}
	return r.FindByDate(ctx, fresh.Date)
}

// Save creates or updates a day record
func (r *GormDayRecordRepository) Save(ctx context.Context, record *cashflow.DayRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteRange deletes all day records with dates in [start, end]
func (r *GormDayRecordRepository) DeleteRange(ctx context.Context, start, end string) error {
	return r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Delete(&cashflow.DayRecord{}).Error
}

// GormCashflowPaymentRepository implements cashflow.PaymentRepository using GORM
type GormCashflowPaymentRepository struct {
	db *gorm.DB
}

// NewGormCashflowPaymentRepository creates a new GormCashflowPaymentRepository
func NewGormCashflowPaymentRepository(db *gorm.DB) *GormCashflowPaymentRepository {
	return &GormCashflowPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormCashflowPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*cashflow.Payment, error) {
	var payment cashflow.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindAll returns all payments, newest date first
func (r *GormCashflowPaymentRepository) FindAll(ctx context.Context) ([]cashflow.Payment, error) {
	var payments []cashflow.Payment
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment
func (r *GormCashflowPaymentRepository) Save(ctx context.Context, payment *cashflow.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a payment
func (r *GormCashflowPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&cashflow.Payment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteRange deletes all payments with dates in [start, end]
func (r *GormCashflowPaymentRepository) DeleteRange(ctx context.Context, start, end string) error {
	return r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Delete(&cashflow.Payment{}).Error
}

// Ensure implementations satisfy the domain interfaces
var (
	_ cashflow.SettingsRepository  = (*GormCashflowSettingsRepository)(nil)
	_ cashflow.BaseCashRepository  = (*GormBaseCashRepository)(nil)
	_ cashflow.DayRecordRepository = (*GormDayRecordRepository)(nil)
	_ cashflow.PaymentRepository   = (*GormCashflowPaymentRepository)(nil)
)
