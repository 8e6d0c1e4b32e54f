package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/partner"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByIDWithRelations finds a supplier with its invoices and payments loaded
func (r *GormSupplierRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).
		Preload("Invoices").
		Preload("Payments").
		First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByName finds a supplier by name, case-insensitively on the trimmed value
func (r *GormSupplierRepository) FindByName(ctx context.Context, name string) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = LOWER(?)", strings.TrimSpace(name)).
		First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll returns all suppliers, newest first
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]partner.Supplier, error) {
	var suppliers []partner.Supplier
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	return r.db.WithContext(ctx).Omit("Invoices", "Payments").Save(supplier).Error
}

// Delete deletes a supplier
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormInvoiceRepository implements partner.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Invoice, error) {
	var invoice partner.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindBySupplier returns a supplier's invoices, newest date first
func (r *GormInvoiceRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]partner.Invoice, error) {
	var invoices []partner.Invoice
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("date DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Count counts all invoices
func (r *GormInvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&partner.Invoice{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *partner.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Delete deletes an invoice
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Invoice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteBySupplier deletes all invoices of a supplier
func (r *GormInvoiceRepository) DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Delete(&partner.Invoice{}).Error
}

// GormSupplierPaymentRepository implements partner.SupplierPaymentRepository using GORM
type GormSupplierPaymentRepository struct {
	db *gorm.DB
}

// NewGormSupplierPaymentRepository creates a new GormSupplierPaymentRepository
func NewGormSupplierPaymentRepository(db *gorm.DB) *GormSupplierPaymentRepository {
	return &GormSupplierPaymentRepository{db: db}
}

// FindByID finds a supplier payment by its ID
func (r *GormSupplierPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.SupplierPayment, error) {
	var payment partner.SupplierPayment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindBySupplier returns a supplier's payments, newest date first
func (r *GormSupplierPaymentRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]partner.SupplierPayment, error) {
	var payments []partner.SupplierPayment
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Count counts all supplier payments
func (r *GormSupplierPaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&partner.SupplierPayment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a supplier payment
func (r *GormSupplierPaymentRepository) Save(ctx context.Context, payment *partner.SupplierPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Delete deletes a supplier payment
func (r *GormSupplierPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.SupplierPayment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteBySupplier deletes all payments of a supplier
func (r *GormSupplierPaymentRepository) DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Delete(&partner.SupplierPayment{}).Error
}

// GormCashflowNoteRepository implements partner.CashflowNoteRepository using GORM
type GormCashflowNoteRepository struct {
	db *gorm.DB
}

// NewGormCashflowNoteRepository creates a new GormCashflowNoteRepository
func NewGormCashflowNoteRepository(db *gorm.DB) *GormCashflowNoteRepository {
	return &GormCashflowNoteRepository{db: db}
}

// FindBySupplier returns a supplier's cash-flow notes, newest date first
func (r *GormCashflowNoteRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]partner.CashflowNote, error) {
	var notes []partner.CashflowNote
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("date DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Save creates or updates a cash-flow note
func (r *GormCashflowNoteRepository) Save(ctx context.Context, note *partner.CashflowNote) error {
	return r.db.WithContext(ctx).Save(note).Error
}

// DeleteBySupplier deletes all cash-flow notes of a supplier
func (r *GormCashflowNoteRepository) DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Delete(&partner.CashflowNote{}).Error
}

// Ensure implementations satisfy the domain interfaces
var (
	_ partner.SupplierRepository        = (*GormSupplierRepository)(nil)
	_ partner.InvoiceRepository         = (*GormInvoiceRepository)(nil)
	_ partner.SupplierPaymentRepository = (*GormSupplierPaymentRepository)(nil)
	_ partner.CashflowNoteRepository    = (*GormCashflowNoteRepository)(nil)
)
