package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/partner"
)

// GormTransactionRepository implements partner.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindFiltered returns ledger rows matching the filter, newest date first
func (r *GormTransactionRepository) FindFiltered(ctx context.Context, filter partner.TransactionFilter) ([]partner.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&partner.Transaction{}).Preload("Supplier")

	if filter.StartDate != "" {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}

	var transactions []partner.Transaction
	if err := query.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindRecent returns the most recently created ledger rows
func (r *GormTransactionRepository) FindRecent(ctx context.Context, limit int) ([]partner.Transaction, error) {
	var transactions []partner.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// Save creates or updates a ledger row
func (r *GormTransactionRepository) Save(ctx context.Context, transaction *partner.Transaction) error {
	return r.db.WithContext(ctx).Omit("Supplier").Save(transaction).Error
}

// DeleteByInvoice deletes the ledger row of an invoice
func (r *GormTransactionRepository) DeleteByInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Delete(&partner.Transaction{}).Error
}

// DeleteByPayment deletes the ledger row of a supplier payment
func (r *GormTransactionRepository) DeleteByPayment(ctx context.Context, paymentID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Delete(&partner.Transaction{}).Error
}

// DeleteBySupplier deletes all ledger rows of a supplier
func (r *GormTransactionRepository) DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Delete(&partner.Transaction{}).Error
}

var _ partner.TransactionRepository = (*GormTransactionRepository)(nil)
