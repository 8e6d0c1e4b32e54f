package partner

import (
	"context"

	"github.com/google/uuid"
)

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindByName(ctx context.Context, name string) (*Supplier, error)
	FindAll(ctx context.Context) ([]Supplier, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceRepository defines persistence operations for supplier invoices
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]Invoice, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error
}

// SupplierPaymentRepository defines persistence operations for supplier payments
type SupplierPaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierPayment, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]SupplierPayment, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, payment *SupplierPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error
}

// TransactionFilter narrows ledger queries. Zero values mean no constraint.
type TransactionFilter struct {
	StartDate  string
	EndDate    string
	SupplierID *uuid.UUID
}

// TransactionRepository defines persistence operations for the supplier ledger
type TransactionRepository interface {
	FindFiltered(ctx context.Context, filter TransactionFilter) ([]Transaction, error)
	FindRecent(ctx context.Context, limit int) ([]Transaction, error)
	Save(ctx context.Context, transaction *Transaction) error
	DeleteByInvoice(ctx context.Context, invoiceID uuid.UUID) error
	DeleteByPayment(ctx context.Context, paymentID uuid.UUID) error
	DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error
}

// CashflowNoteRepository defines persistence operations for supplier cash-flow notes
type CashflowNoteRepository interface {
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]CashflowNote, error)
	Save(ctx context.Context, note *CashflowNote) error
	DeleteBySupplier(ctx context.Context, supplierID uuid.UUID) error
}
