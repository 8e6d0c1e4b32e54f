package partner

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// Invoice is a bill received from a supplier.
type Invoice struct {
	shared.BaseEntity
	InvoiceNumber string          `json:"invoice_number" gorm:"not null;uniqueIndex"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date          string          `json:"date" gorm:"type:char(10);not null"`
	Description   string          `json:"description"`
	SupplierID    uuid.UUID       `json:"supplier_id" gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name
func (Invoice) TableName() string {
	return "supplier_invoices"
}

// FormatInvoiceNumber renders a sequence position as a document number
// such as INV-00001.
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("INV-%05d", seq)
}

// NewInvoice creates an invoice for a supplier. An empty invoiceNumber is
// allowed here; the application assigns the next sequential number before
// persisting.
func NewInvoice(supplierID uuid.UUID, invoiceNumber string, amount decimal.Decimal, date, description string) (*Invoice, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be positive")
	}
	return &Invoice{
		BaseEntity:    shared.NewBaseEntity(),
		InvoiceNumber: invoiceNumber,
		Amount:        amount,
		Date:          date,
		Description:   description,
		SupplierID:    supplierID,
	}, nil
}

// Update applies partial changes to the invoice
func (i *Invoice) Update(amount *decimal.Decimal, date, description *string) error {
	if amount != nil {
		if amount.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be positive")
		}
		i.Amount = *amount
	}
	if date != nil {
		i.Date = *date
	}
	if description != nil {
		i.Description = *description
	}
	return nil
}
