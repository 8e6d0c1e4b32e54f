package partner

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// SupplierPayment is money paid out to a supplier against their invoices.
type SupplierPayment struct {
	shared.BaseEntity
	PaymentNumber string          `json:"payment_number" gorm:"not null;uniqueIndex"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date          string          `json:"date" gorm:"type:char(10);not null"`
	Notes         string          `json:"notes"`
	SupplierID    uuid.UUID       `json:"supplier_id" gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name
func (SupplierPayment) TableName() string {
	return "supplier_payments"
}

// FormatPaymentNumber renders a sequence position as a document number
// such as PAY-00001.
func FormatPaymentNumber(seq int64) string {
	return fmt.Sprintf("PAY-%05d", seq)
}

// NewSupplierPayment creates a payment to a supplier. An empty paymentNumber
// is allowed here; the application assigns the next sequential number before
// persisting.
func NewSupplierPayment(supplierID uuid.UUID, paymentNumber string, amount decimal.Decimal, date, notes string) (*SupplierPayment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	return &SupplierPayment{
		BaseEntity:    shared.NewBaseEntity(),
		PaymentNumber: paymentNumber,
		Amount:        amount,
		Date:          date,
		Notes:         notes,
		SupplierID:    supplierID,
	}, nil
}

// Update applies partial changes to the payment
func (p *SupplierPayment) Update(amount *decimal.Decimal, date, notes *string) error {
	if amount != nil {
		if amount.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
		}
		p.Amount = *amount
	}
	if date != nil {
		p.Date = *date
	}
	if notes != nil {
		p.Notes = *notes
	}
	return nil
}
