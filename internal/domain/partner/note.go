package partner

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// CashflowNote is an audit echo of a cash-flow payment whose recipient name
// matched this supplier. It is created as a side effect of recording the
// payment and never participates in the projection itself.
type CashflowNote struct {
	shared.BaseEntity
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	RecipientName     string          `json:"recipient_name" gorm:"not null"`
	Date              string          `json:"date" gorm:"type:char(10);not null"`
	Description       string          `json:"description"`
	CashflowPaymentID uuid.UUID       `json:"cashflow_payment_id" gorm:"type:uuid;not null"`
	SupplierID        uuid.UUID       `json:"supplier_id" gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name
func (CashflowNote) TableName() string {
	return "supplier_cashflow_notes"
}

// NewCashflowNote echoes a cash-flow payment onto a supplier
func NewCashflowNote(supplierID, cashflowPaymentID uuid.UUID, amount decimal.Decimal, recipientName, date, description string) *CashflowNote {
	return &CashflowNote{
		BaseEntity:        shared.NewBaseEntity(),
		Amount:            amount,
		RecipientName:     recipientName,
		Date:              date,
		Description:       description,
		CashflowPaymentID: cashflowPaymentID,
		SupplierID:        supplierID,
	}
}
