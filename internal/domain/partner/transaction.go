package partner

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// TransactionType distinguishes ledger rows
type TransactionType string

const (
	TransactionTypeInvoice TransactionType = "invoice"
	TransactionTypePayment TransactionType = "payment"
)

// Transaction is one row in the unified supplier ledger. Every invoice and
// every supplier payment writes exactly one transaction, which is what the
// analytics aggregations run over.
type Transaction struct {
	shared.BaseEntity
	Type        TransactionType `json:"type" gorm:"not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date        string          `json:"date" gorm:"type:char(10);not null;index"`
	Description string          `json:"description"`
	SupplierID  uuid.UUID       `json:"supplier_id" gorm:"type:uuid;not null;index"`
	Supplier    *Supplier       `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	InvoiceID   *uuid.UUID      `json:"invoice_id,omitempty" gorm:"type:uuid"`
	PaymentID   *uuid.UUID      `json:"payment_id,omitempty" gorm:"type:uuid"`
}

// TableName specifies the database table name
func (Transaction) TableName() string {
	return "supplier_transactions"
}

// NewInvoiceTransaction records an invoice in the ledger
func NewInvoiceTransaction(invoice *Invoice) *Transaction {
	description := invoice.Description
	if description == "" {
		description = "Invoice " + invoice.InvoiceNumber
	}
	id := invoice.ID
	return &Transaction{
		BaseEntity:  shared.NewBaseEntity(),
		Type:        TransactionTypeInvoice,
		Amount:      invoice.Amount,
		Date:        invoice.Date,
		Description: description,
		SupplierID:  invoice.SupplierID,
		InvoiceID:   &id,
	}
}

// NewPaymentTransaction records a supplier payment in the ledger
func NewPaymentTransaction(payment *SupplierPayment) *Transaction {
	description := payment.Notes
	if description == "" {
		description = "Payment " + payment.PaymentNumber
	}
	id := payment.ID
	return &Transaction{
		BaseEntity:  shared.NewBaseEntity(),
		Type:        TransactionTypePayment,
		Amount:      payment.Amount,
		Date:        payment.Date,
		Description: description,
		SupplierID:  payment.SupplierID,
		PaymentID:   &id,
	}
}
