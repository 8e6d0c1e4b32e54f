package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/partner"
)

// Service provides application-level supplier operations: supplier CRUD,
// invoices and payments with sequential document numbers, and their unified
// transaction ledger.
type Service struct {
	supplierRepo partner.SupplierRepository
	invoiceRepo  partner.InvoiceRepository
	paymentRepo  partner.SupplierPaymentRepository
	txRepo       partner.TransactionRepository
	noteRepo     partner.CashflowNoteRepository
	logger       *zap.Logger
}

// NewService creates a new supplier Service
func NewService(
	supplierRepo partner.SupplierRepository,
	invoiceRepo partner.InvoiceRepository,
	paymentRepo partner.SupplierPaymentRepository,
	txRepo partner.TransactionRepository,
	noteRepo partner.CashflowNoteRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		supplierRepo: supplierRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		txRepo:       txRepo,
		noteRepo:     noteRepo,
		logger:       logger.Named("partner"),
	}
}

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// UpdateSupplierRequest represents a partial supplier update
type UpdateSupplierRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datestr"`
	Description string          `json:"description"`
}

// UpdateInvoiceRequest represents a partial invoice update
type UpdateInvoiceRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
}

// CreatePaymentRequest represents a supplier payment creation request
type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Date   string          `json:"date" binding:"required,datestr"`
	Notes  string          `json:"notes"`
}

// UpdatePaymentRequest represents a partial supplier payment update
type UpdatePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *string          `json:"date"`
	Notes  *string          `json:"notes"`
}

// CreateSupplier registers a new supplier
func (s *Service) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*partner.Supplier, error) {
	supplier, err := partner.NewSupplier(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier loads a supplier with its invoices and payments
func (s *Service) GetSupplier(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	return s.supplierRepo.FindByIDWithRelations(ctx, id)
}

// ListSuppliers returns all suppliers, newest first
func (s *Service) ListSuppliers(ctx context.Context) ([]partner.Supplier, error) {
	return s.supplierRepo.FindAll(ctx)
}

// UpdateSupplier applies a partial update to a supplier
func (s *Service) UpdateSupplier(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*partner.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.Name, req.Phone); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier and everything hanging off it: ledger
// rows first, then invoices, payments, cash-flow notes, and finally the
// supplier itself.
func (s *Service) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.txRepo.DeleteBySupplier(ctx, id); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteBySupplier(ctx, id); err != nil {
		return err
	}
	if err := s.paymentRepo.DeleteBySupplier(ctx, id); err != nil {
		return err
	}
	if err := s.noteRepo.DeleteBySupplier(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// CreateInvoice records an invoice against a supplier, assigning the next
// sequential invoice number and writing a ledger transaction.
func (s *Service) CreateInvoice(ctx context.Context, supplierID uuid.UUID, req CreateInvoiceRequest) (*partner.Invoice, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	count, err := s.invoiceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	invoice, err := partner.NewInvoice(supplierID, partner.FormatInvoiceNumber(count+1), req.Amount, req.Date, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, partner.NewInvoiceTransaction(invoice)); err != nil {
		return nil, err
	}
	return invoice, nil
}

// UpdateInvoice applies a partial update to an invoice. Its ledger row is
// rewritten so the two never drift apart.
func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*partner.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := invoice.Update(req.Amount, req.Date, req.Description); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	if err := s.txRepo.DeleteByInvoice(ctx, invoice.ID); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, partner.NewInvoiceTransaction(invoice)); err != nil {
		return nil, err
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice and its ledger row
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.txRepo.DeleteByInvoice(ctx, id); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// CreatePayment records a payment to a supplier, assigning the next
// sequential payment number and writing a ledger transaction.
func (s *Service) CreatePayment(ctx context.Context, supplierID uuid.UUID, req CreatePaymentRequest) (*partner.SupplierPayment, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	count, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	payment, err := partner.NewSupplierPayment(supplierID, partner.FormatPaymentNumber(count+1), req.Amount, req.Date, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, partner.NewPaymentTransaction(payment)); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePayment applies a partial update to a supplier payment and rewrites
// its ledger row.
func (s *Service) UpdatePayment(ctx context.Context, id uuid.UUID, req UpdatePaymentRequest) (*partner.SupplierPayment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := payment.Update(req.Amount, req.Date, req.Notes); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.txRepo.DeleteByPayment(ctx, payment.ID); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, partner.NewPaymentTransaction(payment)); err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment removes a supplier payment and its ledger row
func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.paymentRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.txRepo.DeleteByPayment(ctx, id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, id)
}

// ListCashflowNotes returns the cash-register payments echoed to a supplier
func (s *Service) ListCashflowNotes(ctx context.Context, supplierID uuid.UUID) ([]partner.CashflowNote, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	return s.noteRepo.FindBySupplier(ctx, supplierID)
}
