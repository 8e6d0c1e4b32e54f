package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/partner"
)

// Service aggregates the supplier transaction ledger into dashboard figures.
type Service struct {
	txRepo       partner.TransactionRepository
	supplierRepo partner.SupplierRepository
}

// NewService creates a new analytics Service
func NewService(txRepo partner.TransactionRepository, supplierRepo partner.SupplierRepository) *Service {
	return &Service{txRepo: txRepo, supplierRepo: supplierRepo}
}

// QueryRequest narrows the aggregation window. Empty fields mean no constraint.
type QueryRequest struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SupplierID string `form:"supplier_id"`
}

// SupplierSummary is the per-supplier slice of the aggregation
type SupplierSummary struct {
	SupplierID    uuid.UUID       `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	TotalInvoices decimal.Decimal `json:"total_invoices"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	Balance       decimal.Decimal `json:"balance"`
}

// Summary is the full ledger aggregation for a window
type Summary struct {
	TotalInvoices decimal.Decimal       `json:"total_invoices"`
	TotalPayments decimal.Decimal       `json:"total_payments"`
	Balance       decimal.Decimal       `json:"balance"`
	Suppliers     []SupplierSummary     `json:"suppliers"`
	Transactions  []partner.Transaction `json:"transactions"`
}

// Summarize folds the matching ledger rows into totals, a per-supplier
// breakdown, and the row list itself. Balance is invoices minus payments,
// so positive means money still owed to suppliers.
func (s *Service) Summarize(ctx context.Context, req QueryRequest) (*Summary, error) {
	filter := partner.TransactionFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.SupplierID != "" {
		id, err := uuid.Parse(req.SupplierID)
		if err != nil {
			return nil, err
		}
		filter.SupplierID = &id
	}

	transactions, err := s.txRepo.FindFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalInvoices: decimal.Zero,
		TotalPayments: decimal.Zero,
		Transactions:  transactions,
	}
	perSupplier := make(map[uuid.UUID]*SupplierSummary)
	order := make([]uuid.UUID, 0)

	for _, tx := range transactions {
		entry, ok := perSupplier[tx.SupplierID]
		if !ok {
			entry = &SupplierSummary{
				SupplierID:    tx.SupplierID,
				TotalInvoices: decimal.Zero,
				TotalPayments: decimal.Zero,
			}
			if tx.Supplier != nil {
				entry.SupplierName = tx.Supplier.Name
			}
			perSupplier[tx.SupplierID] = entry
			order = append(order, tx.SupplierID)
		}

		switch tx.Type {
		case partner.TransactionTypeInvoice:
			summary.TotalInvoices = summary.TotalInvoices.Add(tx.Amount)
			entry.TotalInvoices = entry.TotalInvoices.Add(tx.Amount)
		case partner.TransactionTypePayment:
			summary.TotalPayments = summary.TotalPayments.Add(tx.Amount)
			entry.TotalPayments = entry.TotalPayments.Add(tx.Amount)
		}
	}

	summary.Balance = summary.TotalInvoices.Sub(summary.TotalPayments)
	summary.Suppliers = make([]SupplierSummary, 0, len(order))
	for _, id := range order {
		entry := perSupplier[id]
		entry.Balance = entry.TotalInvoices.Sub(entry.TotalPayments)
		summary.Suppliers = append(summary.Suppliers, *entry)
	}
	return summary, nil
}

// RecentTransactions returns the newest ledger rows for the dashboard feed
func (s *Service) RecentTransactions(ctx context.Context, limit int) ([]partner.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.txRepo.FindRecent(ctx, limit)
}
