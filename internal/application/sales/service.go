package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/sales"
)

// Service provides sale record management with sequential sale numbers
type Service struct {
	saleRepo sales.SaleRepository
}

// NewService creates a new sales Service
func NewService(saleRepo sales.SaleRepository) *Service {
	return &Service{saleRepo: saleRepo}
}

// CreateSaleRequest represents a sale creation request
type CreateSaleRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datestr"`
	Description string          `json:"description"`
}

// UpdateSaleRequest represents a partial sale update
type UpdateSaleRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
}

// SalesOverview carries the sale list with its running total
type SalesOverview struct {
	Sales []sales.Sale    `json:"sales"`
	Total decimal.Decimal `json:"total"`
}

// CreateSale records a sale, assigning the next sequential sale number
func (s *Service) CreateSale(ctx context.Context, req CreateSaleRequest) (*sales.Sale, error) {
	count, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	sale, err := sales.NewSale(sales.FormatSaleNumber(count+1), req.Amount, req.Date, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// ListSales returns all sales with their total amount
func (s *Service) ListSales(ctx context.Context) (*SalesOverview, error) {
	list, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.saleRepo.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}
	return &SalesOverview{Sales: list, Total: total}, nil
}

// UpdateSale applies a partial update to a sale
func (s *Service) UpdateSale(ctx context.Context, id uuid.UUID, req UpdateSaleRequest) (*sales.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sale.Update(req.Amount, req.Date, req.Description); err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// DeleteSale removes a sale record
func (s *Service) DeleteSale(ctx context.Context, id uuid.UUID) error {
	return s.saleRepo.Delete(ctx, id)
}
