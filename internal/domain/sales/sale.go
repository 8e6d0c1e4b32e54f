package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// Sale is a recorded cash sale. Sales feed the suppliers-side books only;
// the cash-flow projection has its own per-day sales figures.
type Sale struct {
	shared.BaseEntity
	SaleNumber  string          `json:"sale_number" gorm:"not null;uniqueIndex"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date        string          `json:"date" gorm:"type:char(10);not null;index"`
	Description string          `json:"description"`
}

// TableName specifies the database table name
func (Sale) TableName() string {
	return "sales"
}

// FormatSaleNumber renders a sequence position as a document number
// such as SALE-00001.
func FormatSaleNumber(seq int64) string {
	return fmt.Sprintf("SALE-%05d", seq)
}

// NewSale creates a sale record. An empty saleNumber is allowed here; the
// application assigns the next sequential number before persisting.
func NewSale(saleNumber string, amount decimal.Decimal, date, description string) (*Sale, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale amount must be positive")
	}
	return &Sale{
		BaseEntity:  shared.NewBaseEntity(),
		SaleNumber:  saleNumber,
		Amount:      amount,
		Date:        date,
		Description: description,
	}, nil
}

// Update applies partial changes to the sale
func (s *Sale) Update(amount *decimal.Decimal, date, description *string) error {
	if amount != nil {
		if amount.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_AMOUNT", "Sale amount must be positive")
		}
		s.Amount = *amount
	}
	if date != nil {
		s.Date = *date
	}
	if description != nil {
		s.Description = *description
	}
	return nil
}
