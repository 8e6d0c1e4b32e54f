package partner

import (
	"strings"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// Supplier is a vendor the business buys from. Invoices and payments hang off
// it, and cash-flow payments whose recipient matches its name are echoed back
// as cash-flow notes.
type Supplier struct {
	shared.BaseEntity
	Name  string `json:"name" gorm:"not null;index"`
	Phone string `json:"phone" gorm:"not null"`

	Invoices []Invoice         `json:"invoices,omitempty" gorm:"foreignKey:SupplierID"`
	Payments []SupplierPayment `json:"payments,omitempty" gorm:"foreignKey:SupplierID"`
}

// TableName specifies the database table name
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a supplier after validating required fields
func NewSupplier(name, phone string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name is required")
	}
	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      strings.TrimSpace(phone),
	}, nil
}

// Update applies partial changes to the supplier
func (s *Supplier) Update(name, phone *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return shared.NewDomainError("INVALID_NAME", "Supplier name is required")
		}
		s.Name = trimmed
	}
	if phone != nil {
		s.Phone = strings.TrimSpace(*phone)
	}
	return nil
}

// MatchesRecipient reports whether a cash-flow payment recipient refers to
// this supplier. Comparison is case-insensitive on trimmed names.
func (s *Supplier) MatchesRecipient(recipientName string) bool {
	return strings.EqualFold(strings.TrimSpace(recipientName), s.Name)
}
