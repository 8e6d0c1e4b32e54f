package cashflow

import (
	"time"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Default values used when the settings row is created lazily on first access.
var (
	DefaultDailySales      = decimal.NewFromInt(6000)
	DefaultSafetyThreshold = decimal.NewFromInt(2000)
)

// Settings is the singleton cash-flow configuration row. It is created once
// with defaults on first access and only ever mutated through UpdateSettings.
type Settings struct {
	shared.BaseEntity
	DefaultDailySales decimal.Decimal `json:"default_daily_sales" gorm:"type:decimal(10,2)"`
	SafetyThreshold   decimal.Decimal `json:"safety_threshold" gorm:"type:decimal(10,2)"`
}

// TableName overrides the GORM table name
func (Settings) TableName() string {
	return "cashflow_settings"
}

// NewDefaultSettings creates the settings row with the built-in defaults.
func NewDefaultSettings() *Settings {
	return &Settings{
		BaseEntity:        shared.NewBaseEntity(),
		DefaultDailySales: DefaultDailySales,
		SafetyThreshold:   DefaultSafetyThreshold,
	}
}

// Update applies a partial settings update. Absent fields are left unchanged.
func (s *Settings) Update(defaultDailySales, safetyThreshold *decimal.Decimal) error {
	if defaultDailySales != nil {
		if defaultDailySales.IsNegative() {
			return shared.NewDomainError("INVALID_AMOUNT", "Default daily sales cannot be negative")
		}
		s.DefaultDailySales = *defaultDailySales
	}
	if safetyThreshold != nil {
		s.SafetyThreshold = *safetyThreshold
	}
	s.UpdatedAt = time.Now()
	return nil
}

// BaseCash is the singleton base/initial cash amount shown on the dashboard.
// Like Settings it is created lazily with zero values.
type BaseCash struct {
	shared.BaseEntity
	Amount decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Notes  string          `json:"notes" gorm:"type:text"`
}

// TableName overrides the GORM table name
func (BaseCash) TableName() string {
	return "base_cash"
}

// NewBaseCash creates the base-cash row with zero amount.
func NewBaseCash() *BaseCash {
	return &BaseCash{
		BaseEntity: shared.NewBaseEntity(),
		Amount:     decimal.Zero,
	}
}

// Update sets the base amount and optionally the notes.
func (c *BaseCash) Update(amount decimal.Decimal, notes *string) {
	c.Amount = amount
	if notes != nil {
		c.Notes = *notes
	}
	c.UpdatedAt = time.Now()
}
