package cashflow

import (
	"time"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayRecord holds the sparse, user-entered overrides for one calendar date.
// A record exists only for dates somebody has touched; the projection engine
// fills in defaults for every other day of the month.
type DayRecord struct {
	shared.BaseEntity
	Date                string           `json:"date" gorm:"type:char(10);uniqueIndex;not null"`
	OpeningCash         *decimal.Decimal `json:"opening_cash" gorm:"type:decimal(10,2)"`
	IsOpeningCashManual bool             `json:"is_opening_cash_manual" gorm:"not null;default:false"`
	Sales               decimal.Decimal  `json:"sales" gorm:"type:decimal(10,2)"`
	ManualSales         *decimal.Decimal `json:"manual_sales" gorm:"type:decimal(10,2)"`
	UseDefaultSales     bool             `json:"use_default_sales" gorm:"not null;default:true"`
	DeductSameDay       bool             `json:"deduct_same_day" gorm:"not null;default:true"`
	Payments            []Payment        `json:"payments" gorm:"foreignKey:DayRecordID"`
}

// TableName overrides the GORM table name
func (DayRecord) TableName() string {
	return "cashflow_days"
}

// NewDayRecord creates a fresh record for a date with the default policy:
// sales follow settings, payments deduct the same day, opening cash unpinned.
func NewDayRecord(date string, settings *Settings) *DayRecord {
	return &DayRecord{
		BaseEntity:      shared.NewBaseEntity(),
		Date:            date,
		Sales:           settings.DefaultDailySales,
		UseDefaultSales: true,
		DeductSameDay:   true,
		Payments:        []Payment{},
	}
}

// PinOpeningCash sets the opening cash manually. A pinned value is
// authoritative: the projection never overwrites it with carry-forward.
func (d *DayRecord) PinOpeningCash(amount decimal.Decimal) {
	d.OpeningCash = &amount
	d.IsOpeningCashManual = true
	d.UpdatedAt = time.Now()
}

// SetSales switches the day off the default and records a manual sales value.
func (d *DayRecord) SetSales(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Sales amount cannot be negative")
	}
	d.Sales = amount
	d.ManualSales = &amount
	d.UseDefaultSales = false
	d.UpdatedAt = time.Now()
	return nil
}

// UpdatePolicy applies a partial update to the day's policy flags.
func (d *DayRecord) UpdatePolicy(deductSameDay *bool, sales *decimal.Decimal) error {
	if deductSameDay != nil {
		d.DeductSameDay = *deductSameDay
		d.UpdatedAt = time.Now()
	}
	if sales != nil {
		if err := d.SetSales(*sales); err != nil {
			return err
		}
	}
	return nil
}

// TotalPayments sums the amounts of the day's payments.
func (d *DayRecord) TotalPayments() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Payment is a dated outgoing payment owned by exactly one DayRecord.
type Payment struct {
	shared.BaseEntity
	DayRecordID   uuid.UUID       `json:"day_record_id" gorm:"type:uuid;index;not null"`
	Date          string          `json:"date" gorm:"type:char(10);index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	RecipientName string          `json:"recipient_name" gorm:"not null"`
	Description   string          `json:"description" gorm:"type:text"`
}

// TableName overrides the GORM table name
func (Payment) TableName() string {
	return "cashflow_payments"
}

// NewPayment creates a payment after validating its invariants.
func NewPayment(dayRecordID uuid.UUID, date string, amount decimal.Decimal, recipientName, description string) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if recipientName == "" {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient name cannot be empty")
	}
	return &Payment{
		BaseEntity:    shared.NewBaseEntity(),
		DayRecordID:   dayRecordID,
		Date:          date,
		Amount:        amount,
		RecipientName: recipientName,
		Description:   description,
	}, nil
}
