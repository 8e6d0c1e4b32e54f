package cashflow

import (
	"context"

	"github.com/google/uuid"
)

// SettingsRepository provides access to the singleton settings row.
// Get is expected to create the row with defaults when it does not exist yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}

// BaseCashRepository provides access to the singleton base-cash row.
type BaseCashRepository interface {
	Get(ctx context.Context) (*BaseCash, error)
	Save(ctx context.Context, cash *BaseCash) error
}

// DayRecordRepository stores the sparse per-date override records.
type DayRecordRepository interface {
	// FindByDate returns the record for a date with its payments loaded,
	// or shared.ErrNotFound when no record exists for that date.
	FindByDate(ctx context.Context, date string) (*DayRecord, error)
	// FindRange returns all records with startDate <= date <= endDate,
	// payments loaded, ordered by date ascending.
	FindRange(ctx context.Context, startDate, endDate string) ([]DayRecord, error)
	// GetOrCreate inserts fresh unless a record for its date already
	// exists, and returns the row that won. Concurrent first writes to
	// the same date converge on a single record instead of tripping the
	// unique index.
	GetOrCreate(ctx context.Context, fresh *DayRecord) (*DayRecord, error)
	Save(ctx context.Context, record *DayRecord) error
	// DeleteRange hard-deletes all records whose date falls in the range.
	DeleteRange(ctx context.Context, startDate, endDate string) error
}

// PaymentRepository stores dated payments owned by day records.
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	// FindAll returns every payment, ordered by date descending.
	FindAll(ctx context.Context) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteRange hard-deletes all payments whose date falls in the range.
	DeleteRange(ctx context.Context, startDate, endDate string) error
}
