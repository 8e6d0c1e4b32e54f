package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TimeLogRepository defines persistence operations for work sessions
type TimeLogRepository interface {
	FindActive(ctx context.Context, employeeID uuid.UUID) (*TimeLog, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]TimeLog, error)
	FindAll(ctx context.Context) ([]TimeLog, error)
	FindCompleted(ctx context.Context, employeeID uuid.UUID) ([]TimeLog, error)
	FindCompletedInRange(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]TimeLog, error)
	Save(ctx context.Context, log *TimeLog) error
}
