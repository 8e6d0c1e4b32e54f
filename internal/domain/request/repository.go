package request

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for resource requests
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceRequest, error)
	FindAll(ctx context.Context) ([]ResourceRequest, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]ResourceRequest, error)
	Save(ctx context.Context, r *ResourceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}
