package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for admin users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, user *User) error
}

// EmployeeRepository defines persistence operations for employees
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}
