package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for notifications
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindAll(ctx context.Context) ([]Notification, error)
	FindUnread(ctx context.Context) ([]Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	Save(ctx context.Context, n *Notification) error
	MarkAllRead(ctx context.Context) error
}
