package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/notification"
)

// Service exposes the admin's notification feed
type Service struct {
	repo notification.Repository
}

// NewService creates a new notification Service
func NewService(repo notification.Repository) *Service {
	return &Service{repo: repo}
}

// ListAll returns every notification, newest first
func (s *Service) ListAll(ctx context.Context) ([]notification.Notification, error) {
	return s.repo.FindAll(ctx)
}

// ListUnread returns unread notifications, newest first
func (s *Service) ListUnread(ctx context.Context) ([]notification.Notification, error) {
	return s.repo.FindUnread(ctx)
}

// UnreadCount returns the badge count
func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

// MarkRead marks one notification as read
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.MarkRead()
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// MarkAllRead clears the unread badge
func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}
