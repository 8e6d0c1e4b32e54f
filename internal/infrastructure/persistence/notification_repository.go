package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/notification"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByID finds a notification by its ID
func (r *GormNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var n notification.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindAll returns all notifications, newest first
func (r *GormNotificationRepository) FindAll(ctx context.Context) ([]notification.Notification, error) {
	var all []notification.Notification
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}

// FindUnread returns unread notifications, newest first
func (r *GormNotificationRepository) FindUnread(ctx context.Context) ([]notification.Notification, error) {
	var unread []notification.Notification
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("is_read = ?", false).
		Order("created_at DESC").
		Find(&unread).Error; err != nil {
		return nil, err
	}
	return unread, nil
}

// CountUnread counts unread notifications
func (r *GormNotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a notification
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(n).Error
}

// MarkAllRead marks every unread notification as read
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}

var _ notification.Repository = (*GormNotificationRepository)(nil)
