package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/request"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// GormResourceRequestRepository implements request.Repository using GORM
type GormResourceRequestRepository struct {
	db *gorm.DB
}

// NewGormResourceRequestRepository creates a new GormResourceRequestRepository
func NewGormResourceRequestRepository(db *gorm.DB) *GormResourceRequestRepository {
	return &GormResourceRequestRepository{db: db}
}

// FindByID finds a resource request by its ID
func (r *GormResourceRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.ResourceRequest, error) {
	var req request.ResourceRequest
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindAll returns all resource requests, newest first
func (r *GormResourceRequestRepository) FindAll(ctx context.Context) ([]request.ResourceRequest, error) {
	var requests []request.ResourceRequest
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByEmployee returns an employee's resource requests, newest first
func (r *GormResourceRequestRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]request.ResourceRequest, error) {
	var requests []request.ResourceRequest
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a resource request
func (r *GormResourceRequestRepository) Save(ctx context.Context, req *request.ResourceRequest) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(req).Error
}

// Delete deletes a resource request
func (r *GormResourceRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&request.ResourceRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ request.Repository = (*GormResourceRequestRepository)(nil)
