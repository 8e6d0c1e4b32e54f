package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/payroll"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// GormTimeLogRepository implements payroll.TimeLogRepository using GORM
type GormTimeLogRepository struct {
	db *gorm.DB
}

// NewGormTimeLogRepository creates a new GormTimeLogRepository
func NewGormTimeLogRepository(db *gorm.DB) *GormTimeLogRepository {
	return &GormTimeLogRepository{db: db}
}

// FindActive finds the employee's active session, if any
func (r *GormTimeLogRepository) FindActive(ctx context.Context, employeeID uuid.UUID) (*payroll.TimeLog, error) {
	var log payroll.TimeLog
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ? AND status = ?", employeeID, payroll.TimeLogStatusActive).
		First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// FindByEmployee returns all sessions of an employee, newest clock-in first
func (r *GormTimeLogRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]payroll.TimeLog, error) {
	var logs []payroll.TimeLog
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("clock_in DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindAll returns all sessions, newest clock-in first
func (r *GormTimeLogRepository) FindAll(ctx context.Context) ([]payroll.TimeLog, error) {
	var logs []payroll.TimeLog
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("clock_in DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindCompleted returns the employee's completed sessions
func (r *GormTimeLogRepository) FindCompleted(ctx context.Context, employeeID uuid.UUID) ([]payroll.TimeLog, error) {
	var logs []payroll.TimeLog
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, payroll.TimeLogStatusCompleted).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindCompletedInRange returns completed sessions with clock-in inside [start, end]
func (r *GormTimeLogRepository) FindCompletedInRange(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]payroll.TimeLog, error) {
	var logs []payroll.TimeLog
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ? AND clock_in >= ? AND clock_in <= ?",
			employeeID, payroll.TimeLogStatusCompleted, start, end).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Save creates or updates a session
func (r *GormTimeLogRepository) Save(ctx context.Context, log *payroll.TimeLog) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(log).Error
}

var _ payroll.TimeLogRepository = (*GormTimeLogRepository)(nil)
