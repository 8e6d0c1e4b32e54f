package request

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/notification"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/request"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/notify"
)

// Service manages the resource request workflow
type Service struct {
	requestRepo      request.Repository
	employeeRepo     identity.EmployeeRepository
	notificationRepo notification.Repository
	notifier         notify.Notifier
	logger           *zap.Logger
}

// NewService creates a new resource request Service
func NewService(
	requestRepo request.Repository,
	employeeRepo identity.EmployeeRepository,
	notificationRepo notification.Repository,
	notifier notify.Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		requestRepo:      requestRepo,
		employeeRepo:     employeeRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		logger:           logger.Named("request"),
	}
}

// CreateRequest represents a resource request submission
type CreateRequest struct {
	RequestName string `json:"request_name" binding:"required"`
	Description string `json:"description"`
	RequestDate string `json:"request_date" binding:"required,datestr"`
}

// ReviewRequest moves a request through the approval workflow
type ReviewRequest struct {
	Status     request.Status `json:"status" binding:"required"`
	AdminNotes *string        `json:"admin_notes"`
}

// Create submits a pending resource request for an employee and raises an
// admin notification plus a best-effort WhatsApp message.
func (s *Service) Create(ctx context.Context, employeeID uuid.UUID, req CreateRequest) (*request.ResourceRequest, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	r, err := request.New(employeeID, req.RequestName, req.Description, req.RequestDate)
	if err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s requested: %s", employee.Name, r.RequestName)
	if err := s.notificationRepo.Save(ctx, notification.New(employeeID, notification.TypeResourceRequest, message)); err != nil {
		s.logger.Warn("notification write failed", zap.Error(err))
	}
	go func() {
		if err := s.notifier.Send(context.Background(), message); err != nil {
			s.logger.Warn("WhatsApp dispatch failed", zap.Error(err))
		}
	}()

	return r, nil
}

// Get loads one resource request
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*request.ResourceRequest, error) {
	return s.requestRepo.FindByID(ctx, id)
}

// ListAll returns every resource request, newest first
func (s *Service) ListAll(ctx context.Context) ([]request.ResourceRequest, error) {
	return s.requestRepo.FindAll(ctx)
}

// ListByEmployee returns one employee's requests, newest first
func (s *Service) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]request.ResourceRequest, error) {
	return s.requestRepo.FindByEmployee(ctx, employeeID)
}

// Review sets the request status and optional admin notes
func (s *Service) Review(ctx context.Context, id uuid.UUID, req ReviewRequest) (*request.ResourceRequest, error) {
	r, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.SetStatus(req.Status, req.AdminNotes); err != nil {
		return nil, err
	}
	if err := s.requestRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a resource request
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.requestRepo.Delete(ctx, id)
}
