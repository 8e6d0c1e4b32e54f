package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/notification"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/payroll"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/notify"
)

// ErrSessionAlreadyActive is returned when an employee clocks in twice
var ErrSessionAlreadyActive = shared.NewDomainError("SESSION_ALREADY_ACTIVE", "Employee already has an active work session")

// ErrNoActiveSession is returned when an employee clocks out without a session
var ErrNoActiveSession = shared.NewDomainError("SESSION_NOT_ACTIVE", "Employee has no active work session")

// Service manages work sessions and the earnings computed from them
type Service struct {
	timeLogRepo      payroll.TimeLogRepository
	employeeRepo     identity.EmployeeRepository
	notificationRepo notification.Repository
	notifier         notify.Notifier
	logger           *zap.Logger
}

// NewService creates a new payroll Service
func NewService(
	timeLogRepo payroll.TimeLogRepository,
	employeeRepo identity.EmployeeRepository,
	notificationRepo notification.Repository,
	notifier notify.Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		timeLogRepo:      timeLogRepo,
		employeeRepo:     employeeRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		logger:           logger.Named("payroll"),
	}
}

// EarningsSummary totals an employee's completed sessions
type EarningsSummary struct {
	EmployeeID   uuid.UUID       `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	TotalEarned  decimal.Decimal `json:"total_earned"`
	Sessions     int             `json:"sessions"`
}

// ClockIn opens a work session for an employee. At most one session may be
// active per employee.
func (s *Service) ClockIn(ctx context.Context, employeeID uuid.UUID) (*payroll.TimeLog, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if _, err := s.timeLogRepo.FindActive(ctx, employeeID); err == nil {
		return nil, ErrSessionAlreadyActive
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	log := payroll.NewTimeLog(employeeID, time.Now())
	if err := s.timeLogRepo.Save(ctx, log); err != nil {
		return nil, err
	}

	s.raise(ctx, employee, notification.TypeClockIn,
		fmt.Sprintf("%s clocked in", employee.Name))
	return log, nil
}

// ClockOut closes the employee's active session, fixing hours and earnings
// from the wage in effect now.
func (s *Service) ClockOut(ctx context.Context, employeeID uuid.UUID) (*payroll.TimeLog, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	log, err := s.timeLogRepo.FindActive(ctx, employeeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	if err := log.Close(time.Now(), employee.HourlyWage); err != nil {
		return nil, err
	}
	if err := s.timeLogRepo.Save(ctx, log); err != nil {
		return nil, err
	}

	s.raise(ctx, employee, notification.TypeClockOut,
		fmt.Sprintf("%s clocked out after %s hours", employee.Name, log.HoursWorked))
	return log, nil
}

// ActiveSession returns the employee's open session, if any
func (s *Service) ActiveSession(ctx context.Context, employeeID uuid.UUID) (*payroll.TimeLog, error) {
	return s.timeLogRepo.FindActive(ctx, employeeID)
}

// ListSessions returns an employee's sessions, newest first
func (s *Service) ListSessions(ctx context.Context, employeeID uuid.UUID) ([]payroll.TimeLog, error) {
	return s.timeLogRepo.FindByEmployee(ctx, employeeID)
}

// ListAllSessions returns every session across employees
func (s *Service) ListAllSessions(ctx context.Context) ([]payroll.TimeLog, error) {
	return s.timeLogRepo.FindAll(ctx)
}

// TotalEarnings sums every completed session for an employee
func (s *Service) TotalEarnings(ctx context.Context, employeeID uuid.UUID) (*EarningsSummary, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	logs, err := s.timeLogRepo.FindCompleted(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return summarize(employee, logs), nil
}

// MonthlyEarnings sums the completed sessions whose clock-in falls within the
// given month.
func (s *Service) MonthlyEarnings(ctx context.Context, employeeID uuid.UUID, year int, month time.Month) (*EarningsSummary, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	logs, err := s.timeLogRepo.FindCompletedInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	return summarize(employee, logs), nil
}

func summarize(employee *identity.Employee, logs []payroll.TimeLog) *EarningsSummary {
	summary := &EarningsSummary{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		TotalHours:   decimal.Zero,
		TotalEarned:  decimal.Zero,
		Sessions:     len(logs),
	}
	for _, log := range logs {
		if log.HoursWorked != nil {
			summary.TotalHours = summary.TotalHours.Add(*log.HoursWorked)
		}
		if log.EarnedSalary != nil {
			summary.TotalEarned = summary.TotalEarned.Add(*log.EarnedSalary)
		}
	}
	return summary
}

// raise writes an in-app notification and fires a best-effort WhatsApp
// message. Neither failure blocks the clock operation that triggered it.
func (s *Service) raise(ctx context.Context, employee *identity.Employee, notificationType notification.Type, message string) {
	if err := s.notificationRepo.Save(ctx, notification.New(employee.ID, notificationType, message)); err != nil {
		s.logger.Warn("notification write failed", zap.Error(err))
	}
	go func() {
		if err := s.notifier.Send(context.Background(), message); err != nil {
			s.logger.Warn("WhatsApp dispatch failed", zap.Error(err))
		}
	}()
}
