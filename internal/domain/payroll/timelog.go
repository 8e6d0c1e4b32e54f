package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// TimeLogStatus tracks a work session's lifecycle
type TimeLogStatus string

const (
	TimeLogStatusActive    TimeLogStatus = "active"
	TimeLogStatusCompleted TimeLogStatus = "completed"
)

// TimeLog is one work session for an employee. At most one session per
// employee may be active at a time; closing it fixes the hours worked and
// the salary earned from the wage in effect at clock-out.
type TimeLog struct {
	shared.BaseEntity
	EmployeeID   uuid.UUID          `json:"employee_id" gorm:"type:uuid;not null;index"`
	Employee     *identity.Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	ClockIn      time.Time          `json:"clock_in" gorm:"not null"`
	ClockOut     *time.Time         `json:"clock_out,omitempty"`
	HoursWorked  *decimal.Decimal   `json:"hours_worked,omitempty" gorm:"type:decimal(12,2)"`
	EarnedSalary *decimal.Decimal   `json:"earned_salary,omitempty" gorm:"type:decimal(12,2)"`
	Status       TimeLogStatus      `json:"status" gorm:"not null;default:active;index"`
}

// TableName specifies the database table name
func (TimeLog) TableName() string {
	return "time_logs"
}

// NewTimeLog opens an active session starting now
func NewTimeLog(employeeID uuid.UUID, clockIn time.Time) *TimeLog {
	return &TimeLog{
		BaseEntity: shared.NewBaseEntity(),
		EmployeeID: employeeID,
		ClockIn:    clockIn,
		Status:     TimeLogStatusActive,
	}
}

// Close ends the session at the given time, computing hours worked and the
// earned salary from the hourly wage, both rounded to 2 decimals.
func (l *TimeLog) Close(clockOut time.Time, hourlyWage decimal.Decimal) error {
	if l.Status != TimeLogStatusActive {
		return shared.NewDomainError("SESSION_NOT_ACTIVE", "Time log is already closed")
	}
	if clockOut.Before(l.ClockIn) {
		return shared.NewDomainError("INVALID_CLOCK_OUT", "Clock-out cannot precede clock-in")
	}

	hours := decimal.NewFromFloat(clockOut.Sub(l.ClockIn).Hours()).Round(2)
	earned := hours.Mul(hourlyWage).Round(2)

	l.ClockOut = &clockOut
	l.HoursWorked = &hours
	l.EarnedSalary = &earned
	l.Status = TimeLogStatusCompleted
	return nil
}
