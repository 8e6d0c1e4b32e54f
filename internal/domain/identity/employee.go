package identity

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// Employee is a staff member who clocks in and out and earns an hourly wage.
// Employees can log in with the same credentials flow as admin users.
type Employee struct {
	shared.BaseEntity
	Name         string          `json:"name" gorm:"not null"`
	Username     string          `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string          `json:"-" gorm:"column:password;not null"`
	HourlyWage   decimal.Decimal `json:"hourly_wage" gorm:"type:decimal(12,2);not null;default:0"`
	Specialty    string          `json:"specialty"`
}

// TableName specifies the database table name
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates an employee with a hashed password
func NewEmployee(name, username, password string, hourlyWage decimal.Decimal, specialty string) (*Employee, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Employee name is required")
	}
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username is required")
	}
	if hourlyWage.IsNegative() {
		return nil, shared.NewDomainError("INVALID_WAGE", "Hourly wage cannot be negative")
	}
	e := &Employee{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Username:   username,
		HourlyWage: hourlyWage,
		Specialty:  strings.TrimSpace(specialty),
	}
	if err := e.SetPassword(password); err != nil {
		return nil, err
	}
	return e, nil
}

// SetPassword hashes and stores a new password
func (e *Employee) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a password against the stored hash
func (e *Employee) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}

// Update applies partial changes; a nil field leaves the current value
func (e *Employee) Update(name, specialty *string, hourlyWage *decimal.Decimal, password *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return shared.NewDomainError("INVALID_NAME", "Employee name is required")
		}
		e.Name = trimmed
	}
	if specialty != nil {
		e.Specialty = strings.TrimSpace(*specialty)
	}
	if hourlyWage != nil {
		if hourlyWage.IsNegative() {
			return shared.NewDomainError("INVALID_WAGE", "Hourly wage cannot be negative")
		}
		e.HourlyWage = *hourlyWage
	}
	if password != nil {
		if err := e.SetPassword(*password); err != nil {
			return err
		}
	}
	return nil
}
