package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/identity"
)

// EmployeeService provides employee account management
type EmployeeService struct {
	employeeRepo identity.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo identity.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeRequest represents an employee creation request
type CreateEmployeeRequest struct {
	Name       string          `json:"name" binding:"required"`
	Username   string          `json:"username" binding:"required"`
	Password   string          `json:"password" binding:"required"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
	Specialty  string          `json:"specialty"`
}

// UpdateEmployeeRequest represents a partial employee update. A nil password
// leaves the stored hash untouched.
type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"`
	Specialty  *string          `json:"specialty"`
	HourlyWage *decimal.Decimal `json:"hourly_wage"`
	Password   *string          `json:"password"`
}

// CreateEmployee registers a new employee account
func (s *EmployeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*identity.Employee, error) {
	employee, err := identity.NewEmployee(req.Name, req.Username, req.Password, req.HourlyWage, req.Specialty)
	if err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployee loads one employee
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*identity.Employee, error) {
	return s.employeeRepo.FindByID(ctx, id)
}

// ListEmployees returns all employees ordered by name
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]identity.Employee, error) {
	return s.employeeRepo.FindAll(ctx)
}

// UpdateEmployee applies a partial update to an employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*identity.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := employee.Update(req.Name, req.Specialty, req.HourlyWage, req.Password); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes an employee account
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return s.employeeRepo.Delete(ctx, id)
}
