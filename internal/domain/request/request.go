package request

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// Status is the approval state of a resource request
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ResourceRequest is an employee's ask for supplies or equipment, reviewed
// by the admin.
type ResourceRequest struct {
	shared.BaseEntity
	RequestName string             `json:"request_name" gorm:"not null"`
	Description string             `json:"description" gorm:"not null"`
	RequestDate string             `json:"request_date" gorm:"type:char(10);not null"`
	Status      Status             `json:"status" gorm:"not null;default:pending;index"`
	AdminNotes  string             `json:"admin_notes"`
	EmployeeID  uuid.UUID          `json:"employee_id" gorm:"type:uuid;not null;index"`
	Employee    *identity.Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName specifies the database table name
func (ResourceRequest) TableName() string {
	return "resource_requests"
}

// New creates a pending resource request
func New(employeeID uuid.UUID, requestName, description, requestDate string) (*ResourceRequest, error) {
	requestName = strings.TrimSpace(requestName)
	if requestName == "" {
		return nil, shared.NewDomainError("INVALID_REQUEST_NAME", "Request name is required")
	}
	return &ResourceRequest{
		BaseEntity:  shared.NewBaseEntity(),
		RequestName: requestName,
		Description: description,
		RequestDate: requestDate,
		Status:      StatusPending,
		EmployeeID:  employeeID,
	}, nil
}

// SetStatus moves the request through the review workflow
func (r *ResourceRequest) SetStatus(status Status, adminNotes *string) error {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown request status")
	}
	r.Status = status
	if adminNotes != nil {
		r.AdminNotes = *adminNotes
	}
	return nil
}
