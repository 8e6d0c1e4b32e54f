package notification

import (
	"github.com/google/uuid"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// Type categorizes what triggered a notification
type Type string

const (
	TypeClockIn         Type = "clock_in"
	TypeClockOut        Type = "clock_out"
	TypeResourceRequest Type = "resource_request"
)

// Notification is an in-app message raised by employee activity, shown to
// the admin until marked as read.
type Notification struct {
	shared.BaseEntity
	EmployeeID uuid.UUID          `json:"employee_id" gorm:"type:uuid;not null;index"`
	Employee   *identity.Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Type       Type               `json:"type" gorm:"not null"`
	Message    string             `json:"message" gorm:"not null"`
	IsRead     bool               `json:"is_read" gorm:"not null;default:false;index"`
}

// TableName specifies the database table name
func (Notification) TableName() string {
	return "notifications"
}

// New creates an unread notification
func New(employeeID uuid.UUID, notificationType Type, message string) *Notification {
	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		EmployeeID: employeeID,
		Type:       notificationType,
		Message:    message,
	}
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	n.IsRead = true
}
