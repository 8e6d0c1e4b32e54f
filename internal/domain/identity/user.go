package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// Role determines what a logged-in account may do
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User is an administrative account. Staff accounts live on Employee; login
// resolves the username against users first, then employees.
type User struct {
	shared.BaseEntity
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password;not null"`
	Role         Role   `json:"role" gorm:"not null;default:admin"`
}

// TableName specifies the database table name
func (User) TableName() string {
	return "users"
}

// NewUser creates an admin user with a hashed password
func NewUser(username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username is required")
	}
	u := &User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   username,
		Role:       RoleAdmin,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
