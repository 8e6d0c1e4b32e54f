package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/auth"
)

// ErrInvalidCredentials is returned for any username/password mismatch so the
// response never reveals whether the account exists.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// AuthService authenticates admin users and employees against a shared login
type AuthService struct {
	userRepo     identity.UserRepository
	employeeRepo identity.EmployeeRepository
	jwtService   *auth.JWTService
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	employeeRepo identity.EmployeeRepository,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		logger:       logger.Named("auth"),
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AccountInfo is the authenticated account returned alongside the token
type AccountInfo struct {
	ID          string           `json:"id"`
	Username    string           `json:"username"`
	Name        string           `json:"name,omitempty"`
	Role        string           `json:"role"`
	AccountType auth.AccountType `json:"account_type"`
}

// LoginResponse carries the access token and the account it belongs to
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Account   AccountInfo `json:"account"`
}

// Login resolves the username against admin users first and employees second,
// verifies the password, and issues an access token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		if !user.CheckPassword(req.Password) {
			return nil, ErrInvalidCredentials
		}
		return s.issueToken(auth.GenerateTokenInput{
			UserID:      user.ID,
			Username:    user.Username,
			Role:        string(user.Role),
			AccountType: auth.AccountTypeAdmin,
		})
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	employee, err := s.employeeRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !employee.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(auth.GenerateTokenInput{
		UserID:      employee.ID,
		Username:    employee.Username,
		Name:        employee.Name,
		Role:        string(identity.RoleEmployee),
		AccountType: auth.AccountTypeEmployee,
	})
}

func (s *AuthService) issueToken(input auth.GenerateTokenInput) (*LoginResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateToken(input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("login",
		zap.String("username", input.Username),
		zap.String("account_type", string(input.AccountType)))
	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account: AccountInfo{
			ID:          input.UserID.String(),
			Username:    input.Username,
			Name:        input.Name,
			Role:        input.Role,
			AccountType: input.AccountType,
		},
	}, nil
}

// Validate parses and verifies an access token
func (s *AuthService) Validate(tokenString string) (*auth.Claims, error) {
	return s.jwtService.ValidateToken(tokenString)
}
