package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/ZaidAbuSamraa/alaml/internal/application/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication API endpoints
type AuthHandler struct {
	BaseHandler
	service *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates an admin user or employee and issues a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Me returns the account behind the presented token
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	h.Success(c, identityapp.AccountInfo{
		ID:          claims.UserID,
		Username:    claims.Username,
		Name:        claims.Name,
		Role:        claims.Role,
		AccountType: claims.AccountType,
	})
}
