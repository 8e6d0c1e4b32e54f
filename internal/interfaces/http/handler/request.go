package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	requestapp "github.com/ZaidAbuSamraa/alaml/internal/application/request"
	"github.com/ZaidAbuSamraa/alaml/internal/interfaces/http/middleware"
)

// RequestHandler handles resource request API endpoints
type RequestHandler struct {
	BaseHandler
	service *requestapp.Service
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(service *requestapp.Service) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequest submits a resource request for the logged-in employee
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	employeeID, err := claims.GetUserUUID()
	if err != nil {
		h.Unauthorized(c, "Invalid token subject")
		return
	}

	var req requestapp.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	r, err := h.service.Create(c.Request.Context(), employeeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, r)
}

// ListRequests returns all resource requests
func (h *RequestHandler) ListRequests(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// ListEmployeeRequests returns one employee's requests
func (h *RequestHandler) ListEmployeeRequests(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	list, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// ReviewRequest sets a request's status and admin notes
func (h *RequestHandler) ReviewRequest(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}
	var req requestapp.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	r, err := h.service.Review(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, r)
}

// DeleteRequest removes a resource request
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
