package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	payrollapp "github.com/ZaidAbuSamraa/alaml/internal/application/payroll"
	"github.com/ZaidAbuSamraa/alaml/internal/interfaces/http/middleware"
)

// TimeLogHandler handles work session API endpoints
type TimeLogHandler struct {
	BaseHandler
	service *payrollapp.Service
}

// NewTimeLogHandler creates a new TimeLogHandler
func NewTimeLogHandler(service *payrollapp.Service) *TimeLogHandler {
	return &TimeLogHandler{service: service}
}

// currentEmployeeID resolves the acting employee from the token
func (h *TimeLogHandler) currentEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}
	id, err := claims.GetUserUUID()
	if err != nil {
		h.Unauthorized(c, "Invalid token subject")
		return uuid.Nil, false
	}
	return id, true
}

// ClockIn opens a work session for the logged-in employee
func (h *TimeLogHandler) ClockIn(c *gin.Context) {
	employeeID, ok := h.currentEmployeeID(c)
	if !ok {
		return
	}
	log, err := h.service.ClockIn(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, log)
}

// ClockOut closes the logged-in employee's active session
func (h *TimeLogHandler) ClockOut(c *gin.Context) {
	employeeID, ok := h.currentEmployeeID(c)
	if !ok {
		return
	}
	log, err := h.service.ClockOut(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, log)
}

// GetActiveSession returns an employee's open session
func (h *TimeLogHandler) GetActiveSession(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	log, err := h.service.ActiveSession(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, log)
}

// ListAllSessions returns every work session
func (h *TimeLogHandler) ListAllSessions(c *gin.Context) {
	logs, err := h.service.ListAllSessions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}

// ListEmployeeSessions returns one employee's sessions
func (h *TimeLogHandler) ListEmployeeSessions(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	logs, err := h.service.ListSessions(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}

// GetEarnings returns an employee's total earnings, optionally narrowed to a
// month via ?year=&month= query parameters.
func (h *TimeLogHandler) GetEarnings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" && monthStr == "" {
		summary, err := h.service.TotalEarnings(c.Request.Context(), id)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, summary)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.BadRequest(c, "Invalid month")
		return
	}

	summary, err := h.service.MonthlyEarnings(c.Request.Context(), id, year, time.Month(month))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
