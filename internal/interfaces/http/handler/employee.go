package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/ZaidAbuSamraa/alaml/internal/application/identity"
)

// EmployeeHandler handles employee account API endpoints
type EmployeeHandler struct {
	BaseHandler
	service *identityapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(service *identityapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// CreateEmployee registers a new employee account
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req identityapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	employee, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// GetEmployee returns one employee
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	employee, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// ListEmployees returns all employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employees)
}

// UpdateEmployee applies a partial update to an employee
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	var req identityapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	employee, err := h.service.UpdateEmployee(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// DeleteEmployee removes an employee account
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	if err := h.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
