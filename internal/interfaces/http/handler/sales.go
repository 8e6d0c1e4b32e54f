package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/ZaidAbuSamraa/alaml/internal/application/sales"
)

// SalesHandler handles sale record API endpoints
type SalesHandler struct {
	BaseHandler
	service *salesapp.Service
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(service *salesapp.Service) *SalesHandler {
	return &SalesHandler{service: service}
}

// CreateSale records a new sale
func (h *SalesHandler) CreateSale(c *gin.Context) {
	var req salesapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	sale, err := h.service.CreateSale(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sale)
}

// ListSales returns all sales with their total
func (h *SalesHandler) ListSales(c *gin.Context) {
	overview, err := h.service.ListSales(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overview)
}

// GetTotal returns the running sales total
func (h *SalesHandler) GetTotal(c *gin.Context) {
	overview, err := h.service.ListSales(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"total": overview.Total})
}

// UpdateSale applies a partial update to a sale
func (h *SalesHandler) UpdateSale(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	var req salesapp.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	sale, err := h.service.UpdateSale(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// DeleteSale removes a sale record
func (h *SalesHandler) DeleteSale(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}
	if err := h.service.DeleteSale(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
