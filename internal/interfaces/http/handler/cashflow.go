package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	cashflowapp "github.com/ZaidAbuSamraa/alaml/internal/application/cashflow"
)

// CashflowHandler handles cash-flow projection API endpoints
type CashflowHandler struct {
	BaseHandler
	service *cashflowapp.Service
}

// NewCashflowHandler creates a new CashflowHandler
func NewCashflowHandler(service *cashflowapp.Service) *CashflowHandler {
	return &CashflowHandler{service: service}
}

// GetSettings returns the cash-flow settings
func (h *CashflowHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// UpdateSettings applies a partial settings update
func (h *CashflowHandler) UpdateSettings(c *gin.Context) {
	var req cashflowapp.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	settings, err := h.service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// GetMonth returns the projected ledger for one month
func (h *CashflowHandler) GetMonth(c *gin.Context) {
	entries, err := h.service.ProjectMonth(c.Request.Context(), c.Param("month"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// SetOpeningCash pins a day's opening cash
func (h *CashflowHandler) SetOpeningCash(c *gin.Context) {
	var req cashflowapp.SetOpeningCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	day, err := h.service.SetOpeningCash(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, day)
}

// SetSales overrides a day's sales figure
func (h *CashflowHandler) SetSales(c *gin.Context) {
	var req cashflowapp.SetSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	day, err := h.service.SetSales(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, day)
}

// AddPayment records a payment on a day
func (h *CashflowHandler) AddPayment(c *gin.Context) {
	var req cashflowapp.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	payment, err := h.service.AddPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// UpdateDay applies a partial policy update to a day
func (h *CashflowHandler) UpdateDay(c *gin.Context) {
	var req cashflowapp.UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	day, err := h.service.UpdateDay(c.Request.Context(), c.Param("date"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, day)
}

// DeletePayment removes a payment
func (h *CashflowHandler) DeletePayment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}
	if err := h.service.DeletePayment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPayments returns every recorded payment, newest date first
func (h *CashflowHandler) ListPayments(c *gin.Context) {
	payments, err := h.service.ListAllPayments(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}

// ResetMonth deletes a month's payments and day records
func (h *CashflowHandler) ResetMonth(c *gin.Context) {
	if err := h.service.ResetMonth(c.Request.Context(), c.Param("month")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ExportMonth streams the month's projection as an xlsx workbook
func (h *CashflowHandler) ExportMonth(c *gin.Context) {
	buf, filename, err := h.service.ExportMonth(c.Request.Context(), c.Param("month"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GetBaseCash returns the base-cash singleton
func (h *CashflowHandler) GetBaseCash(c *gin.Context) {
	cash, err := h.service.GetBaseCash(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cash)
}

// UpdateBaseCash updates the base-cash singleton
func (h *CashflowHandler) UpdateBaseCash(c *gin.Context) {
	var req cashflowapp.UpdateBaseCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	cash, err := h.service.UpdateBaseCash(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cash)
}
