package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	analyticsapp "github.com/ZaidAbuSamraa/alaml/internal/application/analytics"
)

// AnalyticsHandler handles supplier analytics API endpoints
type AnalyticsHandler struct {
	BaseHandler
	service *analyticsapp.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service *analyticsapp.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetSummary returns ledger totals and the per-supplier breakdown
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	var req analyticsapp.QueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	summary, err := h.service.Summarize(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// GetRecentTransactions returns the newest ledger rows
func (h *AnalyticsHandler) GetRecentTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	transactions, err := h.service.RecentTransactions(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transactions)
}
