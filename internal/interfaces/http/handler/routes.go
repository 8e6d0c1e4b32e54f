package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ZaidAbuSamraa/alaml/internal/interfaces/http/middleware"
)

// RegisterRoutes mounts the auth endpoints
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", h.Me)
	}
}

// RegisterRoutes mounts the cash-flow endpoints
func (h *CashflowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cashflow := rg.Group("/cashflow")
	{
		cashflow.GET("/settings", h.GetSettings)
		cashflow.PUT("/settings", h.UpdateSettings)
		cashflow.GET("/month/:month", h.GetMonth)
		cashflow.POST("/opening-cash", h.SetOpeningCash)
		cashflow.POST("/sales", h.SetSales)
		cashflow.POST("/payment", h.AddPayment)
		cashflow.GET("/payments", h.ListPayments)
		cashflow.DELETE("/payment/:id", h.DeletePayment)
		cashflow.PUT("/day/:date", h.UpdateDay)
		cashflow.DELETE("/reset/:month", h.ResetMonth)
		cashflow.GET("/export/:month", h.ExportMonth)
		cashflow.GET("/cash", h.GetBaseCash)
		cashflow.PUT("/cash", h.UpdateBaseCash)
	}
}

// RegisterRoutes mounts the supplier endpoints
func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.CreateSupplier)
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:id", h.GetSupplier)
		suppliers.PUT("/:id", h.UpdateSupplier)
		suppliers.DELETE("/:id", h.DeleteSupplier)
		suppliers.POST("/:id/invoices", h.CreateInvoice)
		suppliers.POST("/:id/payments", h.CreatePayment)
		suppliers.GET("/:id/cashflow-notes", h.ListCashflowNotes)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
	}

	payments := rg.Group("/supplier-payments")
	{
		payments.PUT("/:id", h.UpdatePayment)
		payments.DELETE("/:id", h.DeletePayment)
	}
}

// RegisterRoutes mounts the analytics endpoints
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.GetSummary)
	rg.GET("/analytics/recent", h.GetRecentTransactions)
}

// RegisterRoutes mounts the employee endpoints, admin only
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees", middleware.AdminOnly())
	{
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
	}
}

// RegisterRoutes mounts the work session endpoints
func (h *TimeLogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	timeLogs := rg.Group("/time-logs")
	{
		timeLogs.POST("/clock-in", h.ClockIn)
		timeLogs.POST("/clock-out", h.ClockOut)
		timeLogs.GET("", h.ListAllSessions)
		timeLogs.GET("/active/:employeeId", h.GetActiveSession)
		timeLogs.GET("/employee/:employeeId", h.ListEmployeeSessions)
		timeLogs.GET("/earnings/:employeeId", h.GetEarnings)
	}
}

// RegisterRoutes mounts the sale endpoints
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.CreateSale)
		sales.GET("", h.ListSales)
		sales.GET("/total", h.GetTotal)
		sales.PUT("/:id", h.UpdateSale)
		sales.DELETE("/:id", h.DeleteSale)
	}
}

// RegisterRoutes mounts the notification endpoints
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.GET("/unread", h.ListUnread)
		notifications.GET("/unread/count", h.GetUnreadCount)
		notifications.PUT("/:id/read", h.MarkRead)
		notifications.PUT("/read-all", h.MarkAllRead)
	}
}

// RegisterRoutes mounts the resource request endpoints
func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.GET("/employee/:employeeId", h.ListEmployeeRequests)
		requests.PUT("/:id/status", h.ReviewRequest)
		requests.DELETE("/:id", h.DeleteRequest)
	}
}
