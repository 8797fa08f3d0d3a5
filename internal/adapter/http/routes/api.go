package routes

import (
	"registro_inpi/internal/adapter/http/handlers"
	"registro_inpi/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathConsultations = "/consultations"
	PathProcesses     = "/processes"
	PathBilling       = "/billing"
	PathProfile       = "/profile"
	PathAdmin         = "/admin"
)

func addPingRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET(PathPing, h.Ping)
}

func addConsultationRoutes(rg *gin.RouterGroup, h *handlers.ConsultationHandler) {
	consultations := rg.Group(PathConsultations)
	{
		consultations.POST("", h.RunConsultation)
		consultations.GET("", h.ListConsultations)
	}
}

func addProcessRoutes(rg *gin.RouterGroup, h *handlers.ProcessHandler) {
	processes := rg.Group(PathProcesses)
	{
		processes.POST("", h.CreateProcess)
		processes.GET("", h.ListProcesses)
		processes.GET("/:id", h.GetProcess)
		processes.GET("/:id/history", h.GetProcessHistory)
		processes.PATCH("/:id/status", h.TransitionStatus)
	}
}

func addBillingRoutes(rg *gin.RouterGroup, h *handlers.BillingHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.GET("", h.ListBilling)
		billing.GET("/report", h.GetBillingReport)
		billing.POST("/:id/pay", h.PayBillingRecord)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, h *handlers.ProfileHandler) {
	profile := rg.Group(PathProfile)
	{
		profile.POST("", h.RegisterProfile)
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}

// Admin routes are rejected before reaching the use case, which checks again.
func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireAdmin())
	{
		admin.GET("/overview", h.GetOverview)
		admin.GET("/activity", h.GetRecentActivity)
		admin.GET("/users", h.ListUsers)
	}
}
