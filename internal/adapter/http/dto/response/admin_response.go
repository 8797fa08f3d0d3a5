package response

import (
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/domain/reporting"
)

type AdminOverviewResponse struct {
	TotalUsers               int     `json:"total_users"`
	TotalConsultations       int     `json:"total_consultations"`
	TotalProcesses           int     `json:"total_processes"`
	TotalRevenue             float64 `json:"total_revenue"`
	NewUsersThisWeek         int     `json:"new_users_this_week"`
	NewConsultationsThisWeek int     `json:"new_consultations_this_week"`
	NewProcessesThisWeek     int     `json:"new_processes_this_week"`
	RevenueThisWeek          float64 `json:"revenue_this_week"`
	ActiveProcesses          int     `json:"active_processes"`
	PendingPayments          int     `json:"pending_payments"`
}

func FromAdminOverview(o reporting.AdminOverview) AdminOverviewResponse {
	return AdminOverviewResponse{
		TotalUsers:               o.TotalUsers,
		TotalConsultations:       o.TotalConsultations,
		TotalProcesses:           o.TotalProcesses,
		TotalRevenue:             o.TotalRevenue.Reais(),
		NewUsersThisWeek:         o.NewUsersThisWeek,
		NewConsultationsThisWeek: o.NewConsultationsThisWeek,
		NewProcessesThisWeek:     o.NewProcessesThisWeek,
		RevenueThisWeek:          o.RevenueThisWeek.Reais(),
		ActiveProcesses:          o.ActiveProcesses,
		PendingPayments:          o.PendingPayments,
	}
}

type ActivityResponse struct {
	MonitoringResponse
	ProcessTitle string `json:"process_title"`
	UserID       string `json:"user_id"`
}

func FromActivity(items []entities.MonitoringActivity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ActivityResponse{
			MonitoringResponse: FromMonitoring(a.ProcessMonitoring),
			ProcessTitle:       a.ProcessTitle,
			UserID:             a.UserID,
		})
	}
	return out
}
