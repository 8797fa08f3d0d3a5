package response

import (
	"time"

	"registro_inpi/internal/domain/entities"
)

type ProcessResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	ProcessType     string     `json:"process_type"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	NextStatuses    []string   `json:"next_statuses"`
	ProcessNumber   string     `json:"process_number,omitempty"`
	PriorityDate    *time.Time `json:"priority_date,omitempty"`
	PublicationDate *time.Time `json:"publication_date,omitempty"`
	TotalCost       float64    `json:"total_cost"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type MonitoringResponse struct {
	ID             string    `json:"id"`
	ProcessID      string    `json:"process_id"`
	StatusChange   string    `json:"status_change"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProcessCreateResponse struct {
	Process ProcessResponse       `json:"process"`
	Billing BillingRecordResponse `json:"billing"`
}

type TransitionResponse struct {
	Process    ProcessResponse    `json:"process"`
	Monitoring MonitoringResponse `json:"monitoring"`
}

func FromProcess(p entities.RegistrationProcess) ProcessResponse {
	next := make([]string, 0)
	for _, s := range p.Status.NextStatuses() {
		next = append(next, string(s))
	}
	return ProcessResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		ProcessType:     string(p.ProcessType),
		Title:           p.Title,
		Description:     p.Description,
		Status:          string(p.Status),
		StatusLabel:     p.Status.Label(),
		NextStatuses:    next,
		ProcessNumber:   p.ProcessNumber,
		PriorityDate:    p.PriorityDate,
		PublicationDate: p.PublicationDate,
		TotalCost:       p.TotalCost.Reais(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromProcesses(items []entities.RegistrationProcess) []ProcessResponse {
	out := make([]ProcessResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProcess(p))
	}
	return out
}

func FromMonitoring(m entities.ProcessMonitoring) MonitoringResponse {
	return MonitoringResponse{
		ID:             m.ID,
		ProcessID:      m.ProcessID,
		StatusChange:   m.StatusChange,
		PreviousStatus: string(m.PreviousStatus),
		NewStatus:      string(m.NewStatus),
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

func FromMonitoringEntries(items []entities.ProcessMonitoring) []MonitoringResponse {
	out := make([]MonitoringResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMonitoring(m))
	}
	return out
}
