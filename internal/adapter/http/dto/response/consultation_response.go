package response

import (
	"time"

	"registro_inpi/internal/domain/entities"
)

type ConsultationResponse struct {
	ID         string                  `json:"id"`
	UserID     string                  `json:"user_id"`
	SearchTerm string                  `json:"search_term"`
	SearchType string                  `json:"search_type"`
	Status     string                  `json:"status"`
	Results    []entities.SearchResult `json:"results"`
	Cost       float64                 `json:"cost"`
	CreatedAt  time.Time               `json:"created_at"`
}

// ConsultationRunResponse is returned by a new search together with the
// billing record it generated.
type ConsultationRunResponse struct {
	Consultation ConsultationResponse  `json:"consultation"`
	Billing      BillingRecordResponse `json:"billing"`
}

func FromConsultation(c entities.Consultation) ConsultationResponse {
	results := c.Results
	if results == nil {
		results = []entities.SearchResult{}
	}
	return ConsultationResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		SearchTerm: c.SearchTerm,
		SearchType: string(c.SearchType),
		Status:     string(c.Status),
		Results:    results,
		Cost:       c.Cost.Reais(),
		CreatedAt:  c.CreatedAt,
	}
}

func FromConsultations(items []entities.Consultation) []ConsultationResponse {
	out := make([]ConsultationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromConsultation(c))
	}
	return out
}
