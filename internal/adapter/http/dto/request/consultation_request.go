package request

import "registro_inpi/internal/domain/entities"

// ConsultationRequest runs one registry search.
type ConsultationRequest struct {
	SearchTerm string `json:"search_term" example:"Acme"`
	SearchType string `json:"search_type" example:"trademark"`
}

func (r ConsultationRequest) Type() entities.SearchType {
	return entities.SearchType(r.SearchType)
}
