package request

import (
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase"
)

type CreateProcessRequest struct {
	ProcessType  string     `json:"process_type" example:"trademark"`
	Title        string     `json:"title" example:"Acme"`
	Description  string     `json:"description"`
	PriorityDate *time.Time `json:"priority_date"`
}

func (r CreateProcessRequest) ToInput() usecase.CreateProcessInput {
	var priority *time.Time
	if r.PriorityDate != nil {
		v := r.PriorityDate.UTC()
		priority = &v
	}
	return usecase.CreateProcessInput{
		ProcessType:  entities.ProcessType(r.ProcessType),
		Title:        r.Title,
		Description:  r.Description,
		PriorityDate: priority,
	}
}

// TransitionStatusRequest moves a process to Status. ProcessNumber is the
// number assigned by the INPI, usually sent with the submission receipt.
type TransitionStatusRequest struct {
	Status        string `json:"status" example:"submitted"`
	Note          string `json:"note"`
	ProcessNumber string `json:"process_number"`
}

func (r TransitionStatusRequest) ToInput() usecase.TransitionInput {
	return usecase.TransitionInput{
		NewStatus:     entities.ProcessStatus(r.Status),
		Note:          r.Note,
		ProcessNumber: r.ProcessNumber,
	}
}
