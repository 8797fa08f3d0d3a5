package entities

import "time"

// ProcessType is the kind of IP asset being registered.
type ProcessType string

const (
	ProcessTypeTrademark ProcessType = "trademark"
	ProcessTypePatent    ProcessType = "patent"
	ProcessTypeDesign    ProcessType = "design"
)

// processBaseCosts holds the registration fee per process type.
var processBaseCosts = map[ProcessType]Money{
	ProcessTypeTrademark: 35500,
	ProcessTypePatent:    87500,
	ProcessTypeDesign:    18000,
}

func ProcessBaseCost(t ProcessType) (Money, bool) {
	cost, ok := processBaseCosts[t]
	return cost, ok
}

func (t ProcessType) Valid() bool {
	_, ok := processBaseCosts[t]
	return ok
}

// ProcessStatus represents the lifecycle of a registration process.
//
//	draft -> submitted -> under_review -> approved -> published
//	                                   \-> rejected
//
// rejected and published are terminal.
type ProcessStatus string

const (
	ProcessStatusDraft       ProcessStatus = "draft"
	ProcessStatusSubmitted   ProcessStatus = "submitted"
	ProcessStatusUnderReview ProcessStatus = "under_review"
	ProcessStatusApproved    ProcessStatus = "approved"
	ProcessStatusRejected    ProcessStatus = "rejected"
	ProcessStatusPublished   ProcessStatus = "published"
)

var processTransitions = map[ProcessStatus][]ProcessStatus{
	ProcessStatusDraft:       {ProcessStatusSubmitted},
	ProcessStatusSubmitted:   {ProcessStatusUnderReview},
	ProcessStatusUnderReview: {ProcessStatusApproved, ProcessStatusRejected},
	ProcessStatusApproved:    {ProcessStatusPublished},
	ProcessStatusRejected:    nil,
	ProcessStatusPublished:   nil,
}

var processStatusLabels = map[ProcessStatus]string{
	ProcessStatusDraft:       "Rascunho",
	ProcessStatusSubmitted:   "Submetido",
	ProcessStatusUnderReview: "Em análise",
	ProcessStatusApproved:    "Aprovado",
	ProcessStatusRejected:    "Rejeitado",
	ProcessStatusPublished:   "Publicado",
}

func (s ProcessStatus) Valid() bool {
	_, ok := processTransitions[s]
	return ok
}

func (s ProcessStatus) Terminal() bool {
	return s.Valid() && len(processTransitions[s]) == 0
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s ProcessStatus) CanTransitionTo(next ProcessStatus) bool {
	for _, allowed := range processTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns a copy of the legal successors of s.
func (s ProcessStatus) NextStatuses() []ProcessStatus {
	next := processTransitions[s]
	out := make([]ProcessStatus, len(next))
	copy(out, next)
	return out
}

// Active is true while the INPI is handling the process.
func (s ProcessStatus) Active() bool {
	return s == ProcessStatusSubmitted || s == ProcessStatusUnderReview
}

// Completed is true once the registry granted the process.
func (s ProcessStatus) Completed() bool {
	return s == ProcessStatusApproved || s == ProcessStatusPublished
}

func (s ProcessStatus) Label() string {
	if l, ok := processStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// RegistrationProcess is a registration matter in `registration_processes`.
// Status only changes together with a ProcessMonitoring append.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type RegistrationProcess struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	ProcessType     ProcessType   `json:"process_type"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Status          ProcessStatus `json:"status"`
	ProcessNumber   string        `json:"process_number,omitempty"`
	PriorityDate    *time.Time    `json:"priority_date,omitempty"`
	PublicationDate *time.Time    `json:"publication_date,omitempty"`
	TotalCost       Money         `json:"total_cost"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
