package entities

import "time"

// SearchType is the kind of INPI catalog being searched.
type SearchType string

const (
	SearchTypeTrademark SearchType = "trademark"
	SearchTypePatent    SearchType = "patent"
	SearchTypeDesign    SearchType = "design"
)

// consultationPrices is the fixed price table for a single search.
var consultationPrices = map[SearchType]Money{
	SearchTypeTrademark: 2500,
	SearchTypePatent:    5000,
	SearchTypeDesign:    3500,
}

// ConsultationCost returns the price of one search and false for unknown types.
func ConsultationCost(t SearchType) (Money, bool) {
	cost, ok := consultationPrices[t]
	return cost, ok
}

func (t SearchType) Valid() bool {
	_, ok := consultationPrices[t]
	return ok
}

type ConsultationStatus string

const (
	ConsultationStatusCompleted  ConsultationStatus = "completed"
	ConsultationStatusProcessing ConsultationStatus = "processing"
	ConsultationStatusFailed     ConsultationStatus = "failed"
)

// SearchResult is one registry entry returned by a consultation.
type SearchResult struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Number    string     `json:"number"`
	Applicant string     `json:"applicant"`
	Class     string     `json:"class,omitempty"`
	Type      SearchType `json:"type"`
}

// Consultation is one search action persisted in `inpi_consultations`.
// It is immutable once created.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type Consultation struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	SearchTerm string             `json:"search_term"`
	SearchType SearchType         `json:"search_type"`
	Status     ConsultationStatus `json:"status"`
	Results    []SearchResult     `json:"results"`
	Cost       Money              `json:"cost"`
	CreatedAt  time.Time          `json:"created_at"`
}
