package entities

import (
	"fmt"
	"time"
)

// ProcessMonitoring is one append-only audit entry of a process status change.
// PreviousStatus is empty for the creation entry.
//
// Storage model (DynamoDB):
//   - PK: process_id
//   - SK: sk (fixed-width UTC created_at + "#" + id), so a query returns history in order
type ProcessMonitoring struct {
	ID             string        `json:"id"`
	ProcessID      string        `json:"process_id"`
	StatusChange   string        `json:"status_change"`
	PreviousStatus ProcessStatus `json:"previous_status,omitempty"`
	NewStatus      ProcessStatus `json:"new_status"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// MonitoringActivity is a monitoring entry joined with its process, used by
// the admin activity feed.
type MonitoringActivity struct {
	ProcessMonitoring
	ProcessTitle string `json:"process_title"`
	UserID       string `json:"user_id"`
}

const (
	StatusChangeCreated = "Processo criado como rascunho"
	NotesCreatedByUser  = "Processo iniciado pelo usuário"
)

// DescribeStatusChange renders the human readable transition text.
func DescribeStatusChange(from, to ProcessStatus) string {
	if from == "" {
		return StatusChangeCreated
	}
	return fmt.Sprintf("Status alterado de %s para %s", from.Label(), to.Label())
}
