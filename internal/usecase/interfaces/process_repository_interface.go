package interfaces

import (
	"context"
	"errors"
	"registro_inpi/internal/domain/entities"
)

// ErrStatusConflict is returned by UpdateStatus when the stored status no
// longer matches the expected previous status.
var ErrStatusConflict = errors.New("process status changed concurrently")

// IProcessRepository abstracts persistence for `registration_processes` and
// its append-only `process_monitoring` history.
//
// Requirements:
//   - CreateWithBilling writes process, first monitoring entry and billing
//     record in one transaction.
//   - UpdateStatus is a compare-and-swap on status: the update and the
//     monitoring append commit together only if the stored status equals
//     `from`; otherwise ErrStatusConflict and nothing is written.
//   - GetByID returns a zero-value process (empty ID) when absent.

type IProcessRepository interface {
	CreateWithBilling(ctx context.Context, p entities.RegistrationProcess, entry entities.ProcessMonitoring, b entities.BillingRecord) error
	GetByID(ctx context.Context, id string) (entities.RegistrationProcess, error)
	UpdateStatus(ctx context.Context, updated entities.RegistrationProcess, from entities.ProcessStatus, entry entities.ProcessMonitoring) error
	ListByUser(ctx context.Context, userID string) ([]entities.RegistrationProcess, error)
	ListAll(ctx context.Context) ([]entities.RegistrationProcess, error)
	ListMonitoring(ctx context.Context, processID string) ([]entities.ProcessMonitoring, error)
	ListRecentMonitoring(ctx context.Context, limit int) ([]entities.MonitoringActivity, error)
}
