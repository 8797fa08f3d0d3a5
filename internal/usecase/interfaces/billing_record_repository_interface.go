package interfaces

import (
	"context"
	"errors"
	"registro_inpi/internal/domain/entities"
)

// ErrBillingNotPending is returned by MarkPaid when the record is not pending
// or is not owned by the given user at commit time.
var ErrBillingNotPending = errors.New("billing record is not pending")

// IBillingRecordRepository abstracts persistence for `billing_records`.
//
// MarkPaid is a compare-and-swap on status=pending AND user_id=userID that
// stamps payment date, method and invoice number in one write.
// GetByID returns a zero-value record (empty ID) when absent.

type IBillingRecordRepository interface {
	GetByID(ctx context.Context, id string) (entities.BillingRecord, error)
	MarkPaid(ctx context.Context, id, userID string, payment entities.Payment) (entities.BillingRecord, error)
	ListByUser(ctx context.Context, userID string) ([]entities.BillingRecord, error)
	ListAll(ctx context.Context) ([]entities.BillingRecord, error)
}
