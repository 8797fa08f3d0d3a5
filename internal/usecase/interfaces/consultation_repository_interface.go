package interfaces

import (
	"context"
	"registro_inpi/internal/domain/entities"
)

// IConsultationRepository abstracts persistence for `inpi_consultations`.
//
// CreateWithBilling must write both rows in a single transaction: either the
// consultation and its billing record exist afterwards, or neither does.

type IConsultationRepository interface {
	CreateWithBilling(ctx context.Context, c entities.Consultation, b entities.BillingRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]entities.Consultation, error)
	ListAll(ctx context.Context) ([]entities.Consultation, error)
}
