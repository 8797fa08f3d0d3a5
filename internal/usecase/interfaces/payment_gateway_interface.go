package interfaces

import (
	"context"
	"registro_inpi/internal/domain/entities"
)

// ChargeRequest is what the billing use case asks a payment provider to collect.
// RecordID doubles as the idempotency key.
type ChargeRequest struct {
	RecordID string
	UserID   string
	Amount   entities.Money
	Method   entities.PaymentMethod
}

// ChargeResult is the provider outcome. ProviderReference is kept for logs only.
type ChargeResult struct {
	ProviderReference string
	Approved          bool
}

// IPaymentGateway abstracts the external payment provider round-trip.
// Implementations must honour ctx cancellation and must collect at most once
// per RecordID: repeated or concurrent charges for the same record return the
// first approval instead of charging again.
type IPaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
