package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a use case matches exactly one of
// them through errors.Is, so the HTTP layer can map by kind.
var (
	ErrValidation    = errors.New("validation error")
	ErrAuthorization = errors.New("authorization error")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyPaid   = errors.New("billing record already paid")
	ErrConflict      = errors.New("conflict")
	ErrStore         = errors.New("store error")
	ErrUpstream      = errors.New("upstream error")
)

var (
	ErrInvalidUserID        = fmt.Errorf("%w: user id is required", ErrValidation)
	ErrInvalidSearchTerm    = fmt.Errorf("%w: search term is required", ErrValidation)
	ErrInvalidSearchType    = fmt.Errorf("%w: search type must be trademark, patent or design", ErrValidation)
	ErrInvalidProcessType   = fmt.Errorf("%w: process type must be trademark, patent or design", ErrValidation)
	ErrInvalidProcessTitle  = fmt.Errorf("%w: title is required", ErrValidation)
	ErrInvalidProcessID     = fmt.Errorf("%w: process id is required", ErrValidation)
	ErrInvalidProcessStatus = fmt.Errorf("%w: unknown process status", ErrValidation)
	ErrIllegalTransition    = fmt.Errorf("%w: illegal status transition", ErrValidation)
	ErrInvalidRecordID      = fmt.Errorf("%w: billing record id is required", ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: unsupported payment method", ErrValidation)
	ErrInvalidFullName      = fmt.Errorf("%w: full name is required", ErrValidation)
	ErrInvalidDocument      = fmt.Errorf("%w: document number does not match document type", ErrValidation)

	ErrProcessNotFound = fmt.Errorf("%w: registration process not found", ErrNotFound)
	ErrBillingNotFound = fmt.Errorf("%w: billing record not found", ErrNotFound)
	ErrProfileNotFound = fmt.Errorf("%w: profile not found", ErrNotFound)

	ErrNotRecordOwner  = fmt.Errorf("%w: billing record belongs to another user", ErrAuthorization)
	ErrNotProcessOwner = fmt.Errorf("%w: registration process belongs to another user", ErrAuthorization)
	ErrAdminOnly       = fmt.Errorf("%w: admin role required", ErrAuthorization)

	ErrConcurrentTransition = fmt.Errorf("%w: process status changed concurrently", ErrConflict)
	ErrProfileAlreadyExists = fmt.Errorf("%w: profile already exists", ErrConflict)

	ErrPaymentDeclined      = fmt.Errorf("%w: payment declined by provider", ErrUpstream)
	ErrGatewayNotConfigured = fmt.Errorf("%w: payment gateway not configured", ErrUpstream)
)

// StoreError wraps a persistence failure and keeps the cause.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// upstreamErr keeps err in the chain so callers can still match the cause.
func upstreamErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}
