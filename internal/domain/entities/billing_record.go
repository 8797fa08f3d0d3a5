package entities

import "time"

type BillingStatus string

const (
	BillingStatusPending BillingStatus = "pending"
	BillingStatusPaid    BillingStatus = "paid"
	BillingStatusFailed  BillingStatus = "failed"
)

// ServiceType tells which action originated a billing record.
type ServiceType string

const (
	ServiceTypeConsultation ServiceType = "consultation"
	ServiceTypeRegistration ServiceType = "registration"
	ServiceTypeMonitoring   ServiceType = "monitoring"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// BillingRecord is one payable line item in `billing_records`.
//
// Lifecycle: created pending by a consultation or a process creation, moved
// to paid exactly once. Pending records never expire.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type BillingRecord struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	ConsultationID string        `json:"consultation_id,omitempty"`
	ProcessID      string        `json:"process_id,omitempty"`
	ServiceType    ServiceType   `json:"service_type"`
	Amount         Money         `json:"amount"`
	Status         BillingStatus `json:"status"`
	PaymentDate    *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod  PaymentMethod `json:"payment_method,omitempty"`
	InvoiceNumber  string        `json:"invoice_number,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Payment is the metadata stamped on a record when it becomes paid.
type Payment struct {
	Date          time.Time
	Method        PaymentMethod
	InvoiceNumber string
}
