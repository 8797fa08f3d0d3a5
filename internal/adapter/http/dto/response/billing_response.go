package response

import (
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/domain/reporting"
)

type BillingRecordResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	ConsultationID string     `json:"consultation_id,omitempty"`
	ProcessID      string     `json:"process_id,omitempty"`
	ServiceType    string     `json:"service_type"`
	Amount         float64    `json:"amount"`
	Status         string     `json:"status"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
	PaymentMethod  string     `json:"payment_method,omitempty"`
	InvoiceNumber  string     `json:"invoice_number,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromBillingRecord(b entities.BillingRecord) BillingRecordResponse {
	return BillingRecordResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		ConsultationID: b.ConsultationID,
		ProcessID:      b.ProcessID,
		ServiceType:    string(b.ServiceType),
		Amount:         b.Amount.Reais(),
		Status:         string(b.Status),
		PaymentDate:    b.PaymentDate,
		PaymentMethod:  string(b.PaymentMethod),
		InvoiceNumber:  b.InvoiceNumber,
		CreatedAt:      b.CreatedAt,
	}
}

func FromBillingRecords(items []entities.BillingRecord) []BillingRecordResponse {
	out := make([]BillingRecordResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBillingRecord(b))
	}
	return out
}

type ServiceTotalsResponse struct {
	ServiceType string  `json:"service_type"`
	Count       int     `json:"count"`
	Amount      float64 `json:"amount"`
}

type MonthBucketResponse struct {
	Month   string  `json:"month"`
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}

type BillingReportResponse struct {
	RecordCount   int                     `json:"record_count"`
	TotalAmount   float64                 `json:"total_amount"`
	PaidAmount    float64                 `json:"paid_amount"`
	PendingAmount float64                 `json:"pending_amount"`
	PercentPaid   float64                 `json:"percent_paid"`
	AverageTicket float64                 `json:"average_ticket"`
	ByServiceType []ServiceTotalsResponse `json:"by_service_type"`
	Monthly       []MonthBucketResponse   `json:"monthly"`
}

func FromBillingReport(r reporting.BillingReport) BillingReportResponse {
	out := BillingReportResponse{
		RecordCount:   r.RecordCount,
		TotalAmount:   r.TotalAmount.Reais(),
		PaidAmount:    r.PaidAmount.Reais(),
		PendingAmount: r.PendingAmount.Reais(),
		PercentPaid:   r.PercentPaid,
		AverageTicket: r.AverageTicket.Reais(),
		ByServiceType: make([]ServiceTotalsResponse, 0, len(r.ByServiceType)),
		Monthly:       make([]MonthBucketResponse, 0, len(r.Monthly)),
	}
	for _, s := range r.ByServiceType {
		out.ByServiceType = append(out.ByServiceType, ServiceTotalsResponse{
			ServiceType: string(s.ServiceType),
			Count:       s.Count,
			Amount:      s.Amount.Reais(),
		})
	}
	for _, m := range r.Monthly {
		out.Monthly = append(out.Monthly, MonthBucketResponse{
			Month:   m.Label,
			Total:   m.Total.Reais(),
			Paid:    m.Paid.Reais(),
			Pending: m.Pending.Reais(),
		})
	}
	return out
}
