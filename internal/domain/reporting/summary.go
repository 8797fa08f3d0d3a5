package reporting

import (
	"time"

	"registro_inpi/internal/domain/entities"
)

// DefaultMonthsBack is the window of the billing overview chart.
const DefaultMonthsBack = 6

// BillingReport is the per-user billing dashboard.
type BillingReport struct {
	RecordCount   int             `json:"record_count"`
	TotalAmount   entities.Money  `json:"total_amount"`
	PaidAmount    entities.Money  `json:"paid_amount"`
	PendingAmount entities.Money  `json:"pending_amount"`
	PercentPaid   float64         `json:"percent_paid"`
	AverageTicket entities.Money  `json:"average_ticket"`
	ByServiceType []ServiceTotals `json:"by_service_type"`
	Monthly       []MonthBucket   `json:"monthly"`
}

func BuildBillingReport(records []entities.BillingRecord, monthsBack int, reference time.Time) BillingReport {
	return BillingReport{
		RecordCount:   len(records),
		TotalAmount:   TotalAmount(records),
		PaidAmount:    TotalByStatus(records, entities.BillingStatusPaid),
		PendingAmount: TotalByStatus(records, entities.BillingStatusPending),
		PercentPaid:   PercentPaid(records),
		AverageTicket: AverageTicket(records),
		ByServiceType: ServiceTypeBreakdown(records),
		Monthly:       MonthlyBuckets(records, monthsBack, reference),
	}
}

// AdminOverview backs the admin console cards.
type AdminOverview struct {
	TotalUsers               int            `json:"total_users"`
	TotalConsultations       int            `json:"total_consultations"`
	TotalProcesses           int            `json:"total_processes"`
	TotalRevenue             entities.Money `json:"total_revenue"`
	NewUsersThisWeek         int            `json:"new_users_this_week"`
	NewConsultationsThisWeek int            `json:"new_consultations_this_week"`
	NewProcessesThisWeek     int            `json:"new_processes_this_week"`
	RevenueThisWeek          entities.Money `json:"revenue_this_week"`
	ActiveProcesses          int            `json:"active_processes"`
	PendingPayments          int            `json:"pending_payments"`
}

// BuildAdminOverview counts revenue over every billing record, as the
// console shows billed volume rather than cash received.
func BuildAdminOverview(
	users []entities.Profile,
	consultations []entities.Consultation,
	processes []entities.RegistrationProcess,
	billing []entities.BillingRecord,
	reference time.Time,
) AdminOverview {
	o := AdminOverview{
		TotalUsers:         len(users),
		TotalConsultations: len(consultations),
		TotalProcesses:     len(processes),
		TotalRevenue:       TotalAmount(billing),
	}

	o.NewUsersThisWeek = WeekOverWeekDelta(users, func(p entities.Profile) time.Time { return p.CreatedAt }, nil, reference).Count
	o.NewConsultationsThisWeek = WeekOverWeekDelta(consultations, func(c entities.Consultation) time.Time { return c.CreatedAt }, nil, reference).Count
	o.NewProcessesThisWeek = WeekOverWeekDelta(processes, func(p entities.RegistrationProcess) time.Time { return p.CreatedAt }, nil, reference).Count
	o.RevenueThisWeek = WeekOverWeekDelta(billing,
		func(b entities.BillingRecord) time.Time { return b.CreatedAt },
		func(b entities.BillingRecord) entities.Money { return b.Amount },
		reference,
	).Amount

	for _, p := range processes {
		if p.Status.Active() {
			o.ActiveProcesses++
		}
	}
	for _, b := range billing {
		if b.Status == entities.BillingStatusPending {
			o.PendingPayments++
		}
	}
	return o
}
