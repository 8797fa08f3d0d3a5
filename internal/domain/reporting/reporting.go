// Package reporting holds the read-side rollups shown on the billing,
// process and admin dashboards. Every function is pure: same input, same output.
package reporting

import (
	"time"

	"registro_inpi/internal/domain/entities"
)

const week = 7 * 24 * time.Hour

// TotalAmount sums every record regardless of status.
func TotalAmount(records []entities.BillingRecord) entities.Money {
	var total entities.Money
	for _, r := range records {
		total += r.Amount
	}
	return total
}

func TotalByStatus(records []entities.BillingRecord, status entities.BillingStatus) entities.Money {
	var total entities.Money
	for _, r := range records {
		if r.Status == status {
			total += r.Amount
		}
	}
	return total
}

// PercentPaid is paid/total*100, or 0 when nothing was billed.
func PercentPaid(records []entities.BillingRecord) float64 {
	total := TotalAmount(records)
	if total == 0 {
		return 0
	}
	return float64(TotalByStatus(records, entities.BillingStatusPaid)) * 100 / float64(total)
}

// AverageTicket is the integer mean amount per record.
func AverageTicket(records []entities.BillingRecord) entities.Money {
	if len(records) == 0 {
		return 0
	}
	return TotalAmount(records) / entities.Money(len(records))
}

// ServiceTotals is the count and amount billed for one service type.
type ServiceTotals struct {
	ServiceType entities.ServiceType `json:"service_type"`
	Count       int                  `json:"count"`
	Amount      entities.Money       `json:"amount"`
}

var serviceTypeOrder = []entities.ServiceType{
	entities.ServiceTypeConsultation,
	entities.ServiceTypeRegistration,
	entities.ServiceTypeMonitoring,
}

// ServiceTypeBreakdown always returns the three known service types, in a
// fixed order, followed by any unknown type in first-seen order.
func ServiceTypeBreakdown(records []entities.BillingRecord) []ServiceTotals {
	idx := make(map[entities.ServiceType]int, len(serviceTypeOrder))
	out := make([]ServiceTotals, 0, len(serviceTypeOrder))
	for _, st := range serviceTypeOrder {
		idx[st] = len(out)
		out = append(out, ServiceTotals{ServiceType: st})
	}
	for _, r := range records {
		i, ok := idx[r.ServiceType]
		if !ok {
			i = len(out)
			idx[r.ServiceType] = i
			out = append(out, ServiceTotals{ServiceType: r.ServiceType})
		}
		out[i].Count++
		out[i].Amount += r.Amount
	}
	return out
}

// CountByTypeAndStatus groups processes by type, then by status.
func CountByTypeAndStatus(processes []entities.RegistrationProcess) map[entities.ProcessType]map[entities.ProcessStatus]int {
	out := make(map[entities.ProcessType]map[entities.ProcessStatus]int)
	for _, p := range processes {
		byStatus, ok := out[p.ProcessType]
		if !ok {
			byStatus = make(map[entities.ProcessStatus]int)
			out[p.ProcessType] = byStatus
		}
		byStatus[p.Status]++
	}
	return out
}

// ProcessSummary backs the process statistics cards.
type ProcessSummary struct {
	Total      int                          `json:"total"`
	Draft      int                          `json:"draft"`
	Active     int                          `json:"active"`
	Completed  int                          `json:"completed"`
	Rejected   int                          `json:"rejected"`
	Investment entities.Money               `json:"investment"`
	ByType     map[entities.ProcessType]int `json:"by_type"`
}

func SummarizeProcesses(processes []entities.RegistrationProcess) ProcessSummary {
	s := ProcessSummary{
		Total: len(processes),
		ByType: map[entities.ProcessType]int{
			entities.ProcessTypeTrademark: 0,
			entities.ProcessTypePatent:    0,
			entities.ProcessTypeDesign:    0,
		},
	}
	for _, p := range processes {
		switch {
		case p.Status == entities.ProcessStatusDraft:
			s.Draft++
		case p.Status.Active():
			s.Active++
		case p.Status.Completed():
			s.Completed++
		case p.Status == entities.ProcessStatusRejected:
			s.Rejected++
		}
		s.Investment += p.TotalCost
		s.ByType[p.ProcessType]++
	}
	return s
}

// Delta is what happened in the trailing week.
type Delta struct {
	Count  int            `json:"count"`
	Amount entities.Money `json:"amount"`
}

// WeekOverWeekDelta counts (and, when amount is non-nil, sums) the items
// created strictly after reference minus seven days.
func WeekOverWeekDelta[T any](items []T, createdAt func(T) time.Time, amount func(T) entities.Money, reference time.Time) Delta {
	cutoff := reference.Add(-week)
	var d Delta
	for _, it := range items {
		if !createdAt(it).After(cutoff) {
			continue
		}
		d.Count++
		if amount != nil {
			d.Amount += amount(it)
		}
	}
	return d
}

// MonthBucket aggregates the records created in one calendar month (UTC).
type MonthBucket struct {
	Month   time.Time      `json:"month"`
	Label   string         `json:"label"`
	Total   entities.Money `json:"total"`
	Paid    entities.Money `json:"paid"`
	Pending entities.Money `json:"pending"`
}

// MonthlyBuckets returns monthsBack buckets ending with reference's month,
// oldest first. Failed records count towards Total only.
func MonthlyBuckets(records []entities.BillingRecord, monthsBack int, reference time.Time) []MonthBucket {
	if monthsBack <= 0 {
		return []MonthBucket{}
	}
	ref := reference.UTC()
	current := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	first := current.AddDate(0, -(monthsBack - 1), 0)

	buckets := make([]MonthBucket, monthsBack)
	for i := range buckets {
		m := first.AddDate(0, i, 0)
		buckets[i] = MonthBucket{Month: m, Label: m.Format("2006-01")}
	}

	for _, r := range records {
		created := r.CreatedAt.UTC()
		if created.Before(first) || !created.Before(current.AddDate(0, 1, 0)) {
			continue
		}
		i := (created.Year()-first.Year())*12 + int(created.Month()) - int(first.Month())
		b := &buckets[i]
		b.Total += r.Amount
		switch r.Status {
		case entities.BillingStatusPaid:
			b.Paid += r.Amount
		case entities.BillingStatusPending:
			b.Pending += r.Amount
		}
	}
	return buckets
}
