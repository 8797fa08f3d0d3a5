package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"
)

// ErrDuplicateID is returned when a create would overwrite an existing row.
var ErrDuplicateID = errors.New("duplicate id")

// Store keeps every table behind one mutex, so a compound write either lands
// completely or not at all. Values are copied in and out.
type Store struct {
	mu sync.RWMutex

	profiles      map[string]entities.Profile
	consultations map[string]entities.Consultation
	processes     map[string]entities.RegistrationProcess
	monitoring    map[string][]entities.ProcessMonitoring
	billing       map[string]entities.BillingRecord
}

func New() *Store {
	return &Store{
		profiles:      make(map[string]entities.Profile),
		consultations: make(map[string]entities.Consultation),
		processes:     make(map[string]entities.RegistrationProcess),
		monitoring:    make(map[string][]entities.ProcessMonitoring),
		billing:       make(map[string]entities.BillingRecord),
	}
}

func (s *Store) Consultations() *ConsultationRepository { return &ConsultationRepository{s: s} }
func (s *Store) Processes() *ProcessRepository { return &ProcessRepository{s: s} }
func (s *Store) Billing() *BillingRecordRepository { return &BillingRecordRepository{s: s} }
func (s *Store) Profiles() *ProfileRepository { return &ProfileRepository{s: s} }

// Ping is the readiness check of the memory driver.
func (s *Store) Ping(context.Context) error { return nil }

// checkBillingFree must be called with the write lock held.
func (s *Store) checkBillingFree(id string) error {
	if _, exists := s.billing[id]; exists {
		return fmt.Errorf("billing record %s: %w", id, ErrDuplicateID)
	}
	return nil
}

// Consultations

type ConsultationRepository struct{ s *Store }

var _ interfaces.IConsultationRepository = (*ConsultationRepository)(nil)

func (r *ConsultationRepository) CreateWithBilling(ctx context.Context, c entities.Consultation, b entities.BillingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.consultations[c.ID]; exists {
		return fmt.Errorf("consultation %s: %w", c.ID, ErrDuplicateID)
	}
	if err := r.s.checkBillingFree(b.ID); err != nil {
		return err
	}
	r.s.consultations[c.ID] = cloneConsultation(c)
	r.s.billing[b.ID] = cloneBilling(b)
	return nil
}

func (r *ConsultationRepository) ListByUser(_ context.Context, userID string, limit int) ([]entities.Consultation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Consultation, 0)
	for _, c := range r.s.consultations {
		if c.UserID == userID {
			out = append(out, cloneConsultation(c))
		}
	}
	sortNewestFirst(out, func(c entities.Consultation) (int64, string) { return c.CreatedAt.UnixNano(), c.ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ConsultationRepository) ListAll(_ context.Context) ([]entities.Consultation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Consultation, 0, len(r.s.consultations))
	for _, c := range r.s.consultations {
		out = append(out, cloneConsultation(c))
	}
	sortNewestFirst(out, func(c entities.Consultation) (int64, string) { return c.CreatedAt.UnixNano(), c.ID })
	return out, nil
}

// Processes

type ProcessRepository struct{ s *Store }

var _ interfaces.IProcessRepository = (*ProcessRepository)(nil)

func (r *ProcessRepository) CreateWithBilling(ctx context.Context, p entities.RegistrationProcess, m entities.ProcessMonitoring, b entities.BillingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.processes[p.ID]; exists {
		return fmt.Errorf("process %s: %w", p.ID, ErrDuplicateID)
	}
	if err := r.s.checkBillingFree(b.ID); err != nil {
		return err
	}
	r.s.processes[p.ID] = cloneProcess(p)
	r.s.monitoring[p.ID] = []entities.ProcessMonitoring{m}
	r.s.billing[b.ID] = cloneBilling(b)
	return nil
}

func (r *ProcessRepository) GetByID(_ context.Context, id string) (entities.RegistrationProcess, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.processes[id]
	if !ok {
		return entities.RegistrationProcess{}, nil
	}
	return cloneProcess(p), nil
}

func (r *ProcessRepository) UpdateStatus(ctx context.Context, updated entities.RegistrationProcess, from entities.ProcessStatus, m entities.ProcessMonitoring) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.processes[updated.ID]
	if !ok || current.Status != from {
		return interfaces.ErrStatusConflict
	}
	r.s.processes[updated.ID] = cloneProcess(updated)
	r.s.monitoring[updated.ID] = append(r.s.monitoring[updated.ID], m)
	return nil
}

func (r *ProcessRepository) ListByUser(_ context.Context, userID string) ([]entities.RegistrationProcess, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.RegistrationProcess, 0)
	for _, p := range r.s.processes {
		if p.UserID == userID {
			out = append(out, cloneProcess(p))
		}
	}
	sortNewestFirst(out, func(p entities.RegistrationProcess) (int64, string) { return p.CreatedAt.UnixNano(), p.ID })
	return out, nil
}

func (r *ProcessRepository) ListAll(_ context.Context) ([]entities.RegistrationProcess, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.RegistrationProcess, 0, len(r.s.processes))
	for _, p := range r.s.processes {
		out = append(out, cloneProcess(p))
	}
	sortNewestFirst(out, func(p entities.RegistrationProcess) (int64, string) { return p.CreatedAt.UnixNano(), p.ID })
	return out, nil
}

func (r *ProcessRepository) ListMonitoring(_ context.Context, processID string) ([]entities.ProcessMonitoring, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.monitoring[processID]
	out := make([]entities.ProcessMonitoring, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ProcessRepository) ListRecentMonitoring(_ context.Context, limit int) ([]entities.MonitoringActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.MonitoringActivity, 0)
	for processID, entries := range r.s.monitoring {
		p := r.s.processes[processID]
		for _, m := range entries {
			out = append(out, entities.MonitoringActivity{ProcessMonitoring: m, ProcessTitle: p.Title, UserID: p.UserID})
		}
	}
	sortNewestFirst(out, func(a entities.MonitoringActivity) (int64, string) { return a.CreatedAt.UnixNano(), a.ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Billing

type BillingRecordRepository struct{ s *Store }

var _ interfaces.IBillingRecordRepository = (*BillingRecordRepository)(nil)

func (r *BillingRecordRepository) GetByID(_ context.Context, id string) (entities.BillingRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.billing[id]
	if !ok {
		return entities.BillingRecord{}, nil
	}
	return cloneBilling(b), nil
}

func (r *BillingRecordRepository) MarkPaid(ctx context.Context, id, userID string, payment entities.Payment) (entities.BillingRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.BillingRecord{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.billing[id]
	if !ok || b.UserID != userID || b.Status != entities.BillingStatusPending {
		return entities.BillingRecord{}, interfaces.ErrBillingNotPending
	}
	paidAt := payment.Date
	b.Status = entities.BillingStatusPaid
	b.PaymentDate = &paidAt
	b.PaymentMethod = payment.Method
	b.InvoiceNumber = payment.InvoiceNumber
	r.s.billing[id] = b
	return cloneBilling(b), nil
}

func (r *BillingRecordRepository) ListByUser(_ context.Context, userID string) ([]entities.BillingRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.BillingRecord, 0)
	for _, b := range r.s.billing {
		if b.UserID == userID {
			out = append(out, cloneBilling(b))
		}
	}
	sortNewestFirst(out, func(b entities.BillingRecord) (int64, string) { return b.CreatedAt.UnixNano(), b.ID })
	return out, nil
}

func (r *BillingRecordRepository) ListAll(_ context.Context) ([]entities.BillingRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.BillingRecord, 0, len(r.s.billing))
	for _, b := range r.s.billing {
		out = append(out, cloneBilling(b))
	}
	sortNewestFirst(out, func(b entities.BillingRecord) (int64, string) { return b.CreatedAt.UnixNano(), b.ID })
	return out, nil
}

// Profiles

type ProfileRepository struct{ s *Store }

var _ interfaces.IProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) Create(ctx context.Context, p entities.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.profiles[p.ID]; exists {
		return interfaces.ErrProfileExists
	}
	r.s.profiles[p.ID] = p
	return nil
}

func (r *ProfileRepository) GetByID(_ context.Context, id string) (entities.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.profiles[id], nil
}

// Update replaces an existing profile; a missing one yields the zero value.
func (r *ProfileRepository) Update(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	if err := ctx.Err(); err != nil {
		return entities.Profile{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.profiles[p.ID]; !exists {
		return entities.Profile{}, nil
	}
	r.s.profiles[p.ID] = p
	return p, nil
}

func (r *ProfileRepository) ListAll(_ context.Context) ([]entities.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Profile, 0, len(r.s.profiles))
	for _, p := range r.s.profiles {
		out = append(out, p)
	}
	sortNewestFirst(out, func(p entities.Profile) (int64, string) { return p.CreatedAt.UnixNano(), p.ID })
	return out, nil
}

// sortNewestFirst orders by creation time descending, ties broken by id so
// map iteration order never leaks out.
func sortNewestFirst[T any](items []T, key func(T) (int64, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti != tj {
			return ti > tj
		}
		return idi > idj
	})
}

func cloneConsultation(c entities.Consultation) entities.Consultation {
	if c.Results != nil {
		results := make([]entities.SearchResult, len(c.Results))
		copy(results, c.Results)
		c.Results = results
	}
	return c
}

func cloneProcess(p entities.RegistrationProcess) entities.RegistrationProcess {
	p.PriorityDate = cloneTime(p.PriorityDate)
	p.PublicationDate = cloneTime(p.PublicationDate)
	return p
}

func cloneBilling(b entities.BillingRecord) entities.BillingRecord {
	b.PaymentDate = cloneTime(b.PaymentDate)
	return b
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
