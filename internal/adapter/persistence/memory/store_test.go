package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func pending(id, userID string, at time.Time) entities.BillingRecord {
	return entities.BillingRecord{
		ID:          id,
		UserID:      userID,
		ServiceType: entities.ServiceTypeConsultation,
		Amount:      2500,
		Status:      entities.BillingStatusPending,
		CreatedAt:   at,
	}
}

func TestConsultationCreateWithBillingIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := New()
	existing := pending("b-1", "u-1", t0)
	require.NoError(t, s.Consultations().CreateWithBilling(ctx,
		entities.Consultation{ID: "c-1", UserID: "u-1", CreatedAt: t0}, existing))

	err := s.Consultations().CreateWithBilling(ctx,
		entities.Consultation{ID: "c-2", UserID: "u-1", CreatedAt: t0.Add(time.Minute)},
		pending("b-1", "u-1", t0.Add(time.Minute)))
	require.ErrorIs(t, err, ErrDuplicateID)

	items, err := s.Consultations().ListByUser(ctx, "u-1", 0)
	require.NoError(t, err)
	require.Len(t, items, 1, "failed create must not leave the consultation behind")
	assert.Equal(t, "c-1", items[0].ID)

	all, err := s.Billing().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, existing.Amount, all[0].Amount)
}

func TestProcessCreateWithBillingIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Consultations().CreateWithBilling(ctx,
		entities.Consultation{ID: "c-1", UserID: "u-1", CreatedAt: t0}, pending("b-1", "u-1", t0)))

	p := entities.RegistrationProcess{ID: "p-1", UserID: "u-1", Status: entities.ProcessStatusDraft, CreatedAt: t0, UpdatedAt: t0}
	m := entities.ProcessMonitoring{ID: "m-1", ProcessID: "p-1", NewStatus: entities.ProcessStatusDraft, CreatedAt: t0}
	err := s.Processes().CreateWithBilling(ctx, p, m, pending("b-1", "u-1", t0))
	require.ErrorIs(t, err, ErrDuplicateID)

	got, err := s.Processes().GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
	history, err := s.Processes().ListMonitoring(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestConsultationsNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	s := New()
	for i, id := range []string{"c-1", "c-2", "c-3"} {
		at := t0.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.Consultations().CreateWithBilling(ctx,
			entities.Consultation{ID: id, UserID: "u-1", CreatedAt: at},
			pending("b-"+id, "u-1", at)))
	}
	require.NoError(t, s.Consultations().CreateWithBilling(ctx,
		entities.Consultation{ID: "c-x", UserID: "u-2", CreatedAt: t0}, pending("b-x", "u-2", t0)))

	items, err := s.Consultations().ListByUser(ctx, "u-1", 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c-3", items[0].ID)
	assert.Equal(t, "c-2", items[1].ID)
}

func TestUpdateStatusCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Processes()
	p := entities.RegistrationProcess{ID: "p-1", UserID: "u-1", Title: "Acme", Status: entities.ProcessStatusDraft, CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, repo.CreateWithBilling(ctx, p,
		entities.ProcessMonitoring{ID: "m-1", ProcessID: "p-1", NewStatus: entities.ProcessStatusDraft, CreatedAt: t0},
		pending("b-1", "u-1", t0)))

	next := p
	next.Status = entities.ProcessStatusSubmitted
	next.UpdatedAt = t0.Add(time.Second)
	m := entities.ProcessMonitoring{ID: "m-2", ProcessID: "p-1", PreviousStatus: entities.ProcessStatusDraft, NewStatus: entities.ProcessStatusSubmitted, CreatedAt: next.UpdatedAt}

	require.NoError(t, repo.UpdateStatus(ctx, next, entities.ProcessStatusDraft, m))
	err := repo.UpdateStatus(ctx, next, entities.ProcessStatusDraft, m)
	require.ErrorIs(t, err, interfaces.ErrStatusConflict)

	history, err := repo.ListMonitoring(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, history, 2, "lost CAS must not append monitoring")
	assert.Equal(t, "m-1", history[0].ID)
	assert.Equal(t, "m-2", history[1].ID)

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, entities.ProcessStatusSubmitted, got.Status)

	err = repo.UpdateStatus(ctx, entities.RegistrationProcess{ID: "missing"}, entities.ProcessStatusDraft, m)
	require.ErrorIs(t, err, interfaces.ErrStatusConflict)
}

func TestConcurrentTransitionsOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Processes()
	p := entities.RegistrationProcess{ID: "p-1", UserID: "u-1", Status: entities.ProcessStatusDraft, CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, repo.CreateWithBilling(ctx, p,
		entities.ProcessMonitoring{ID: "m-0", ProcessID: "p-1", NewStatus: entities.ProcessStatusDraft, CreatedAt: t0},
		pending("b-1", "u-1", t0)))

	const workers = 16
	var wg sync.WaitGroup
	wins := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			next := p
			next.Status = entities.ProcessStatusSubmitted
			m := entities.ProcessMonitoring{ID: string(rune('a' + i)), ProcessID: "p-1", PreviousStatus: entities.ProcessStatusDraft, NewStatus: entities.ProcessStatusSubmitted, CreatedAt: t0.Add(time.Second)}
			if repo.UpdateStatus(ctx, next, entities.ProcessStatusDraft, m) == nil {
				wins <- struct{}{}
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
	history, err := repo.ListMonitoring(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Consultations().CreateWithBilling(ctx,
		entities.Consultation{ID: "c-1", UserID: "u-1", CreatedAt: t0}, pending("b-1", "u-1", t0)))
	billing := s.Billing()
	payment := entities.Payment{Date: t0.Add(time.Hour), Method: entities.PaymentMethodPix, InvoiceNumber: "INV-1-ABCDEF01"}

	_, err := billing.MarkPaid(ctx, "b-1", "u-2", payment)
	require.ErrorIs(t, err, interfaces.ErrBillingNotPending, "other user must not settle the record")

	paid, err := billing.MarkPaid(ctx, "b-1", "u-1", payment)
	require.NoError(t, err)
	assert.Equal(t, entities.BillingStatusPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)
	assert.True(t, paid.PaymentDate.Equal(payment.Date))
	assert.Equal(t, "INV-1-ABCDEF01", paid.InvoiceNumber)

	_, err = billing.MarkPaid(ctx, "b-1", "u-1", payment)
	require.ErrorIs(t, err, interfaces.ErrBillingNotPending)

	_, err = billing.MarkPaid(ctx, "missing", "u-1", payment)
	require.ErrorIs(t, err, interfaces.ErrBillingNotPending)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	c := entities.Consultation{ID: "c-1", UserID: "u-1", Results: []entities.SearchResult{{ID: "r-1"}}, CreatedAt: t0}
	require.NoError(t, s.Consultations().CreateWithBilling(ctx, c, pending("b-1", "u-1", t0)))

	c.Results[0].ID = "mutated"
	items, err := s.Consultations().ListByUser(ctx, "u-1", 0)
	require.NoError(t, err)
	assert.Equal(t, "r-1", items[0].Results[0].ID)

	items[0].Results[0].ID = "mutated again"
	again, err := s.Consultations().ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r-1", again[0].Results[0].ID)
}

func TestRecentMonitoringJoinsProcess(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Processes()
	for i, id := range []string{"p-1", "p-2"} {
		at := t0.Add(time.Duration(i) * time.Hour)
		p := entities.RegistrationProcess{ID: id, UserID: "u-" + id, Title: "Title " + id, Status: entities.ProcessStatusDraft, CreatedAt: at, UpdatedAt: at}
		require.NoError(t, repo.CreateWithBilling(ctx, p,
			entities.ProcessMonitoring{ID: "m-" + id, ProcessID: id, NewStatus: entities.ProcessStatusDraft, CreatedAt: at},
			pending("b-"+id, p.UserID, at)))
	}

	items, err := repo.ListRecentMonitoring(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "m-p-2", items[0].ID)
	assert.Equal(t, "Title p-2", items[0].ProcessTitle)
	assert.Equal(t, "u-p-2", items[0].UserID)
}

func TestProfiles(t *testing.T) {
	ctx := context.Background()
	repo := New().Profiles()
	p := entities.Profile{ID: "u-1", FullName: "Maria", CreatedAt: t0}

	require.NoError(t, repo.Create(ctx, p))
	require.ErrorIs(t, repo.Create(ctx, p), interfaces.ErrProfileExists)

	p.FullName = "Maria Souza"
	updated, err := repo.Update(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", updated.FullName)

	missing, err := repo.Update(ctx, entities.Profile{ID: "u-9"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	got, err := repo.GetByID(ctx, "u-9")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCanceledContextWritesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New()

	err := s.Consultations().CreateWithBilling(ctx, entities.Consultation{ID: "c-1", UserID: "u-1"}, pending("b-1", "u-1", t0))
	require.ErrorIs(t, err, context.Canceled)

	all, err := s.Billing().ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
