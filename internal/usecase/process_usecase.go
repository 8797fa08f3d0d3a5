package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateProcessInput carries the fields a user fills in for a new process.
type CreateProcessInput struct {
	ProcessType  entities.ProcessType
	Title        string
	Description  string
	PriorityDate *time.Time
}

// TransitionInput asks for a status change. ProcessNumber is the INPI
// number, stored when given.
type TransitionInput struct {
	NewStatus     entities.ProcessStatus
	Note          string
	ProcessNumber string
}

// IProcessUseCase is the registration process lifecycle.
//
// Authorization rules for TransitionStatus:
//   - admins may perform any legal transition
//   - the owner may only submit a draft (draft -> submitted)

type IProcessUseCase interface {
	Create(ctx context.Context, userID string, in CreateProcessInput) (entities.RegistrationProcess, entities.BillingRecord, error)
	TransitionStatus(ctx context.Context, actor entities.Identity, processID string, in TransitionInput) (entities.RegistrationProcess, entities.ProcessMonitoring, error)
	Get(ctx context.Context, actor entities.Identity, processID string) (entities.RegistrationProcess, error)
	ListByUser(ctx context.Context, userID string) ([]entities.RegistrationProcess, error)
	History(ctx context.Context, actor entities.Identity, processID string) ([]entities.ProcessMonitoring, error)
}

type ProcessUseCase struct {
	repo interfaces.IProcessRepository
	now  func() time.Time
}

var _ IProcessUseCase = (*ProcessUseCase)(nil)

func NewProcessUseCase(repo interfaces.IProcessRepository) *ProcessUseCase {
	return &ProcessUseCase{repo: repo, now: defaultClock}
}

// defaultClock truncates to microseconds, the precision PostgreSQL keeps,
// so ordering by created_at is the same in every store.
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (u *ProcessUseCase) Create(ctx context.Context, userID string, in CreateProcessInput) (entities.RegistrationProcess, entities.BillingRecord, error) {
	userID = strings.TrimSpace(userID)
	title := strings.TrimSpace(in.Title)
	if userID == "" {
		return entities.RegistrationProcess{}, entities.BillingRecord{}, ErrInvalidUserID
	}
	cost, ok := entities.ProcessBaseCost(in.ProcessType)
	if !ok {
		return entities.RegistrationProcess{}, entities.BillingRecord{}, ErrInvalidProcessType
	}
	if title == "" {
		return entities.RegistrationProcess{}, entities.BillingRecord{}, ErrInvalidProcessTitle
	}

	now := u.now()
	p := entities.RegistrationProcess{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProcessType:  in.ProcessType,
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		Status:       entities.ProcessStatusDraft,
		PriorityDate: in.PriorityDate,
		TotalCost:    cost,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m := entities.ProcessMonitoring{
		ID:           uuid.NewString(),
		ProcessID:    p.ID,
		StatusChange: entities.DescribeStatusChange("", entities.ProcessStatusDraft),
		NewStatus:    entities.ProcessStatusDraft,
		Notes:        entities.NotesCreatedByUser,
		CreatedAt:    now,
	}
	b := entities.BillingRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProcessID:   p.ID,
		ServiceType: entities.ServiceTypeRegistration,
		Amount:      cost,
		Status:      entities.BillingStatusPending,
		CreatedAt:   now,
	}

	if err := u.repo.CreateWithBilling(ctx, p, m, b); err != nil {
		log.Printf("[process][usecase] create failed user_id=%s process_type=%s err=%v", userID, in.ProcessType, err)
		return entities.RegistrationProcess{}, entities.BillingRecord{}, storeErr("create process", err)
	}
	log.Printf("[process][usecase] create success user_id=%s process_id=%s billing_id=%s total_cost=%s", userID, p.ID, b.ID, cost)
	return p, b, nil
}

// TransitionStatus moves a process to in.NewStatus and appends the matching
// monitoring entry. The write is conditional on the status read here, so the
// entry's previous status is always the status the process really had.
func (u *ProcessUseCase) TransitionStatus(ctx context.Context, actor entities.Identity, processID string, in TransitionInput) (entities.RegistrationProcess, entities.ProcessMonitoring, error) {
	processID = strings.TrimSpace(processID)
	if processID == "" {
		return entities.RegistrationProcess{}, entities.ProcessMonitoring{}, ErrInvalidProcessID
	}
	if !in.NewStatus.Valid() {
		return entities.RegistrationProcess{}, entities.ProcessMonitoring{}, ErrInvalidProcessStatus
	}

	current, err := u.load(ctx, processID)
	if err != nil {
		return entities.RegistrationProcess{}, entities.ProcessMonitoring{}, err
	}
	// Non-owners learn nothing about the process, not even its status.
	if !ownsOrAdmin(actor, current) {
		log.Printf("[process][usecase] transition denied process_id=%s user_id=%s to=%s", processID, actor.UserID, in.NewStatus)
		return entities.RegistrationProcess{}, entities.ProcessMonitoring{}, ErrNotProcessOwner
	}
	if !current.Status.CanTransitionTo(in.NewStatus) {
		log.Printf("[process][usecase] illegal transition process_id=%s from=%s to=%s", processID, current.Status, in.NewStatus)
		return entities.RegistrationProcess{}, entities.ProcessMonitoring{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, in.NewStatus)
	}
	if err := authorizeTransition(actor, current, in.NewStatus); err != nil {
		log.Printf("[process][usecase] transition denied process_id=%s user_id=%s to=%s", processID, actor.UserID, in.NewStatus)
		return entities.RegistrationProcess{}, entities.ProcessMonitoring{}, err
	}

	now := u.now()
	if !now.After(current.UpdatedAt) {
		now = current.UpdatedAt.Add(time.Microsecond)
	}

	updated := current
	updated.Status = in.NewStatus
	updated.UpdatedAt = now
	if n := strings.TrimSpace(in.ProcessNumber); n != "" {
		updated.ProcessNumber = n
	}
	if in.NewStatus == entities.ProcessStatusPublished {
		published := now
		updated.PublicationDate = &published
	}

	m := entities.ProcessMonitoring{
		ID:             uuid.NewString(),
		ProcessID:      current.ID,
		StatusChange:   entities.DescribeStatusChange(current.Status, in.NewStatus),
		PreviousStatus: current.Status,
		NewStatus:      in.NewStatus,
		Notes:          strings.TrimSpace(in.Note),
		CreatedAt:      now,
	}

	if err := u.repo.UpdateStatus(ctx, updated, current.Status, m); err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			log.Printf("[process][usecase] transition lost race process_id=%s from=%s to=%s", processID, current.Status, in.NewStatus)
			return entities.RegistrationProcess{}, entities.ProcessMonitoring{}, ErrConcurrentTransition
		}
		log.Printf("[process][usecase] transition persist failed process_id=%s err=%v", processID, err)
		return entities.RegistrationProcess{}, entities.ProcessMonitoring{}, storeErr("transition process", err)
	}
	log.Printf("[process][usecase] transition success process_id=%s from=%s to=%s actor=%s", processID, current.Status, in.NewStatus, actor.UserID)
	return updated, m, nil
}

func ownsOrAdmin(actor entities.Identity, p entities.RegistrationProcess) bool {
	return actor.IsAdmin() || (actor.UserID != "" && actor.UserID == p.UserID)
}

// authorizeTransition assumes ownsOrAdmin already passed.
func authorizeTransition(actor entities.Identity, p entities.RegistrationProcess, next entities.ProcessStatus) error {
	if actor.IsAdmin() {
		return nil
	}
	if p.Status == entities.ProcessStatusDraft && next == entities.ProcessStatusSubmitted {
		return nil
	}
	return ErrAdminOnly
}

func (u *ProcessUseCase) Get(ctx context.Context, actor entities.Identity, processID string) (entities.RegistrationProcess, error) {
	processID = strings.TrimSpace(processID)
	if processID == "" {
		return entities.RegistrationProcess{}, ErrInvalidProcessID
	}
	p, err := u.load(ctx, processID)
	if err != nil {
		return entities.RegistrationProcess{}, err
	}
	if !ownsOrAdmin(actor, p) {
		return entities.RegistrationProcess{}, ErrNotProcessOwner
	}
	return p, nil
}

func (u *ProcessUseCase) ListByUser(ctx context.Context, userID string) ([]entities.RegistrationProcess, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list processes", err)
	}
	return items, nil
}

// History returns the monitoring entries of a process, oldest first.
func (u *ProcessUseCase) History(ctx context.Context, actor entities.Identity, processID string) ([]entities.ProcessMonitoring, error) {
	if _, err := u.Get(ctx, actor, processID); err != nil {
		return nil, err
	}
	items, err := u.repo.ListMonitoring(ctx, strings.TrimSpace(processID))
	if err != nil {
		return nil, storeErr("list monitoring", err)
	}
	return items, nil
}

func (u *ProcessUseCase) load(ctx context.Context, processID string) (entities.RegistrationProcess, error) {
	p, err := u.repo.GetByID(ctx, processID)
	if err != nil {
		return entities.RegistrationProcess{}, storeErr("get process", err)
	}
	if p.ID == "" {
		return entities.RegistrationProcess{}, ErrProcessNotFound
	}
	return p, nil
}
