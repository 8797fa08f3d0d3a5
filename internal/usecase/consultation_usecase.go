package usecase

import (
	"context"
	"log"
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultConsultationListLimit = 10

// IConsultationUseCase runs registry searches and records what they cost.

type IConsultationUseCase interface {
	Run(ctx context.Context, userID, searchTerm string, searchType entities.SearchType) (entities.Consultation, entities.BillingRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]entities.Consultation, error)
}

type ConsultationUseCase struct {
	repo     interfaces.IConsultationRepository
	registry interfaces.IRegistrySearchProvider
	now      func() time.Time
}

var _ IConsultationUseCase = (*ConsultationUseCase)(nil)

func NewConsultationUseCase(repo interfaces.IConsultationRepository, registry interfaces.IRegistrySearchProvider) *ConsultationUseCase {
	return &ConsultationUseCase{repo: repo, registry: registry, now: defaultClock}
}

// Run searches the registry, then persists the consultation and its pending
// billing record atomically. A registry failure leaves nothing behind.
func (u *ConsultationUseCase) Run(ctx context.Context, userID, searchTerm string, searchType entities.SearchType) (entities.Consultation, entities.BillingRecord, error) {
	userID = strings.TrimSpace(userID)
	searchTerm = strings.TrimSpace(searchTerm)
	if userID == "" {
		return entities.Consultation{}, entities.BillingRecord{}, ErrInvalidUserID
	}
	if searchTerm == "" {
		return entities.Consultation{}, entities.BillingRecord{}, ErrInvalidSearchTerm
	}
	cost, ok := entities.ConsultationCost(searchType)
	if !ok {
		return entities.Consultation{}, entities.BillingRecord{}, ErrInvalidSearchType
	}
	log.Printf("[consultation][usecase] run start user_id=%s search_type=%s", userID, searchType)

	results, err := u.registry.Search(ctx, searchTerm, searchType)
	if err != nil {
		log.Printf("[consultation][usecase] registry search failed user_id=%s err=%v", userID, err)
		return entities.Consultation{}, entities.BillingRecord{}, upstreamErr("registry search", err)
	}

	now := u.now()
	c := entities.Consultation{
		ID:         uuid.NewString(),
		UserID:     userID,
		SearchTerm: searchTerm,
		SearchType: searchType,
		Status:     entities.ConsultationStatusCompleted,
		Results:    results,
		Cost:       cost,
		CreatedAt:  now,
	}
	b := entities.BillingRecord{
		ID:             uuid.NewString(),
		UserID:         userID,
		ConsultationID: c.ID,
		ServiceType:    entities.ServiceTypeConsultation,
		Amount:         cost,
		Status:         entities.BillingStatusPending,
		CreatedAt:      now,
	}

	if err := u.repo.CreateWithBilling(ctx, c, b); err != nil {
		log.Printf("[consultation][usecase] persist failed user_id=%s consultation_id=%s err=%v", userID, c.ID, err)
		return entities.Consultation{}, entities.BillingRecord{}, storeErr("create consultation", err)
	}
	log.Printf("[consultation][usecase] run success user_id=%s consultation_id=%s billing_id=%s cost=%s results=%d", userID, c.ID, b.ID, cost, len(results))
	return c, b, nil
}

func (u *ConsultationUseCase) ListByUser(ctx context.Context, userID string, limit int) ([]entities.Consultation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if limit <= 0 {
		limit = defaultConsultationListLimit
	}
	items, err := u.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, storeErr("list consultations", err)
	}
	return items, nil
}
