package usecase

import (
	"context"
	"log"
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/domain/reporting"
	"registro_inpi/internal/usecase/interfaces"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultActivityLimit = 20

// IAdminUseCase is the read-only operational console. Every method requires
// an identity carrying the admin role.

type IAdminUseCase interface {
	Overview(ctx context.Context, actor entities.Identity) (reporting.AdminOverview, error)
	RecentActivity(ctx context.Context, actor entities.Identity, limit int) ([]entities.MonitoringActivity, error)
	ListUsers(ctx context.Context, actor entities.Identity) ([]entities.Profile, error)
}

type AdminUseCase struct {
	profiles      interfaces.IProfileRepository
	consultations interfaces.IConsultationRepository
	processes     interfaces.IProcessRepository
	billing       interfaces.IBillingRecordRepository
	now           func() time.Time
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(
	profiles interfaces.IProfileRepository,
	consultations interfaces.IConsultationRepository,
	processes interfaces.IProcessRepository,
	billing interfaces.IBillingRecordRepository,
) *AdminUseCase {
	return &AdminUseCase{
		profiles:      profiles,
		consultations: consultations,
		processes:     processes,
		billing:       billing,
		now:           defaultClock,
	}
}

// Overview loads the four tables concurrently and rolls them up.
func (u *AdminUseCase) Overview(ctx context.Context, actor entities.Identity) (reporting.AdminOverview, error) {
	if !actor.IsAdmin() {
		return reporting.AdminOverview{}, ErrAdminOnly
	}

	var (
		users         []entities.Profile
		consultations []entities.Consultation
		processes     []entities.RegistrationProcess
		billing       []entities.BillingRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = u.profiles.ListAll(gctx)
		return wrapStore("list profiles", err)
	})
	g.Go(func() error {
		var err error
		consultations, err = u.consultations.ListAll(gctx)
		return wrapStore("list consultations", err)
	})
	g.Go(func() error {
		var err error
		processes, err = u.processes.ListAll(gctx)
		return wrapStore("list processes", err)
	})
	g.Go(func() error {
		var err error
		billing, err = u.billing.ListAll(gctx)
		return wrapStore("list billing records", err)
	})
	if err := g.Wait(); err != nil {
		log.Printf("[admin][usecase] overview failed err=%v", err)
		return reporting.AdminOverview{}, err
	}

	return reporting.BuildAdminOverview(users, consultations, processes, billing, u.now()), nil
}

func (u *AdminUseCase) RecentActivity(ctx context.Context, actor entities.Identity, limit int) ([]entities.MonitoringActivity, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	items, err := u.processes.ListRecentMonitoring(ctx, limit)
	if err != nil {
		return nil, storeErr("list recent monitoring", err)
	}
	return items, nil
}

func (u *AdminUseCase) ListUsers(ctx context.Context, actor entities.Identity) ([]entities.Profile, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	items, err := u.profiles.ListAll(ctx)
	if err != nil {
		return nil, storeErr("list profiles", err)
	}
	return items, nil
}

func wrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	return storeErr(op, err)
}
