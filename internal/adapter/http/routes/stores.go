package routes

import (
	"context"
	"fmt"
	"log"

	"registro_inpi/internal/adapter/http/handlers"
	"registro_inpi/internal/adapter/persistence/memory"
	"registro_inpi/internal/adapter/persistence/postgres"
	"registro_inpi/internal/adapter/persistence/repository"
	"registro_inpi/internal/infrastructure/config"
	"registro_inpi/internal/infrastructure/database"
	"registro_inpi/internal/usecase/interfaces"
)

// Stores is one storage driver's repositories plus its readiness probe.
type Stores struct {
	Consultations interfaces.IConsultationRepository
	Processes     interfaces.IProcessRepository
	Billing       interfaces.IBillingRecordRepository
	Profiles      interfaces.IProfileRepository
	Ready         handlers.Pinger
}

// MemoryStores is used by STORE_DRIVER=memory and by tests.
func MemoryStores() Stores {
	s := memory.New()
	return Stores{
		Consultations: s.Consultations(),
		Processes:     s.Processes(),
		Billing:       s.Billing(),
		Profiles:      s.Profiles(),
		Ready:         s,
	}
}

// OpenStores connects the configured driver. The returned func releases it.
func OpenStores(ctx context.Context, cfg config.Config) (Stores, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Printf("[store][routes] using in-memory store, data is not persisted")
		return MemoryStores(), func() {}, nil

	case config.StorePostgres:
		if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
			return Stores{}, nil, err
		}
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return Stores{}, nil, err
		}
		return Stores{
			Consultations: postgres.NewConsultationRepository(pool),
			Processes:     postgres.NewProcessRepository(pool),
			Billing:       postgres.NewBillingRecordRepository(pool),
			Profiles:      postgres.NewProfileRepository(pool),
			Ready:         postgres.NewReadinessChecker(pool),
		}, pool.Close, nil

	case config.StoreDynamoDB:
		client, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Stores{}, nil, err
		}
		return Stores{
			Consultations: repository.NewConsultationDynamoRepository(client),
			Processes:     repository.NewProcessDynamoRepository(client),
			Billing:       repository.NewBillingRecordDynamoRepository(client),
			Profiles:      repository.NewProfileDynamoRepository(client),
			Ready:         database.NewDynamoDBReadiness(client),
		}, func() {}, nil
	}
	return Stores{}, nil, fmt.Errorf("routes: unknown store driver %q", cfg.StoreDriver)
}
