package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"
	mock_interfaces "registro_inpi/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validProfileInput() ProfileInput {
	return ProfileInput{
		FullName:       " Maria Souza ",
		CompanyName:    "Souza ME",
		DocumentType:   entities.DocumentTypeCPF,
		DocumentNumber: "123.456.789-01",
		Phone:          "+55 11 99999-0000",
	}
}

func TestProfileUseCase_Register(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewProfileUseCase(nil)

		if _, err := uc.Register(context.Background(), entities.Identity{}, validProfileInput()); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
		in := validProfileInput()
		in.FullName = " "
		if _, err := uc.Register(context.Background(), owner, in); !errors.Is(err, ErrInvalidFullName) {
			t.Fatalf("expected ErrInvalidFullName, got %v", err)
		}
		in = validProfileInput()
		in.DocumentType = entities.DocumentTypeCNPJ
		if _, err := uc.Register(context.Background(), owner, in); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)
		now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
		uc.now = fixedClock(now)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Profile) error {
			if p.ID != "u-1" || p.Email != "dono@example.com" {
				t.Fatalf("profile not keyed by identity: %+v", p)
			}
			return nil
		})

		p, err := uc.Register(context.Background(), owner, validProfileInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.FullName != "Maria Souza" || p.DocumentNumber != "12345678901" {
			t.Fatalf("expected normalized profile, got %+v", p)
		}
		if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
			t.Fatalf("unexpected timestamps: %+v", p)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(interfaces.ErrProfileExists)

		if _, err := uc.Register(context.Background(), owner, validProfileInput()); !errors.Is(err, ErrProfileAlreadyExists) {
			t.Fatalf("expected ErrProfileAlreadyExists, got %v", err)
		}
	})
}

func TestProfileUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProfileRepository(ctrl)
	uc := NewProfileUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "u-9").Return(entities.Profile{}, nil)
	if _, err := uc.Get(context.Background(), "u-9"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Profile{}, errors.New("db"))
	if _, err := uc.Get(context.Background(), "u-1"); !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestProfileUseCase_Update(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	current := entities.Profile{ID: "u-1", Email: "dono@example.com", FullName: "Antigo", CreatedAt: created, UpdatedAt: created}

	t.Run("success keeps identity fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)
		now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
		uc.now = fixedClock(now)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Profile) (entities.Profile, error) {
			return p, nil
		})

		in := validProfileInput()
		in.DocumentType = entities.DocumentTypeCNPJ
		in.DocumentNumber = "12.345.678/0001-90"
		p, err := uc.Update(context.Background(), "u-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Email != current.Email || !p.CreatedAt.Equal(created) || !p.UpdatedAt.Equal(now) {
			t.Fatalf("unexpected identity fields: %+v", p)
		}
		if p.DocumentType != entities.DocumentTypeCNPJ || p.DocumentNumber != "12345678000190" {
			t.Fatalf("unexpected document: %+v", p)
		}
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Profile{}, nil)

		if _, err := uc.Update(context.Background(), "u-1", validProfileInput()); !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("invalid input skips write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		in := validProfileInput()
		in.DocumentNumber = "123"
		if _, err := uc.Update(context.Background(), "u-1", in); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("expected ErrInvalidDocument, got %v", err)
		}
	})
}
