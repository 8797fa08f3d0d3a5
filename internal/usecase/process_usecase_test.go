package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"
	mock_interfaces "registro_inpi/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var _ interfaces.IProcessRepository = (*mock_interfaces.MockIProcessRepository)(nil)

var (
	owner = entities.Identity{UserID: "u-1", Email: "dono@example.com", Role: entities.RoleUser}
	other = entities.Identity{UserID: "u-2", Role: entities.RoleUser}
	admin = entities.Identity{UserID: "adm-1", Role: entities.RoleAdmin}
)

func draftProcess(at time.Time) entities.RegistrationProcess {
	return entities.RegistrationProcess{
		ID:          "p-1",
		UserID:      "u-1",
		ProcessType: entities.ProcessTypeTrademark,
		Title:       "Acme",
		Status:      entities.ProcessStatusDraft,
		TotalCost:   35500,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

func TestProcessUseCase_Create_Validations(t *testing.T) {
	cases := []struct {
		name   string
		userID string
		in     CreateProcessInput
		want   error
	}{
		{"empty user", "", CreateProcessInput{ProcessType: entities.ProcessTypePatent, Title: "x"}, ErrInvalidUserID},
		{"unknown type", "u-1", CreateProcessInput{ProcessType: "software", Title: "x"}, ErrInvalidProcessType},
		{"empty title", "u-1", CreateProcessInput{ProcessType: entities.ProcessTypePatent, Title: "   "}, ErrInvalidProcessTitle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewProcessUseCase(nil)
			_, _, err := uc.Create(context.Background(), tc.userID, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestProcessUseCase_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProcessRepository(ctrl)
	uc := NewProcessUseCase(repo)
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	uc.now = fixedClock(now)

	priority := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	var gotM entities.ProcessMonitoring
	repo.EXPECT().CreateWithBilling(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p entities.RegistrationProcess, m entities.ProcessMonitoring, b entities.BillingRecord) error {
			gotM = m
			return nil
		}).Times(1)

	p, b, err := uc.Create(context.Background(), "u-1", CreateProcessInput{
		ProcessType:  entities.ProcessTypePatent,
		Title:        " Motor eficiente ",
		Description:  "desc",
		PriorityDate: &priority,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != entities.ProcessStatusDraft || p.TotalCost != 87500 || p.Title != "Motor eficiente" {
		t.Fatalf("unexpected process: %+v", p)
	}
	if p.PriorityDate == nil || !p.PriorityDate.Equal(priority) {
		t.Fatalf("priority date not kept: %+v", p.PriorityDate)
	}
	if gotM.ProcessID != p.ID || gotM.NewStatus != entities.ProcessStatusDraft || gotM.PreviousStatus != "" {
		t.Fatalf("unexpected first monitoring entry: %+v", gotM)
	}
	if gotM.StatusChange != entities.StatusChangeCreated || gotM.Notes != entities.NotesCreatedByUser {
		t.Fatalf("unexpected monitoring text: %+v", gotM)
	}
	if b.ProcessID != p.ID || b.ConsultationID != "" || b.ServiceType != entities.ServiceTypeRegistration {
		t.Fatalf("billing not linked to process: %+v", b)
	}
	if b.Amount != p.TotalCost || b.Status != entities.BillingStatusPending {
		t.Fatalf("unexpected billing record: %+v", b)
	}
}

func TestProcessUseCase_Create_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProcessRepository(ctrl)
	uc := NewProcessUseCase(repo)

	repo.EXPECT().CreateWithBilling(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))

	_, _, err := uc.Create(context.Background(), "u-1", CreateProcessInput{ProcessType: entities.ProcessTypeDesign, Title: "Cadeira"})
	if !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestProcessUseCase_TransitionStatus_Validations(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewProcessUseCase(nil)
		_, _, err := uc.TransitionStatus(context.Background(), admin, " ", TransitionInput{NewStatus: entities.ProcessStatusSubmitted})
		if !errors.Is(err, ErrInvalidProcessID) {
			t.Fatalf("expected ErrInvalidProcessID, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewProcessUseCase(nil)
		_, _, err := uc.TransitionStatus(context.Background(), admin, "p-1", TransitionInput{NewStatus: "archived"})
		if !errors.Is(err, ErrInvalidProcessStatus) {
			t.Fatalf("expected ErrInvalidProcessStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.RegistrationProcess{}, nil)

		_, _, err := uc.TransitionStatus(context.Background(), admin, "p-1", TransitionInput{NewStatus: entities.ProcessStatusSubmitted})
		if !errors.Is(err, ErrProcessNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrProcessNotFound, got %v", err)
		}
	})

	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.RegistrationProcess{}, errors.New("db"))

		_, _, err := uc.TransitionStatus(context.Background(), admin, "p-1", TransitionInput{NewStatus: entities.ProcessStatusSubmitted})
		if !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})
}

func TestProcessUseCase_TransitionStatus_IllegalLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProcessRepository(ctrl)
	uc := NewProcessUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(time.Now().UTC()), nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, _, err := uc.TransitionStatus(context.Background(), admin, "p-1", TransitionInput{NewStatus: entities.ProcessStatusPublished})
	if !errors.Is(err, ErrIllegalTransition) || !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestProcessUseCase_TransitionStatus_Authorization(t *testing.T) {
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("other user cannot submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(base), nil)

		_, _, err := uc.TransitionStatus(context.Background(), other, "p-1", TransitionInput{NewStatus: entities.ProcessStatusSubmitted})
		if !errors.Is(err, ErrNotProcessOwner) || !errors.Is(err, ErrAuthorization) {
			t.Fatalf("expected ErrNotProcessOwner, got %v", err)
		}
	})

	t.Run("other user gets no status hint on illegal target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		p := draftProcess(base)
		p.Status = entities.ProcessStatusUnderReview
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, _, err := uc.TransitionStatus(context.Background(), other, "p-1", TransitionInput{NewStatus: entities.ProcessStatusDraft})
		if !errors.Is(err, ErrNotProcessOwner) || errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrNotProcessOwner, got %v", err)
		}
		if strings.Contains(err.Error(), string(entities.ProcessStatusUnderReview)) {
			t.Fatalf("error leaks the current status: %v", err)
		}
	})

	t.Run("owner cannot review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		p := draftProcess(base)
		p.Status = entities.ProcessStatusSubmitted
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		_, _, err := uc.TransitionStatus(context.Background(), owner, "p-1", TransitionInput{NewStatus: entities.ProcessStatusUnderReview})
		if !errors.Is(err, ErrAdminOnly) {
			t.Fatalf("expected ErrAdminOnly, got %v", err)
		}
	})
}

func TestProcessUseCase_TransitionStatus_OwnerSubmits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProcessRepository(ctrl)
	uc := NewProcessUseCase(repo)
	created := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	uc.now = fixedClock(created.Add(time.Hour))

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(created), nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.ProcessStatusDraft, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated entities.RegistrationProcess, _ entities.ProcessStatus, m entities.ProcessMonitoring) error {
			if updated.Status != entities.ProcessStatusSubmitted {
				t.Fatalf("expected submitted, got %s", updated.Status)
			}
			if !m.CreatedAt.Equal(updated.UpdatedAt) {
				t.Fatalf("monitoring and process timestamps differ: %v vs %v", m.CreatedAt, updated.UpdatedAt)
			}
			return nil
		})

	p, m, err := uc.TransitionStatus(context.Background(), owner, "p-1", TransitionInput{NewStatus: entities.ProcessStatusSubmitted, Note: " enviado "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != entities.ProcessStatusSubmitted || !p.UpdatedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("unexpected process: %+v", p)
	}
	if m.PreviousStatus != entities.ProcessStatusDraft || m.NewStatus != entities.ProcessStatusSubmitted {
		t.Fatalf("unexpected monitoring statuses: %+v", m)
	}
	if m.StatusChange != "Status alterado de Rascunho para Submetido" || m.Notes != "enviado" {
		t.Fatalf("unexpected monitoring text: %+v", m)
	}
	if p.PublicationDate != nil {
		t.Fatalf("publication date must stay empty until published")
	}
}

func TestProcessUseCase_TransitionStatus_TimestampStrictlyIncreases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProcessRepository(ctrl)
	uc := NewProcessUseCase(repo)
	created := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	uc.now = fixedClock(created)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(created), nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	p, m, err := uc.TransitionStatus(context.Background(), admin, "p-1", TransitionInput{NewStatus: entities.ProcessStatusSubmitted})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.CreatedAt.After(created) || !p.UpdatedAt.Equal(created.Add(time.Microsecond)) {
		t.Fatalf("expected timestamp bumped past %v, got %v", created, m.CreatedAt)
	}
}

func TestProcessUseCase_TransitionStatus_PublishStampsDateAndNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProcessRepository(ctrl)
	uc := NewProcessUseCase(repo)
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	now := base.Add(48 * time.Hour)
	uc.now = fixedClock(now)

	p := draftProcess(base)
	p.Status = entities.ProcessStatusApproved
	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.ProcessStatusApproved, gomock.Any()).Return(nil)

	got, _, err := uc.TransitionStatus(context.Background(), admin, "p-1", TransitionInput{
		NewStatus:     entities.ProcessStatusPublished,
		ProcessNumber: " BR512026001234 ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PublicationDate == nil || !got.PublicationDate.Equal(now) {
		t.Fatalf("expected publication date %v, got %v", now, got.PublicationDate)
	}
	if got.ProcessNumber != "BR512026001234" {
		t.Fatalf("expected process number stored, got %q", got.ProcessNumber)
	}
}

func TestProcessUseCase_TransitionStatus_StoreFailures(t *testing.T) {
	t.Run("lost race maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(time.Now().UTC()), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrStatusConflict)

		_, _, err := uc.TransitionStatus(context.Background(), admin, "p-1", TransitionInput{NewStatus: entities.ProcessStatusSubmitted})
		if !errors.Is(err, ErrConcurrentTransition) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConcurrentTransition, got %v", err)
		}
	})

	t.Run("write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(time.Now().UTC()), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, _, err := uc.TransitionStatus(context.Background(), admin, "p-1", TransitionInput{NewStatus: entities.ProcessStatusSubmitted})
		if !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})
}

func TestProcessUseCase_Get_And_History(t *testing.T) {
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("other user denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(base), nil)

		if _, err := uc.Get(context.Background(), other, "p-1"); !errors.Is(err, ErrNotProcessOwner) {
			t.Fatalf("expected ErrNotProcessOwner, got %v", err)
		}
	})

	t.Run("admin sees any process history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(base), nil)
		repo.EXPECT().ListMonitoring(gomock.Any(), "p-1").Return([]entities.ProcessMonitoring{
			{ID: "m-1", NewStatus: entities.ProcessStatusDraft, CreatedAt: base},
			{ID: "m-2", PreviousStatus: entities.ProcessStatusDraft, NewStatus: entities.ProcessStatusSubmitted, CreatedAt: base.Add(time.Minute)},
		}, nil)

		items, err := uc.History(context.Background(), admin, "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[0].ID != "m-1" {
			t.Fatalf("unexpected history: %+v", items)
		}
	})

	t.Run("history store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		uc := NewProcessUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(draftProcess(base), nil)
		repo.EXPECT().ListMonitoring(gomock.Any(), "p-1").Return(nil, errors.New("db"))

		if _, err := uc.History(context.Background(), owner, "p-1"); !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
	})
}

func TestProcessUseCase_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProcessRepository(ctrl)
	uc := NewProcessUseCase(repo)

	if _, err := uc.ListByUser(context.Background(), " "); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}

	repo.EXPECT().ListByUser(gomock.Any(), "u-1").Return([]entities.RegistrationProcess{{ID: "p-1"}}, nil)
	items, err := uc.ListByUser(context.Background(), "u-1")
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected result: %+v %v", items, err)
	}
}
