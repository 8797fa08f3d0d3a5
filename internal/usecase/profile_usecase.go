package usecase

import (
	"context"
	"errors"
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"
	"strings"
	"time"
)

// ProfileInput is the mutable part of a profile.
type ProfileInput struct {
	FullName       string
	CompanyName    string
	DocumentType   entities.DocumentType
	DocumentNumber string
	Phone          string
}

func (in ProfileInput) normalize() (ProfileInput, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.FullName == "" {
		return ProfileInput{}, ErrInvalidFullName
	}
	if !in.DocumentType.Valid(in.DocumentNumber) {
		return ProfileInput{}, ErrInvalidDocument
	}
	in.DocumentNumber = entities.OnlyDigits(in.DocumentNumber)
	return in, nil
}

type IProfileUseCase interface {
	Register(ctx context.Context, identity entities.Identity, in ProfileInput) (entities.Profile, error)
	Get(ctx context.Context, userID string) (entities.Profile, error)
	Update(ctx context.Context, userID string, in ProfileInput) (entities.Profile, error)
}

type ProfileUseCase struct {
	repo interfaces.IProfileRepository
	now  func() time.Time
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, now: defaultClock}
}

// Register creates the profile of an authenticated user; the profile id is
// the identity provider user id.
func (u *ProfileUseCase) Register(ctx context.Context, identity entities.Identity, in ProfileInput) (entities.Profile, error) {
	if strings.TrimSpace(identity.UserID) == "" {
		return entities.Profile{}, ErrInvalidUserID
	}
	in, err := in.normalize()
	if err != nil {
		return entities.Profile{}, err
	}
	now := u.now()
	p := entities.Profile{
		ID:             identity.UserID,
		Email:          identity.Email,
		FullName:       in.FullName,
		CompanyName:    in.CompanyName,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Phone:          in.Phone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		if errors.Is(err, interfaces.ErrProfileExists) {
			return entities.Profile{}, ErrProfileAlreadyExists
		}
		return entities.Profile{}, storeErr("create profile", err)
	}
	return p, nil
}

func (u *ProfileUseCase) Get(ctx context.Context, userID string) (entities.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Profile{}, ErrInvalidUserID
	}
	p, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return entities.Profile{}, storeErr("get profile", err)
	}
	if p.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return p, nil
}

func (u *ProfileUseCase) Update(ctx context.Context, userID string, in ProfileInput) (entities.Profile, error) {
	current, err := u.Get(ctx, userID)
	if err != nil {
		return entities.Profile{}, err
	}
	in, err = in.normalize()
	if err != nil {
		return entities.Profile{}, err
	}
	current.FullName = in.FullName
	current.CompanyName = in.CompanyName
	current.DocumentType = in.DocumentType
	current.DocumentNumber = in.DocumentNumber
	current.Phone = in.Phone
	current.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Profile{}, storeErr("update profile", err)
	}
	if updated.ID == "" {
		return entities.Profile{}, ErrProfileNotFound
	}
	return updated, nil
}
