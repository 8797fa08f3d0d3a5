package interfaces

import (
	"context"
	"errors"
	"registro_inpi/internal/domain/entities"
)

var ErrProfileExists = errors.New("profile already exists")

// IProfileRepository abstracts persistence for `profiles`.
// GetByID returns a zero-value profile (empty ID) when absent.

type IProfileRepository interface {
	Create(ctx context.Context, p entities.Profile) error
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	Update(ctx context.Context, p entities.Profile) (entities.Profile, error)
	ListAll(ctx context.Context) ([]entities.Profile, error)
}
