package interfaces

import (
	"context"
	"errors"
	"registro_inpi/internal/domain/entities"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// IIdentityProvider resolves a bearer credential into the calling user.
// It returns ErrUnauthenticated (possibly wrapped) for missing or invalid tokens.
type IIdentityProvider interface {
	Authenticate(ctx context.Context, token string) (entities.Identity, error)
}
