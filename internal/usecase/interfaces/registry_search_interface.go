package interfaces

import (
	"context"
	"registro_inpi/internal/domain/entities"
)

// IRegistrySearchProvider searches the IP office catalog. The shipped provider
// is a deterministic stub; a real INPI integration plugs in here.
type IRegistrySearchProvider interface {
	Search(ctx context.Context, term string, searchType entities.SearchType) ([]entities.SearchResult, error)
}
