package registry

import (
	"context"
	"strings"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inpi_registry_cache_hits_total",
		Help: "Registry searches served from the LRU cache.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inpi_registry_cache_misses_total",
		Help: "Registry searches forwarded to the provider.",
	})
)

// CachedProvider memoizes successful searches per (type, normalized term)
// for ttl. Failed searches are never cached.
type CachedProvider struct {
	next  interfaces.IRegistrySearchProvider
	cache *expirable.LRU[string, []entities.SearchResult]
}

var _ interfaces.IRegistrySearchProvider = (*CachedProvider)(nil)

func NewCachedProvider(next interfaces.IRegistrySearchProvider, size int, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: expirable.NewLRU[string, []entities.SearchResult](size, nil, ttl),
	}
}

func (p *CachedProvider) Search(ctx context.Context, term string, searchType entities.SearchType) ([]entities.SearchResult, error) {
	key := string(searchType) + "|" + strings.ToLower(normalizeTerm(term))
	if cached, ok := p.cache.Get(key); ok {
		cacheHitsTotal.Inc()
		return cloneResults(cached), nil
	}
	cacheMissesTotal.Inc()

	results, err := p.next.Search(ctx, term, searchType)
	if err != nil {
		return nil, err
	}
	p.cache.Add(key, cloneResults(results))
	return results, nil
}

func cloneResults(in []entities.SearchResult) []entities.SearchResult {
	if in == nil {
		return nil
	}
	out := make([]entities.SearchResult, len(in))
	copy(out, in)
	return out
}
