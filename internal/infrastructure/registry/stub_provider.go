// Package registry holds the IP office search providers: a deterministic stub
// standing in for the INPI catalog and an LRU cache decorator over any provider.
package registry

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"strings"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// resultNamespace seeds the name-based UUIDs of stub results.
var resultNamespace = uuid.MustParse("6f1c2a7e-7d1b-4c52-9a4e-2b51d0c3e8a1")

type stubEntry struct {
	suffix    string
	status    string
	applicant string
	class     string
}

var stubEntries = []stubEntry{
	{suffix: "", status: "Ativo", applicant: "EMPRESA EXEMPLO LTDA", class: "35"},
	{suffix: " PLUS", status: "Em análise", applicant: "OUTRA EMPRESA S.A.", class: "42"},
}

// StubProvider fabricates two registry entries per search. The same type and
// term always yield the same ids and registry numbers.
type StubProvider struct{}

var _ interfaces.IRegistrySearchProvider = (*StubProvider)(nil)

func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (p *StubProvider) Search(ctx context.Context, term string, searchType entities.SearchType) ([]entities.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	title := strings.ToUpper(normalizeTerm(term))

	results := make([]entities.SearchResult, 0, len(stubEntries))
	for i, e := range stubEntries {
		key := fmt.Sprintf("%s|%s|%d", searchType, title, i)
		r := entities.SearchResult{
			ID:        uuid.NewSHA1(resultNamespace, []byte(key)).String(),
			Title:     title + e.suffix,
			Status:    e.status,
			Number:    registryNumber(key),
			Applicant: e.applicant,
			Type:      searchType,
		}
		if searchType == entities.SearchTypeTrademark {
			r.Class = e.class
		}
		results = append(results, r)
	}
	log.Printf("[registry][stub] search search_type=%s results=%d", searchType, len(results))
	return results, nil
}

// registryNumber is "BR" followed by six digits taken from the key hash.
func registryNumber(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return fmt.Sprintf("BR%06d", h.Sum32()%1000000)
}

// normalizeTerm collapses inner whitespace so "acme  ltda" and "acme ltda"
// are the same search.
func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(term), " ")
}
