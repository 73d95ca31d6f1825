package retrieval

import (
	"context"
	"fmt"

	"github.com/complykit/sox-rag-agent/internal/classify"
	"github.com/rs/zerolog/log"
)

// Searcher is the similarity-search oracle. Results come back ranked by
// relevance; an empty slice is a valid outcome, not an error.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Passage, error)
}

// Planner maps query complexity to a retrieval depth and delegates the
// actual search to the oracle. No retries happen at this layer; a search
// failure aborts the request.
type Planner struct {
	searcher Searcher
}

func NewPlanner(searcher Searcher) *Planner {
	return &Planner{
		searcher: searcher,
	}
}

// ContextDepth returns how many passages to retrieve for a complexity
// level. Unrecognized values fall back to 5; the closed enum makes that
// unreachable in practice.
func ContextDepth(complexity classify.QueryComplexity) int {
	switch complexity {
	case classify.ComplexitySimple:
		return 3
	case classify.ComplexityModerate:
		return 5
	case classify.ComplexityComplex:
		return 7
	case classify.ComplexityExpert:
		return 10
	default:
		return 5
	}
}

// PlanAndRetrieve fetches passages for the query at the depth the
// complexity calls for, preserving the oracle's relevance order.
func (p *Planner) PlanAndRetrieve(ctx context.Context, query string, complexity classify.QueryComplexity) ([]Passage, error) {
	limit := ContextDepth(complexity)

	passages, err := p.searcher.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	log.Info().
		Str("complexity", string(complexity)).
		Int("limit", limit).
		Int("retrieved", len(passages)).
		Msg("Retrieval complete")

	return passages, nil
}
