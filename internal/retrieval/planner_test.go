package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/complykit/sox-rag-agent/internal/classify"
)

type mockSearcher struct {
	passages  []Passage
	err       error
	lastQuery string
	lastLimit int
}

func (m *mockSearcher) Search(ctx context.Context, query string, limit int) ([]Passage, error) {
	m.lastQuery = query
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.passages, nil
}

func TestContextDepth(t *testing.T) {
	tests := []struct {
		complexity classify.QueryComplexity
		want       int
	}{
		{classify.ComplexitySimple, 3},
		{classify.ComplexityModerate, 5},
		{classify.ComplexityComplex, 7},
		{classify.ComplexityExpert, 10},
		{classify.QueryComplexity("unrecognized"), 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.complexity), func(t *testing.T) {
			if got := ContextDepth(tt.complexity); got != tt.want {
				t.Errorf("ContextDepth(%s): %d, want %d", tt.complexity, got, tt.want)
			}
		})
	}
}

func TestPlanAndRetrieve(t *testing.T) {
	passages := []Passage{
		{Content: "first", Source: "sox_manual.txt", ChunkType: ChunkTypeText},
		{Content: "second", Source: "controls.txt", ChunkType: ChunkTypeTable},
	}
	searcher := &mockSearcher{passages: passages}
	planner := NewPlanner(searcher)

	got, err := planner.PlanAndRetrieve(context.Background(), "what is sox", classify.ComplexityExpert)
	if err != nil {
		t.Fatalf("PlanAndRetrieve failed: %v", err)
	}

	if searcher.lastQuery != "what is sox" {
		t.Errorf("query passed to searcher: %q", searcher.lastQuery)
	}
	if searcher.lastLimit != 10 {
		t.Errorf("limit passed to searcher: %d, want 10", searcher.lastLimit)
	}
	// relevance order comes from the searcher and must survive untouched
	if len(got) != 2 || got[0].Content != "first" || got[1].Content != "second" {
		t.Errorf("passages reordered or dropped: %+v", got)
	}
}

func TestPlanAndRetrieveEmptyResult(t *testing.T) {
	planner := NewPlanner(&mockSearcher{passages: []Passage{}})

	got, err := planner.PlanAndRetrieve(context.Background(), "unmatched query", classify.ComplexitySimple)
	if err != nil {
		t.Fatalf("PlanAndRetrieve failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("passages: %d, want 0", len(got))
	}
}

func TestPlanAndRetrieveSearchFailure(t *testing.T) {
	planner := NewPlanner(&mockSearcher{err: errors.New("connection refused")})

	_, err := planner.PlanAndRetrieve(context.Background(), "what is sox", classify.ComplexityModerate)
	if err == nil {
		t.Fatal("expected error when search fails")
	}
}
