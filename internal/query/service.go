package query

import (
	"context"

	"github.com/complykit/sox-rag-agent/internal/answer"
	"github.com/complykit/sox-rag-agent/internal/classify"
	"github.com/complykit/sox-rag-agent/internal/generation"
	"github.com/complykit/sox-rag-agent/internal/retrieval"
	"github.com/rs/zerolog/log"
)

// Service runs the full query pipeline: classify, plan and retrieve,
// generate, assemble. It is stateless across requests; all collaborators
// are constructed once and shared read-only.
type Service struct {
	classifier *classify.Classifier
	planner    *retrieval.Planner
	generator  generation.Generator
}

func NewService(
	classifier *classify.Classifier,
	planner *retrieval.Planner,
	generator generation.Generator,
) *Service {
	return &Service{
		classifier: classifier,
		planner:    planner,
		generator:  generator,
	}
}

// ProcessQuery answers one question against the indexed corpus. Any
// collaborator failure aborts the request; an empty retrieval set is a
// valid terminal state and skips generation entirely.
func (s *Service) ProcessQuery(ctx context.Context, query string) (*answer.QueryResponse, error) {
	analysis, err := s.classifier.Classify(ctx, query)
	if err != nil {
		return nil, err
	}

	passages, err := s.planner.PlanAndRetrieve(ctx, query, analysis.Complexity)
	if err != nil {
		return nil, err
	}

	if len(passages) == 0 {
		log.Info().Msg("No relevant passages found")
		return answer.Assemble("", nil, analysis), nil
	}

	prompt := answer.BuildPrompt(query, passages, analysis)

	answerText, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	response := answer.Assemble(answerText, passages, analysis)

	log.Info().
		Int("sources", len(response.Sources)).
		Float64("confidence", response.Confidence).
		Msg("Query processed")

	return response, nil
}
