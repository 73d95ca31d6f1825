package search

import (
	"context"
	"fmt"

	"github.com/complykit/sox-rag-agent/internal/database"
	"github.com/complykit/sox-rag-agent/internal/embedding"
	"github.com/complykit/sox-rag-agent/internal/retrieval"
	"github.com/rs/zerolog/log"
)

// Service is the similarity-search oracle backed by pgvector. It embeds
// the query, runs cosine-distance search with the store's relevance floor,
// and converts the matching rows into read-only passages.
type Service struct {
	db       *database.DB
	embedder *embedding.BedrockEmbedder
}

func NewService(db *database.DB, embedder *embedding.BedrockEmbedder) *Service {
	return &Service{
		db:       db,
		embedder: embedder,
	}
}

func (s *Service) Search(ctx context.Context, query string, limit int) ([]retrieval.Passage, error) {
	embeddings, err := s.embedder.GenerateEmbeddings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unable to generate embeddings: %w", err)
	}

	chunks, err := s.db.SemanticSearch(ctx, embeddings, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to run semantic search on the DB: %w", err)
	}

	passages := make([]retrieval.Passage, 0, len(chunks))
	for i, chunk := range chunks {
		log.Debug().
			Str("chunk_id", chunk.Id).
			Int("rank", i+1).
			Float64("score", DistanceToScore(chunk.Distance)).
			Msg("Search hit")

		passages = append(passages, retrieval.Passage{
			Content:   chunk.Content,
			Source:    chunk.Source,
			Page:      chunk.Page,
			ChunkType: chunk.ChunkType,
			Metadata:  chunk.Metadata,
		})
	}

	return passages, nil
}

func DistanceToScore(distance float64) float64 {
	// Cosine distance range: 0 (identical) to 2 (opposite)
	// Convert to similarity score: 1 (best) to 0 (worst)
	score := 1.0 - distance

	// Clamp to [0, 1] range to avoid negative scores
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}

	return score
}
