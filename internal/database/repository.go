package database

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog/log"
)

func (db *DB) DeleteDocument(ctx context.Context, docId string) error {

	query := `DELETE FROM documents WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, docId)
	if err != nil {
		return fmt.Errorf("failed to delete document id: %s, error: %w", docId, err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().Str("doc_id", docId).Msg("Document not found")
	} else {
		log.Info().Str("doc_id", docId).Msg("Document deleted")
	}

	return nil
}

// TODO: Add pagination
func (db *DB) GetAllDocs(ctx context.Context) ([]Document, error) {
	query := `SELECT id, title from documents`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch documents from DB: %w", err)
	}

	defer rows.Close()

	var documentsResponse []Document

	for rows.Next() {
		var document Document

		if err := rows.Scan(&document.Id, &document.Title); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}

		documentsResponse = append(documentsResponse, document)
	}

	return documentsResponse, nil
}

// maxCosineDistance is the relevance floor for similarity search. Matches
// further away than this are dropped before ranking reaches the caller.
const maxCosineDistance = 0.6

func (db *DB) SemanticSearch(ctx context.Context, queryEmbeddings []float32, limit int) ([]Chunk, error) {
	// Convert embeddings to pgvector embeddings
	pgvectorEmbeddings := pgvector.NewVector(queryEmbeddings)

	query := `
	SELECT
	  id,
	  document_id,
	  content,
	  source,
	  page,
	  chunk_type,
	  metadata,
	  embedding <=> $1 AS distance
	FROM document_chunks
	WHERE embedding <=> $1 <= $2
	ORDER BY distance ASC
	LIMIT $3`

	rows, err := db.Pool.Query(ctx, query, pgvectorEmbeddings, maxCosineDistance, limit)

	if err != nil {
		return nil, fmt.Errorf("unable to query the database: %w", err)
	}

	defer rows.Close()

	var chunks []Chunk
	for rows.Next() {
		var chunk Chunk

		if err := rows.Scan(&chunk.Id, &chunk.DocumentID, &chunk.Content, &chunk.Source, &chunk.Page, &chunk.ChunkType, &chunk.Metadata, &chunk.Distance); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}

		chunks = append(chunks, chunk)
	}

	// Rows errors catch
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return chunks, nil
}

// GetStatistics aggregates the indexed corpus: total chunks plus the
// per-type distribution.
func (db *DB) GetStatistics(ctx context.Context) (*Statistics, error) {
	query := `
		SELECT chunk_type, COUNT(*)
		FROM document_chunks
		GROUP BY chunk_type`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("statistics query failed: %w", err)
	}

	defer rows.Close()

	stats := &Statistics{
		ChunkTypes: map[string]int{},
	}

	for rows.Next() {
		var chunkType string
		var count int

		if err := rows.Scan(&chunkType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan statistics row: %w", err)
		}

		stats.ChunkTypes[chunkType] = count
		stats.TotalChunks += count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return stats, nil
}
