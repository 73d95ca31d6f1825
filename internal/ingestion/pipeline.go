package ingestion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/complykit/sox-rag-agent/internal/embedding"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog/log"
)

type Pipeline struct {
	parser   *Parser
	chunker  *Chunker
	embedder *embedding.BedrockEmbedder
	pool     *pgxpool.Pool
}

func NewPipeline(
	parser *Parser,
	chunker *Chunker,
	embedder *embedding.BedrockEmbedder,
	pool *pgxpool.Pool,
) *Pipeline {
	return &Pipeline{
		parser:   parser,
		chunker:  chunker,
		embedder: embedder,
		pool:     pool,
	}
}

// IngestFile processes a document from disk and stores it atomically.
// Returns the number of chunks indexed.
func (p *Pipeline) IngestFile(ctx context.Context, filePath string) (int, error) {
	log.Info().Str("file", filePath).Msg("Starting ingestion")

	doc, err := p.parser.ParseFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to parse file: %w", err)
	}

	return p.ingest(ctx, doc)
}

// IngestContent processes an uploaded document body and stores it
// atomically. Returns the number of chunks indexed.
func (p *Pipeline) IngestContent(ctx context.Context, content []byte, filename string) (int, error) {
	log.Info().Str("file", filename).Msg("Starting ingestion")

	doc, err := p.parser.Parse(content, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to parse upload: %w", err)
	}

	return p.ingest(ctx, doc)
}

func (p *Pipeline) ingest(ctx context.Context, doc *Document) (int, error) {
	log.Info().Str("doc_id", doc.ID).Str("title", doc.Title).Msg("Document parsed")

	chunks := p.chunker.ChunkDocument(doc.Content)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("document %s produced no chunks", doc.Title)
	}
	log.Info().Int("chunk_count", len(chunks)).Msg("Document chunked")

	chunkContent := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunkContent = append(chunkContent, chunk.Content)
	}

	embeddings, err := p.embedder.GenerateBatchEmbeddings(ctx, chunkContent)
	if err != nil {
		return 0, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if err := p.storeDocumentWithChunks(ctx, doc, chunks, embeddings); err != nil {
		return 0, fmt.Errorf("failed to store document: %w", err)
	}

	log.Info().
		Str("doc_id", doc.ID).
		Int("chunks", len(chunks)).
		Msg("Ingestion complete")

	return len(chunks), nil
}

// storeDocumentWithChunks stores document and chunks in a single transaction
func (p *Pipeline) storeDocumentWithChunks(
	ctx context.Context,
	doc *Document,
	chunks []Chunk,
	embeddings [][]float32,
) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if we don't commit

	docQuery := `
        INSERT INTO documents (id, title, content, metadata, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
    `
	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal document metadata: %w", err)
	}

	if _, err := tx.Exec(ctx, docQuery, doc.ID, doc.Title, doc.Content, metadataJSON); err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	chunkQuery := `
        INSERT INTO document_chunks (id, document_id, chunk_index, content, source, page, chunk_type, embedding, metadata, created_at)
        VALUES (uuid_generate_v4(), $1, $2, $3, $4, $5, $6, $7, $8, NOW())
    `

	for i, chunk := range chunks {
		chunkMetadata, _ := json.Marshal(chunk.Metadata)
		vector := pgvector.NewVector(embeddings[i])

		_, err := tx.Exec(ctx, chunkQuery,
			doc.ID,
			chunk.Index,
			chunk.Content,
			doc.Metadata["filename"],
			chunk.Page,
			chunk.Type,
			vector,
			chunkMetadata,
		)
		if err != nil {
			// Transaction will auto-rollback via defer
			return fmt.Errorf("failed to insert chunk %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info().Int("chunks", len(chunks)).Msg("Transaction committed")
	return nil
}
