package retrieval

// Chunk content types produced by the ingestion pipeline.
const (
	ChunkTypeText       = "text"
	ChunkTypeTable      = "table"
	ChunkTypeAnnotation = "annotation"
)

// Passage is one indexed span of a compliance document as returned by the
// similarity-search oracle. The pipeline treats passages as read-only.
type Passage struct {
	Content   string         `json:"content"`
	Source    string         `json:"source"`
	Page      int            `json:"page"`
	ChunkType string         `json:"chunk_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
