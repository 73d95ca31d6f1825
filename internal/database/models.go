package database

import "fmt"

type Document struct {
	Id    string
	Title string
}

func (d *Document) Print() string {
	return fmt.Sprintf("Document_id: %s - Title: %s", d.Id, d.Title)
}

// Chunk is one indexed passage row from document_chunks.
type Chunk struct {
	Id         string
	DocumentID string
	Content    string
	Source     string
	Page       int
	ChunkType  string
	Metadata   map[string]any
	Distance   float64
}

// Statistics summarizes the indexed corpus.
type Statistics struct {
	TotalChunks int            `json:"total_chunks"`
	ChunkTypes  map[string]int `json:"chunk_type_distribution"`
}
