package ingestion

import (
	"strings"
)

type Chunker struct {
	ChunkSize    int
	ChunkOverlap int
}

// Chunk is a bounded span of document content with page and type
// provenance. Type is one of text, table, annotation.
type Chunk struct {
	Index    int
	Page     int
	Type     string
	Content  string
	Metadata map[string]any
}

func NewChunker(chunkSize, overlap int) *Chunker {
	return &Chunker{
		ChunkSize:    chunkSize,
		ChunkOverlap: overlap,
	}
}

// ChunkDocument splits a document into typed chunks. Form feeds separate
// pages; within a page, blocks separated by blank lines are classified as
// table, annotation or running text. Text blocks are merged and windowed
// with overlap.
func (c *Chunker) ChunkDocument(text string) []Chunk {
	if c.ChunkSize <= 0 || c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return []Chunk{}
	}

	chunks := []Chunk{}
	index := 0

	for pageNum, pageText := range strings.Split(text, "\f") {
		page := pageNum + 1

		var textBlocks []string
		for _, block := range splitBlocks(pageText) {
			switch {
			case isTableBlock(block):
				chunks = append(chunks, Chunk{
					Index:    index,
					Page:     page,
					Type:     "table",
					Content:  flattenTable(block),
					Metadata: map[string]any{"source_type": "table"},
				})
				index++
			case isAnnotationBlock(block):
				chunks = append(chunks, Chunk{
					Index:    index,
					Page:     page,
					Type:     "annotation",
					Content:  strings.TrimSpace(block),
					Metadata: map[string]any{"source_type": "annotation"},
				})
				index++
			default:
				textBlocks = append(textBlocks, block)
			}
		}

		for _, content := range c.chunkText(strings.Join(textBlocks, "\n\n")) {
			chunks = append(chunks, Chunk{
				Index:    index,
				Page:     page,
				Type:     "text",
				Content:  content,
				Metadata: map[string]any{"source_type": "text"},
			})
			index++
		}
	}

	return chunks
}

// chunkText windows running text into overlapping chunks, pulling the cut
// back to the last space so words are not split. The pullback never moves
// the cut inside the overlap zone, so every window starts past the
// previous one even when the text is an unbroken run.
func (c *Chunker) chunkText(text string) []string {
	var chunks []string

	start := 0
	for start < len(text) {
		end := start + c.ChunkSize
		if end < len(text) {
			window := text[start:end]
			if lastSpace := strings.LastIndex(window, " "); lastSpace > c.ChunkOverlap {
				end = start + lastSpace
			}
		} else {
			end = len(text)
		}

		chunk := strings.TrimSpace(text[start:end])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(text) {
			break
		}
		start = end - c.ChunkOverlap
	}

	return chunks
}

func splitBlocks(text string) []string {
	var blocks []string
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// isTableBlock detects table-like structures: vertical bars, tabs, or
// heavy multi-space alignment.
func isTableBlock(block string) bool {
	return strings.Contains(block, "|") ||
		strings.Contains(block, "\t") ||
		strings.Count(block, "  ") > 3
}

// isAnnotationBlock treats bracketed margin notes as annotations.
func isAnnotationBlock(block string) bool {
	trimmed := strings.TrimSpace(block)
	return strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
}

func flattenTable(block string) string {
	return strings.TrimSpace(strings.ReplaceAll(block, "\n", " "))
}
