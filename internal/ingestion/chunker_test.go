package ingestion

import (
	"strings"
	"testing"
)

func TestChunkDocumentTypes(t *testing.T) {
	document := "Running text about SOX controls.\n\n" +
		"| Control | Owner |\n| 404 | CFO |\n\n" +
		"[Reviewed by internal audit]"

	chunks := NewChunker(1000, 200).ChunkDocument(document)

	if len(chunks) != 3 {
		t.Fatalf("chunks: %d, want 3", len(chunks))
	}

	byType := map[string]Chunk{}
	for _, chunk := range chunks {
		byType[chunk.Type] = chunk
	}

	table, ok := byType["table"]
	if !ok {
		t.Fatal("no table chunk produced")
	}
	if strings.Contains(table.Content, "\n") {
		t.Errorf("table content not flattened: %q", table.Content)
	}
	if table.Metadata["source_type"] != "table" {
		t.Errorf("table metadata: %v", table.Metadata)
	}

	annotation, ok := byType["annotation"]
	if !ok {
		t.Fatal("no annotation chunk produced")
	}
	if annotation.Content != "[Reviewed by internal audit]" {
		t.Errorf("annotation content: %q", annotation.Content)
	}

	text, ok := byType["text"]
	if !ok {
		t.Fatal("no text chunk produced")
	}
	if !strings.Contains(text.Content, "Running text") {
		t.Errorf("text content: %q", text.Content)
	}
}

func TestChunkDocumentPages(t *testing.T) {
	document := "First page content.\fSecond page content."

	chunks := NewChunker(1000, 200).ChunkDocument(document)

	if len(chunks) != 2 {
		t.Fatalf("chunks: %d, want 2", len(chunks))
	}
	if chunks[0].Page != 1 || chunks[1].Page != 2 {
		t.Errorf("pages: %d and %d, want 1 and 2", chunks[0].Page, chunks[1].Page)
	}
	if chunks[0].Index != 0 || chunks[1].Index != 1 {
		t.Errorf("indices: %d and %d, want 0 and 1", chunks[0].Index, chunks[1].Index)
	}
}

func TestChunkTextOverlap(t *testing.T) {
	words := make([]string, 100)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ")

	chunker := NewChunker(100, 20)
	chunks := chunker.chunkText(text)

	if len(chunks) < 2 {
		t.Fatalf("chunks: %d, want several", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 100 {
			t.Errorf("chunk %d exceeds size: %d chars", i, len(chunk))
		}
		// cuts land on word boundaries
		if strings.HasPrefix(chunk, "ord") || strings.HasSuffix(chunk, "wor") {
			t.Errorf("chunk %d split a word: %q", i, chunk)
		}
	}

	// full text is reconstructible because windows overlap
	joined := strings.Join(chunks, " ")
	if !strings.Contains(joined, "word word word") {
		t.Errorf("unexpected chunk content: %q", joined)
	}
}

func TestChunkTextUnbrokenRun(t *testing.T) {
	// a short word followed by a run longer than the chunk size, as in a
	// long URL or a flattened table row, must still advance the window
	text := "ab " + strings.Repeat("x", 1100)

	chunks := NewChunker(1000, 200).chunkText(text)

	if len(chunks) != 2 {
		t.Fatalf("chunks: %d, want 2", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 1000 {
			t.Errorf("chunk %d exceeds size: %d chars", i, len(chunk))
		}
	}

	// the space sits inside the overlap zone, so the cut stays at the
	// full window instead of pulling back behind the next start
	if !strings.HasPrefix(chunks[0], "ab x") {
		t.Errorf("chunks[0] start: %q", chunks[0][:10])
	}
}

func TestChunkTextNoSpaces(t *testing.T) {
	text := strings.Repeat("y", 2500)

	chunks := NewChunker(1000, 200).chunkText(text)

	if len(chunks) < 3 {
		t.Fatalf("chunks: %d, want at least 3", len(chunks))
	}
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	// fixed stride with overlap re-reads 200 chars between windows
	if total < len(text) {
		t.Errorf("total chunk length %d lost content from %d input chars", total, len(text))
	}
}

func TestChunkTextShortInput(t *testing.T) {
	chunks := NewChunker(1000, 200).chunkText("short text")

	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Errorf("chunks: %v, want the input unchanged", chunks)
	}
}

func TestChunkDocumentInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative overlap", 100, -1},
		{"overlap not below size", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := NewChunker(tt.size, tt.overlap).ChunkDocument("some content")
			if len(chunks) != 0 {
				t.Errorf("chunks: %d, want 0", len(chunks))
			}
		})
	}
}

func TestIsTableBlock(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  bool
	}{
		{"pipe separated", "a | b | c", true},
		{"tab separated", "a\tb\tc", true},
		{"multi-space aligned", "a  b  c  d  e", true},
		{"plain sentence", "This is a sentence about controls.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTableBlock(tt.block); got != tt.want {
				t.Errorf("isTableBlock(%q): %v, want %v", tt.block, got, tt.want)
			}
		})
	}
}
