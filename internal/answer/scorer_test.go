package answer

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/complykit/sox-rag-agent/internal/classify"
	"github.com/complykit/sox-rag-agent/internal/retrieval"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestReferenceConfidence(t *testing.T) {
	tests := []struct {
		name       string
		chunkType  string
		complexity classify.QueryComplexity
		want       float64
	}{
		{"text simple", retrieval.ChunkTypeText, classify.ComplexitySimple, 0.7},
		{"table simple", retrieval.ChunkTypeTable, classify.ComplexitySimple, 0.63},
		{"annotation simple", retrieval.ChunkTypeAnnotation, classify.ComplexitySimple, 0.56},
		{"text expert", retrieval.ChunkTypeText, classify.ComplexityExpert, 0.49},
		{"annotation expert", retrieval.ChunkTypeAnnotation, classify.ComplexityExpert, 0.392},
		{"unknown chunk type", "diagram", classify.ComplexityModerate, 0.7 * 0.7 * 0.9},
		{"unknown complexity", retrieval.ChunkTypeText, classify.QueryComplexity("unheard-of"), 0.49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := referenceConfidence(tt.chunkType, tt.complexity)
			if !almostEqual(got, tt.want) {
				t.Errorf("referenceConfidence(%s, %s): %f, want %f", tt.chunkType, tt.complexity, got, tt.want)
			}
			if got < 0.0 || got > 1.0 {
				t.Errorf("confidence out of range: %f", got)
			}
		})
	}
}

func TestScoreReferenceExcerpt(t *testing.T) {
	analysis := &classify.QueryAnalysis{Complexity: classify.ComplexitySimple}

	tests := []struct {
		name    string
		content string
	}{
		{"short content", "SOX Section 404 requires an annual assessment."},
		{"exactly two hundred chars", strings.Repeat("a", 200)},
		{"long content", strings.Repeat("b", 500)},
		{"multi-byte content", strings.Repeat("§", 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := ScoreReference(retrieval.Passage{
				Content:   tt.content,
				Source:    "sox_manual.txt",
				Page:      4,
				ChunkType: retrieval.ChunkTypeText,
			}, analysis)

			// the ellipsis is appended regardless of content length;
			// truncation counts characters, not bytes
			wantLen := utf8.RuneCountInString(tt.content)
			if wantLen > 200 {
				wantLen = 200
			}
			wantLen += 3

			if got := utf8.RuneCountInString(source.Excerpt); got != wantLen {
				t.Errorf("excerpt length: %d runes, want %d", got, wantLen)
			}
			if !utf8.ValidString(source.Excerpt) {
				t.Errorf("excerpt is not valid UTF-8: %q", source.Excerpt)
			}
			if !strings.HasSuffix(source.Excerpt, "...") {
				t.Errorf("excerpt missing ellipsis: %q", source.Excerpt)
			}
			if source.Document != "sox_manual.txt" || source.Page != 4 {
				t.Errorf("passage metadata lost: %+v", source)
			}
			if source.RelevanceType != retrieval.ChunkTypeText {
				t.Errorf("RelevanceType: %s, want text", source.RelevanceType)
			}
		})
	}
}
