package answer

import (
	"testing"

	"github.com/complykit/sox-rag-agent/internal/classify"
	"github.com/complykit/sox-rag-agent/internal/retrieval"
)

func TestAssembleEmptyRetrieval(t *testing.T) {
	analysis := &classify.QueryAnalysis{
		QueryType:       classify.QueryTypeFactual,
		Complexity:      classify.ComplexitySimple,
		ConfidenceScore: 0.8,
	}

	response := Assemble("should be ignored", nil, analysis)

	if response.Answer != NoRelevantInformation {
		t.Errorf("Answer: %q, want the fixed no-information answer", response.Answer)
	}
	if response.Confidence != 0.0 {
		t.Errorf("Confidence: %f, want 0.0", response.Confidence)
	}
	if response.Sources == nil || len(response.Sources) != 0 {
		t.Errorf("Sources: %v, want empty non-nil slice", response.Sources)
	}
	if response.QueryAnalysis != analysis {
		t.Error("QueryAnalysis not attached to the response")
	}
}

func TestAssembleConfidenceTakesWeaker(t *testing.T) {
	passages := []retrieval.Passage{
		{Content: "text passage", Source: "a.txt", ChunkType: retrieval.ChunkTypeText},
		{Content: "table passage", Source: "b.txt", ChunkType: retrieval.ChunkTypeTable},
	}
	// mean source confidence at simple complexity: (0.7 + 0.63) / 2 = 0.665

	tests := []struct {
		name               string
		analysisConfidence float64
		want               float64
	}{
		{"analysis weaker", 0.5, 0.5},
		{"sources weaker", 0.9, 0.665},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := &classify.QueryAnalysis{
				Complexity:      classify.ComplexitySimple,
				ConfidenceScore: tt.analysisConfidence,
			}

			response := Assemble("generated answer", passages, analysis)

			if !almostEqual(response.Confidence, tt.want) {
				t.Errorf("Confidence: %f, want %f", response.Confidence, tt.want)
			}
			if response.Answer != "generated answer" {
				t.Errorf("Answer: %q", response.Answer)
			}
			if len(response.Sources) != 2 {
				t.Fatalf("Sources: %d, want 2", len(response.Sources))
			}
			if response.Sources[0].Document != "a.txt" || response.Sources[1].Document != "b.txt" {
				t.Errorf("source order changed: %+v", response.Sources)
			}
		})
	}
}
