package claudezs

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

var candidateLabels = []string{"factual", "analytical", "compliance", "procedural", "temporal"}

func TestParseResponse(t *testing.T) {
	classifier := &Classifier{}

	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "full ranking",
			response: "LABELS: [compliance, factual, temporal, analytical, procedural]",
			want:     []string{"compliance", "factual", "temporal", "analytical", "procedural"},
		},
		{
			name:     "without brackets",
			response: "LABELS: temporal, factual, compliance, analytical, procedural",
			want:     []string{"temporal", "factual", "compliance", "analytical", "procedural"},
		},
		{
			name:     "partial ranking keeps omitted candidates in original order",
			response: "LABELS: [compliance, temporal]",
			want:     []string{"compliance", "temporal", "factual", "analytical", "procedural"},
		},
		{
			name:     "invented labels are dropped",
			response: "LABELS: [legal, compliance, quantum, factual, analytical, procedural, temporal]",
			want:     []string{"compliance", "factual", "analytical", "procedural", "temporal"},
		},
		{
			name:     "duplicates collapse to first occurrence",
			response: "LABELS: [factual, factual, compliance, analytical, procedural, temporal]",
			want:     []string{"factual", "compliance", "analytical", "procedural", "temporal"},
		},
		{
			name:     "uppercase labels are normalized",
			response: "LABELS: [Compliance, FACTUAL, analytical, procedural, temporal]",
			want:     []string{"compliance", "factual", "analytical", "procedural", "temporal"},
		},
		{
			name:     "chatter around the labels line",
			response: "Sure, here is my ranking.\n\nLABELS: [procedural, factual, analytical, compliance, temporal]\n\nHope that helps.",
			want:     []string{"procedural", "factual", "analytical", "compliance", "temporal"},
		},
		{
			name:     "missing labels line falls back to candidate order",
			response: "I cannot classify this text.",
			want:     []string{"factual", "analytical", "compliance", "procedural", "temporal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.parseResponse(tt.response, candidateLabels)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseResponse:\ngot  %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestClassifyNoCandidates(t *testing.T) {
	classifier := NewClassifier(nil)

	// rejected before any model call, so the nil client is never touched
	if _, err := classifier.Classify(context.Background(), "some text", nil, "This is a %s question."); err == nil {
		t.Error("expected error for empty candidate list")
	}
	if _, err := classifier.Classify(context.Background(), "some text", []string{}, "This is a %s question."); err == nil {
		t.Error("expected error for empty candidate list")
	}
}

func TestBuildPrompt(t *testing.T) {
	classifier := &Classifier{}

	prompt := classifier.buildPrompt("When is the audit due?", candidateLabels, "This is a %s question.")

	for _, fragment := range []string{
		`Text: "When is the audit due?"`,
		"This is a temporal question. (label: temporal)",
		"This is a compliance question. (label: compliance)",
		"LABELS:",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}
