package answer

import (
	"github.com/complykit/sox-rag-agent/internal/classify"
	"github.com/complykit/sox-rag-agent/internal/retrieval"
)

const excerptLength = 200

// Source is a cited reference derived from one retrieved passage and the
// current query analysis. Sources are recomputed on every query.
type Source struct {
	Document      string  `json:"document"`
	Page          int     `json:"page"`
	Excerpt       string  `json:"excerpt"`
	RelevanceType string  `json:"relevance_type"`
	Confidence    float64 `json:"confidence"`
}

// Weight tables for reference confidence. Unknown chunk types and
// complexity values fall back to 0.7, below every known weight.
var chunkTypeWeights = map[string]float64{
	retrieval.ChunkTypeText:       1.0,
	retrieval.ChunkTypeTable:      0.9,
	retrieval.ChunkTypeAnnotation: 0.8,
}

var complexityWeights = map[classify.QueryComplexity]float64{
	classify.ComplexitySimple:   1.0,
	classify.ComplexityModerate: 0.9,
	classify.ComplexityComplex:  0.8,
	classify.ComplexityExpert:   0.7,
}

const defaultWeight = 0.7

// ScoreReference converts a passage into a cited Source. The excerpt is
// always the first 200 characters followed by an ellipsis, even when the
// content is shorter; downstream consumers rely on that exact shape.
// Truncation counts runes so multi-byte content never yields invalid
// UTF-8.
func ScoreReference(passage retrieval.Passage, analysis *classify.QueryAnalysis) Source {
	excerpt := passage.Content
	if runes := []rune(excerpt); len(runes) > excerptLength {
		excerpt = string(runes[:excerptLength])
	}

	return Source{
		Document:      passage.Source,
		Page:          passage.Page,
		Excerpt:       excerpt + "...",
		RelevanceType: passage.ChunkType,
		Confidence:    referenceConfidence(passage.ChunkType, analysis.Complexity),
	}
}

func referenceConfidence(chunkType string, complexity classify.QueryComplexity) float64 {
	baseConfidence := 0.7

	typeWeight, ok := chunkTypeWeights[chunkType]
	if !ok {
		typeWeight = defaultWeight
	}

	complexityWeight, ok := complexityWeights[complexity]
	if !ok {
		complexityWeight = defaultWeight
	}

	return clamp01(baseConfidence * typeWeight * complexityWeight)
}

func clamp01(value float64) float64 {
	if value < 0.0 {
		return 0.0
	}
	if value > 1.0 {
		return 1.0
	}
	return value
}
