package answer

import (
	"github.com/complykit/sox-rag-agent/internal/classify"
	"github.com/complykit/sox-rag-agent/internal/retrieval"
)

// NoRelevantInformation is the fixed answer for an empty retrieval set.
const NoRelevantInformation = "I couldn't find any relevant information in the SOX compliance documents to answer your question."

// QueryResponse is the terminal artifact of one request.
type QueryResponse struct {
	Answer        string                  `json:"answer"`
	Sources       []Source                `json:"sources"`
	Confidence    float64                 `json:"confidence"`
	QueryAnalysis *classify.QueryAnalysis `json:"query_analysis,omitempty"`
}

// Assemble merges the generated answer, the scored sources and the query
// analysis into the final response. With no passages it returns the fixed
// no-information answer at confidence zero; callers must not invoke the
// generator in that case. Otherwise the overall confidence is the weaker
// of the classification confidence and the mean source confidence.
func Assemble(answerText string, passages []retrieval.Passage, analysis *classify.QueryAnalysis) *QueryResponse {
	if len(passages) == 0 {
		return &QueryResponse{
			Answer:        NoRelevantInformation,
			Sources:       []Source{},
			Confidence:    0.0,
			QueryAnalysis: analysis,
		}
	}

	sources := make([]Source, 0, len(passages))
	totalConfidence := 0.0
	for _, passage := range passages {
		source := ScoreReference(passage, analysis)
		sources = append(sources, source)
		totalConfidence += source.Confidence
	}

	confidence := totalConfidence / float64(len(sources))
	if analysis.ConfidenceScore < confidence {
		confidence = analysis.ConfidenceScore
	}

	return &QueryResponse{
		Answer:        answerText,
		Sources:       sources,
		Confidence:    confidence,
		QueryAnalysis: analysis,
	}
}
