package classify

// QueryType categorizes what kind of answer a question is asking for.
type QueryType string

const (
	QueryTypeFactual    QueryType = "factual"    // Simple fact-based queries
	QueryTypeAnalytical QueryType = "analytical" // Requires analysis of multiple sources
	QueryTypeCompliance QueryType = "compliance" // Specific compliance-related queries
	QueryTypeProcedural QueryType = "procedural" // Process or procedure-related queries
	QueryTypeTemporal   QueryType = "temporal"   // Time-based or historical queries
)

// QueryComplexity orders queries by how much context depth they need.
type QueryComplexity string

const (
	ComplexitySimple   QueryComplexity = "simple"   // Single-fact queries
	ComplexityModerate QueryComplexity = "moderate" // Multi-fact queries
	ComplexityComplex  QueryComplexity = "complex"  // Analysis and synthesis required
	ComplexityExpert   QueryComplexity = "expert"   // Deep domain expertise required
)

// queryTypeLabels returns all query types as zero-shot candidate labels.
func queryTypeLabels() []string {
	return []string{
		string(QueryTypeFactual),
		string(QueryTypeAnalytical),
		string(QueryTypeCompliance),
		string(QueryTypeProcedural),
		string(QueryTypeTemporal),
	}
}

func parseQueryType(label string) QueryType {
	switch QueryType(label) {
	case QueryTypeFactual, QueryTypeAnalytical, QueryTypeCompliance, QueryTypeProcedural, QueryTypeTemporal:
		return QueryType(label)
	default:
		return QueryTypeFactual
	}
}

// Entity is a named entity with character offsets into the original query.
type Entity struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// TemporalReference is a text span referring to a date, time or period.
// Type is set only for references contributed by the NLP model.
type TemporalReference struct {
	Text  string `json:"text"`
	Type  string `json:"type,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// TemporalContext describes the time-related aspects of a query.
// Invariant: HasTemporalAspect is true exactly when TemporalReferences is
// non-empty.
type TemporalContext struct {
	HasTemporalAspect  bool                `json:"has_temporal_aspect"`
	TemporalType       string              `json:"temporal_type,omitempty"`
	TemporalReferences []TemporalReference `json:"temporal_references"`
}

// QueryAnalysis is the structured understanding of one query. It is built
// once per request and never mutated afterwards.
type QueryAnalysis struct {
	QueryType               QueryType       `json:"query_type"`
	Complexity              QueryComplexity `json:"complexity"`
	Entities                []Entity        `json:"entities"`
	TemporalContext         TemporalContext `json:"temporal_context"`
	AugmentationSuggestions []string        `json:"augmentation_suggestions"`
	ConfidenceScore         float64         `json:"confidence_score"`
}
