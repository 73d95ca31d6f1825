package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/complykit/sox-rag-agent/internal/nlp"
	"github.com/rs/zerolog/log"
)

const hypothesisTemplate = "This is a %s question."

// Classifier turns a raw query string into a QueryAnalysis. The linguistic
// parser and the zero-shot classifier are injected so the core stays
// testable without loaded models. Both are shared, read-only collaborators
// safe for concurrent use.
type Classifier struct {
	parser   nlp.Parser
	zeroShot nlp.ZeroShotClassifier
}

func NewClassifier(parser nlp.Parser, zeroShot nlp.ZeroShotClassifier) *Classifier {
	return &Classifier{
		parser:   parser,
		zeroShot: zeroShot,
	}
}

// Classify analyzes the query by type, complexity, entities and temporal
// aspects. The query is parsed exactly once and the parse is reused by all
// sub-steps. A collaborator failure aborts the whole classification; no
// partial analysis is ever returned.
func (c *Classifier) Classify(ctx context.Context, query string) (*QueryAnalysis, error) {
	parsed, err := c.parser.Parse(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("linguistic parse failed: %w", err)
	}

	queryType, err := c.determineQueryType(ctx, query)
	if err != nil {
		return nil, err
	}

	complexity := assessComplexity(query, parsed)
	entities := extractEntities(parsed)
	temporalContext := identifyTemporalContext(query, parsed)
	suggestions := augmentationSuggestions(queryType, complexity, entities)
	confidence := classificationConfidence(complexity, len(entities))

	log.Info().
		Str("query_type", string(queryType)).
		Str("complexity", string(complexity)).
		Int("entities", len(entities)).
		Float64("confidence", confidence).
		Msg("Query classified")

	return &QueryAnalysis{
		QueryType:               queryType,
		Complexity:              complexity,
		Entities:                entities,
		TemporalContext:         temporalContext,
		AugmentationSuggestions: suggestions,
		ConfidenceScore:         confidence,
	}, nil
}

// determineQueryType combines the zero-shot model with keyword overrides.
// The override rules form a fixed priority cascade: compliance keywords
// beat temporal indicators, which beat the model's primary label.
func (c *Classifier) determineQueryType(ctx context.Context, query string) (QueryType, error) {
	labels, err := c.zeroShot.Classify(ctx, query, queryTypeLabels(), hypothesisTemplate)
	if err != nil {
		return "", fmt.Errorf("zero-shot classification failed: %w", err)
	}

	primaryType := QueryTypeFactual
	if len(labels) > 0 {
		primaryType = parseQueryType(labels[0])
	}

	lowerQuery := strings.ToLower(query)

	rules := []struct {
		applies bool
		result  QueryType
	}{
		{complianceKeywords.matches(lowerQuery), QueryTypeCompliance},
		{temporalIndicators.matches(lowerQuery), QueryTypeTemporal},
		{true, primaryType},
	}

	for _, rule := range rules {
		if rule.applies {
			return rule.result, nil
		}
	}
	return primaryType, nil
}

// assessComplexity scores the query against a strict priority cascade;
// the first matching tier wins.
func assessComplexity(query string, parsed *nlp.ParseResult) QueryComplexity {
	numEntities := len(parsed.Entities)

	numClauses := 0
	wordCount := 0
	for _, token := range parsed.Tokens {
		if token.Dep == "mark" {
			numClauses++
		}
		if !token.IsPunct {
			wordCount++
		}
	}

	lowerQuery := strings.ToLower(query)
	complexCount := complexIndicators.count(lowerQuery)
	expertCount := expertIndicators.count(lowerQuery)

	switch {
	case expertCount > 0 || (complexCount >= 2 && numClauses >= 3):
		return ComplexityExpert
	case complexCount > 0 || (numEntities >= 3 && numClauses >= 2):
		return ComplexityComplex
	case numEntities >= 2 || numClauses >= 1 || wordCount > 15:
		return ComplexityModerate
	default:
		return ComplexitySimple
	}
}

func extractEntities(parsed *nlp.ParseResult) []Entity {
	entities := make([]Entity, 0, len(parsed.Entities))
	for _, ent := range parsed.Entities {
		entities = append(entities, Entity{
			Text:  ent.Text,
			Type:  ent.Label,
			Start: ent.StartChar,
			End:   ent.EndChar,
		})
	}
	return entities
}

// identifyTemporalContext collects every temporal indicator occurrence in
// the query plus every DATE/TIME entity from the parse.
func identifyTemporalContext(query string, parsed *nlp.ParseResult) TemporalContext {
	references := []TemporalReference{}

	lowerQuery := strings.ToLower(query)
	for _, match := range temporalIndicators.occurrences(lowerQuery) {
		references = append(references, TemporalReference{
			Text:  match.text,
			Start: match.start,
			End:   match.end,
		})
	}

	for _, ent := range parsed.Entities {
		if ent.Label != "DATE" && ent.Label != "TIME" {
			continue
		}
		references = append(references, TemporalReference{
			Text:  ent.Text,
			Type:  ent.Label,
			Start: ent.StartChar,
			End:   ent.EndChar,
		})
	}

	return TemporalContext{
		HasTemporalAspect:  len(references) > 0,
		TemporalReferences: references,
	}
}

// augmentationSuggestions builds advisory hints for enriching the query.
// The rule order is fixed and each rule contributes at most one entry.
func augmentationSuggestions(queryType QueryType, complexity QueryComplexity, entities []Entity) []string {
	suggestions := []string{}

	if queryType == QueryTypeCompliance {
		suggestions = append(suggestions, "Include relevant regulatory framework references")
	}

	if complexity == ComplexityComplex || complexity == ComplexityExpert {
		suggestions = append(suggestions, "Break down into sub-queries for detailed analysis")
	}

	if len(entities) == 0 {
		suggestions = append(suggestions, "Add specific entity references for better context")
	}

	return suggestions
}

var complexityAdjustment = map[QueryComplexity]float64{
	ComplexitySimple:   0.1,
	ComplexityModerate: 0.05,
	ComplexityComplex:  -0.05,
	ComplexityExpert:   -0.1,
}

func classificationConfidence(complexity QueryComplexity, entityCount int) float64 {
	baseConfidence := 0.7

	entityFactor := float64(entityCount) * 0.1
	if entityFactor > 0.2 {
		entityFactor = 0.2
	}

	confidence := baseConfidence + entityFactor + complexityAdjustment[complexity]

	return clamp01(confidence)
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
