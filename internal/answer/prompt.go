package answer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/complykit/sox-rag-agent/internal/classify"
	"github.com/complykit/sox-rag-agent/internal/retrieval"
)

const systemPrompt = `You are an AI assistant specialized in SOX (Sarbanes-Oxley Act) compliance.
Your task is to provide accurate, clear, and concise answers to questions about SOX compliance documents.
Base your answers strictly on the provided context. If you're unsure or the information isn't in the context, say so.
Always cite your sources using the provided document references.

Consider the query type and complexity level provided, and adjust your response accordingly:
- For simple queries: Provide direct, concise answers
- For moderate queries: Include relevant context and basic explanations
- For complex queries: Provide detailed analysis and multiple perspectives
- For expert queries: Include comprehensive analysis, implications, and connections to broader compliance frameworks

Format your response in a clear, structured manner using markdown when appropriate.`

// BuildPrompt assembles the generation prompt: the system prompt, the
// query analysis summary, the retrieved context grouped by content type,
// and the question itself.
func BuildPrompt(query string, passages []retrieval.Passage, analysis *classify.QueryAnalysis) string {
	sections := map[string][]string{}
	for _, passage := range passages {
		chunkType := passage.ChunkType
		switch chunkType {
		case retrieval.ChunkTypeTable, retrieval.ChunkTypeAnnotation:
		default:
			chunkType = retrieval.ChunkTypeText
		}
		entry := fmt.Sprintf("Document: %s, Page: %d\n%s", passage.Source, passage.Page, passage.Content)
		sections[chunkType] = append(sections[chunkType], entry)
	}

	var contextBuilder strings.Builder
	for _, sectionType := range []string{retrieval.ChunkTypeText, retrieval.ChunkTypeTable, retrieval.ChunkTypeAnnotation} {
		contents := sections[sectionType]
		if len(contents) == 0 {
			continue
		}
		contextBuilder.WriteString(fmt.Sprintf("\n%s CONTENT:\n", strings.ToUpper(sectionType)))
		contextBuilder.WriteString(strings.Join(contents, "\n\n"))
	}

	temporalJSON, _ := json.Marshal(analysis.TemporalContext)
	queryContext := fmt.Sprintf(`
Query Type: %s
Complexity: %s
Temporal Context: %s
`, analysis.QueryType, analysis.Complexity, string(temporalJSON))

	return fmt.Sprintf(`%s

QUERY ANALYSIS:
%s

CONTEXT:
%s

Question: %s

Answer: Let me help you with that based on the SOX compliance documents provided.`,
		systemPrompt, queryContext, contextBuilder.String(), query)
}
