package claudezs

import (
	"context"
	"fmt"
	"strings"

	"github.com/complykit/sox-rag-agent/internal/bedrock"
	"github.com/rs/zerolog/log"
)

// Classifier implements zero-shot label ranking on top of Claude. Each
// candidate label is phrased through the hypothesis template and the model
// is asked to order the hypotheses by how well they fit the text.
type Classifier struct {
	client *bedrock.Client
}

func NewClassifier(client *bedrock.Client) *Classifier {
	return &Classifier{
		client: client,
	}
}

func (c *Classifier) Classify(ctx context.Context, text string, labels []string, hypothesisTemplate string) ([]string, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("no candidate labels provided")
	}

	prompt := c.buildPrompt(text, labels, hypothesisTemplate)

	response, err := c.client.InvokeModel(ctx, bedrock.ClaudeRequest{
		Prompt:      prompt,
		MaxTokens:   100,
		Temperature: 0.0, // Deterministic ranking
	})
	if err != nil {
		return nil, fmt.Errorf("zero-shot classification failed: %w", err)
	}

	ranked := c.parseResponse(response.Content, labels)

	log.Debug().
		Str("top_label", ranked[0]).
		Msg("Zero-shot classification")

	return ranked, nil
}

func (c *Classifier) buildPrompt(text string, labels []string, hypothesisTemplate string) string {
	var hypotheses strings.Builder
	for _, label := range labels {
		hypotheses.WriteString("- ")
		hypotheses.WriteString(fmt.Sprintf(hypothesisTemplate, label))
		hypotheses.WriteString(fmt.Sprintf(" (label: %s)\n", label))
	}

	return fmt.Sprintf(`You are a zero-shot text classifier.

Text: "%s"

Candidate hypotheses:
%s
Rank ALL labels from best to worst fit for the text.

Respond EXACTLY in this format:
LABELS: [comma-separated labels, best first]`, text, hypotheses.String())
}

// parseResponse extracts the ranked labels from the LABELS: line. Labels
// the model omitted or invented are dropped; omitted candidates are
// appended in their original order so the result always covers the full
// candidate set.
func (c *Classifier) parseResponse(response string, candidates []string) []string {
	valid := make(map[string]bool, len(candidates))
	for _, label := range candidates {
		valid[label] = true
	}

	var ranked []string
	seen := make(map[string]bool, len(candidates))

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "LABELS:") {
			continue
		}

		raw := strings.TrimPrefix(line, "LABELS:")
		raw = strings.Trim(strings.TrimSpace(raw), "[]")
		for _, part := range strings.Split(raw, ",") {
			label := strings.ToLower(strings.TrimSpace(part))
			if valid[label] && !seen[label] {
				ranked = append(ranked, label)
				seen[label] = true
			}
		}
		break
	}

	for _, label := range candidates {
		if !seen[label] {
			ranked = append(ranked, label)
		}
	}

	return ranked
}
