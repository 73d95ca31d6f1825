package generation

import (
	"context"
	"fmt"

	"github.com/complykit/sox-rag-agent/internal/bedrock"
	"github.com/rs/zerolog/log"
)

// Generator is an interface for single-shot answer generation
// This allows mocking in tests without making real API calls
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ClaudeGenerator generates answers with Claude on Bedrock.
type ClaudeGenerator struct {
	client      *bedrock.Client
	maxTokens   int
	temperature float64
}

func NewClaudeGenerator(client *bedrock.Client, maxTokens int, temperature float64) *ClaudeGenerator {
	if maxTokens == 0 {
		maxTokens = 2048
	}
	return &ClaudeGenerator{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (g *ClaudeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := g.client.InvokeModel(ctx, bedrock.ClaudeRequest{
		Prompt:      prompt,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}

	log.Debug().
		Str("stop_reason", response.StopReason).
		Msg("Answer generated")

	return response.Content, nil
}
