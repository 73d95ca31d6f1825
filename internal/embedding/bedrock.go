package embedding

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const defaultEmbeddingModelID = "amazon.titan-embed-text-v2:0"

// BedrockEmbedder generates text embeddings with Titan on Bedrock.
type BedrockEmbedder struct {
	client  *bedrockruntime.Client
	modelID string
}

func NewBedrockEmbedder(client *bedrockruntime.Client) *BedrockEmbedder {
	return &BedrockEmbedder{
		client:  client,
		modelID: defaultEmbeddingModelID,
	}
}

type titanEmbeddingRequest struct {
	InputText string `json:"inputText"`
}

type titanEmbeddingResponse struct {
	Embedding []float32 `json:"embedding"`
}

func (e *BedrockEmbedder) GenerateEmbeddings(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(titanEmbeddingRequest{InputText: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	output, err := e.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &e.modelID,
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke embedding model: %w", err)
	}

	var response titanEmbeddingResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedding response: %w", err)
	}

	return response.Embedding, nil
}

func (e *BedrockEmbedder) GenerateBatchEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, 0, len(texts))

	for i, text := range texts {
		embedding, err := e.GenerateEmbeddings(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed text %d: %w", i, err)
		}
		embeddings = append(embeddings, embedding)
	}

	return embeddings, nil
}
