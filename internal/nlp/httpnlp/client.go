package httpnlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/complykit/sox-rag-agent/internal/nlp"
	"github.com/rs/zerolog/log"
)

// Client talks to the NLP sidecar service which wraps the spaCy model.
// The sidecar exposes POST /parse with {"text": ...} and returns entities
// and tokens in the shape of nlp.ParseResult.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Config struct {
	BaseURL             string
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

func NewClient(config Config) *Client {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	}

	return &Client{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

func (c *Client) Parse(ctx context.Context, text string) (*nlp.ParseResult, error) {
	body, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parse request: %w", err)
	}

	url := c.baseURL + "/parse"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nlp service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error().Int("status", resp.StatusCode).Str("body", string(payload)).Msg("NLP parse failed")
		return nil, fmt.Errorf("nlp service returned status %d", resp.StatusCode)
	}

	var result nlp.ParseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode parse response: %w", err)
	}

	return &result, nil
}
