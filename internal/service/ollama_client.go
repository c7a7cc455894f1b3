package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"sybil/internal/config"
)

// bodyExcerptLimit caps how much of an error body is kept for
// diagnostics.
const bodyExcerptLimit = 512

// EndpointError means the generation endpoint was reachable but
// returned a non-2xx status.
type EndpointError struct {
	Status int
	Body   string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("ollama returned status %d: %s", e.Status, e.Body)
}

// UnreachableError means the generation endpoint could not be reached
// at all: connection failure, DNS, or the request timing out.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("ollama unreachable: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// generateRequest is the Ollama /api/generate request body.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Format  string          `json:"format"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumCtx      int     `json:"num_ctx"`
}

// generateResponse is the Ollama envelope; Response carries the raw
// model completion.
type generateResponse struct {
	Response string `json:"response"`
}

// OllamaClient calls a remote Ollama server for non-streaming,
// JSON-constrained completions. Single attempt, fail fast: the
// request is bounded by the configured timeout and never retried.
type OllamaClient struct {
	cfg    *config.AIConfig
	client *http.Client
}

// NewOllamaClient creates a client from the given AI config.
func NewOllamaClient(cfg *config.AIConfig) *OllamaClient {
	return &OllamaClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Generate sends the prompt and returns the raw model completion.
// Failures map to *EndpointError (non-2xx) or *UnreachableError
// (network error or timeout). Caller cancellation propagates through
// ctx and cancels the outstanding request.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
		Format: "json",
		Options: generateOptions{
			Temperature: c.cfg.Temperature,
			NumCtx:      c.cfg.NumCtx,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GenerateURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UnreachableError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UnreachableError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &EndpointError{Status: resp.StatusCode, Body: excerpt(raw)}
	}

	var envelope generateResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	return envelope.Response, nil
}

func excerpt(body []byte) string {
	if len(body) > bodyExcerptLimit {
		body = body[:bodyExcerptLimit]
	}
	return string(body)
}
