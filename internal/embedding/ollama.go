package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// OllamaEmbedder calls the Ollama /api/embed endpoint. All HTTP calls are
// wrapped with circuit breaker protection so a down embedding service trips
// fast instead of stalling every turn.
type OllamaEmbedder struct {
	baseURL string
	model   string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
}

// OllamaConfig holds Ollama embedder configuration.
type OllamaConfig struct {
	// BaseURL is the base URL for the Ollama API (default: http://localhost:11434)
	BaseURL string

	// Model is the embedding model name (default: paraphrase-multilingual)
	Model string

	// Timeout is the request timeout duration (default: 5s)
	Timeout time.Duration
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// embedResponse carries a 2D embeddings array; the first row is the
// embedding for our single input.
type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// NewOllamaEmbedder creates an Ollama-backed embedder with defaults applied.
func NewOllamaEmbedder(config OllamaConfig) *OllamaEmbedder {
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:11434"
	}
	if config.Model == "" {
		config.Model = "paraphrase-multilingual"
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "EmbeddingCircuitBreaker",
		MaxRequests: 2,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &OllamaEmbedder{
		baseURL: config.BaseURL,
		model:   config.Model,
		client:  &http.Client{Timeout: config.Timeout},
		breaker: breaker,
		timeout: config.Timeout,
	}
}

// Encode sends an embedding request to Ollama and returns the vector.
func (e *OllamaEmbedder) Encode(ctx context.Context, text string) ([]float32, error) {
	result, err := e.breaker.Execute(func() (interface{}, error) {
		return e.encode(ctx, text)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			return nil, fmt.Errorf("embedding circuit breaker open: %w", err)
		}
		return nil, err
	}
	return result.([]float32), nil
}

// GetModel returns the configured model name.
func (e *OllamaEmbedder) GetModel() string {
	return e.model
}

func (e *OllamaEmbedder) encode(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	jsonData, err := json.Marshal(embedRequest{Model: e.model, Input: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/embed", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embed request returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode embed response: %w", err)
	}
	if len(parsed.Embeddings) == 0 || len(parsed.Embeddings[0]) == 0 {
		return nil, errors.New("embed response contained no embedding")
	}
	return parsed.Embeddings[0], nil
}
