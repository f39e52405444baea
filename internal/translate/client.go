// Package translate provides the translation client used to pivot
// classifier input and to align replies with the conversation language.
// Unlike the other collaborators, translation errors propagate: the
// orchestrator decides to log and keep the untranslated text.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no translation endpoint is set.
var ErrNotConfigured = errors.New("translate: no endpoint configured")

// Client speaks the LibreTranslate-compatible wire format.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// NewClient creates a translator against the given endpoint. An empty
// endpoint yields a client whose calls fail with ErrNotConfigured.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Translate converts text to the destination language with automatic
// source detection.
func (c *Client) Translate(ctx context.Context, text, dest string) (string, error) {
	if c.endpoint == "" {
		return "", ErrNotConfigured
	}

	jsonData, err := json.Marshal(translateRequest{
		Query:  text,
		Source: "auto",
		Target: dest,
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("translate: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/translate", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("translate: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: request returned status %d", resp.StatusCode)
	}

	var parsed translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("translate: failed to decode response: %w", err)
	}
	if parsed.TranslatedText == "" {
		return "", errors.New("translate: response contained no translation")
	}
	return parsed.TranslatedText, nil
}
