package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sutandi/asisten/internal/config"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// TavilyClient queries the Tavily search API. Calls are rate-limited per
// process; a limiter wait that outlives the request context counts as
// absence like any other failure.
type TavilyClient struct {
	apiKey     string
	maxResults int
	client     *http.Client
	limiter    *rate.Limiter
}

type tavilyRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	SearchDepth       string `json:"search_depth"`
	IncludeAnswers    bool   `json:"include_answers"`
	IncludeRawContent bool   `json:"include_raw_content"`
	IncludeImages     bool   `json:"include_images,omitempty"`
	MaxResults        int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"results"`
	Images []json.RawMessage `json:"images"`
}

// NewTavilyClient creates a Tavily client from search configuration.
func NewTavilyClient(cfg config.SearchConfig) *TavilyClient {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 3
	}
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &TavilyClient{
		apiKey:     cfg.TavilyAPIKey,
		maxResults: maxResults,
		client:     &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Name identifies the provider in logs.
func (c *TavilyClient) Name() string { return "tavily" }

// Search runs a basic-depth search and formats the results as a bulleted
// block. Absence is reported for missing credentials, failures, and empty
// result sets.
func (c *TavilyClient) Search(ctx context.Context, query string) (string, bool) {
	if c.apiKey == "" {
		return "", false
	}

	var parsed tavilyResponse
	if err := c.post(ctx, tavilyRequest{
		APIKey:      c.apiKey,
		Query:       query,
		SearchDepth: "basic",
		MaxResults:  c.maxResults,
	}, &parsed); err != nil {
		log.Printf("[search] tavily query failed: %v", err)
		return "", false
	}
	if len(parsed.Results) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString("--- Web Search Results ---")
	for _, r := range parsed.Results {
		if r.Content == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("\n- %s: %s", r.Title, r.Content))
	}
	return b.String(), true
}

// ImageURL looks up a single illustrative image for the query. Returns ""
// when no credentials are configured or no image is found.
func (c *TavilyClient) ImageURL(ctx context.Context, query string) string {
	if c.apiKey == "" {
		return ""
	}

	var parsed tavilyResponse
	if err := c.post(ctx, tavilyRequest{
		APIKey:        c.apiKey,
		Query:         query + " food image",
		SearchDepth:   "basic",
		IncludeImages: true,
		MaxResults:    1,
	}, &parsed); err != nil {
		log.Printf("[search] tavily image lookup failed: %v", err)
		return ""
	}
	if len(parsed.Images) == 0 {
		return ""
	}

	// The images field is either a bare URL string or an object with a url.
	var url string
	if err := json.Unmarshal(parsed.Images[0], &url); err == nil {
		return url
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(parsed.Images[0], &obj); err == nil {
		return obj.URL
	}
	return ""
}

func (c *TavilyClient) post(ctx context.Context, reqBody tavilyRequest, out *tavilyResponse) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilyEndpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
