package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sutandi/asisten/internal/config"
)

const serpAPIEndpoint = "https://serpapi.com/search"

// SerpAPIClient queries Google results through SerpAPI. It is the
// second-priority provider, consulted when Tavily reports absence.
type SerpAPIClient struct {
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

type serpAPIResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

// NewSerpAPIClient creates a SerpAPI client from search configuration.
func NewSerpAPIClient(cfg config.SearchConfig) *SerpAPIClient {
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &SerpAPIClient{
		apiKey:  cfg.SerpAPIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Name identifies the provider in logs.
func (c *SerpAPIClient) Name() string { return "serpapi" }

// Search runs a Google engine query and formats organic results as a
// bulleted block. Absence covers missing credentials, failures, and empty
// result sets.
func (c *SerpAPIClient) Search(ctx context.Context, query string) (string, bool) {
	if c.apiKey == "" {
		return "", false
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", false
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("engine", "google")
	params.Set("num", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpAPIEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("[search] serpapi request build failed: %v", err)
		return "", false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[search] serpapi query failed: %v", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[search] serpapi returned status %d", resp.StatusCode)
		return "", false
	}

	var parsed serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[search] serpapi decode failed: %v", err)
		return "", false
	}
	if len(parsed.OrganicResults) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString("--- Google Search ---")
	for _, r := range parsed.OrganicResults {
		if r.Snippet == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("\n- %s: %s", r.Title, r.Snippet))
	}
	return b.String(), true
}
