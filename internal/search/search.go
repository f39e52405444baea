// Package search implements the external web-search providers used for
// response enrichment when no confident intent is found. Providers are
// tried in fixed priority order; missing credentials and empty results both
// yield absence, never an error.
package search

import (
	"context"

	"github.com/sutandi/asisten/internal/config"
)

// Provider runs one web search. The boolean reports presence: false means
// no credentials, no results, or a failed call — the caller moves on.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) (string, bool)
}

// NewProviders builds the configured provider chain in priority order:
// Tavily first, then SerpAPI. Providers without credentials are still
// returned; they simply report absence.
func NewProviders(cfg config.SearchConfig) []Provider {
	return []Provider{
		NewTavilyClient(cfg),
		NewSerpAPIClient(cfg),
	}
}

// First runs the query through the provider chain and returns the first
// present result.
func First(ctx context.Context, providers []Provider, query string) (string, bool) {
	for _, p := range providers {
		if result, ok := p.Search(ctx, query); ok {
			return result, true
		}
	}
	return "", false
}
