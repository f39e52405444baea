package retrieval

import (
	"context"
	"log"
	"sort"

	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/pkg/types"
)

// MemoryProvider holds the snippet corpus in process memory with
// precomputed embeddings. It is the default backend.
type MemoryProvider struct {
	embedder embedding.Embedder
	topK     int
	snippets []Snippet
	vectors  [][]float32
}

// NewMemoryProvider embeds the seed corpus. Snippets that fail to embed are
// skipped with a log line rather than failing startup.
func NewMemoryProvider(ctx context.Context, embedder embedding.Embedder, topK int, seed []Snippet) *MemoryProvider {
	if topK <= 0 {
		topK = 5
	}
	p := &MemoryProvider{embedder: embedder, topK: topK}
	for _, snippet := range seed {
		vec, err := embedder.Encode(ctx, snippet.Content)
		if err != nil {
			log.Printf("[retrieval] skipping snippet, embed failed: %v", err)
			continue
		}
		p.snippets = append(p.snippets, snippet)
		p.vectors = append(p.vectors, vec)
	}
	return p
}

// Retrieve returns the top-k snippets for the query, filtered to the
// domain. An empty corpus yields the unavailable placeholder; no matching
// domain snippets yield the no-results placeholder.
func (p *MemoryProvider) Retrieve(ctx context.Context, query string, domain types.Domain, _ string) []string {
	if len(p.snippets) == 0 {
		return []string{unavailableContext}
	}

	queryVec, err := p.embedder.Encode(ctx, query)
	if err != nil {
		log.Printf("[retrieval] query embed failed: %v", err)
		return []string{unavailableContext}
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, 0, len(p.snippets))
	for i, vec := range p.vectors {
		ranked = append(ranked, scored{index: i, score: embedding.Cosine(queryVec, vec)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	var results []string
	for _, r := range ranked {
		if len(results) >= p.topK {
			break
		}
		if p.snippets[r.index].Domain != domain {
			continue
		}
		results = append(results, p.snippets[r.index].Content)
	}
	if len(results) == 0 {
		return []string{noResultsContext}
	}
	return results
}
