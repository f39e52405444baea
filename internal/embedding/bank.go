package embedding

import (
	"context"
	"fmt"
	"sort"
)

// Match is one phrase from a bank scored against a query vector.
type Match struct {
	Index  int
	Phrase string
	Score  float64
}

// Bank holds a fixed set of reference phrases with their precomputed
// embeddings. Banks are built once at startup and are read-only afterwards,
// so they are safe for concurrent use.
type Bank struct {
	phrases []string
	vectors [][]float32
}

// NewBank encodes every phrase through the embedder. Phrase order is
// preserved; callers rely on it for stable tie-breaking.
func NewBank(ctx context.Context, embedder Embedder, phrases []string) (*Bank, error) {
	vectors := make([][]float32, 0, len(phrases))
	for _, phrase := range phrases {
		vec, err := embedder.Encode(ctx, phrase)
		if err != nil {
			return nil, fmt.Errorf("embedding: failed to encode bank phrase %q: %w", phrase, err)
		}
		vectors = append(vectors, vec)
	}
	return &Bank{phrases: phrases, vectors: vectors}, nil
}

// Phrases returns the bank's phrases in insertion order.
func (b *Bank) Phrases() []string {
	return b.phrases
}

// MaxSimilarity returns the highest cosine similarity between the query
// vector and any phrase in the bank. An empty bank scores 0.
func (b *Bank) MaxSimilarity(query []float32) float64 {
	best := 0.0
	for _, vec := range b.vectors {
		if score := Cosine(query, vec); score > best {
			best = score
		}
	}
	return best
}

// Best returns the single nearest phrase and its score. Ties resolve to the
// earliest phrase. Returns a Match with Index -1 for an empty bank.
func (b *Bank) Best(query []float32) Match {
	best := Match{Index: -1}
	for i, vec := range b.vectors {
		score := Cosine(query, vec)
		if best.Index == -1 || score > best.Score {
			best = Match{Index: i, Phrase: b.phrases[i], Score: score}
		}
	}
	return best
}

// TopK returns the k highest-scoring phrases in descending score order.
// Equal scores keep insertion order, so results are deterministic.
func (b *Bank) TopK(query []float32, k int) []Match {
	matches := make([]Match, 0, len(b.vectors))
	for i, vec := range b.vectors {
		matches = append(matches, Match{Index: i, Phrase: b.phrases[i], Score: Cosine(query, vec)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k]
}
