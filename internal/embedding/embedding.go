// Package embedding provides the vector-embedding comparator used by the
// classification stack: an Embedder interface over the external model,
// cosine similarity, and precomputed phrase banks for nearest-neighbor
// lookups against fixed reference phrases.
package embedding

import (
	"context"
	"math"
)

// Embedder is the interface for encoding text into a vector.
// Implementations are loaded once at process start and are safe for
// concurrent use.
type Embedder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	GetModel() string
}

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// Mismatched lengths or zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
