// Package slots provides the helpers shared by the per-domain slot
// extractors: text normalization, fuzzy matching against reference
// vocabularies, and time/date canonicalization.
package slots

import (
	"context"
	"strings"

	"github.com/sutandi/asisten/internal/embedding"
)

// Normalize lower-cases and trims a message before pattern matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ContainsFold reports whether list contains value, case-insensitively.
func ContainsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

// Matcher performs similarity checks against reference vocabularies.
type Matcher struct {
	embedder embedding.Embedder
}

// NewMatcher creates a vocabulary matcher on the shared embedder.
func NewMatcher(embedder embedding.Embedder) *Matcher {
	return &Matcher{embedder: embedder}
}

// SimilarToAny reports whether the text's best similarity against the
// reference list reaches the threshold. Embedding failures report false:
// an entity that cannot be checked is not admitted.
func (m *Matcher) SimilarToAny(ctx context.Context, text string, references []string, threshold float64) bool {
	queryVec, err := m.embedder.Encode(ctx, text)
	if err != nil {
		return false
	}
	for _, ref := range references {
		refVec, err := m.embedder.Encode(ctx, ref)
		if err != nil {
			continue
		}
		if embedding.Cosine(queryVec, refVec) >= threshold {
			return true
		}
	}
	return false
}

// BestMatch picks the single nearest reference item to the fragment by
// cosine similarity. Ties resolve to the earliest reference. With no
// references (or on embedding failure) the normalized fragment is returned
// as-is.
func (m *Matcher) BestMatch(ctx context.Context, fragment string, references []string) string {
	fragment = Normalize(fragment)
	if len(references) == 0 {
		return fragment
	}

	queryVec, err := m.embedder.Encode(ctx, fragment)
	if err != nil {
		return fragment
	}

	best := fragment
	bestScore := -1.0
	for _, ref := range references {
		refVec, err := m.embedder.Encode(ctx, ref)
		if err != nil {
			continue
		}
		if score := embedding.Cosine(queryVec, refVec); score > bestScore {
			bestScore = score
			best = ref
		}
	}
	return best
}
