// Package classify implements the domain and intent classifiers. Both ride
// on the embedding comparator; the domain classifier layers a deterministic
// keyword override and an intent-derived fallback on top.
package classify

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sutandi/asisten/internal/config"
	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/pkg/types"
)

// IntentClassifier scores a message against per-intent example banks and
// returns the best intent above the confidence threshold. A small affinity
// boost favors intents whose owning domain dominates the message's keyword
// counts.
type IntentClassifier struct {
	embedder  embedding.Embedder
	threshold float64
	boost     float64

	intents  []string
	examples map[string]*embedding.Bank

	affinity      map[types.Domain][]string
	affinityOrder []types.Domain
}

// NewIntentClassifier precomputes the example banks. Bank overrides replace
// the compiled-in examples wholesale when present.
func NewIntentClassifier(ctx context.Context, embedder embedding.Embedder, cfg config.ClassifierConfig, banks config.Banks) (*IntentClassifier, error) {
	examples := defaultIntentExamples
	intents := intentOrder
	if len(banks.IntentExamples) > 0 {
		examples = banks.IntentExamples
		intents = make([]string, 0, len(examples))
		for intent := range examples {
			intents = append(intents, intent)
		}
		sort.Strings(intents) // stable evaluation order for overrides
	}

	c := &IntentClassifier{
		embedder:      embedder,
		threshold:     cfg.IntentThreshold,
		boost:         cfg.DomainBoost,
		intents:       intents,
		examples:      make(map[string]*embedding.Bank, len(intents)),
		affinity:      defaultAffinityKeywords,
		affinityOrder: affinityOrder,
	}
	for _, intent := range intents {
		bank, err := embedding.NewBank(ctx, embedder, examples[intent])
		if err != nil {
			return nil, fmt.Errorf("classify: building example bank for %s: %w", intent, err)
		}
		c.examples[intent] = bank
	}
	return c, nil
}

// Classify returns the most likely intent for the message, or an empty
// result when no intent scores above the configured threshold.
func (c *IntentClassifier) Classify(ctx context.Context, message string) types.IntentResult {
	return c.ClassifyWithThreshold(ctx, message, c.threshold)
}

// ClassifyWithThreshold is Classify with an explicit cutoff. Callers with
// untrusted threshold input should parse it through config first; anything
// non-numeric there coerces to the default rather than failing.
func (c *IntentClassifier) ClassifyWithThreshold(ctx context.Context, message string, threshold float64) types.IntentResult {
	queryVec, err := c.embedder.Encode(ctx, message)
	if err != nil {
		// No embedding, no intent. Uncertainty is not an error here.
		return types.IntentResult{}
	}

	dominant, hits := c.dominantDomain(message)
	boost := 0.0
	if hits > 0 {
		boost = c.boost
	}

	best := types.IntentResult{}
	for _, intent := range c.intents {
		score := c.examples[intent].MaxSimilarity(queryVec)
		if IntentDomains[intent] == dominant {
			score += boost
		}
		if score > best.Confidence {
			best = types.IntentResult{Intent: intent, Confidence: score}
		}
	}

	if best.Confidence <= threshold {
		return types.IntentResult{}
	}
	return best
}

// dominantDomain counts affinity-keyword occurrences per domain and returns
// the winner plus its hit count. Ties resolve to the earlier domain in the
// fixed affinity order.
func (c *IntentClassifier) dominantDomain(message string) (types.Domain, int) {
	msgLower := strings.ToLower(message)
	bestDomain := c.affinityOrder[0]
	bestHits := -1
	for _, domain := range c.affinityOrder {
		hits := 0
		for _, keyword := range c.affinity[domain] {
			if strings.Contains(msgLower, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			bestDomain, bestHits = domain, hits
		}
	}
	return bestDomain, bestHits
}
