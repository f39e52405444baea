package classify

import (
	"context"
	"log"
	"strings"

	"github.com/sutandi/asisten/internal/config"
	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/internal/language"
	"github.com/sutandi/asisten/pkg/types"
)

// Translator converts text to a destination language. Failures are the
// caller's to swallow; classification proceeds on the original text.
type Translator interface {
	Translate(ctx context.Context, text, dest string) (string, error)
}

// DomainClassifier decides which domain a message belongs to. Resolution
// order, first match wins:
//
//  1. keyword override — any candidate phrase contained in the normalized
//     message decides immediately
//  2. embedding nearest-neighbor vote over the top-k reference phrases
//  3. intent-derived fallback through the intent→domain table
//
// Messages in languages other than the pivot pair are translated to the
// pivot language first; translation failures are swallowed.
type DomainClassifier struct {
	embedder   embedding.Embedder
	detector   language.Detector
	translator Translator
	intents    *IntentClassifier

	threshold     float64
	topK          int
	normalizeLang string

	order        []types.Domain
	candidates   map[types.Domain][]string
	bank         *embedding.Bank
	phraseDomain []types.Domain // parallel to the bank's phrases
}

// NewDomainClassifier precomputes the reference-phrase bank. The translator
// may be nil; normalization is then skipped for unsupported languages.
func NewDomainClassifier(ctx context.Context, embedder embedding.Embedder, detector language.Detector, translator Translator, intents *IntentClassifier, cfg config.ClassifierConfig, banks config.Banks) (*DomainClassifier, error) {
	candidates := defaultDomainCandidates
	if len(banks.DomainCandidates) > 0 {
		candidates = make(map[types.Domain][]string, len(banks.DomainCandidates))
		for name, phrases := range banks.DomainCandidates {
			candidates[types.Domain(name)] = phrases
		}
	}

	var phrases []string
	var phraseDomain []types.Domain
	for _, domain := range types.Domains {
		for _, phrase := range candidates[domain] {
			phrases = append(phrases, phrase)
			phraseDomain = append(phraseDomain, domain)
		}
	}

	bank, err := embedding.NewBank(ctx, embedder, phrases)
	if err != nil {
		return nil, err
	}

	return &DomainClassifier{
		embedder:      embedder,
		detector:      detector,
		translator:    translator,
		intents:       intents,
		threshold:     cfg.DomainThreshold,
		topK:          cfg.DomainTopK,
		normalizeLang: cfg.NormalizeLanguage,
		order:         types.Domains,
		candidates:    candidates,
		bank:          bank,
		phraseDomain:  phraseDomain,
	}, nil
}

// Resolve classifies the message with the configured threshold and top-k.
func (c *DomainClassifier) Resolve(ctx context.Context, message string) types.Domain {
	return c.ResolveWithOptions(ctx, message, c.threshold, c.topK)
}

// ResolveWithOptions classifies with explicit threshold and top-k, used by
// response personalization which matches preference tags at a looser cutoff.
func (c *DomainClassifier) ResolveWithOptions(ctx context.Context, message string, threshold float64, topK int) types.Domain {
	normalized := strings.ToLower(c.normalize(ctx, message))

	// Keyword override: deterministic, highest precedence.
	for _, domain := range c.order {
		for _, keyword := range c.candidates[domain] {
			if strings.Contains(normalized, keyword) {
				return domain
			}
		}
	}

	// Embedding nearest-neighbor with top-k vote.
	if queryVec, err := c.embedder.Encode(ctx, normalized); err == nil {
		best := types.DomainGeneral
		maxScore := 0.0
		for _, match := range c.bank.TopK(queryVec, topK) {
			if match.Score > maxScore {
				maxScore = match.Score
				best = c.phraseDomain[match.Index]
			}
		}
		if maxScore >= threshold {
			return best
		}
	}

	// Intent-derived fallback.
	if result := c.intents.Classify(ctx, normalized); result.Found() {
		if domain, ok := IntentDomains[result.Intent]; ok {
			return domain
		}
	}
	return types.DomainGeneral
}

// normalize pivots non-id/en messages to the pivot language so the banks
// (which are id/en) can match. Translation failures fall back to the
// original text.
func (c *DomainClassifier) normalize(ctx context.Context, message string) string {
	lang := c.detector.Detect(message)
	if lang == "id" || lang == "en" || c.translator == nil {
		return message
	}
	translated, err := c.translator.Translate(ctx, message, c.normalizeLang)
	if err != nil {
		log.Printf("[classify] translation to %s failed: %v", c.normalizeLang, err)
		return message
	}
	return translated
}
