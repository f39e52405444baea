// Package ner wraps named-entity recognition for slot extraction. The
// recognizer is loaded once at startup and degrades to empty results when
// the model is unavailable; slot extraction then runs on patterns alone.
package ner

import (
	"log"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Entities are the candidates harvested from a message.
type Entities struct {
	// Locations are place-like entities.
	Locations []string

	// Candidates are product- or food-like entities.
	Candidates []string
}

// Recognizer extracts entities from free text.
type Recognizer interface {
	Extract(text string) Entities
}

// ProseRecognizer runs the prose NER model. It is stateless per call and
// safe for concurrent use.
type ProseRecognizer struct{}

// NewRecognizer creates the prose-backed recognizer.
func NewRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// Extract tags the text and buckets entities into locations and
// product/food candidates. Any model failure yields empty entities.
func (r *ProseRecognizer) Extract(text string) Entities {
	doc, err := prose.NewDocument(text, prose.WithExtraction(true))
	if err != nil {
		log.Printf("[ner] extraction failed: %v", err)
		return Entities{}
	}

	var out Entities
	for _, ent := range doc.Entities() {
		value := strings.TrimSpace(ent.Text)
		if value == "" {
			continue
		}
		switch strings.ToUpper(ent.Label) {
		case "GPE", "LOC":
			out.Locations = append(out.Locations, value)
		default:
			out.Candidates = append(out.Candidates, value)
		}
	}
	return out
}

// NullRecognizer always returns empty entities. It stands in when NER is
// disabled or in tests that exercise the pattern-only path.
type NullRecognizer struct{}

// Extract returns empty entities.
func (NullRecognizer) Extract(string) Entities {
	return Entities{}
}
