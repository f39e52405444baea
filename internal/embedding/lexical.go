package embedding

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

// lexicalDimensions is the fixed vector size of the lexical embedder.
// Large enough that unrelated tokens rarely collide.
const lexicalDimensions = 512

// LexicalEmbedder is a deterministic offline embedder: it hashes word
// unigrams and character trigrams into a fixed-size count vector. Cosine
// similarity over these vectors approximates surface overlap, which is
// enough for the exact-phrase banks (reset, follow-up) and for vocabulary
// gating when no embedding service is configured. It is also the embedder
// used in tests, since it is pure and has no model dependency.
type LexicalEmbedder struct{}

// NewLexicalEmbedder returns the offline fallback embedder.
func NewLexicalEmbedder() *LexicalEmbedder {
	return &LexicalEmbedder{}
}

// Encode hashes the text's tokens and trigrams into a count vector.
// It never fails.
func (e *LexicalEmbedder) Encode(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, lexicalDimensions)
	for _, token := range tokenize(text) {
		bump(vec, token, 2) // whole tokens weigh more than fragments
		runes := []rune(token)
		for i := 0; i+3 <= len(runes); i++ {
			bump(vec, string(runes[i:i+3]), 1)
		}
	}
	return vec, nil
}

// GetModel returns the embedder identifier.
func (e *LexicalEmbedder) GetModel() string {
	return "lexical-hash"
}

func bump(vec []float32, feature string, weight float32) {
	h := fnv.New32a()
	h.Write([]byte(feature))
	vec[h.Sum32()%lexicalDimensions] += weight
}

// tokenize lower-cases and splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
