package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalEmbedderDeterministic(t *testing.T) {
	e := NewLexicalEmbedder()
	ctx := context.Background()

	a, err := e.Encode(ctx, "pesan 2 sushi jam 7 malam")
	require.NoError(t, err)
	b, err := e.Encode(ctx, "pesan 2 sushi jam 7 malam")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.InDelta(t, 1.0, Cosine(a, b), 1e-6)
}

func TestLexicalEmbedderCaseAndPunctuationInsensitive(t *testing.T) {
	e := NewLexicalEmbedder()
	ctx := context.Background()

	a, _ := e.Encode(ctx, "Reset Sesi!")
	b, _ := e.Encode(ctx, "reset sesi")

	assert.InDelta(t, 1.0, Cosine(a, b), 1e-6)
}

func TestLexicalEmbedderUnrelatedTextsScoreLow(t *testing.T) {
	e := NewLexicalEmbedder()
	ctx := context.Background()

	a, _ := e.Encode(ctx, "pizza")
	b, _ := e.Encode(ctx, "qwxyz")

	assert.Less(t, Cosine(a, b), 0.3)
}

func TestLexicalEmbedderPartialOverlap(t *testing.T) {
	e := NewLexicalEmbedder()
	ctx := context.Background()

	a, _ := e.Encode(ctx, "pizza")
	b, _ := e.Encode(ctx, "pizza delivery")

	score := Cosine(a, b)
	assert.Greater(t, score, 0.5)
	assert.Less(t, score, 0.9)
}

func TestCosineZeroVector(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 0}))
}
