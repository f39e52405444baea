package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank(t *testing.T, phrases []string) (*Bank, *LexicalEmbedder) {
	t.Helper()
	e := NewLexicalEmbedder()
	bank, err := NewBank(context.Background(), e, phrases)
	require.NoError(t, err)
	return bank, e
}

func TestBankMaxSimilarityExactPhrase(t *testing.T) {
	bank, e := newTestBank(t, []string{"mulai ulang", "reset sesi", "start over"})

	vec, _ := e.Encode(context.Background(), "reset sesi")
	assert.InDelta(t, 1.0, bank.MaxSimilarity(vec), 1e-6)
}

func TestBankBestTieResolvesToEarliest(t *testing.T) {
	bank, e := newTestBank(t, []string{"alpha beta", "gamma delta", "alpha beta"})

	vec, _ := e.Encode(context.Background(), "alpha beta")
	best := bank.Best(vec)

	assert.Equal(t, 0, best.Index)
	assert.Equal(t, "alpha beta", best.Phrase)
	assert.InDelta(t, 1.0, best.Score, 1e-6)
}

func TestBankTopKDescendingAndBounded(t *testing.T) {
	bank, e := newTestBank(t, []string{"pizza delivery", "book flight", "pizza"})

	vec, _ := e.Encode(context.Background(), "pizza")
	matches := bank.TopK(vec, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, "pizza", matches[0].Phrase)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)

	all := bank.TopK(vec, 10)
	assert.Len(t, all, 3)
}

func TestBankEmpty(t *testing.T) {
	bank, e := newTestBank(t, nil)

	vec, _ := e.Encode(context.Background(), "anything")
	assert.Equal(t, 0.0, bank.MaxSimilarity(vec))
	assert.Equal(t, -1, bank.Best(vec).Index)
}
