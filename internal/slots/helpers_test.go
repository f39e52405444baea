package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sutandi/asisten/internal/embedding"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "pesan sushi", Normalize("  Pesan SUSHI "))
}

func TestContainsFold(t *testing.T) {
	list := []string{"Jakarta", "Bandung"}

	assert.True(t, ContainsFold(list, "jakarta"))
	assert.False(t, ContainsFold(list, "bali"))
}

func TestBestMatchPicksNearestReference(t *testing.T) {
	m := NewMatcher(embedding.NewLexicalEmbedder())
	ctx := context.Background()

	got := m.BestMatch(ctx, "Sushi", []string{"ramen", "sushi", "pizza"})
	assert.Equal(t, "sushi", got)
}

func TestBestMatchTieResolvesToEarliest(t *testing.T) {
	m := NewMatcher(embedding.NewLexicalEmbedder())

	got := m.BestMatch(context.Background(), "sushi", []string{"first sushi", "first sushi"})
	assert.Equal(t, "first sushi", got)
}

func TestBestMatchWithoutReferences(t *testing.T) {
	m := NewMatcher(embedding.NewLexicalEmbedder())

	got := m.BestMatch(context.Background(), "  SUSHI ", nil)
	assert.Equal(t, "sushi", got)
}

func TestSimilarToAny(t *testing.T) {
	m := NewMatcher(embedding.NewLexicalEmbedder())
	ctx := context.Background()
	vocab := []string{"pizza", "sushi", "ramen"}

	assert.True(t, m.SimilarToAny(ctx, "sushi", vocab, 0.55))
	assert.False(t, m.SimilarToAny(ctx, "jalan sudirman", vocab, 0.55))
	assert.False(t, m.SimilarToAny(ctx, "anything", nil, 0.1))
}
