package followup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutandi/asisten/internal/config"
	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/internal/session"
	"github.com/sutandi/asisten/pkg/types"
)

func newTestResolver(t *testing.T) (*Resolver, *session.Store) {
	t.Helper()
	sessions := session.NewStore(time.Hour)
	r, err := NewResolver(
		context.Background(),
		embedding.NewLexicalEmbedder(),
		sessions,
		config.ClassifierConfig{FollowupThreshold: 0.70},
		config.Banks{},
	)
	require.NoError(t, err)
	return r, sessions
}

func TestIsFollowUpCanonicalPhrase(t *testing.T) {
	r, _ := newTestResolver(t)

	// A canonical continuation counts even with no session state at all.
	assert.True(t, r.IsFollowUp(context.Background(), "lanjut", "u1"))
	assert.True(t, r.IsFollowUp(context.Background(), "What's Next?", "u1"))
}

func TestIsFollowUpRequiresOpenIntentForOtherMessages(t *testing.T) {
	r, sessions := newTestResolver(t)
	ctx := context.Background()

	assert.False(t, r.IsFollowUp(ctx, "batalkan", "u1"))
	assert.False(t, r.IsFollowUp(ctx, "tolong pesan makanan sekarang juga ya", "u1"))

	sessions.Remember("u1", "buy_product", types.SlotSet{"product": "hp"})
	assert.True(t, r.IsFollowUp(ctx, "batalkan", "u1"))
	assert.True(t, r.IsFollowUp(ctx, "tolong pesan makanan sekarang juga ya", "u1"))
}

func TestIsFollowUpEmptyMessage(t *testing.T) {
	r, sessions := newTestResolver(t)

	sessions.Remember("u1", "buy_product", nil)
	assert.False(t, r.IsFollowUp(context.Background(), "   ", "u1"))
}

func TestContextualPromptWithoutIntent(t *testing.T) {
	r, _ := newTestResolver(t)

	assert.Equal(t,
		"Pengguna melanjutkan percakapan sebelumnya, tetapi maksudnya tidak jelas.",
		r.ContextualPrompt("u1", "id"))
	assert.Equal(t,
		"The user is continuing a previous conversation, but the intent is unclear.",
		r.ContextualPrompt("u1", "en"))
}

func TestContextualPromptRecapsIntentAndSlots(t *testing.T) {
	r, sessions := newTestResolver(t)

	sessions.Remember("u1", "book_flight", types.SlotSet{"from": "jakarta"})

	id := r.ContextualPrompt("u1", "id")
	assert.Contains(t, id, "**book flight**")
	assert.Contains(t, id, "dengan detail:")
	assert.Contains(t, id, "from: jakarta")

	en := r.ContextualPrompt("u1", "en")
	assert.Contains(t, en, "**book flight**")
	assert.Contains(t, en, "with details:")
}

func TestContextualPromptIntentWithoutSlots(t *testing.T) {
	r, sessions := newTestResolver(t)

	sessions.Remember("u1", "find_hotel", nil)

	got := r.ContextualPrompt("u1", "en")
	assert.Equal(t, "Previously, the user wanted to **find hotel**", got)
}
