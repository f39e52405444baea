package taskflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutandi/asisten/internal/classify"
	"github.com/sutandi/asisten/internal/config"
	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/pkg/types"
)

func newTestFlow(t *testing.T) *Flow {
	t.Helper()
	intents, err := classify.NewIntentClassifier(
		context.Background(),
		embedding.NewLexicalEmbedder(),
		config.ClassifierConfig{IntentThreshold: 0.55, DomainBoost: 0.05},
		config.Banks{IntentExamples: map[string][]string{
			"order_food":  {"pesan makanan"},
			"book_flight": {"book a flight"},
		}},
	)
	require.NoError(t, err)
	return New(intents)
}

func TestCurrentStageFromIntent(t *testing.T) {
	f := newTestFlow(t)
	ctx := context.Background()

	assert.Equal(t, Stage("order"), f.CurrentStage(ctx, "pesan makanan"))
	assert.Equal(t, Stage("book"), f.CurrentStage(ctx, "book a flight"))
}

func TestCurrentStageDefaultsToSearch(t *testing.T) {
	f := newTestFlow(t)

	assert.Equal(t, DefaultStage, f.CurrentStage(context.Background(), "qwxyz"))
}

func TestNextPromptAdvancesWithinFlow(t *testing.T) {
	assert.Equal(t, "🍽 Mau pesan sesuatu dari menu ini?", NextPrompt("search", types.DomainFood, "id"))
	assert.Equal(t, "🛒 Next, review your cart before checkout.", NextPrompt("order", types.DomainFood, "en"))
	assert.Equal(t, "💳 Lanjutkan ke pembayaran ya.", NextPrompt("book", types.DomainTravel, "id"))
}

func TestNextPromptTerminalStageConfirms(t *testing.T) {
	for _, domain := range []types.Domain{types.DomainFood, types.DomainTravel, types.DomainMarketplace} {
		for _, lang := range []string{"id", "en"} {
			got := NextPrompt("confirm", domain, lang)
			assert.NotEmpty(t, got, "%s/%s", domain, lang)
			assert.Contains(t, got, "🎉")
		}
	}
}

func TestNextPromptUnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, NextPrompt("search", types.DomainFood, "en"), NextPrompt("search", types.DomainFood, "fr"))
}

func TestNextPromptOutsideFlowYieldsNothing(t *testing.T) {
	assert.Empty(t, NextPrompt("menu", types.DomainTravel, "id"), "stage from another domain's flow")
	assert.Empty(t, NextPrompt("search", types.DomainGeneral, "id"), "domain without a flow")
	assert.Empty(t, NextPrompt("bogus", types.DomainFood, "id"))
}
