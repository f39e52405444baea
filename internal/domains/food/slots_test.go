package food

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/internal/ner"
	"github.com/sutandi/asisten/internal/slots"
	"github.com/sutandi/asisten/pkg/types"
)

type fixedDetector struct{ lang string }

func (d fixedDetector) Detect(string) string { return d.lang }

type stubRecognizer struct{ ents ner.Entities }

func (s stubRecognizer) Extract(string) ner.Entities { return s.ents }

type stubImages struct{ prefix string }

func (s stubImages) ImageURL(_ context.Context, query string) string { return s.prefix + query }

func newTestHandler(t *testing.T, recognizer ner.Recognizer, images ImageLookup) *Handler {
	t.Helper()
	if recognizer == nil {
		recognizer = ner.NullRecognizer{}
	}
	matcher := slots.NewMatcher(embedding.NewLexicalEmbedder())
	return New(matcher, recognizer, images, fixedDetector{"id"}, nil, nil, nil, 0.55)
}

func TestExtractSlotsOrderWithQuantityAndTime(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	got := h.ExtractSlots(context.Background(), "order_food", "pesan 2 sushi jam 7 malam ke jalan sudirman")

	orders := got.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "sushi", orders[0].Item)
	assert.Equal(t, "2", orders[0].Quantity)
	assert.Equal(t, "19:00", got.GetString("delivery_time"))
	assert.NotContains(t, got, "location")
}

func TestExtractSlotsIsDeterministic(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	ctx := context.Background()
	msg := "pesan 2 sushi jam 7 malam"

	first := h.ExtractSlots(ctx, "order_food", msg)
	second := h.ExtractSlots(ctx, "order_food", msg)
	assert.Equal(t, first, second)
}

func TestExtractSlotsMultipleItems(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	got := h.ExtractSlots(context.Background(), "order_food", "pesan sushi dan ramen")

	orders := got.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, types.OrderItem{Item: "sushi", Quantity: "1"}, orders[0])
	assert.Equal(t, types.OrderItem{Item: "ramen", Quantity: "1"}, orders[1])
}

func TestExtractSlotsDropsNonFoodPhrases(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	got := h.ExtractSlots(context.Background(), "order_food", "pesan meja buat berdua")
	assert.Empty(t, got.Orders())
}

func TestExtractSlotsRecognizerSupplementsOrders(t *testing.T) {
	h := newTestHandler(t, stubRecognizer{ner.Entities{Candidates: []string{"Ramen", "Meja"}}}, nil)

	got := h.ExtractSlots(context.Background(), "order_food", "pesan itu dong")

	orders := got.Orders()
	require.Len(t, orders, 1, "only food-like entities survive the gate")
	assert.Equal(t, "ramen", orders[0].Item)
	assert.Equal(t, "1", orders[0].Quantity)
}

func TestExtractSlotsOrderImages(t *testing.T) {
	h := newTestHandler(t, nil, stubImages{prefix: "https://img.test/"})

	got := h.ExtractSlots(context.Background(), "order_food", "pesan sushi")

	orders := got.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "https://img.test/sushi", orders[0].ImageURL)
}

func TestExtractSlotsRestaurantLocationPattern(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	got := h.ExtractSlots(context.Background(), "find_restaurant", "cari restoran di jakarta")
	assert.Equal(t, "jakarta", got.GetString("location"))
}

func TestExtractSlotsRestaurantLocationFromRecognizer(t *testing.T) {
	h := newTestHandler(t, stubRecognizer{ner.Entities{Locations: []string{"Bandung"}}}, nil)

	got := h.ExtractSlots(context.Background(), "find_restaurant", "find good restaurants please")
	assert.Equal(t, "Bandung", got.GetString("location"))
}

func TestExtractSlotsUnknownIntentYieldsNothing(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	got := h.ExtractSlots(context.Background(), "recommendation", "pesan 2 sushi")
	assert.Empty(t, got)
}

func TestParseSegment(t *testing.T) {
	cases := []struct {
		segment   string
		quantity  string
		candidate string
	}{
		{"pesan 2 sushi jam 7 malam", "2", "sushi"},
		{"pesan sushi", "1", "sushi"},
		{"2 porsi sate", "2", "sate"},
		{"order nasi goreng untuk nanti", "1", "nasi goreng"},
		{"tolong antar es teh", "1", "es teh"},
	}
	for _, tc := range cases {
		quantity, candidate := parseSegment(tc.segment)
		assert.Equal(t, tc.quantity, quantity, "segment=%q", tc.segment)
		assert.Equal(t, tc.candidate, candidate, "segment=%q", tc.segment)
	}
}
