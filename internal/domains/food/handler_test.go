package food

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/internal/ner"
	"github.com/sutandi/asisten/internal/slots"
	"github.com/sutandi/asisten/pkg/types"
)

func newReplyHandler(t *testing.T, lang string) *Handler {
	t.Helper()
	matcher := slots.NewMatcher(embedding.NewLexicalEmbedder())
	return New(matcher, ner.NullRecognizer{}, nil, fixedDetector{lang}, nil, nil, nil, 0.55)
}

func TestHandleConfirmsOrderIndonesian(t *testing.T) {
	h := newReplyHandler(t, "id")

	got := h.Handle(context.Background(), "order_food", types.SlotSet{
		"orders":        []types.OrderItem{{Item: "sushi", Quantity: "2"}},
		"delivery_time": "19:00",
	}, "u1")

	assert.Equal(t,
		"🍽️ Baik, saya bantu pesan 2 sushi. Akan diantar pukul 19.00."+
			" Boleh tahu mana lokasi antarnya? Konfirmasi ya jika sudah benar. ✅",
		got)
}

func TestHandleConfirmsOrderEnglish(t *testing.T) {
	h := newReplyHandler(t, "en")

	got := h.Handle(context.Background(), "order_food", types.SlotSet{
		"orders": []types.OrderItem{
			{Item: "sushi", Quantity: "2"},
			{Item: "ramen", Quantity: "1"},
		},
		"location": "senopati",
	}, "u1")

	assert.Equal(t,
		"🍽️ Sure, I'll order 2 sushi and ramen for you."+
			" Delivery to: senopati. Please confirm. ✅",
		got)
}

func TestHandleRestaurantSearchWithoutResults(t *testing.T) {
	h := newReplyHandler(t, "id")

	got := h.Handle(context.Background(), "find_restaurant", types.SlotSet{
		"location": "jakarta",
	}, "u1")

	assert.Equal(t, "🙏 Maaf, saya tidak menemukan restoran di jakarta.", got)
}

func TestHandleUnknownIntent(t *testing.T) {
	h := newReplyHandler(t, "en")

	got := h.Handle(context.Background(), "mystery", types.SlotSet{}, "u1")
	assert.Equal(t, "❓ I'm not sure how to proceed with your request.", got)
}

func TestFormatOrderList(t *testing.T) {
	orders := []types.OrderItem{
		{Item: "sushi", Quantity: "2"},
		{Item: "ramen", Quantity: "1"},
		{Item: "juice", Quantity: ""},
	}

	assert.Equal(t, "2 sushi, ramen dan juice", formatOrderList(orders, "id"))
	assert.Equal(t, "2 sushi, ramen and juice", formatOrderList(orders, "en"))
	assert.Equal(t, "makanan", formatOrderList(nil, "id"))
}

func TestFallbackIsDeterministicPerMessage(t *testing.T) {
	h := newReplyHandler(t, "id")
	ctx := context.Background()

	first := h.Fallback(ctx, "hmmm")
	second := h.Fallback(ctx, "hmmm")

	assert.Equal(t, first, second)
	assert.Contains(t, first, fallbackIntros["id"])
	assert.Contains(t, fallbackSuggestions["id"], first[len(fallbackIntros["id"]):])
}

func TestFallbackUnknownLanguageUsesEnglishPool(t *testing.T) {
	h := newReplyHandler(t, "fr")

	got := h.Fallback(context.Background(), "quoi")
	assert.Contains(t, got, "🍽️ I'm your food assistant!\n")
	assert.Contains(t, fallbackSuggestions["en"], got[len("🍽️ I'm your food assistant!\n"):])
}
