package food

import (
	"context"

	"github.com/sutandi/asisten/internal/domains"
)

var fallbackIntros = map[string]string{
	"en": "🍽️ I'm your food assistant! Ask about menus, restaurants, or delivery.\n",
	"id": "🍽️ Saya asisten makanan Anda! Tanyakan menu, restoran, atau layanan antar.\n",
}

var fallbackSuggestions = map[string][]string{
	"en": {
		"🍣 Looking for sushi places nearby? Try asking: 'Find sushi near me'.",
		"🍛 Want to order nasi padang? You can say: 'Order nasi padang for delivery'.",
		"🥢 Craving Asian food? Try: 'Top ramen spots around here'.",
		"🍕 Hungry for pizza? Just ask: 'Pizza delivery in my area'.",
		"🍴 Curious about popular dishes? Try: 'Best Indonesian restaurants in Jakarta'.",
	},
	"id": {
		"🍣 Cari restoran sushi terdekat? Coba: 'Temukan sushi dekat sini'.",
		"🍛 Ingin pesan nasi padang? Katakan: 'Pesan nasi padang untuk antar'.",
		"🥢 Ngidam mie ramen? Tanyakan: 'Tempat ramen terbaik di sekitar sini'.",
		"🍕 Lapar pizza? Coba: 'Pesan pizza area saya'.",
		"🍴 Mau tahu makanan populer? Coba: 'Restoran Indonesia terbaik di Jakarta'.",
	},
}

// Fallback suggests a food query when the generic reply did not understand
// the message.
func (h *Handler) Fallback(_ context.Context, message string) string {
	lang := h.detector.Detect(message)

	intro, ok := fallbackIntros[lang]
	if !ok {
		intro = "🍽️ I'm your food assistant!\n"
	}
	pool, ok := fallbackSuggestions[lang]
	if !ok {
		pool = fallbackSuggestions["en"]
	}
	return intro + domains.Pick(message, pool)
}
