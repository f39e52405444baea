package travel

import (
	"context"

	"github.com/sutandi/asisten/internal/domains"
)

var fallbackIntros = map[string]string{
	"en": "🌍 I'm your travel planner! Ask about flights, hotels, or attractions.\n",
	"id": "🌍 Saya perencana perjalanan Anda! Tanyakan penerbangan, hotel, atau destinasi.\n",
}

var fallbackSuggestions = map[string][]string{
	"en": {
		"✈️ Looking for flights? Try: 'Search flights to Bali'.",
		"🏨 Need a hotel? Ask: 'Book hotel in Bandung'.",
		"🗺️ Planning a trip? Try: '3-day itinerary in Yogyakarta'.",
		"🚗 Want transport tips? Ask: 'How to get from Jakarta to Surabaya?'.",
		"🎒 Curious about attractions? Try: 'Things to do in Lombok'.",
	},
	"id": {
		"✈️ Cari penerbangan? Coba: 'Cari tiket pesawat ke Bali'.",
		"🏨 Butuh hotel? Tanyakan: 'Pesan hotel di Bandung'.",
		"🗺️ Rencanakan liburan? Coba: 'Itinerary 3 hari di Yogyakarta'.",
		"🚗 Mau tips transportasi? Tanyakan: 'Cara ke Surabaya dari Jakarta'.",
		"🎒 Penasaran tempat wisata? Coba: 'Hal yang bisa dilakukan di Lombok'.",
	},
}

// Fallback suggests a travel query when the generic reply did not
// understand the message.
func (h *Handler) Fallback(_ context.Context, message string) string {
	lang := h.detector.Detect(message)

	intro, ok := fallbackIntros[lang]
	if !ok {
		intro = "🌍 I'm your travel assistant!\n"
	}
	pool, ok := fallbackSuggestions[lang]
	if !ok {
		pool = fallbackSuggestions["en"]
	}
	return intro + domains.Pick(message, pool)
}
