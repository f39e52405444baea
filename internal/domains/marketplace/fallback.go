package marketplace

import (
	"context"

	"github.com/sutandi/asisten/internal/domains"
)

var fallbackIntros = map[string]string{
	"en": "🛍️ I'm your shopping assistant! Ask me about products, deals, or categories.\n",
	"id": "🛍️ Saya asisten belanja Anda! Tanyakan produk, promo, atau kategori.\n",
}

var fallbackSuggestions = map[string][]string{
	"en": {
		"👜 Looking for second-hand items? Try: 'Find used bikes near me'.",
		"📱 Need electronics? Ask: 'Show me affordable smartphones'.",
		"👟 Want fashion deals? Try: 'Latest sneaker deals online'.",
		"🛒 Curious about promotions? Say: 'What's trending in the marketplace?'.",
		"🎁 Need gift ideas? Try: 'Top 5 products under $20'.",
	},
	"id": {
		"👜 Cari barang bekas? Coba: 'Temukan sepeda bekas di dekat saya'.",
		"📱 Butuh elektronik? Tanyakan: 'Tampilkan smartphone terjangkau'.",
		"👟 Ingin diskon fashion? Coba: 'Promo sepatu terbaru online'.",
		"🛒 Cari promo menarik? Katakan: 'Apa yang sedang tren di marketplace?'.",
		"🎁 Butuh ide hadiah? Coba: 'Top 5 produk di bawah 100 ribu'.",
	},
}

// Fallback suggests a marketplace query when the generic reply did not
// understand the message.
func (h *Handler) Fallback(_ context.Context, message string) string {
	lang := h.detector.Detect(message)

	intro, ok := fallbackIntros[lang]
	if !ok {
		intro = "🛍️ I'm your marketplace assistant!\n"
	}
	pool, ok := fallbackSuggestions[lang]
	if !ok {
		pool = fallbackSuggestions["en"]
	}
	return intro + domains.Pick(message, pool)
}
