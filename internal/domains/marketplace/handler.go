package marketplace

import (
	"context"

	"github.com/sutandi/asisten/internal/search"
	"github.com/sutandi/asisten/pkg/types"
)

// Handle produces the structured reply for a resolved marketplace intent.
func (h *Handler) Handle(ctx context.Context, intent string, slotSet types.SlotSet, userID string) string {
	sample := slotSet.GetString("product")
	if sample == "" {
		sample = slotSet.GetString("category")
	}
	if sample == "" {
		sample = "produk"
	}
	lang := h.detector.Detect(sample)

	switch intent {
	case "buy_product":
		return h.buyProduct(ctx, slotSet.GetString("product"), lang)
	case "sell_product":
		return h.sellProduct(ctx, slotSet.GetString("product"), lang)
	case "search_deals", "search_product":
		return h.searchDeals(ctx, slotSet.GetString("category"), lang)
	}

	if lang == "id" {
		return "❓ Maaf, saya belum mengerti permintaan Anda."
	}
	return "❓ Sorry, I didn't understand your request."
}

func (h *Handler) buyProduct(ctx context.Context, product, lang string) string {
	if product == "" {
		if lang == "id" {
			return "🛒 Produk apa yang ingin Anda beli?"
		}
		return "🛒 What product would you like to buy?"
	}

	query := "where to buy " + product + " online cheap"
	if lang == "id" {
		query = "tempat beli " + product + " murah online"
	}
	results, ok := search.First(ctx, h.providers, query)
	if !ok {
		if lang == "id" {
			return "🙏 Maaf, saya tidak menemukan " + product + " saat ini."
		}
		return "🙏 Sorry, I couldn't find " + product + " right now."
	}

	prompt := "Summarize search results and recommend the best online store to buy " +
		product + ":\n\n" + results
	if lang == "id" {
		prompt = "Tampilkan hasil pencarian dan rekomendasikan toko online terbaik untuk membeli " +
			product + ":\n\n" + results
	}
	summary := h.llm.Ask(ctx, prompt)

	if lang == "id" {
		return "🛒 Berikut rekomendasi pembelian untuk " + product + ":\n\n" + summary
	}
	return "🛒 Here's a recommendation for buying " + product + ":\n\n" + summary
}

func (h *Handler) sellProduct(ctx context.Context, item, lang string) string {
	if item == "" {
		if lang == "id" {
			return "📤 Barang apa yang ingin Anda jual?"
		}
		return "📤 What item would you like to sell?"
	}

	prompt := "Create a short and compelling description for selling " +
		item + " on a marketplace."
	if lang == "id" {
		prompt = "Buat deskripsi singkat dan menarik untuk menjual produk " +
			item + " di marketplace."
	}
	description := h.llm.Ask(ctx, prompt)

	if lang == "id" {
		return "📤 Barang " + item + " Anda telah dicantumkan di marketplace dengan deskripsi:\n\n" + description
	}
	return "📤 Your item " + item + " has been listed on the marketplace with the following description:\n\n" + description
}

func (h *Handler) searchDeals(ctx context.Context, category, lang string) string {
	if category == "" {
		if lang == "id" {
			return "🔥 Anda ingin melihat promo untuk kategori apa?"
		}
		return "🔥 Which category are you interested in for deals?"
	}

	query := "best deals for " + category + " this week"
	if lang == "id" {
		query = "promo terbaik untuk " + category + " minggu ini"
	}
	results, ok := search.First(ctx, h.providers, query)
	if !ok {
		if lang == "id" {
			return "🙏 Tidak ditemukan promo terbaru untuk kategori " + category + "."
		}
		return "🙏 Couldn't find recent deals for " + category + "."
	}

	prompt := "Summarize search results for deals in category " + category + ":\n\n" + results
	if lang == "id" {
		prompt = "Ringkas hasil pencarian promo untuk kategori " + category + ":\n\n" + results
	}
	summary := h.llm.Ask(ctx, prompt)

	if lang == "id" {
		return "🔥 Promo terbaik minggu ini untuk kategori " + category + ":\n\n" + summary
	}
	return "🔥 This week's best deals for category " + category + ":\n\n" + summary
}
