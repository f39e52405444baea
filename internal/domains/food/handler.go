package food

import (
	"context"
	"strings"

	"github.com/sutandi/asisten/internal/search"
	"github.com/sutandi/asisten/pkg/types"
)

// Handle produces the structured reply for a resolved food intent: an order
// confirmation for order_food, a search-backed recommendation for
// find_restaurant.
func (h *Handler) Handle(ctx context.Context, intent string, slotSet types.SlotSet, userID string) string {
	orders := slotSet.Orders()
	deliveryTime := slotSet.GetString("delivery_time")
	location := slotSet.GetString("location")

	// Reply language follows the extracted content, not the whole message.
	sample := "makanan"
	if len(orders) > 0 {
		sample = orders[0].Item
	} else if location != "" {
		sample = location
	}
	lang := h.detector.Detect(sample)

	switch intent {
	case "order_food", "add_to_order":
		return h.confirmOrder(orders, deliveryTime, location, lang)
	case "find_restaurant", "restaurant_info":
		return h.recommendRestaurants(ctx, location, lang)
	}

	if lang == "id" {
		return "❓ Saya tidak yakin dengan permintaan Anda."
	}
	return "❓ I'm not sure how to proceed with your request."
}

func (h *Handler) confirmOrder(orders []types.OrderItem, deliveryTime, location, lang string) string {
	orderText := formatOrderList(orders, lang)
	timeText := formatDeliveryTime(deliveryTime, lang)

	var b strings.Builder
	if lang == "id" {
		b.WriteString("🍽️ Baik, saya bantu pesan " + orderText + ".")
		if deliveryTime != "" {
			b.WriteString(" Akan diantar " + timeText + ".")
		}
		if location != "" {
			b.WriteString(" Lokasi antar: " + location + ".")
		} else {
			b.WriteString(" Boleh tahu mana lokasi antarnya?")
		}
		b.WriteString(" Konfirmasi ya jika sudah benar. ✅")
	} else {
		b.WriteString("🍽️ Sure, I'll order " + orderText + " for you.")
		if deliveryTime != "" {
			b.WriteString(" It will be delivered around " + timeText + ".")
		}
		if location != "" {
			b.WriteString(" Delivery to: " + location + ".")
		} else {
			b.WriteString(" Could you let me know your delivery location?")
		}
		b.WriteString(" Please confirm. ✅")
	}
	return b.String()
}

func (h *Handler) recommendRestaurants(ctx context.Context, location, lang string) string {
	searchLocation := location
	if searchLocation == "" {
		if lang == "id" {
			searchLocation = "dekat sini"
		} else {
			searchLocation = "nearby"
		}
	}

	query := "good restaurants in " + searchLocation
	if lang == "id" {
		query = "restoran enak di " + searchLocation
	}
	results, ok := search.First(ctx, h.providers, query)
	if !ok {
		if lang == "id" {
			return "🙏 Maaf, saya tidak menemukan restoran di " + searchLocation + "."
		}
		return "🙏 Sorry, I couldn't find any restaurants in " + searchLocation + "."
	}

	prompt := "Please summarize and recommend interesting restaurants in " +
		searchLocation + " based on this info.\n\n" + results
	if lang == "id" {
		prompt = "Tolong buatkan ringkasan rekomendasi restoran menarik di " +
			searchLocation + " berdasarkan hasil ini.\n\n" + results
	}
	summary := h.llm.Ask(ctx, prompt)

	if lang == "id" {
		return "✨ Ini rekomendasi untukmu:\n\n" + summary
	}
	return "✨ Here's a recommendation for you:\n\n" + summary
}

// formatOrderList renders "2 sushi, ramen dan juice" style phrases.
func formatOrderList(orders []types.OrderItem, lang string) string {
	if len(orders) == 0 {
		if lang == "id" {
			return "makanan"
		}
		return "food"
	}

	phrases := make([]string, 0, len(orders))
	for _, o := range orders {
		qty := strings.TrimSpace(o.Quantity)
		if qty != "" && qty != "1" {
			phrases = append(phrases, qty+" "+o.Item)
		} else {
			phrases = append(phrases, o.Item)
		}
	}
	if len(phrases) > 1 {
		connector := " and "
		if lang == "id" {
			connector = " dan "
		}
		return strings.Join(phrases[:len(phrases)-1], ", ") + connector + phrases[len(phrases)-1]
	}
	return phrases[0]
}

// formatDeliveryTime renders a 24-hour "HH:MM" clock in the reply language.
func formatDeliveryTime(raw, lang string) string {
	if raw == "" {
		return ""
	}
	if lang == "id" {
		return "pukul " + strings.Replace(raw, ":", ".", 1)
	}
	return raw
}
