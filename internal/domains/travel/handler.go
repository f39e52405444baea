package travel

import (
	"context"

	"github.com/sutandi/asisten/internal/search"
	"github.com/sutandi/asisten/pkg/types"
)

// Handle produces the structured reply for a resolved travel intent.
// Missing required slots turn into a prompt for the missing piece rather
// than a degraded search.
func (h *Handler) Handle(ctx context.Context, intent string, slotSet types.SlotSet, userID string) string {
	sample := slotSet.GetString("destination")
	if sample == "" {
		sample = slotSet.GetString("location")
	}
	if sample == "" {
		sample = slotSet.GetString("to")
	}
	if sample == "" {
		sample = slotSet.GetString("from")
	}
	if sample == "" {
		sample = "perjalanan"
	}
	lang := h.detector.Detect(sample)

	switch intent {
	case "book_flight":
		return h.bookFlight(slotSet, lang)
	case "find_hotel", "book_hotel":
		return h.recommendHotels(ctx, slotSet.GetString("location"), lang)
	case "plan_trip", "travel_recommendation":
		return h.planTrip(ctx, slotSet.GetString("destination"), lang)
	case "find_attractions":
		location := slotSet.GetString("location")
		if location == "" {
			location = slotSet.GetString("destination")
		}
		return h.findAttractions(ctx, location, lang)
	}

	if lang == "id" {
		return "❓ Maaf, saya belum yakin dengan permintaan Anda."
	}
	return "❓ Sorry, I'm not sure what you meant."
}

func (h *Handler) bookFlight(slotSet types.SlotSet, lang string) string {
	origin := slotSet.GetString("from")
	dest := slotSet.GetString("to")

	switch {
	case origin != "" && dest != "":
		if lang == "id" {
			return "✈️ Baik, saya bantu pesan tiket dari " + origin + " ke " + dest + ". Mohon tunggu sebentar..."
		}
		return "✈️ Great! Booking a flight from " + origin + " to " + dest + ". Please hold on..."
	case origin == "":
		if lang == "id" {
			return "📍 Dari kota mana Anda ingin berangkat?"
		}
		return "📍 From which city would you like to depart?"
	default:
		if lang == "id" {
			return "📍 Ke mana tujuan penerbangan Anda?"
		}
		return "📍 What is your flight destination?"
	}
}

func (h *Handler) recommendHotels(ctx context.Context, location, lang string) string {
	if location == "" {
		if lang == "id" {
			return "🏨 Di mana Anda ingin menginap?"
		}
		return "🏨 Where would you like to stay?"
	}

	query := "best hotels in " + location
	if lang == "id" {
		query = "hotel terbaik di " + location
	}
	results, ok := search.First(ctx, h.providers, query)
	if !ok {
		if lang == "id" {
			return "🙏 Maaf, saya tidak menemukan hotel di " + location + "."
		}
		return "🙏 Sorry, I couldn't find hotels in " + location + "."
	}

	prompt := "Here's a hotel search result in " + location +
		". Summarize and highlight top hotel options:\n\n" + results
	if lang == "id" {
		prompt = "Berikut hasil pencarian hotel di " + location +
			". Ringkas dan tampilkan rekomendasi terbaik:\n\n" + results
	}
	summary := h.llm.Ask(ctx, prompt)

	if lang == "id" {
		return "🏨 Ini beberapa rekomendasi hotel di " + location + ":\n\n" + summary
	}
	return "🏨 Here are some hotel recommendations in " + location + ":\n\n" + summary
}

func (h *Handler) planTrip(ctx context.Context, destination, lang string) string {
	if destination == "" {
		if lang == "id" {
			return "🗺️ Ke mana tujuan liburan Anda?"
		}
		return "🗺️ What's your travel destination?"
	}

	query := "tourist attractions and travel itinerary in " + destination
	if lang == "id" {
		query = "tempat wisata dan itinerary di " + destination
	}
	results, ok := search.First(ctx, h.providers, query)
	if !ok {
		if lang == "id" {
			return "🙏 Maaf, belum ada informasi itinerary untuk " + destination + "."
		}
		return "🙏 Sorry, I couldn't find a travel plan for " + destination + "."
	}

	prompt := "Create a 3-day travel itinerary for " + destination +
		" based on this info:\n\n" + results
	if lang == "id" {
		prompt = "Buat itinerary liburan 3 hari ke " + destination +
			" berdasarkan informasi ini:\n\n" + results
	}
	summary := h.llm.Ask(ctx, prompt)

	if lang == "id" {
		return "🗺️ Berikut itinerary ke " + destination + " yang bisa Anda ikuti:\n\n" + summary
	}
	return "🗺️ Here's a travel itinerary for " + destination + " you can follow:\n\n" + summary
}

func (h *Handler) findAttractions(ctx context.Context, location, lang string) string {
	if location == "" {
		if lang == "id" {
			return "📍 Kota mana yang ingin Anda eksplorasi?"
		}
		return "📍 Which city would you like to explore?"
	}

	query := "top tourist attractions in " + location
	if lang == "id" {
		query = "tempat wisata populer di " + location
	}
	results, ok := search.First(ctx, h.providers, query)
	if !ok {
		if lang == "id" {
			return "🙏 Maaf, saya tidak menemukan tempat wisata di " + location + "."
		}
		return "🙏 Sorry, I couldn't find tourist attractions in " + location + "."
	}

	prompt := "Here's a search result for attractions in " + location +
		". Summarize and highlight interesting spots:\n\n" + results
	if lang == "id" {
		prompt = "Berikut hasil pencarian tempat wisata di " + location +
			". Ringkas dan tampilkan rekomendasi menarik:\n\n" + results
	}
	summary := h.llm.Ask(ctx, prompt)

	if lang == "id" {
		return "📸 Ini beberapa tempat wisata yang bisa Anda kunjungi di " + location + ":\n\n" + summary
	}
	return "📸 Here are some tourist spots you can visit in " + location + ":\n\n" + summary
}
