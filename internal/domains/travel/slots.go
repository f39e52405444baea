// Package travel implements the travel-domain handler: flight, hotel, and
// itinerary slot extraction plus search-backed recommendations.
package travel

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/sutandi/asisten/internal/language"
	"github.com/sutandi/asisten/internal/llm"
	"github.com/sutandi/asisten/internal/ner"
	"github.com/sutandi/asisten/internal/search"
	"github.com/sutandi/asisten/internal/slots"
	"github.com/sutandi/asisten/pkg/types"
)

var (
	fromPattern  = regexp.MustCompile(`(?:dari|asal)\s+([\w\s]+)`)
	toPattern    = regexp.MustCompile(`(?:ke|tujuan)\s+([\w\s]+)`)
	placePattern = regexp.MustCompile(`(?:di|ke|sekitar)\s+([\w\s]+)`)
	nightPattern = regexp.MustCompile(`(\d{1,2})\s*(?:malam|malamnya|night|nights)`)
)

// Handler is the travel-domain handler.
type Handler struct {
	recognizer ner.Recognizer
	detector   language.Detector
	providers  []search.Provider
	llm        *llm.Service
	now        func() time.Time
}

// New creates the travel handler.
func New(recognizer ner.Recognizer, detector language.Detector,
	providers []search.Provider, svc *llm.Service) *Handler {
	return &Handler{
		recognizer: recognizer,
		detector:   detector,
		providers:  providers,
		llm:        svc,
		now:        time.Now,
	}
}

// Domain identifies the handler.
func (h *Handler) Domain() types.Domain { return types.DomainTravel }

// ExtractSlots pulls origins, destinations, dates, and stay durations out
// of the message. Recognized place entities back up the patterns: the first
// entity stands in for a missing origin or location, the second for a
// missing flight destination. Entities are taken as-is, without a
// vocabulary relevance gate.
func (h *Handler) ExtractSlots(ctx context.Context, intent, message string) types.SlotSet {
	msg := slots.Normalize(message)
	ents := h.recognizer.Extract(message)
	out := types.SlotSet{}

	switch intent {
	case "book_flight":
		if m := fromPattern.FindStringSubmatch(msg); m != nil {
			out["from"] = strings.TrimSpace(m[1])
		} else if len(ents.Locations) > 0 {
			out["from"] = ents.Locations[0]
		}
		if m := toPattern.FindStringSubmatch(msg); m != nil {
			out["to"] = strings.TrimSpace(m[1])
		} else if len(ents.Locations) > 1 {
			out["to"] = ents.Locations[1]
		}
		if raw := slots.FindDate(msg); raw != "" {
			out["departure_date"] = slots.CanonicalDate(raw, h.now())
		}

	case "find_hotel", "book_hotel":
		if m := placePattern.FindStringSubmatch(msg); m != nil {
			out["location"] = strings.TrimSpace(m[1])
		} else if len(ents.Locations) > 0 {
			out["location"] = ents.Locations[0]
		}
		if m := nightPattern.FindStringSubmatch(msg); m != nil {
			out["duration_nights"] = m[1]
		}
		if raw := slots.FindDate(msg); raw != "" {
			out["checkin_date"] = slots.CanonicalDate(raw, h.now())
		}

	case "plan_trip", "travel_recommendation":
		if m := placePattern.FindStringSubmatch(msg); m != nil {
			out["destination"] = strings.TrimSpace(m[1])
		} else if len(ents.Locations) > 0 {
			out["destination"] = ents.Locations[0]
		}

	case "find_attractions":
		if m := placePattern.FindStringSubmatch(msg); m != nil {
			out["location"] = strings.TrimSpace(m[1])
		} else if len(ents.Locations) > 0 {
			out["location"] = ents.Locations[0]
		}
	}
	return out
}
