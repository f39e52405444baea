// Package food implements the food-domain handler: order and restaurant
// slot extraction, order confirmation replies, and restaurant
// recommendation via external search.
package food

import (
	"context"
	"regexp"
	"strings"

	"github.com/sutandi/asisten/internal/language"
	"github.com/sutandi/asisten/internal/llm"
	"github.com/sutandi/asisten/internal/ner"
	"github.com/sutandi/asisten/internal/search"
	"github.com/sutandi/asisten/internal/slots"
	"github.com/sutandi/asisten/pkg/types"
)

// ImageLookup fetches an illustrative image URL for an order item. Absence
// of a configured provider yields "".
type ImageLookup interface {
	ImageURL(ctx context.Context, query string) string
}

// defaultVocabulary is the reference food list gating order candidates.
// Entities that do not resemble any entry are dropped rather than ordered.
var defaultVocabulary = []string{
	"pizza", "burger", "sushi", "ramen", "pasta", "salad", "sandwich",
	"steak", "curry", "fried rice", "ice cream", "cake", "soup", "dim sum",
	"noodles", "taco", "burrito", "hot dog", "dumplings", "falafel",
	"shawarma", "pancakes", "waffles", "donut", "spring roll", "tempura",
	"gyoza", "mochi", "sashimi", "nigiri", "green tea", "cola", "lemonade",
	"juice", "milkshake", "coffee", "tea", "water", "ramune",
	"nasi goreng", "nasi padang", "mie ayam", "bakso", "sate", "martabak",
	"ayam geprek", "rendang", "gado-gado", "es teh",
}

// Orders are listed with "dan", commas, or ampersands between items.
var segmentSplitter = regexp.MustCompile(`\s*(?:\bdan\b|,|&)\s*`)

var locationPattern = regexp.MustCompile(`(?:di|near|sekitar|area)\s+([\w\s]+)`)

// boundaryWords end an item phrase; what follows is a time or address.
var boundaryWords = map[string]bool{
	"jam": true, "pukul": true, "at": true, "sekitar": true, "around": true,
	"di": true, "ke": true, "untuk": true, "buat": true, "near": true,
	"area": true,
}

// leadingVerbs are command words stripped before the item phrase.
var leadingVerbs = map[string]bool{
	"pesan": true, "order": true, "mau": true, "beli": true, "tolong": true,
	"minta": true, "saya": true, "aku": true, "i": true, "want": true,
	"to": true, "please": true, "antar": true, "delivery": true,
}

// unitWords follow a quantity ("2 porsi sate") and carry no slot value.
var unitWords = map[string]bool{
	"x": true, "porsi": true, "pcs": true, "buah": true, "gelas": true,
	"mangkuk": true, "kotak": true, "bungkus": true, "plates": true,
	"units": true,
}

// Handler is the food-domain handler.
type Handler struct {
	matcher       *slots.Matcher
	recognizer    ner.Recognizer
	images        ImageLookup
	detector      language.Detector
	providers     []search.Provider
	llm           *llm.Service
	vocabulary    []string
	gateThreshold float64
}

// New creates the food handler. A nil images lookup disables order-item
// illustrations; an empty vocabulary falls back to the compiled-in list.
func New(matcher *slots.Matcher, recognizer ner.Recognizer, images ImageLookup,
	detector language.Detector, providers []search.Provider, svc *llm.Service,
	vocabulary []string, gateThreshold float64) *Handler {
	if len(vocabulary) == 0 {
		vocabulary = defaultVocabulary
	}
	if gateThreshold <= 0 {
		gateThreshold = 0.55
	}
	return &Handler{
		matcher:       matcher,
		recognizer:    recognizer,
		images:        images,
		detector:      detector,
		providers:     providers,
		llm:           svc,
		vocabulary:    vocabulary,
		gateThreshold: gateThreshold,
	}
}

// Domain identifies the handler.
func (h *Handler) Domain() types.Domain { return types.DomainFood }

// ExtractSlots pulls order items, delivery time, and restaurant location
// out of the message, depending on the intent.
func (h *Handler) ExtractSlots(ctx context.Context, intent, message string) types.SlotSet {
	msg := slots.Normalize(message)
	ents := h.recognizer.Extract(message)
	out := types.SlotSet{}

	switch intent {
	case "order_food", "add_to_order":
		if orders := h.extractOrders(ctx, msg, ents.Candidates); len(orders) > 0 {
			out["orders"] = orders
		}
		if clock := slots.ParseClock(msg); clock != "" {
			out["delivery_time"] = clock
		}
	case "find_restaurant", "restaurant_info":
		if m := locationPattern.FindStringSubmatch(msg); m != nil {
			out["location"] = strings.TrimSpace(m[1])
		} else if len(ents.Locations) > 0 {
			out["location"] = ents.Locations[0]
		}
	}
	return out
}

// extractOrders splits the message into item segments, gates each candidate
// against the food vocabulary, and canonicalizes it by fuzzy match. Entities
// the recognizer found supplement the pattern results with quantity "1".
func (h *Handler) extractOrders(ctx context.Context, msg string, candidates []string) []types.OrderItem {
	var orders []types.OrderItem
	seen := map[string]bool{}

	add := func(item, quantity string) {
		key := strings.ToLower(item)
		if seen[key] {
			return
		}
		seen[key] = true
		orders = append(orders, types.OrderItem{
			Item:     item,
			Quantity: quantity,
			ImageURL: h.imageFor(ctx, item),
		})
	}

	for _, segment := range segmentSplitter.Split(msg, -1) {
		quantity, candidate := parseSegment(segment)
		candidate = h.gate(ctx, candidate)
		if candidate == "" {
			continue
		}
		refs := candidates
		if len(refs) == 0 {
			refs = h.vocabulary
		}
		add(h.matcher.BestMatch(ctx, candidate, refs), quantity)
	}

	for _, ent := range candidates {
		clean := slots.Normalize(ent)
		if clean == "" || seen[clean] {
			continue
		}
		if !h.matcher.SimilarToAny(ctx, clean, h.vocabulary, h.gateThreshold) {
			continue
		}
		add(h.matcher.BestMatch(ctx, clean, h.vocabulary), "1")
	}
	return orders
}

// parseSegment finds the quantity and item phrase in one order segment. The
// item phrase runs from the quantity (or the segment start, skipping command
// verbs) until a boundary word or a second number.
func parseSegment(segment string) (quantity, candidate string) {
	quantity = "1"
	var item []string
	afterQuantity := false

	for _, tok := range strings.Fields(segment) {
		if isDigits(tok) {
			if !afterQuantity && len(tok) <= 2 && len(item) == 0 {
				quantity = tok
				afterQuantity = true
				continue
			}
			break
		}
		if boundaryWords[tok] {
			if len(item) > 0 || afterQuantity {
				break
			}
			continue
		}
		if len(item) == 0 {
			if afterQuantity && unitWords[tok] {
				continue
			}
			if !afterQuantity && leadingVerbs[tok] {
				continue
			}
		}
		item = append(item, tok)
	}
	return quantity, strings.Join(item, " ")
}

// gate admits the longest suffix of the candidate phrase that resembles a
// vocabulary entry, dropping residual command words the verb list missed.
// Nothing food-like yields "".
func (h *Handler) gate(ctx context.Context, candidate string) string {
	words := strings.Fields(candidate)
	for i := 0; i < len(words); i++ {
		phrase := strings.Join(words[i:], " ")
		if h.matcher.SimilarToAny(ctx, phrase, h.vocabulary, h.gateThreshold) {
			return phrase
		}
	}
	return ""
}

func (h *Handler) imageFor(ctx context.Context, item string) string {
	if h.images == nil {
		return ""
	}
	return h.images.ImageURL(ctx, item)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
