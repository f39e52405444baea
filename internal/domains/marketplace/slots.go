// Package marketplace implements the marketplace-domain handler: buy, sell,
// and deal-search slot extraction plus search-backed recommendations.
package marketplace

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

var (
	buyPattern      = regexp.MustCompile(`(?:beli|pesan|mau)\s+([\w\s\-+]+)`)
	sellPattern     = regexp.MustCompile(`(?:jual|menjual|saya jual)\s+([\w\s\-+]+)`)
	categoryPattern = regexp.MustCompile(`(?:promo|diskon|cari)\s+(?:produk|barang)?\s*(\w+)`)
	pricePattern    = regexp.MustCompile(`(?:harga|seharga|dijual\s+seharga)\s*(\d+[.,]?\d*)`)
	quantityPattern = regexp.MustCompile(`(\d+)\s*(?:pcs|buah|unit|kotak|pak|pasang)?`)
	locationPattern = regexp.MustCompile(`(?:di|lokasi|kota)\s+([\w\s]+)`)
)

// Handler is the marketplace-domain handler.
type Handler struct {
	recognizer ner.Recognizer
	detector   language.Detector
	providers  []search.Provider
	llm        *llm.Service
}

// New creates the marketplace handler.
func New(recognizer ner.Recognizer, detector language.Detector,
	providers []search.Provider, svc *llm.Service) *Handler {
	return &Handler{
		recognizer: recognizer,
		detector:   detector,
		providers:  providers,
		llm:        svc,
	}
}

// Domain identifies the handler.
func (h *Handler) Domain() types.Domain { return types.DomainMarketplace }

// ExtractSlots pulls products, quantities, prices, categories, and
// locations out of the message. Recognized entities back up the patterns
// without a vocabulary relevance gate.
func (h *Handler) ExtractSlots(ctx context.Context, intent, message string) types.SlotSet {
	msg := slots.Normalize(message)
	ents := h.recognizer.Extract(message)
	out := types.SlotSet{}

	switch intent {
	case "buy_product":
		if m := buyPattern.FindStringSubmatch(msg); m != nil {
			out["product"] = strings.TrimSpace(m[1])
		} else if len(ents.Candidates) > 0 {
			out["product"] = ents.Candidates[0]
		}
		if m := quantityPattern.FindStringSubmatch(msg); m != nil {
			out["quantity"] = m[1]
		}

	case "sell_product":
		if m := sellPattern.FindStringSubmatch(msg); m != nil {
			out["product"] = strings.TrimSpace(m[1])
		} else if len(ents.Candidates) > 0 {
			out["product"] = ents.Candidates[0]
		}
		if m := pricePattern.FindStringSubmatch(msg); m != nil {
			out["price"] = m[1]
		}
		if m := locationPattern.FindStringSubmatch(msg); m != nil {
			out["location"] = strings.TrimSpace(m[1])
		} else if len(ents.Locations) > 0 {
			out["location"] = ents.Locations[0]
		}

	case "search_deals", "search_product":
		if m := categoryPattern.FindStringSubmatch(msg); m != nil {
			out["category"] = strings.TrimSpace(m[1])
		}
	}
	return out
}
