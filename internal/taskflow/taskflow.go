// Package taskflow maps intents to coarse task stages and stages to the
// "what's next" nudge appended to responses. The mapping is stateless and
// recomputed every turn from the live message — conversations jump stages
// non-monotonically, so no stage is ever persisted.
package taskflow

import (
	"context"

	"github.com/sutandi/asisten/internal/classify"
	"github.com/sutandi/asisten/pkg/types"
)

// Stage is a coarse phase within a domain's fixed interaction sequence.
type Stage string

// DefaultStage is used when the intent is absent or unmapped.
const DefaultStage Stage = "search"

// intentStages maps an intent tag to its coarse stage.
var intentStages = map[string]Stage{
	"order_food":             "order",
	"find_restaurant":        "search",
	"recommendation":         "search",
	"book_flight":            "book",
	"find_hotel":             "search",
	"travel_recommendation":  "search",
	"buy_product":            "cart",
	"search_product":         "search",
	"product_recommendation": "search",
}

// domainFlows is the fixed ordered stage sequence per domain.
var domainFlows = map[types.Domain][]Stage{
	types.DomainFood:        {"search", "menu", "order", "cart", "checkout", "confirm"},
	types.DomainTravel:      {"search", "select", "book", "payment", "confirm"},
	types.DomainMarketplace: {"search", "compare", "order", "cart", "payment", "confirm"},
}

// stagePrompts holds the localized nudge for arriving at each stage.
var stagePrompts = map[string]map[Stage]string{
	"id": {
		"search":   "🔍 Kamu bisa lihat menu atau pilih yang ingin dipesan.",
		"menu":     "🍽 Mau pesan sesuatu dari menu ini?",
		"order":    "🛒 Lanjutkan dengan melihat keranjang pesanan kamu.",
		"cart":     "💳 Siap checkout? Lanjut ke pembayaran ya.",
		"checkout": "✅ Konfirmasi pesanan jika semua sudah sesuai.",
		"select":   "🎯 Silakan pilih opsi yang kamu inginkan.",
		"book":     "✈️ Ingin lanjutkan pemesanan?",
		"payment":  "💳 Lanjutkan ke pembayaran ya.",
		"compare":  "📊 Mau bandingkan produk lain?",
		"confirm":  "🎉 Semua selesai. Terima kasih sudah menggunakan layanan kami!",
	},
	"en": {
		"search":   "🔍 You can now view the menu or choose something to order.",
		"menu":     "🍽 Would you like to order something from this menu?",
		"order":    "🛒 Next, review your cart before checkout.",
		"cart":     "💳 Ready to checkout? Proceed to payment.",
		"checkout": "✅ Confirm your order when everything looks good.",
		"select":   "🎯 Please select the option you prefer.",
		"book":     "✈️ Want to proceed with the booking?",
		"payment":  "💳 Go ahead and make your payment.",
		"compare":  "📊 Want to compare other products?",
		"confirm":  "🎉 All set. Thanks for using our service!",
	},
}

// Flow derives the current stage from the live message.
type Flow struct {
	intents *classify.IntentClassifier
}

// New creates a task-flow mapper on top of the intent classifier.
func New(intents *classify.IntentClassifier) *Flow {
	return &Flow{intents: intents}
}

// CurrentStage classifies the message and maps the intent through the
// intent→stage table, defaulting to "search".
func (f *Flow) CurrentStage(ctx context.Context, message string) Stage {
	result := f.intents.Classify(ctx, message)
	if stage, ok := intentStages[result.Intent]; ok {
		return stage
	}
	return DefaultStage
}

// NextPrompt returns the localized prompt for the stage following stage in
// the domain's sequence. A stage outside the domain's sequence yields no
// nudge; the terminal stage always yields the confirm prompt.
func NextPrompt(stage Stage, domain types.Domain, lang string) string {
	flow, ok := domainFlows[domain]
	if !ok {
		return ""
	}

	index := -1
	for i, s := range flow {
		if s == stage {
			index = i
			break
		}
	}
	if index == -1 {
		return ""
	}

	prompts, ok := stagePrompts[lang]
	if !ok {
		prompts = stagePrompts["en"]
	}
	if index+1 < len(flow) {
		return prompts[flow[index+1]]
	}
	return prompts["confirm"]
}
