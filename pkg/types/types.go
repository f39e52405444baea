// Package types defines the shared data model for the conversational
// orchestration engine: domains, message modes, intent results, slot sets,
// and per-user session records.
package types

// Domain identifies which conversational topic a message belongs to and
// therefore which handler module processes it.
type Domain string

// Known domains. General is the catch-all for messages that fit no
// task-specific handler.
const (
	DomainFood        Domain = "food"
	DomainTravel      Domain = "travel"
	DomainMarketplace Domain = "marketplace"
	DomainGeneral     Domain = "general"
)

// Domains lists the task domains in stable iteration order. Classifier
// tie-breaks depend on this order being fixed.
var Domains = []Domain{DomainFood, DomainTravel, DomainMarketplace, DomainGeneral}

// Mode distinguishes how a message reached the engine.
type Mode string

const (
	ModeText  Mode = "text"
	ModeVoice Mode = "voice"
)

// IntentResult is the outcome of intent classification. An empty Intent
// means no candidate scored above the confidence threshold.
type IntentResult struct {
	// Intent is the winning intent tag, e.g. "order_food". Empty when no
	// confident intent was found.
	Intent string

	// Confidence is the (boosted) similarity score of the winning intent.
	Confidence float64
}

// Found reports whether a confident intent was resolved.
func (r IntentResult) Found() bool {
	return r.Intent != ""
}
