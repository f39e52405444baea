// Package domains defines the capability set implemented by the per-domain
// handlers and the registry the orchestrator dispatches through. Every
// handler extracts slots; direct handling and fallback replies are optional
// capabilities discovered by interface assertion.
package domains

import (
	"context"
	"hash/fnv"

	"github.com/sutandi/asisten/pkg/types"
)

// Handler is the required capability of every domain handler.
type Handler interface {
	// Domain identifies the handler's domain.
	Domain() types.Domain

	// ExtractSlots pulls structured arguments for the intent out of the
	// message. Unknown intents yield an empty slot set.
	ExtractSlots(ctx context.Context, intent, message string) types.SlotSet
}

// DirectHandler is the optional capability of producing a structured reply
// for a confidently resolved intent. When present, its reply wins over the
// generic completion-service response.
type DirectHandler interface {
	Handle(ctx context.Context, intent string, slots types.SlotSet, userID string) string
}

// Fallbacker is the optional capability of producing a domain-flavored
// suggestion when the generic reply signals it did not understand.
type Fallbacker interface {
	Fallback(ctx context.Context, message string) string
}

// Registry maps each domain to its handler.
type Registry map[types.Domain]Handler

// Lookup returns the handler for a domain.
func (r Registry) Lookup(domain types.Domain) (Handler, bool) {
	h, ok := r[domain]
	return h, ok
}

// Pick deterministically selects one option keyed on the message, so
// repeated identical messages rotate through suggestions without hidden
// randomness.
func Pick(message string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(message))
	return options[int(h.Sum32())%len(options)]
}
