package types

import "time"

// Session is the per-user short-lived conversational memory. One record
// exists per user identifier; the orchestrator is its only writer. A record
// whose LastInteraction is older than the store TTL is expired and must be
// discarded before its fields are read again.
type Session struct {
	// LastIntent is the most recently recognized intent tag. Empty when no
	// intent has been remembered this conversation.
	LastIntent string

	// LastSlots holds the structured arguments extracted for LastIntent.
	LastSlots SlotSet

	// Language is the last resolved language tag ("id", "en", ...).
	Language string

	// Domain is the last resolved domain.
	Domain Domain

	// LastInteraction is refreshed on every update or remember call.
	LastInteraction time.Time
}

// IsZero reports whether the record carries no conversational state.
func (s Session) IsZero() bool {
	return s.LastIntent == "" && len(s.LastSlots) == 0 &&
		s.Language == "" && s.Domain == "" && s.LastInteraction.IsZero()
}

// SessionUpdate is a partial set of session fields to merge into a record.
// Nil pointers leave the existing value untouched.
type SessionUpdate struct {
	Language *string
	Domain   *Domain
}
