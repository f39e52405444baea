// Package profile implements the long-term user preference store:
// preference tags, recent searches, stored language, and feedback. It backs
// personalization and prompt context. All reads degrade to empty results on
// failure — profile data is an enrichment, never a dependency of a turn.
package profile

import (
	"context"
	"strings"
)

// Store is the preference-store contract consumed by the orchestrator.
type Store interface {
	// PreferenceTags returns the user's lowercased preference tags.
	PreferenceTags(ctx context.Context, userID string) []string

	// RecentSearches returns the user's recent raw queries.
	RecentSearches(ctx context.Context, userID string) []string

	// Language returns the user's stored language tag, or "" when unset.
	Language(ctx context.Context, userID string) string

	// RecordMessage stores the raw message as a recent search and harvests
	// keyword preferences from it.
	RecordMessage(ctx context.Context, userID, message string)

	// AddPreference records a preference tag (deduplicated, lowercased).
	AddPreference(ctx context.Context, userID, preference string) error

	// SetLanguage stores the user's language tag.
	SetLanguage(ctx context.Context, userID, lang string) error

	// AddFeedback stores a free-text feedback entry.
	AddFeedback(ctx context.Context, userID, comment string) error
}

// Ensure the SQLite implementation satisfies the contract.
var _ Store = (*SQLiteStore)(nil)

// BuildContextPrompt renders the profile lines injected into completion
// prompts.
func BuildContextPrompt(prefs, searches []string) string {
	return "User Preferences: " + strings.Join(prefs, ", ") +
		"\nRecent Searches: " + strings.Join(searches, ", ")
}
