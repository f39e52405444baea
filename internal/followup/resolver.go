// Package followup decides whether a short or ambiguous message continues
// the previous turn, and renders the recap prompt injected into the
// completion call for such continuations.
package followup

import (
	"context"
	"strings"

	"github.com/sutandi/asisten/internal/config"
	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/internal/session"
)

// defaultFollowupPhrases are canonical continuations in both languages.
var defaultFollowupPhrases = []string{
	"dan kemudian?", "terus?", "gimana selanjutnya?", "lalu?", "apa lagi?",
	"lanjut", "oke, lalu?", "baik, terus?", "ok lanjut", "lalu bagaimana?",
	"selanjutnya?", "terus pesan apa?", "bagaimana dengan itu?",
	"what's next?", "how about that?", "then?", "what else?", "continue",
	"what happens next?", "okay, then?", "so what now?", "go on",
	"what did we decide?", "and after that?",
}

// maxFollowupTokens is the length cutoff: longer messages are never treated
// as phrase-level follow-ups.
const maxFollowupTokens = 4

// Resolver detects contextual follow-ups using the phrase bank plus the
// presence of an open intent in the session.
type Resolver struct {
	embedder  embedding.Embedder
	sessions  *session.Store
	bank      *embedding.Bank
	threshold float64
}

// NewResolver precomputes the follow-up phrase bank.
func NewResolver(ctx context.Context, embedder embedding.Embedder, sessions *session.Store, cfg config.ClassifierConfig, banks config.Banks) (*Resolver, error) {
	phrases := defaultFollowupPhrases
	if len(banks.FollowupPhrases) > 0 {
		phrases = banks.FollowupPhrases
	}
	bank, err := embedding.NewBank(ctx, embedder, phrases)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		embedder:  embedder,
		sessions:  sessions,
		bank:      bank,
		threshold: cfg.FollowupThreshold,
	}, nil
}

// IsFollowUp reports whether the message continues the prior turn. Short
// messages (at most four tokens) that resemble a canonical follow-up phrase
// always count; otherwise any message counts once the session has an open
// intent, since a short ambiguous reply mid-conversation is a continuation.
func (r *Resolver) IsFollowUp(ctx context.Context, message, userID string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(message))
	if trimmed == "" {
		return false
	}

	if len(strings.Fields(trimmed)) <= maxFollowupTokens {
		if vec, err := r.embedder.Encode(ctx, trimmed); err == nil {
			if r.bank.MaxSimilarity(vec) > r.threshold {
				return true
			}
		}
	}

	return r.sessions.Get(userID).LastIntent != ""
}

// ContextualPrompt renders a natural-language recap of the remembered
// intent and slots for the completion service. Localized by lang with
// English fallback.
func (r *Resolver) ContextualPrompt(userID, lang string) string {
	sess := r.sessions.Get(userID)

	if sess.LastIntent == "" {
		switch lang {
		case "id":
			return "Pengguna melanjutkan percakapan sebelumnya, tetapi maksudnya tidak jelas."
		default:
			return "The user is continuing a previous conversation, but the intent is unclear."
		}
	}

	readable := strings.ReplaceAll(sess.LastIntent, "_", " ")
	var b strings.Builder
	if lang == "id" {
		b.WriteString("Sebelumnya, pengguna ingin **" + readable + "**")
		if len(sess.LastSlots) > 0 {
			b.WriteString(" dengan detail: " + sess.LastSlots.String())
		}
	} else {
		b.WriteString("Previously, the user wanted to **" + readable + "**")
		if len(sess.LastSlots) > 0 {
			b.WriteString(" with details: " + sess.LastSlots.String())
		}
	}
	return b.String()
}
