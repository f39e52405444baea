// Package orchestrator wires the classification stack, session memory,
// domain handlers, and external collaborators into the per-message dispatch
// pipeline. Every external call site is individually isolated: a failing
// collaborator degrades to "no result" and the turn continues.
package orchestrator

import (
	"context"
	"log"
	"strings"

	"github.com/sutandi/asisten/internal/classify"
	"github.com/sutandi/asisten/internal/config"
	"github.com/sutandi/asisten/internal/domains"
	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/internal/followup"
	"github.com/sutandi/asisten/internal/language"
	"github.com/sutandi/asisten/internal/llm"
	"github.com/sutandi/asisten/internal/profile"
	"github.com/sutandi/asisten/internal/retrieval"
	"github.com/sutandi/asisten/internal/search"
	"github.com/sutandi/asisten/internal/session"
	"github.com/sutandi/asisten/internal/taskflow"
	"github.com/sutandi/asisten/pkg/types"
)

// Translator converts text to a destination language. Failures are logged
// and the untranslated text is used.
type Translator interface {
	Translate(ctx context.Context, text, dest string) (string, error)
}

// defaultResetPhrases trigger a full session reset when the message
// resembles one closely enough.
var defaultResetPhrases = []string{
	"mulai ulang", "reset sesi", "mulai dari awal", "hapus percakapan",
	"start over", "restart session", "clear chat", "reset everything",
	"ulang dari awal", "reset percakapan",
}

// dontUnderstandMarkers in a generic reply route the turn to the domain
// fallback instead.
var dontUnderstandMarkers = []string{
	"maaf", "tidak paham", "sorry", "don't understand",
}

// personalizeThreshold is the looser cutoff used when matching preference
// tags to the current domain.
const personalizeThreshold = 0.55

// Options carries the collaborators injected into the orchestrator. All
// models and banks are built once at startup and shared read-only.
type Options struct {
	Embedder   embedding.Embedder
	Detector   language.Detector
	Domains    *classify.DomainClassifier
	Intents    *classify.IntentClassifier
	Sessions   *session.Store
	Followups  *followup.Resolver
	Flow       *taskflow.Flow
	Registry   domains.Registry
	LLM        *llm.Service
	Translator Translator
	Providers  []search.Provider
	Retrieval  retrieval.Provider
	Profile    profile.Store
	Classifier config.ClassifierConfig
	Banks      config.Banks
}

// Orchestrator dispatches one message through the full pipeline.
type Orchestrator struct {
	embedder       embedding.Embedder
	detector       language.Detector
	domains        *classify.DomainClassifier
	intents        *classify.IntentClassifier
	sessions       *session.Store
	followups      *followup.Resolver
	flow           *taskflow.Flow
	registry       domains.Registry
	llm            *llm.Service
	translator     Translator
	providers      []search.Provider
	retrieval      retrieval.Provider
	profile        profile.Store
	resetBank      *embedding.Bank
	resetThreshold float64
}

// New creates the orchestrator and precomputes the reset phrase bank.
func New(ctx context.Context, opts Options) (*Orchestrator, error) {
	phrases := defaultResetPhrases
	if len(opts.Banks.ResetPhrases) > 0 {
		phrases = opts.Banks.ResetPhrases
	}
	resetBank, err := embedding.NewBank(ctx, opts.Embedder, phrases)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		embedder:       opts.Embedder,
		detector:       opts.Detector,
		domains:        opts.Domains,
		intents:        opts.Intents,
		sessions:       opts.Sessions,
		followups:      opts.Followups,
		flow:           opts.Flow,
		registry:       opts.Registry,
		llm:            opts.LLM,
		translator:     opts.Translator,
		providers:      opts.Providers,
		retrieval:      opts.Retrieval,
		profile:        opts.Profile,
		resetBank:      resetBank,
		resetThreshold: opts.Classifier.ResetThreshold,
	}, nil
}

// Handle runs one message through the dispatch pipeline and returns the
// reply text. The first terminating step wins.
func (o *Orchestrator) Handle(ctx context.Context, message, userID string, mode types.Mode) string {
	if strings.TrimSpace(message) == "" {
		return "❗ Please enter valid message."
	}

	if o.isReset(ctx, message) {
		lang := o.detector.Detect(message)
		o.sessions.Clear(userID)
		switch lang {
		case "id":
			return "🔄 Sesi kamu sudah direset. Yuk mulai dari awal!"
		case "en":
			return "🔄 Your session has been reset. Feel free to start fresh!"
		default:
			return "🔄 Session cleared."
		}
	}

	// Stale language/domain/intent must never leak into this turn.
	if o.sessions.IsExpired(userID) {
		o.sessions.Clear(userID)
	}

	prev := o.sessions.Get(userID)
	lang := prev.Language
	if lang == "" {
		lang = o.detector.Detect(message)
	}

	// The remembered domain wins for continuity, but the message is always
	// classified so a switch between two concrete domains can be seen. Such
	// a switch starts a new conversation: the old session is discarded.
	resolved := o.domains.Resolve(ctx, message)
	domain := prev.Domain
	if domain == "" {
		domain = resolved
	} else if resolved != domain && domain != types.DomainGeneral && resolved != types.DomainGeneral {
		o.sessions.Clear(userID)
		domain = resolved
	}
	log.Printf("[orchestrator] user=%s mode=%s domain=%s", userID, mode, domain)

	o.sessions.Update(userID, types.SessionUpdate{Language: &lang, Domain: &domain})
	o.profile.RecordMessage(ctx, userID, message)

	// Intent evidence repairs a general-domain misclassification.
	if guessed := o.intents.Classify(ctx, message); domain == types.DomainGeneral && guessed.Found() {
		switch {
		case containsAny(guessed.Intent, "order", "food"):
			domain = types.DomainFood
		case containsAny(guessed.Intent, "hotel", "travel"):
			domain = types.DomainTravel
		case containsAny(guessed.Intent, "buy", "item"):
			domain = types.DomainMarketplace
		}
	}

	handler, ok := o.registry.Lookup(domain)
	if !ok {
		return o.defaultFallback(message)
	}

	if o.followups.IsFollowUp(ctx, message, userID) {
		recap := o.followups.ContextualPrompt(userID, lang)
		response := o.llm.Ask(ctx, recap+"\nUser: "+message+"\nAssistant:")
		return o.finalize(ctx, response, lang, userID, domain, message)
	}

	response := o.llm.Ask(ctx, o.buildPrompt(ctx, message, userID, domain))

	detected := o.intents.Classify(ctx, message)
	slotSet := types.SlotSet{}
	if detected.Found() {
		slotSet = handler.ExtractSlots(ctx, detected.Intent, message)
	}

	if detected.Found() {
		o.sessions.Remember(userID, detected.Intent, slotSet)
		if direct, ok := handler.(domains.DirectHandler); ok {
			return direct.Handle(ctx, detected.Intent, slotSet, userID)
		}
	} else {
		log.Printf("[orchestrator] no confident intent, enriching with external search")
		extra := o.enrich(ctx, message)
		return o.finalize(ctx, "🔍 Let me find the answer for you..."+extra, lang, userID, domain, message)
	}

	if containsAny(strings.ToLower(response), dontUnderstandMarkers...) {
		if fb, ok := handler.(domains.Fallbacker); ok {
			return fb.Fallback(ctx, message)
		}
		return o.defaultFallback(message)
	}

	if o.translator != nil && o.detector.Detect(response) != lang {
		translated, err := o.translator.Translate(ctx, response, lang)
		if err != nil {
			log.Printf("[orchestrator] translation failed: %v", err)
		} else {
			response = translated
		}
	}

	return o.finalize(ctx, response, lang, userID, domain, message)
}

// isReset reports whether the message resembles a reset phrase.
func (o *Orchestrator) isReset(ctx context.Context, message string) bool {
	vec, err := o.embedder.Encode(ctx, message)
	if err != nil {
		return false
	}
	return o.resetBank.MaxSimilarity(vec) > o.resetThreshold
}

// buildPrompt assembles the completion prompt: profile context, knowledge
// context, retrieved reference snippets, then the raw message.
func (o *Orchestrator) buildPrompt(ctx context.Context, message, userID string, domain types.Domain) string {
	prefs := o.profile.PreferenceTags(ctx, userID)
	searches := o.profile.RecentSearches(ctx, userID)
	storedLang := o.profile.Language(ctx, userID)

	var b strings.Builder
	if len(prefs) > 0 {
		b.WriteString("User preferences: " + strings.Join(prefs, ", ") + "\n")
	}
	if len(searches) > 0 {
		b.WriteString("Recent searches: " + strings.Join(searches, ", ") + "\n")
	}
	if storedLang != "" {
		b.WriteString("Language: " + storedLang + "\n")
	}

	contextPrompt := profile.BuildContextPrompt(prefs, searches)
	ragContext := retrieval.FormatContext(
		o.retrieval.Retrieve(ctx, message, domain, userID),
		strings.ToUpper(string(domain)))

	return strings.TrimSpace(b.String() + "\n" + contextPrompt + "\n" + ragContext +
		"\n\nUser: " + message + "\nAssistant:")
}

// enrich runs the external search providers, asks the completion service to
// reformulate the raw results, and returns the augmentation block. Nothing
// useful yields an empty augmentation.
func (o *Orchestrator) enrich(ctx context.Context, query string) string {
	var combined strings.Builder
	for _, provider := range o.providers {
		result, ok := provider.Search(ctx, query)
		if !ok {
			continue
		}
		combined.WriteString(provider.Name() + ":\n" + strings.TrimSpace(result) + "\n\n")
	}
	if combined.Len() == 0 {
		return ""
	}

	prompt := "You are a helpful assistant. A user asked a question and external sources returned raw information.\n" +
		"Your task is to rewrite and summarize the information into a clear, relevant, and natural-sounding response to the user's question.\n\n" +
		"User question: " + query + "\n\n" +
		"Raw external info:\n" + strings.TrimSpace(combined.String()) + "\n\n" +
		"Write a helpful, concise response to the user using only what's relevant from the info above."

	refined := strings.TrimSpace(o.llm.Ask(ctx, prompt))
	if refined == "" || refined == llm.Apology || strings.Contains(strings.ToLower(refined), "no useful") {
		return ""
	}
	return "\n\n🔍 Extra info:\n" + refined
}

// finalize assembles the final response: tone header, optional
// personalization line, the body (padded with a period when short and
// unpunctuated), and an optional task-flow nudge.
func (o *Orchestrator) finalize(ctx context.Context, response, lang, userID string, domain types.Domain, message string) string {
	tone := "✅ Here's what I found:"
	switch lang {
	case "id":
		tone = "✨ Ini yang bisa saya bantu:"
	case "en":
		tone = "✨ Here's something that might help:"
	}

	personalization := o.personalize(ctx, userID, lang, domain)
	closing := taskflow.NextPrompt(o.flow.CurrentStage(ctx, message), domain, lang)

	response = strings.TrimSpace(response)
	if len(strings.Fields(response)) < 8 && !strings.HasSuffix(response, ".") {
		response += "."
	}

	sections := []string{tone}
	if personalization != "" {
		sections = append(sections, personalization)
	}
	sections = append(sections, response)
	if closing != "" {
		sections = append(sections, closing)
	}
	return strings.TrimSpace(strings.Join(sections, "\n\n"))
}

// personalize renders the preference line when stored preference tags match
// the current domain at the looser per-preference cutoff.
func (o *Orchestrator) personalize(ctx context.Context, userID, lang string, domain types.Domain) string {
	prefs := o.profile.PreferenceTags(ctx, userID)
	if len(prefs) == 0 {
		return ""
	}

	var matched []string
	for _, pref := range prefs {
		if o.domains.ResolveWithOptions(ctx, pref, personalizeThreshold, 1) == domain {
			matched = append(matched, pref)
		}
	}
	if len(matched) == 0 {
		return ""
	}

	joined := strings.Join(matched, ", ")
	switch lang {
	case "id":
		return "🤖 Berdasarkan preferensimu untuk " + joined + ", ini mungkin pas banget buatmu!"
	case "en":
		return "🤖 Based on your interest in " + joined + ", this might be a perfect match for you!"
	}
	return ""
}

func (o *Orchestrator) defaultFallback(message string) string {
	if o.detector.Detect(message) == "id" {
		return "Maaf, saya belum yakin dengan maksud Anda. Bisa dijelaskan lagi?"
	}
	return "Sorry, I'm not sure what you meant. Could you please clarify?"
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
