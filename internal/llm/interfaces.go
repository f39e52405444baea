// Package llm provides the completion-service clients used to generate
// responses. All providers sit behind the TextGenerator interface and wrap
// their HTTP calls with circuit breaker protection.
package llm

import "context"

// TextGenerator is the interface for LLM text completion.
// All prompts use single-string completion style (not multi-turn chat).
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
	GetModel() string
}

// Apology is the fixed reply returned when the completion service fails.
// Callers treat it as "no result"; it is never combined with enrichment.
const Apology = "Sorry, AI connection failed."

// Service wraps a TextGenerator so that failures degrade to the fixed
// apology string instead of propagating. The orchestrator depends on this
// never-raising contract.
type Service struct {
	generator   TextGenerator
	temperature float64
}

// NewService creates a completion service with the given default temperature.
func NewService(generator TextGenerator, temperature float64) *Service {
	return &Service{generator: generator, temperature: temperature}
}

// Ask completes the prompt, returning Apology on any failure.
func (s *Service) Ask(ctx context.Context, prompt string) string {
	if s == nil || s.generator == nil {
		return Apology
	}
	reply, err := s.generator.Complete(ctx, prompt, s.temperature)
	if err != nil {
		return Apology
	}
	return reply
}
