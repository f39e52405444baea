package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (g *stubGenerator) Complete(context.Context, string, float64) (string, error) {
	g.calls++
	return g.reply, g.err
}

func (g *stubGenerator) GetModel() string { return "stub" }

func TestServiceAskReturnsReply(t *testing.T) {
	gen := &stubGenerator{reply: "halo!"}
	svc := NewService(gen, 0.3)

	assert.Equal(t, "halo!", svc.Ask(context.Background(), "sapa aku"))
	assert.Equal(t, 1, gen.calls)
}

func TestServiceAskApologizesOnFailure(t *testing.T) {
	svc := NewService(&stubGenerator{err: errors.New("timeout")}, 0.3)

	assert.Equal(t, Apology, svc.Ask(context.Background(), "anything"))
}

func TestServiceAskNilSafe(t *testing.T) {
	var svc *Service
	assert.Equal(t, Apology, svc.Ask(context.Background(), "anything"))

	assert.Equal(t, Apology, NewService(nil, 0.3).Ask(context.Background(), "anything"))
}

func TestCircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker("test")
	ctx := context.Background()
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		_, err := cb.Execute(ctx, func() (interface{}, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, "open", cb.State())

	called := false
	_, err := cb.Execute(ctx, func() (interface{}, error) { called = true; return "ok", nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called, "open circuit must not invoke the function")
}

func TestCircuitBreakerRespectsCancelledContext(t *testing.T) {
	cb := NewCircuitBreaker("test")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cb.Execute(ctx, func() (interface{}, error) { return "ok", nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "closed", cb.State())
}
