package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sutandi/asisten/internal/config"
)

type stubProvider struct {
	name   string
	result string
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(context.Context, string) (string, bool) {
	s.calls++
	if s.result == "" {
		return "", false
	}
	return s.result, true
}

func TestFirstReturnsEarliestPresentResult(t *testing.T) {
	empty := &stubProvider{name: "empty"}
	full := &stubProvider{name: "full", result: "hasil"}
	never := &stubProvider{name: "never", result: "lain"}

	got, ok := First(context.Background(), []Provider{empty, full, never}, "query")

	assert.True(t, ok)
	assert.Equal(t, "hasil", got)
	assert.Equal(t, 1, empty.calls)
	assert.Equal(t, 1, full.calls)
	assert.Zero(t, never.calls, "later providers are not consulted")
}

func TestFirstWithoutResults(t *testing.T) {
	got, ok := First(context.Background(), []Provider{&stubProvider{name: "empty"}}, "query")

	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestFirstWithoutProviders(t *testing.T) {
	_, ok := First(context.Background(), nil, "query")
	assert.False(t, ok)
}

func TestNewProvidersOrder(t *testing.T) {
	providers := NewProviders(config.SearchConfig{})

	assert.Len(t, providers, 2)
	assert.Equal(t, "tavily", providers[0].Name())
	assert.Equal(t, "serpapi", providers[1].Name())
}

func TestProvidersWithoutCredentialsReportAbsence(t *testing.T) {
	for _, p := range NewProviders(config.SearchConfig{}) {
		_, ok := p.Search(context.Background(), "anything")
		assert.False(t, ok, p.Name())
	}
}
