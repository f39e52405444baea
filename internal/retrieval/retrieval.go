// Package retrieval supplies domain-specific reference snippets injected
// into completion prompts. Two backends exist: an in-memory store seeded at
// startup and a Postgres/pgvector store for larger corpora. Retrieval is
// best-effort; an unavailable backend degrades to placeholder context.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/sutandi/asisten/pkg/types"
)

// Snippet is one reference document in the corpus.
type Snippet struct {
	Domain  types.Domain
	Content string
}

// Provider retrieves reference snippets relevant to a query.
type Provider interface {
	Retrieve(ctx context.Context, query string, domain types.Domain, userID string) []string
}

// unavailableContext mirrors the placeholders the prompt builder expects
// when retrieval cannot serve a query.
const (
	unavailableContext = "[Retrieval unavailable] No index found."
	noResultsContext   = "[No domain-specific context found]"
)

// FormatContext renders retrieved snippets as a labeled context block for
// prompt assembly.
func FormatContext(docs []string, domainLabel string) string {
	if len(docs) == 0 {
		return fmt.Sprintf("--- No %s context found ---", domainLabel)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("--- %s Context ---", domainLabel))
	for _, doc := range docs {
		b.WriteString("\n- " + doc)
	}
	return b.String()
}
