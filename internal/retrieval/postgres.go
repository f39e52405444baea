package retrieval

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // postgres driver
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/pkg/types"
)

// PostgresProvider retrieves snippets by pgvector cosine distance. The
// snippets table holds one row per reference document with its embedding.
type PostgresProvider struct {
	db       *sql.DB
	embedder embedding.Embedder
	topK     int
}

const snippetSchema = `
CREATE EXTENSION IF NOT EXISTS vector;
CREATE TABLE IF NOT EXISTS snippets (
	id        SERIAL PRIMARY KEY,
	domain    TEXT NOT NULL,
	content   TEXT NOT NULL,
	embedding vector(512)
);
CREATE INDEX IF NOT EXISTS idx_snippets_domain ON snippets (domain);
`

// NewPostgresProvider opens the DSN and ensures the snippet schema exists.
func NewPostgresProvider(dsn string, embedder embedding.Embedder, topK int) (*PostgresProvider, error) {
	if topK <= 0 {
		topK = 5
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("retrieval: failed to open postgres: %w", err)
	}
	if _, err := db.Exec(snippetSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("retrieval: failed to ensure schema: %w", err)
	}
	return &PostgresProvider{db: db, embedder: embedder, topK: topK}, nil
}

// Store inserts a snippet with its embedding.
func (p *PostgresProvider) Store(ctx context.Context, snippet Snippet) error {
	vec, err := p.embedder.Encode(ctx, snippet.Content)
	if err != nil {
		return fmt.Errorf("retrieval: failed to embed snippet: %w", err)
	}
	_, err = p.db.ExecContext(ctx,
		`INSERT INTO snippets (domain, content, embedding) VALUES ($1, $2, $3)`,
		string(snippet.Domain), snippet.Content, pgvector.NewVector(vec))
	if err != nil {
		return fmt.Errorf("retrieval: failed to store snippet: %w", err)
	}
	return nil
}

// Retrieve returns the top-k nearest snippets for the query within the
// domain, by cosine distance. Backend failures degrade to the unavailable
// placeholder rather than surfacing.
func (p *PostgresProvider) Retrieve(ctx context.Context, query string, domain types.Domain, _ string) []string {
	queryVec, err := p.embedder.Encode(ctx, query)
	if err != nil {
		log.Printf("[retrieval] query embed failed: %v", err)
		return []string{unavailableContext}
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT content
		FROM snippets
		WHERE domain = $1
		ORDER BY embedding <=> $2
		LIMIT $3`,
		string(domain), pgvector.NewVector(queryVec), p.topK)
	if err != nil {
		log.Printf("[retrieval] postgres query failed: %v", err)
		return []string{unavailableContext}
	}
	defer rows.Close()

	var results []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			log.Printf("[retrieval] scan failed: %v", err)
			continue
		}
		results = append(results, content)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[retrieval] row iteration failed: %v", err)
	}
	if len(results) == 0 {
		return []string{noResultsContext}
	}
	return results
}

// Close releases the database handle.
func (p *PostgresProvider) Close() error {
	return p.db.Close()
}
