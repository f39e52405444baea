package profile

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // sqlite driver
)

// SQLiteStore persists profile data in a local SQLite database. Use
// ":memory:" for an ephemeral store.
type SQLiteStore struct {
	db *sql.DB
}

const profileSchema = `
CREATE TABLE IF NOT EXISTS preferences (
	user_id TEXT NOT NULL,
	tag     TEXT NOT NULL,
	UNIQUE (user_id, tag)
);
CREATE TABLE IF NOT EXISTS searches (
	user_id    TEXT NOT NULL,
	query      TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS user_language (
	user_id TEXT PRIMARY KEY,
	lang    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS feedback (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	comment    TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// recentSearchLimit caps how many searches feed back into prompts.
const recentSearchLimit = 10

// NewSQLiteStore opens (or creates) the profile database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to open database: %w", err)
	}
	if _, err := db.Exec(profileSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile: failed to ensure schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// PreferenceTags returns the user's preference tags, lowercased.
func (s *SQLiteStore) PreferenceTags(ctx context.Context, userID string) []string {
	return s.queryStrings(ctx,
		`SELECT tag FROM preferences WHERE user_id = ? ORDER BY rowid`, userID)
}

// RecentSearches returns the user's most recent queries, newest first.
func (s *SQLiteStore) RecentSearches(ctx context.Context, userID string) []string {
	return s.queryStrings(ctx,
		`SELECT query FROM searches WHERE user_id = ? ORDER BY rowid DESC LIMIT `+
			fmt.Sprint(recentSearchLimit), userID)
}

// Language returns the user's stored language tag, or "".
func (s *SQLiteStore) Language(ctx context.Context, userID string) string {
	var lang string
	err := s.db.QueryRowContext(ctx,
		`SELECT lang FROM user_language WHERE user_id = ?`, userID).Scan(&lang)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[profile] language lookup failed: %v", err)
		}
		return ""
	}
	return lang
}

// RecordMessage stores the raw message as a recent search and harvests
// words longer than three characters as preference tags. Failures are
// logged and swallowed; profile updates never take a turn down.
func (s *SQLiteStore) RecordMessage(ctx context.Context, userID, message string) {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (user_id, query) VALUES (?, ?)`, userID, lowered); err != nil {
		log.Printf("[profile] failed to record search: %v", err)
	}

	for _, word := range strings.Fields(lowered) {
		if len(word) <= 3 {
			continue
		}
		if err := s.AddPreference(ctx, userID, word); err != nil {
			log.Printf("[profile] failed to record preference: %v", err)
		}
	}
}

// AddPreference records a preference tag, ignoring duplicates.
func (s *SQLiteStore) AddPreference(ctx context.Context, userID, preference string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO preferences (user_id, tag) VALUES (?, ?)`,
		userID, strings.ToLower(preference))
	if err != nil {
		return fmt.Errorf("profile: failed to add preference: %w", err)
	}
	return nil
}

// SetLanguage stores the user's language tag with upsert semantics.
func (s *SQLiteStore) SetLanguage(ctx context.Context, userID, lang string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_language (user_id, lang) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET lang = excluded.lang`,
		userID, strings.ToLower(lang))
	if err != nil {
		return fmt.Errorf("profile: failed to set language: %w", err)
	}
	return nil
}

// AddFeedback stores a feedback entry keyed by a fresh UUID.
func (s *SQLiteStore) AddFeedback(ctx context.Context, userID, comment string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (id, user_id, comment) VALUES (?, ?, ?)`,
		uuid.NewString(), userID, comment)
	if err != nil {
		return fmt.Errorf("profile: failed to add feedback: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) queryStrings(ctx context.Context, query string, args ...any) []string {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("[profile] query failed: %v", err)
		return nil
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			log.Printf("[profile] scan failed: %v", err)
			continue
		}
		out = append(out, value)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[profile] row iteration failed: %v", err)
	}
	return out
}
