package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a store on a file in a temp dir. ":memory:" would hand
// each pooled connection its own database.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "profile.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddPreferenceDeduplicatesAndLowercases(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddPreference(ctx, "u1", "Sushi"))
	require.NoError(t, s.AddPreference(ctx, "u1", "sushi"))
	require.NoError(t, s.AddPreference(ctx, "u1", "ramen"))
	require.NoError(t, s.AddPreference(ctx, "u2", "sushi"))

	assert.Equal(t, []string{"sushi", "ramen"}, s.PreferenceTags(ctx, "u1"))
	assert.Equal(t, []string{"sushi"}, s.PreferenceTags(ctx, "u2"))
}

func TestRecentSearchesNewestFirstAndCapped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < recentSearchLimit+2; i++ {
		s.RecordMessage(ctx, "u1", fmt.Sprintf("query%02d", i))
	}

	searches := s.RecentSearches(ctx, "u1")
	require.Len(t, searches, recentSearchLimit)
	assert.Equal(t, "query11", searches[0])
	assert.Equal(t, "query02", searches[len(searches)-1])
}

func TestRecordMessageHarvestsPreferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.RecordMessage(ctx, "u1", "Mau Sushi dan es teh")

	// Words of three characters or fewer never become preferences.
	assert.Equal(t, []string{"sushi"}, s.PreferenceTags(ctx, "u1"))
	assert.Equal(t, []string{"mau sushi dan es teh"}, s.RecentSearches(ctx, "u1"))
}

func TestRecordMessageIgnoresEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.RecordMessage(ctx, "u1", "   ")
	assert.Empty(t, s.RecentSearches(ctx, "u1"))
}

func TestSetLanguageUpserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.Empty(t, s.Language(ctx, "u1"))

	require.NoError(t, s.SetLanguage(ctx, "u1", "ID"))
	assert.Equal(t, "id", s.Language(ctx, "u1"))

	require.NoError(t, s.SetLanguage(ctx, "u1", "en"))
	assert.Equal(t, "en", s.Language(ctx, "u1"))
}

func TestAddFeedback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddFeedback(ctx, "u1", "jawabannya membantu"))
	require.NoError(t, s.AddFeedback(ctx, "u1", "terlalu lambat"))

	var count int
	require.NoError(t, s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM feedback WHERE user_id = ?`, "u1").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestBuildContextPrompt(t *testing.T) {
	got := BuildContextPrompt([]string{"sushi", "ramen"}, []string{"pesan sushi"})
	assert.Equal(t, "User Preferences: sushi, ramen\nRecent Searches: pesan sushi", got)

	assert.Equal(t, "User Preferences: \nRecent Searches: ", BuildContextPrompt(nil, nil))
}
