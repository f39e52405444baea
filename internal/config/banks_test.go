package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBanksEmptyPath(t *testing.T) {
	banks, err := LoadBanks("")
	require.NoError(t, err)
	assert.Empty(t, banks.ResetPhrases)
	assert.Empty(t, banks.DomainCandidates)
}

func TestLoadBanksFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.yaml")
	content := `
domain_candidates:
  food:
    - pesan makanan
    - order food
reset_phrases:
  - wipe it all
food_vocabulary:
  - rendang
  - sate
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	banks, err := LoadBanks(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"pesan makanan", "order food"}, banks.DomainCandidates["food"])
	assert.Equal(t, []string{"wipe it all"}, banks.ResetPhrases)
	assert.Equal(t, []string{"rendang", "sate"}, banks.FoodVocabulary)
	assert.Empty(t, banks.FollowupPhrases)
}

func TestLoadBanksMissingFile(t *testing.T) {
	_, err := LoadBanks(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadBanksMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))

	_, err := LoadBanks(path)
	assert.Error(t, err)
}
