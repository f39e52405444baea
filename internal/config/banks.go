package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Banks overrides the compiled-in phrase banks used by the classification
// stack. Any empty field keeps the default bank; only non-empty fields
// replace their counterpart.
type Banks struct {
	// DomainCandidates maps a domain name to its reference phrases for the
	// embedding nearest-neighbor vote and the keyword override.
	DomainCandidates map[string][]string `yaml:"domain_candidates"`

	// IntentExamples maps an intent tag to its example utterances.
	IntentExamples map[string][]string `yaml:"intent_examples"`

	// ResetPhrases are the multilingual session-reset triggers.
	ResetPhrases []string `yaml:"reset_phrases"`

	// FollowupPhrases are the canonical short follow-up messages.
	FollowupPhrases []string `yaml:"followup_phrases"`

	// FoodVocabulary is the reference list gating non-pattern food entities.
	FoodVocabulary []string `yaml:"food_vocabulary"`
}

// LoadBanks reads a YAML phrase-bank override file. A missing path returns
// an empty Banks value (all defaults apply).
func LoadBanks(path string) (Banks, error) {
	var banks Banks
	if path == "" {
		return banks, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return banks, fmt.Errorf("config: failed to read banks file: %w", err)
	}
	if err := yaml.Unmarshal(data, &banks); err != nil {
		return banks, fmt.Errorf("config: failed to parse banks file: %w", err)
	}
	return banks, nil
}
