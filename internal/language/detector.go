// Package language wraps language detection for incoming messages.
// Detection never fails to the caller: any unrecognizable input resolves to
// the configured default language.
package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Detector resolves an ISO-639-1-like language tag for a text.
type Detector interface {
	Detect(text string) string
}

// WhatlangDetector detects language with a trigram profile model. It is
// stateless and safe for concurrent use.
type WhatlangDetector struct {
	defaultLang string
}

// NewDetector creates a detector that falls back to defaultLang ("en" when
// empty) whenever detection yields nothing usable.
func NewDetector(defaultLang string) *WhatlangDetector {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &WhatlangDetector{defaultLang: defaultLang}
}

// Detect returns the two-letter language tag for the text, or the default
// language when the text is empty or the script is unrecognized.
func (d *WhatlangDetector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return d.defaultLang
	}

	info := whatlanggo.Detect(text)
	tag := info.Lang.Iso6391()
	if tag == "" {
		return d.defaultLang
	}
	// whatlanggo reports Malay and Indonesian interchangeably for short
	// Indonesian texts; collapse to "id" since the engine treats them alike.
	if tag == "ms" {
		return "id"
	}
	return tag
}
