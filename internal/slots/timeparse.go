package slots

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Clock expressions: either a prefix word introduces the hour ("jam 7
// malam", "at 7 pm") or a bare hour carries a day-period suffix ("7 malam").
// A bare number with neither is not a time; it is usually a quantity.
var (
	prefixedClockPattern = regexp.MustCompile(`(?:jam|pukul|at|sekitar|around)\s*(\d{1,2})(?:[:.](\d{2}))?\s*(pagi|siang|sore|malam|am|pm)?`)
	suffixedClockPattern = regexp.MustCompile(`(\d{1,2})(?:[:.](\d{2}))?\s*(pagi|siang|sore|malam|am|pm)`)
)

// Date expressions: Indonesian relative days or numeric forms.
var datePattern = regexp.MustCompile(`(hari\s+\w+|\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?|besok|lusa|hari ini)`)

// ParseClock finds a clock expression in the normalized message and returns
// it as 24-hour "HH:MM". Day periods shift the hour: siang/sore/malam/pm
// move afternoon-or-later hours past twelve. Returns "" when no clock
// expression is present.
func ParseClock(msg string) string {
	match := prefixedClockPattern.FindStringSubmatch(msg)
	if match == nil {
		match = suffixedClockPattern.FindStringSubmatch(msg)
	}
	if match == nil {
		return ""
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil || hour > 23 {
		return ""
	}
	minute := match[2]
	if minute == "" {
		minute = "00"
	}

	switch match[3] {
	case "siang":
		if hour < 11 {
			hour += 12
		}
	case "sore", "malam", "pm":
		if hour < 12 {
			hour += 12
		}
	case "pagi", "am":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:%s", hour, minute)
}

// FindDate returns the first date expression in the normalized message, or
// "" when none is present.
func FindDate(msg string) string {
	return datePattern.FindString(msg)
}

// CanonicalDate normalizes a raw date expression to "2006-01-02".
// Indonesian relative days resolve against now; numeric forms go through
// the general date parser. Unparseable raw strings pass through unchanged.
func CanonicalDate(raw string, now time.Time) string {
	switch strings.TrimSpace(raw) {
	case "":
		return raw
	case "hari ini":
		return now.Format("2006-01-02")
	case "besok":
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	case "lusa":
		return now.AddDate(0, 0, 2).Format("2006-01-02")
	}

	if parsed, err := dateparse.ParseAny(raw); err == nil {
		// Year-less forms parse into year zero; anchor them to now.
		if parsed.Year() == 0 {
			parsed = parsed.AddDate(now.Year(), 0, 0)
		}
		return parsed.Format("2006-01-02")
	}
	return raw
}
