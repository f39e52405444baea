package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{"pesan 2 sushi jam 7 malam", "19:00"},
		{"antar pukul 8.30 pagi", "08:30"},
		{"jam 12 siang", "12:00"},
		{"delivery at 7 pm", "19:00"},
		{"sekitar 9 sore", "21:00"},
		{"7 malam", "19:00"},
		{"pukul 7", "07:00"},
		{"jam 12 pagi", "00:00"},
		{"pesan 2 sushi", ""},
		{"jam 30", ""},
		{"tidak ada waktu", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseClock(tc.msg), "msg=%q", tc.msg)
	}
}

func TestFindDate(t *testing.T) {
	assert.Equal(t, "besok", FindDate("pesan tiket besok pagi"))
	assert.Equal(t, "hari senin", FindDate("berangkat hari senin"))
	assert.Equal(t, "12/05/2026", FindDate("check in 12/05/2026"))
	assert.Empty(t, FindDate("tanpa tanggal"))
}

func TestCanonicalDateRelativeDays(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-08-30", CanonicalDate("hari ini", now))
	assert.Equal(t, "2026-08-31", CanonicalDate("besok", now))
	assert.Equal(t, "2026-09-01", CanonicalDate("lusa", now))
}

func TestCanonicalDateNumericForm(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-12-05", CanonicalDate("12/05/2026", now))
}

func TestCanonicalDateUnparseablePassesThrough(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "hari senin", CanonicalDate("hari senin", now))
	assert.Empty(t, CanonicalDate("", now))
}
