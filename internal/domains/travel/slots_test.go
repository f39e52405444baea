package travel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sutandi/asisten/internal/ner"
	"github.com/sutandi/asisten/pkg/types"
)

type fixedDetector struct{ lang string }

func (d fixedDetector) Detect(string) string { return d.lang }

type stubRecognizer struct{ ents ner.Entities }

func (s stubRecognizer) Extract(string) ner.Entities { return s.ents }

func newTestHandler(t *testing.T, recognizer ner.Recognizer) *Handler {
	t.Helper()
	if recognizer == nil {
		recognizer = ner.NullRecognizer{}
	}
	h := New(recognizer, fixedDetector{"id"}, nil, nil)
	h.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return h
}

func TestExtractSlotsFlightFromAndTo(t *testing.T) {
	h := newTestHandler(t, nil)

	got := h.ExtractSlots(context.Background(), "book_flight", "pesan tiket dari jakarta")
	assert.Equal(t, "jakarta", got.GetString("from"))
	assert.Empty(t, got.GetString("to"))

	got = h.ExtractSlots(context.Background(), "book_flight", "penerbangan tujuan bali")
	assert.Equal(t, "bali", got.GetString("to"))
}

func TestExtractSlotsFlightPositionsRecognizedPlaces(t *testing.T) {
	h := newTestHandler(t, stubRecognizer{ner.Entities{Locations: []string{"Jakarta", "Bali"}}})

	got := h.ExtractSlots(context.Background(), "book_flight", "book a flight tomorrow morning")
	assert.Equal(t, "Jakarta", got.GetString("from"))
	assert.Equal(t, "Bali", got.GetString("to"))
	assert.Empty(t, got.GetString("departure_date"))
}

func TestExtractSlotsFlightDepartureDate(t *testing.T) {
	h := newTestHandler(t, nil)

	got := h.ExtractSlots(context.Background(), "book_flight", "pesan tiket tujuan bali besok")

	// toPattern is greedy; the trailing date word rides along, as does the
	// canonical date slot.
	assert.Equal(t, "bali besok", got.GetString("to"))
	assert.Equal(t, "2026-08-31", got.GetString("departure_date"))
}

func TestExtractSlotsHotelDurationAndLocation(t *testing.T) {
	h := newTestHandler(t, nil)

	got := h.ExtractSlots(context.Background(), "find_hotel", "cari hotel di ubud")
	assert.Equal(t, "ubud", got.GetString("location"))

	got = h.ExtractSlots(context.Background(), "find_hotel", "menginap 3 malam")
	assert.Equal(t, "3", got.GetString("duration_nights"))
	assert.Empty(t, got.GetString("location"))
}

func TestExtractSlotsTripDestination(t *testing.T) {
	h := newTestHandler(t, nil)

	got := h.ExtractSlots(context.Background(), "plan_trip", "liburan ke bali")
	assert.Equal(t, "bali", got.GetString("destination"))

	got = h.ExtractSlots(context.Background(), "travel_recommendation", "liburan ke lombok")
	assert.Equal(t, "lombok", got.GetString("destination"))
}

func TestExtractSlotsAttractionsLocation(t *testing.T) {
	h := newTestHandler(t, stubRecognizer{ner.Entities{Locations: []string{"Yogyakarta"}}})

	got := h.ExtractSlots(context.Background(), "find_attractions", "what can we visit there")
	assert.Equal(t, "Yogyakarta", got.GetString("location"))
}

func TestExtractSlotsUnknownIntentYieldsNothing(t *testing.T) {
	h := newTestHandler(t, nil)

	got := h.ExtractSlots(context.Background(), "order_food", "pesan tiket ke bali")
	assert.Equal(t, types.SlotSet{}, got)
}
