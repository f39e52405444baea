package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sutandi/asisten/pkg/types"
)

// newTestStore returns a store with a controllable clock.
func newTestStore(t *testing.T, ttl time.Duration) (*Store, *time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	s := NewStore(ttl)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestGetAbsentReturnsEmptyRecord(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)

	sess := s.Get("nobody")
	assert.True(t, sess.IsZero())
	assert.Empty(t, sess.LastIntent)
}

func TestUpdateMergesAndTouchesTimestamp(t *testing.T) {
	s, now := newTestStore(t, time.Hour)

	lang := "id"
	s.Update("u1", types.SessionUpdate{Language: &lang})
	first := s.Get("u1")
	assert.Equal(t, "id", first.Language)
	assert.Equal(t, *now, first.LastInteraction)

	// An empty update still refreshes the timestamp.
	*now = now.Add(10 * time.Minute)
	s.Update("u1", types.SessionUpdate{})
	second := s.Get("u1")
	assert.Equal(t, "id", second.Language)
	assert.Equal(t, *now, second.LastInteraction)
}

func TestRememberKeepsPreviousSlotsWhenNil(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	s.Remember("u1", "order_food", types.SlotSet{"location": "jakarta"})
	s.Remember("u1", "find_restaurant", nil)

	sess := s.Get("u1")
	assert.Equal(t, "find_restaurant", sess.LastIntent)
	assert.Equal(t, "jakarta", sess.LastSlots.GetString("location"))
}

func TestExpiry(t *testing.T) {
	s, now := newTestStore(t, 30*time.Minute)

	assert.True(t, s.IsExpired("u1"), "absent records count as expired")

	s.Remember("u1", "order_food", nil)
	assert.False(t, s.IsExpired("u1"))

	*now = now.Add(31 * time.Minute)
	assert.True(t, s.IsExpired("u1"))
}

func TestClear(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	s.Remember("u1", "order_food", types.SlotSet{"location": "jakarta"})
	s.Clear("u1")

	sess := s.Get("u1")
	assert.Empty(t, sess.LastIntent)
	assert.True(t, s.IsExpired("u1"))
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	s.Remember("u1", "order_food", types.SlotSet{
		"orders": []types.OrderItem{{Item: "sushi", Quantity: "2"}},
	})

	sess := s.Get("u1")
	sess.LastSlots["orders"].([]types.OrderItem)[0].Item = "tampered"
	sess.LastSlots["extra"] = "tampered"

	fresh := s.Get("u1")
	assert.Equal(t, "sushi", fresh.LastSlots.Orders()[0].Item)
	assert.NotContains(t, fresh.LastSlots, "extra")
}
