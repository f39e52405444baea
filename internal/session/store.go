// Package session implements the per-user conversational memory with
// TTL-based expiry. The store is process-wide volatile state: nothing
// survives a restart. The orchestrator is the only writer; everything else
// receives session fields by value.
package session

import (
	"sync"
	"time"

	"github.com/sutandi/asisten/pkg/types"
)

// DefaultTTL is the idle time after which a record is considered expired.
const DefaultTTL = 30 * time.Minute

// Store holds one mutable session record per user identifier. All methods
// take the store lock, so concurrent turns for the same user serialize on
// read-modify-write instead of racing; last writer wins on field values but
// records are never torn.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]types.Session
	now      func() time.Time
}

// NewStore creates a session store. A non-positive ttl falls back to
// DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]types.Session),
		now:      time.Now,
	}
}

// Get returns the user's session record, or an empty record when absent.
// The returned value is a copy; mutating it does not affect the store.
func (s *Store) Get(userID string) types.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	sess.LastSlots = cloneSlots(sess.LastSlots)
	return sess
}

// Update merges partial fields into the record, creating it if needed.
// The interaction timestamp is always refreshed, even when the update
// carries no fields.
func (s *Store) Update(userID string, update types.SessionUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if update.Language != nil {
		sess.Language = *update.Language
	}
	if update.Domain != nil {
		sess.Domain = *update.Domain
	}
	sess.LastInteraction = s.now()
	s.sessions[userID] = sess
}

// Remember stores the recognized intent and its slots, refreshing the
// interaction timestamp. Nil slots leave the previous slots in place.
func (s *Store) Remember(userID, intent string, slots types.SlotSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	sess.LastIntent = intent
	if slots != nil {
		sess.LastSlots = cloneSlots(slots)
	}
	sess.LastInteraction = s.now()
	s.sessions[userID] = sess
}

// IsExpired reports whether the user's record is older than the TTL.
// Absent records count as expired.
func (s *Store) IsExpired(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return true
	}
	return s.now().Sub(sess.LastInteraction) > s.ttl
}

// Clear deletes the user's record entirely.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

func cloneSlots(slots types.SlotSet) types.SlotSet {
	if slots == nil {
		return nil
	}
	out := make(types.SlotSet, len(slots))
	for k, v := range slots {
		if items, ok := v.([]types.OrderItem); ok {
			copied := make([]types.OrderItem, len(items))
			copy(copied, items)
			out[k] = copied
			continue
		}
		out[k] = v
	}
	return out
}
