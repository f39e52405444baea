package types

import (
	"fmt"
	"sort"
	"strings"
)

// OrderItem is a single structured entry in the food domain's "orders" slot.
type OrderItem struct {
	// Item is the canonical item name after fuzzy matching.
	Item string `json:"item"`

	// Quantity is kept as the raw digit string; "1" when the message
	// carried no explicit quantity.
	Quantity string `json:"quantity"`

	// ImageURL is an optional illustration fetched from the search
	// provider. Empty when no provider is configured.
	ImageURL string `json:"image_url,omitempty"`
}

// SlotSet maps slot names to extracted values. A value is either a plain
// string or, for the food domain's "orders" slot, a []OrderItem. Slot sets
// are transient per turn unless remembered in the session record.
type SlotSet map[string]any

// String renders "key: value" pairs in sorted key order, for recap prompts
// and logs. Order items render as "quantity x item".
func (s SlotSet) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch v := s[k].(type) {
		case []OrderItem:
			items := make([]string, 0, len(v))
			for _, o := range v {
				items = append(items, fmt.Sprintf("%s x %s", o.Quantity, o.Item))
			}
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(items, ", ")))
		default:
			parts = append(parts, fmt.Sprintf("%s: %v", k, v))
		}
	}
	return strings.Join(parts, ", ")
}

// GetString returns the named slot as a string, or "" when absent or not
// string-valued.
func (s SlotSet) GetString(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// Orders returns the "orders" slot, or nil when absent.
func (s SlotSet) Orders() []OrderItem {
	if v, ok := s["orders"].([]OrderItem); ok {
		return v
	}
	return nil
}
