package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotSetStringSortsKeys(t *testing.T) {
	s := SlotSet{"to": "bali", "from": "jakarta"}

	assert.Equal(t, "from: jakarta, to: bali", s.String())
}

func TestSlotSetStringRendersOrders(t *testing.T) {
	s := SlotSet{
		"orders": []OrderItem{
			{Item: "sushi", Quantity: "2"},
			{Item: "ramen", Quantity: "1"},
		},
		"delivery_time": "19:00",
	}

	assert.Equal(t, "delivery_time: 19:00, orders: 2 x sushi, 1 x ramen", s.String())
}

func TestSlotSetStringEmpty(t *testing.T) {
	assert.Empty(t, SlotSet{}.String())
}

func TestSlotSetGetString(t *testing.T) {
	s := SlotSet{"location": "ubud", "orders": []OrderItem{{Item: "sate"}}}

	assert.Equal(t, "ubud", s.GetString("location"))
	assert.Empty(t, s.GetString("orders"), "non-string values read as empty")
	assert.Empty(t, s.GetString("missing"))
}

func TestSlotSetOrders(t *testing.T) {
	s := SlotSet{"orders": []OrderItem{{Item: "sate", Quantity: "3"}}}

	assert.Len(t, s.Orders(), 1)
	assert.Nil(t, SlotSet{}.Orders())
	assert.Nil(t, SlotSet{"orders": "not-a-list"}.Orders())
}
