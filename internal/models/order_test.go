package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// The order fetch projects dereferenced cart entries as productName; the
// console reads them as name. This pins the two ends together.
func TestCartItemDecodesProjectedFieldNames(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"fullname": "Ada Lovelace",
		"status":   "pending",
		"cartItems": bson.A{
			bson.M{"productName": "Pizza", "image": "abc123"},
		},
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var order Order
	if err := bson.Unmarshal(raw, &order); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(order.CartItems) != 1 {
		t.Fatalf("expected one cart item, got %d", len(order.CartItems))
	}
	if order.CartItems[0].Name != "Pizza" {
		t.Fatalf("productName did not land in Name: %+v", order.CartItems[0])
	}
	if order.CartItems[0].Image != "abc123" {
		t.Fatalf("image not decoded: %+v", order.CartItems[0])
	}
}

func TestStatusDecodesNullAsEmpty(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"fullname": "Alan Turing",
		"status":   nil,
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var order Order
	if err := bson.Unmarshal(raw, &order); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if order.Status != "" {
		t.Fatalf("expected empty status for null, got %q", order.Status)
	}
	if order.Status.Display() != StatusPending {
		t.Fatalf("expected null status to display as pending, got %q", order.Status.Display())
	}
}

func TestStatusKnownValues(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusDispatch, StatusSuccess} {
		if !s.Known() {
			t.Fatalf("expected %q to be known", s)
		}
	}
	for _, s := range []Status{"", "shipped", "Pending"} {
		if s.Known() {
			t.Fatalf("expected %q to be unknown", s)
		}
	}
}
