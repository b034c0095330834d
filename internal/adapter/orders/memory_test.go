package orders

import (
	"context"
	"testing"
)

func TestLookup(t *testing.T) {
	m := NewMemory()

	order, err := m.Lookup(context.Background(), "ORD123456")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if order == nil || order.Status != "Shipped" {
		t.Errorf("expected shipped order, got %+v", order)
	}
	if order.TrackingNumber == "" || order.Carrier != "UPS" {
		t.Errorf("expected tracking details, got %+v", order)
	}

	// Case-insensitive on the order number.
	order, err = m.Lookup(context.Background(), "ord345678")
	if err != nil || order == nil || order.Status != "Delivered" {
		t.Errorf("expected delivered order, got %+v err %v", order, err)
	}

	order, err = m.Lookup(context.Background(), "ORD000000")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if order != nil {
		t.Errorf("expected nil for unknown order, got %+v", order)
	}
}
