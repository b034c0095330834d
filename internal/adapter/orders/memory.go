package orders

import (
	"context"
	"strings"
	"time"

	"github.com/seu-repo/partassist/internal/domain"
)

// Memory serves a fixed set of order records. It stands in for the
// order management system, which has no sandbox API.
type Memory struct {
	orders map[string]domain.Order
}

func NewMemory() *Memory {
	placed := func(daysAgo int) time.Time {
		return time.Now().AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour)
	}
	records := []domain.Order{
		{
			OrderNumber:       "ORD123456",
			Status:            "Shipped",
			PlacedAt:          placed(3),
			TrackingNumber:    "1Z999AA10123456784",
			Carrier:           "UPS",
			EstimatedDelivery: placed(-2).Format("January 2"),
			Items: []domain.OrderItem{
				{PartNumber: "PS11746337", Name: "Water Inlet Valve", Quantity: 1, Price: 64.95},
			},
			Total: 64.95,
		},
		{
			OrderNumber: "ORD789012",
			Status:      "Processing",
			PlacedAt:    placed(1),
			Items: []domain.OrderItem{
				{PartNumber: "PS11743427", Name: "Drain Pump", Quantity: 1, Price: 86.45},
				{PartNumber: "PS11769123", Name: "Spray Arm", Quantity: 2, Price: 32.85},
			},
			Total: 152.15,
		},
		{
			OrderNumber:    "ORD345678",
			Status:         "Delivered",
			PlacedAt:       placed(9),
			TrackingNumber: "1Z999AA10198765432",
			Carrier:        "UPS",
			Items: []domain.OrderItem{
				{PartNumber: "PS11722167", Name: "Ice Maker Assembly", Quantity: 1, Price: 139.89},
			},
			Total: 139.89,
		},
	}

	m := &Memory{orders: make(map[string]domain.Order, len(records))}
	for _, o := range records {
		m.orders[o.OrderNumber] = o
	}
	return m
}

func (m *Memory) Lookup(ctx context.Context, orderNumber string) (*domain.Order, error) {
	o, ok := m.orders[strings.ToUpper(orderNumber)]
	if !ok {
		return nil, nil
	}
	return &o, nil
}
