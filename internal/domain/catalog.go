package domain

import "time"

// Part is a catalog record for a replacement part.
type Part struct {
	PartNumber       string   `json:"part_number"`
	Name             string   `json:"name"`
	ApplianceType    string   `json:"appliance_type"`
	Price            float64  `json:"price"`
	Stock            string   `json:"stock"`
	ImageURL         string   `json:"image_url,omitempty"`
	CompatibleModels []string `json:"compatible_models,omitempty"`
	Description      string   `json:"description,omitempty"`
}

// Passage is one retrieved documentation fragment, ranked by relevance.
type Passage struct {
	Title         string  `json:"title"`
	DocType       string  `json:"doc_type"`
	ApplianceType string  `json:"appliance_type"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	PartNumber string  `json:"part_number"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// Order is a customer order record.
type Order struct {
	OrderNumber       string      `json:"order_number"`
	Status            string      `json:"status"`
	PlacedAt          time.Time   `json:"placed_at"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
	Carrier           string      `json:"carrier,omitempty"`
	EstimatedDelivery string      `json:"estimated_delivery,omitempty"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
}

// CartItem is a single entry in a session's shopping cart.
type CartItem struct {
	PartNumber string  `json:"part_number"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Cart is the full cart state for one session.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
