package domain

// CompatibilityResult is the structured payload for compatibility turns.
type CompatibilityResult struct {
	PartNumber  string `json:"part_number"`
	ModelNumber string `json:"model_number"`
	Compatible  bool   `json:"compatible"`
}

// Response is the structured reply for one turn, serialized to JSON on
// the transport. The presentation layer special-cases the order and
// compatibility payloads.
type Response struct {
	Message          string               `json:"message"`
	Intent           Intent               `json:"intent"`
	SuggestedActions []string             `json:"suggested_actions"`
	Product          *Part                `json:"product_data,omitempty"`
	Parts            []Part               `json:"parts,omitempty"`
	Compatibility    *CompatibilityResult `json:"compatibility,omitempty"`
	Order            *Order               `json:"order,omitempty"`
	Cart             *Cart                `json:"cart,omitempty"`
}
