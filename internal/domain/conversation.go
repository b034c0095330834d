package domain

// CartAction is the operation requested inside a cart-intent turn.
type CartAction string

const (
	CartActionAdd    CartAction = "add"
	CartActionRemove CartAction = "remove"
	CartActionView   CartAction = "view"
	CartActionClear  CartAction = "clear"
)

// ExtractedParams holds the structured slots pulled from a single
// utterance. The zero value of a field means the slot was absent from
// the utterance, not explicitly empty.
type ExtractedParams struct {
	PartNumber    string
	PartName      string
	ModelNumber   string
	ApplianceType string
	OrderNumber   string
	Quantity      int
	CartAction    CartAction
}

// HasEntity reports whether any catalog-addressable entity was found.
func (p ExtractedParams) HasEntity() bool {
	return p.PartNumber != "" || p.PartName != "" || p.ModelNumber != "" ||
		p.ApplianceType != "" || p.OrderNumber != ""
}
