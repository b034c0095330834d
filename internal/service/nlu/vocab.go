package nlu

import "regexp"

// Fixed vocabulary for the rule-based stages. The assistant covers
// refrigerator and dishwasher parts only; everything else is rejected
// by the scope guard.

var applianceKeywords = []string{
	// refrigerator terms
	"refrigerator", "fridge", "freezer", "ice maker", "ice dispenser",
	"water dispenser", "water filter", "crisper", "compressor",
	"condenser", "evaporator", "defrost", "temperature control",
	// dishwasher terms
	"dishwasher", "dish washer", "rinse aid", "wash cycle", "spray arm",
	"detergent dispenser", "silverware basket", "drain pump",
	"heating element", "water inlet", "float switch",
}

var partKeywords = []string{
	"compressor", "condenser", "evaporator", "fan", "motor", "filter",
	"water filter", "ice maker", "thermostat", "defrost", "heater",
	"drawer", "seal", "gasket", "shelf", "bin", "hinge", "handle",
	"switch", "water line", "water valve", "water inlet valve",
	"dispenser", "control board", "circuit board", "pump", "drain pump",
	"spray arm", "rack", "basket", "door latch", "soap dispenser",
	"detergent dispenser", "heating element", "drain hose",
	"float switch", "timer", "control panel", "door gasket",
}

var applianceBrands = []string{
	"whirlpool", "maytag", "kitchenaid", "samsung", "bosch",
	"frigidaire", "electrolux", "kenmore", "amana", "thermador",
	"miele", "subzero", "haier", "hotpoint",
}

// outOfScopeTerms name appliances the assistant does not cover. A
// query mentioning one of these without also mentioning an in-scope
// appliance is rejected.
var outOfScopeTerms = []string{
	"stove", "oven", "microwave", "washer", "dryer", "washing machine",
	"laundry", "air conditioner", "hvac", "vacuum", "blender",
	"toaster", "coffee maker", "kettle", "mixer", "grill", "range",
	"tv", "television", "computer", "laptop", "printer", "phone", "car",
}

// modelPrefixes validate model-number candidates; manufacturers use
// stable prefixes for refrigerator and dishwasher lines.
var modelPrefixes = []string{
	"GDF", "GDT", "WDF", "WDT", "MDB", "LDF", "LDT", "KDFE",
	"RF", "WRF", "WRS", "WRB", "WRX", "GSS", "GSL", "GTS", "GTH",
}

var (
	// Part numbers: optional short letter prefix plus a long digit run,
	// e.g. PS11746337, W10295370A, WPW10503278, 67003753.
	partNumberPattern = regexp.MustCompile(`\b([A-Za-z]{1,3}\d{5,10}[A-Za-z0-9]{0,4}|\d{7,10})\b`)

	// Model numbers: letter block then digits then alphanumeric tail,
	// e.g. WDT780SAEM1, WRS325SDHZ, GSS25GSHSS.
	modelNumberPattern = regexp.MustCompile(`\b[A-Za-z]{2,4}\d{2,4}[A-Za-z0-9]{0,6}\b`)

	// Order numbers carry a distinct ORD prefix, e.g. ORD123456; the
	// bare "order number 123456" phrasing is accepted too.
	orderNumberPattern  = regexp.MustCompile(`(?i)\b(ORD[-#]?\d{6,10})\b`)
	orderPhrasePattern  = regexp.MustCompile(`(?i)order\s+(?:number\s+)?#?(\d{6,10})\b`)
	quantityPattern     = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:x\b|pcs|pieces|units|of\s+(?:them|these|those))`)
	quantityWordPattern = regexp.MustCompile(`(?i)\b(?:quantity|qty)\s*(?:of)?\s*(\d{1,3})\b`)
	quantityVerbPattern = regexp.MustCompile(`(?i)\b(?:add|buy|order|get|need|want)\s+(\d{1,3})\b`)
)

// defaultPartNumbers resolves well-known part names to canonical
// catalog entries when an utterance names the part but not its number.
var defaultPartNumbers = map[string]string{
	"water filter":      "PS11787619",
	"water inlet valve": "PS11746337",
	"ice maker":         "PS11722167",
	"thermostat":        "PS11705149",
	"control board":     "PS11708155",
	"drain pump":        "PS11743427",
	"spray arm":         "PS11769123",
	"heating element":   "PS11763814",
	"door latch":        "PS11723171",
	"door gasket":       "PS11784756",
}

// partNames are matched longest-first so "water inlet valve" wins over
// "water filter"-style partial overlaps.
var partNames = []string{
	"water inlet valve", "detergent dispenser", "heating element",
	"control board", "door gasket", "door latch", "drain pump",
	"water filter", "ice maker", "spray arm", "thermostat",
	"compressor", "dispenser", "gasket",
}

// symptoms drive the problem-indicator detector. Diagnostic phrasing
// is lexically diverse, so this list is deliberately broad and only
// consulted when the rule stage was inconclusive.
var symptoms = []string{
	"not working", "isn't working", "doesn't work", "won't work",
	"stopped working", "not running", "won't start", "won't turn on",
	"broken", "leaking", "leaks", "making noise", "strange noise",
	"noisy", "not cooling", "too warm", "not draining", "won't drain",
	"not filling", "no water", "no ice", "not dispensing",
	"strange taste", "tastes bad", "error code", "not cleaning",
	"not drying",
}

var pronouns = map[string]bool{
	"it": true, "this": true, "that": true,
	"them": true, "these": true, "those": true, "one": true,
}

// followUpPrefixes mark short queries that lean on prior context.
var followUpPrefixes = []string{
	"how do i", "how to", "install", "is it compatible", "will it work",
	"is this compatible", "where does it go", "how much", "what about",
	"add to cart", "add it", "remove from cart", "view my cart",
	"check my order",
}
