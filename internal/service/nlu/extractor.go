package nlu

import (
	"strconv"
	"strings"

	"github.com/seu-repo/partassist/internal/domain"
)

// ExtractParameters pulls structured slots out of a raw utterance via
// pattern rules. It never fails: a slot that cannot be found is left
// at its zero value.
func ExtractParameters(text string) domain.ExtractedParams {
	var params domain.ExtractedParams
	lower := strings.ToLower(text)

	params.OrderNumber = extractOrderNumber(text)
	params.PartNumber = extractPartNumber(text, params.OrderNumber)
	params.ModelNumber = extractModelNumber(text, params.PartNumber)
	params.ApplianceType = extractApplianceType(lower)
	params.PartName = extractPartName(lower)
	params.Quantity = extractQuantity(text)
	params.CartAction = extractCartAction(lower)

	return params
}

func extractOrderNumber(text string) string {
	if m := orderNumberPattern.FindString(text); m != "" {
		return strings.ToUpper(strings.NewReplacer("-", "", "#", "").Replace(m))
	}
	if m := orderPhrasePattern.FindStringSubmatch(text); m != nil {
		return "ORD" + m[1]
	}
	return ""
}

func extractPartNumber(text, orderNumber string) string {
	for _, candidate := range partNumberPattern.FindAllString(text, -1) {
		upper := strings.ToUpper(candidate)
		// The order token also looks like a part code; never reuse it.
		if orderNumber != "" && (strings.Contains(orderNumber, upper) || strings.Contains(upper, orderNumber)) {
			continue
		}
		if isModelNumber(upper) {
			continue
		}
		return upper
	}
	return ""
}

func extractModelNumber(text, partNumber string) string {
	for _, candidate := range modelNumberPattern.FindAllString(text, -1) {
		upper := strings.ToUpper(candidate)
		if upper == partNumber {
			continue
		}
		if isModelNumber(upper) {
			return upper
		}
	}
	return ""
}

// isModelNumber validates a candidate against the known manufacturer
// prefixes; long codes pass without a prefix match.
func isModelNumber(candidate string) bool {
	for _, prefix := range modelPrefixes {
		if strings.HasPrefix(candidate, prefix) {
			return true
		}
	}
	return false
}

func extractApplianceType(lower string) string {
	switch {
	case strings.Contains(lower, "refrigerator"), strings.Contains(lower, "fridge"),
		strings.Contains(lower, "freezer"):
		return "refrigerator"
	case strings.Contains(lower, "dishwasher"), strings.Contains(lower, "dish washer"):
		return "dishwasher"
	}
	return ""
}

func extractPartName(lower string) string {
	for _, name := range partNames {
		if strings.Contains(lower, name) {
			return name
		}
	}
	return ""
}

func extractQuantity(text string) int {
	m := quantityPattern.FindStringSubmatch(text)
	if m == nil {
		m = quantityWordPattern.FindStringSubmatch(text)
	}
	if m == nil {
		m = quantityVerbPattern.FindStringSubmatch(text)
	}
	if m == nil {
		return 0
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil || qty <= 0 {
		return 0
	}
	return qty
}

func extractCartAction(lower string) domain.CartAction {
	switch {
	case strings.Contains(lower, "remove") || strings.Contains(lower, "delete") ||
		strings.Contains(lower, "take out"):
		return domain.CartActionRemove
	case strings.Contains(lower, "clear") || strings.Contains(lower, "empty"):
		return domain.CartActionClear
	case strings.Contains(lower, "add") || strings.Contains(lower, "put"):
		return domain.CartActionAdd
	case strings.Contains(lower, "view") || strings.Contains(lower, "show") ||
		strings.Contains(lower, "what's in") || strings.Contains(lower, "whats in"):
		return domain.CartActionView
	}
	return ""
}

// DefaultPartNumber resolves a well-known part name to its canonical
// catalog entry, for turns that name a part without its number.
func DefaultPartNumber(partName string) string {
	return defaultPartNumbers[partName]
}
