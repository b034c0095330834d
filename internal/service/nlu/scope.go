package nlu

import "strings"

// InScope reports whether a query relates to refrigerator or
// dishwasher parts. It is a precision guard: short, vague queries and
// queries about other appliances are rejected.
func InScope(text string) bool {
	lower := strings.ToLower(text)

	// A validated model number is the strongest in-scope signal.
	for _, candidate := range modelNumberPattern.FindAllString(text, -1) {
		upper := strings.ToUpper(candidate)
		if isModelNumber(upper) || len(upper) >= 8 {
			return true
		}
	}

	// Oven heating elements are a different product line entirely.
	if strings.Contains(lower, "heating element") && strings.Contains(lower, "oven") {
		return false
	}

	hasOutOfScope := containsWord(lower, outOfScopeTerms)
	hasAppliance := containsAny(lower, applianceKeywords)

	if hasOutOfScope && !hasAppliance {
		return false
	}
	if hasAppliance {
		return true
	}
	if containsAny(lower, partKeywords) {
		return true
	}

	// A brand alone is too vague ("my LG isn't working") unless the
	// query carries enough context to suggest a parts question.
	for _, brand := range applianceBrands {
		if strings.Contains(lower, brand) {
			if len(strings.Fields(lower)) > 4 || containsAny(lower, partKeywords) {
				return true
			}
		}
	}

	// "I need a part" with no further context is unanswerable.
	if strings.Contains(lower, "part") {
		return len(strings.Fields(lower)) > 4
	}

	return false
}

// HasDomainVocab is the looser relevance heuristic that gates the LLM
// fallback: any appliance, part, or brand mention keeps the query in
// play even when the scope guard rejected it.
func HasDomainVocab(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, applianceKeywords) ||
		containsAny(lower, partKeywords) ||
		containsAny(lower, applianceBrands) ||
		strings.Contains(lower, "part") ||
		strings.Contains(lower, "appliance")
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// containsWord matches whole words only, so "range" does not fire on
// "arrange" and "tv" does not fire inside other tokens.
func containsWord(lower string, terms []string) bool {
	padded := " " + lower + " "
	for _, term := range terms {
		if strings.Contains(padded, " "+term+" ") {
			return true
		}
	}
	return false
}
