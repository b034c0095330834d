package nlu

import (
	"strings"

	"github.com/seu-repo/partassist/internal/domain"
)

// RuleClassifier maps an utterance to an intent using ordered
// keyword/pattern groups. Groups are checked from most to least
// surface-distinctive (order, cart, compatibility, install, diagnose,
// lookup) so that "status of my order" is never mistaken for a part
// lookup. The first matching group wins.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

// Classify returns the rule-based verdict for one utterance. A verdict
// of out_of_scope with Confident=false means no group matched; the
// caller decides whether the later stages get a chance.
func (c *RuleClassifier) Classify(text string, params domain.ExtractedParams) domain.Classification {
	lower := strings.ToLower(text)

	// Oven heating elements belong to a product line we do not carry,
	// even though "heating element" alone is dishwasher vocabulary.
	if strings.Contains(lower, "heating element") && strings.Contains(lower, "oven") {
		return domain.Classification{Intent: domain.IntentOutOfScope, Source: domain.SourceRule, Confident: true}
	}

	// Queries about appliances we do not cover are rejected outright
	// unless an in-scope appliance is also mentioned.
	if containsWord(lower, outOfScopeTerms) && !containsAny(lower, applianceKeywords) {
		return domain.Classification{Intent: domain.IntentOutOfScope, Source: domain.SourceRule, Confident: true}
	}

	type matcher func(string, domain.ExtractedParams) bool
	groups := []struct {
		intent domain.Intent
		match  matcher
	}{
		{domain.IntentOrder, c.matchOrder},
		{domain.IntentCart, c.matchCart},
		{domain.IntentCompatibility, c.matchCompatibility},
		{domain.IntentInstall, c.matchInstall},
		{domain.IntentDiagnose, c.matchDiagnose},
		{domain.IntentLookup, c.matchLookup},
	}

	for _, g := range groups {
		if g.match(lower, params) {
			return domain.Classification{Intent: g.intent, Source: domain.SourceRule, Confident: true}
		}
	}

	// An entity with no intent vocabulary reads as a vague lookup; the
	// problem-indicator stage gets a second look at it.
	if params.HasEntity() {
		return domain.Classification{Intent: domain.IntentLookup, Source: domain.SourceRule}
	}

	return domain.Classification{Intent: domain.IntentOutOfScope, Source: domain.SourceRule}
}

func (c *RuleClassifier) matchOrder(lower string, params domain.ExtractedParams) bool {
	if params.OrderNumber != "" {
		return true
	}
	phrases := []string{
		"order status", "status of my order", "where is my order",
		"track my order", "when will my order", "my order",
	}
	if containsAny(lower, phrases) {
		return true
	}
	keywords := []string{"track", "tracking", "shipped", "arrived"}
	return containsAny(lower, keywords)
}

func (c *RuleClassifier) matchCart(lower string, params domain.ExtractedParams) bool {
	phrases := []string{
		"add to cart", "add to my cart", "shopping cart", "view cart",
		"view my cart", "my cart", "remove from cart", "clear cart",
		"in my cart",
	}
	if containsAny(lower, phrases) {
		return true
	}
	if containsAny(lower, []string{"cart", "basket", "checkout"}) {
		return true
	}
	// "buy"/"purchase" means cart unless the user is asking where or
	// how, which is a lookup or install question.
	if strings.Contains(lower, "buy") || strings.Contains(lower, "purchase") {
		return !strings.Contains(lower, "where") && !strings.Contains(lower, "how")
	}
	return false
}

func (c *RuleClassifier) matchCompatibility(lower string, params domain.ExtractedParams) bool {
	phrases := []string{
		"compatible with", "is this compatible", "will this fit",
		"will it fit", "does this work with", "will this work with",
		"work with my", "works with my", "fit my", "fits my",
	}
	if containsAny(lower, phrases) {
		return true
	}
	return strings.Contains(lower, "compatible") || strings.Contains(lower, "compatibility")
}

func (c *RuleClassifier) matchInstall(lower string, params domain.ExtractedParams) bool {
	phrases := []string{
		"how do i install", "how to install", "installation instructions",
		"how do i replace", "how to replace", "steps to replace",
		"how do i put", "set up", "setup",
	}
	if containsAny(lower, phrases) {
		return true
	}
	keywords := []string{"install", "installation", "installing", "instructions", "mount", "assemble"}
	return containsAny(lower, keywords)
}

func (c *RuleClassifier) matchDiagnose(lower string, params domain.ExtractedParams) bool {
	phrases := []string{
		"how to fix", "how do i fix", "what's wrong", "whats wrong",
		"why is my", "why does my", "having problems with",
	}
	if containsAny(lower, phrases) {
		return true
	}
	keywords := []string{"diagnose", "troubleshoot", "troubleshooting", "repair"}
	return containsAny(lower, keywords)
}

func (c *RuleClassifier) matchLookup(lower string, params domain.ExtractedParams) bool {
	phrases := []string{
		"looking for", "need a", "need to find", "searching for",
		"where can i", "do you have", "find me", "i need",
	}
	if containsAny(lower, phrases) {
		return true
	}
	keywords := []string{"find", "search", "price", "cost", "replacement", "specs"}
	return containsAny(lower, keywords)
}
