package chat

import (
	"fmt"

	"github.com/seu-repo/partassist/internal/domain"
)

// suggestedActions maps each intent to the follow-up prompts shown
// with a successful answer.
var suggestedActions = map[domain.Intent][]string{
	domain.IntentLookup: {
		"Check compatibility with my model",
		"How do I install this part?",
		"Add to cart",
	},
	domain.IntentCompatibility: {
		"Show installation instructions",
		"Add to cart",
		"Find other parts for my model",
	},
	domain.IntentInstall: {
		"Is this part compatible with my model?",
		"Add to cart",
		"My appliance still isn't working",
	},
	domain.IntentDiagnose: {
		"Find the replacement part",
		"How do I install it?",
		"Check my order status",
	},
	domain.IntentCart: {
		"View my cart",
		"Find another part",
		"Check compatibility with my model",
	},
	domain.IntentOrder: {
		"Look up a replacement part",
		"Add a part to my cart",
	},
}

// outOfScopeSuggestions steers the user back to what the assistant
// actually covers.
var outOfScopeSuggestions = []string{
	"Find a refrigerator part",
	"Find a dishwasher part",
	"Check part compatibility",
	"Troubleshoot my appliance",
}

const outOfScopeMessage = "I can only help with refrigerator and dishwasher parts: finding parts, " +
	"checking compatibility, installation help, troubleshooting, and order questions. " +
	"What appliance part can I help you with?"

func actionsFor(intent domain.Intent) []string {
	if a, ok := suggestedActions[intent]; ok {
		return a
	}
	return outOfScopeSuggestions
}

func outOfScopeResponse() *domain.Response {
	return &domain.Response{
		Message:          outOfScopeMessage,
		Intent:           domain.IntentOutOfScope,
		SuggestedActions: outOfScopeSuggestions,
	}
}

// fallbackSuggestions accompany a collaborator failure, where the
// intent's usual follow-ups would promise more than the turn
// delivered.
var fallbackSuggestions = []string{
	"Try rephrasing your question",
	"Try again in a moment",
	"Search by part number instead",
}

// fallbackResponse covers collaborator failures: the turn still gets a
// structured reply instead of an error frame.
func fallbackResponse(intent domain.Intent) *domain.Response {
	return &domain.Response{
		Message:          "Sorry, I ran into a problem looking that up. Please try again in a moment.",
		Intent:           intent,
		SuggestedActions: fallbackSuggestions,
	}
}

func partSummary(p *domain.Part) string {
	return fmt.Sprintf("%s (part %s) is %s at $%.2f.", p.Name, p.PartNumber, stockPhrase(p.Stock), p.Price)
}

func stockPhrase(stock string) string {
	switch stock {
	case "in_stock":
		return "in stock"
	case "backordered":
		return "on backorder"
	case "out_of_stock":
		return "out of stock"
	default:
		return "available"
	}
}
