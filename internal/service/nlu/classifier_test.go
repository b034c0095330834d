package nlu

import (
	"testing"

	"github.com/seu-repo/partassist/internal/domain"
)

func classify(t *testing.T, text string) domain.Classification {
	t.Helper()
	c := NewRuleClassifier()
	return c.Classify(text, ExtractParameters(text))
}

func TestClassify_Lookup(t *testing.T) {
	got := classify(t, "I need a water filter for my refrigerator")

	if got.Intent != domain.IntentLookup {
		t.Errorf("expected lookup, got %q", got.Intent)
	}
	if !got.Confident {
		t.Error("expected a confident verdict")
	}
}

func TestClassify_Compatibility(t *testing.T) {
	got := classify(t, "Is this part compatible with my WDT780SAEM1?")

	if got.Intent != domain.IntentCompatibility {
		t.Errorf("expected compatibility, got %q", got.Intent)
	}
}

func TestClassify_Install(t *testing.T) {
	got := classify(t, "How do I install it?")

	if got.Intent != domain.IntentInstall {
		t.Errorf("expected install, got %q", got.Intent)
	}
}

func TestClassify_OrderBeatsLookup(t *testing.T) {
	got := classify(t, "What's the status of my order ORD123456?")

	if got.Intent != domain.IntentOrder {
		t.Errorf("expected order, got %q", got.Intent)
	}
	if !got.Confident {
		t.Error("expected a confident verdict")
	}
}

func TestClassify_Cart(t *testing.T) {
	got := classify(t, "Add PS11746337 to my cart")

	if got.Intent != domain.IntentCart {
		t.Errorf("expected cart, got %q", got.Intent)
	}
}

func TestClassify_WhereToBuyIsLookup(t *testing.T) {
	got := classify(t, "Where can I buy a drain pump?")

	if got.Intent != domain.IntentLookup {
		t.Errorf("expected lookup, got %q", got.Intent)
	}
}

func TestClassify_SymptomOnlyFallsToUnconfidentLookup(t *testing.T) {
	// No intent vocabulary, just a malfunction report. The rule stage
	// leaves this for the problem-indicator detector.
	got := classify(t, "My ice maker isn't working")

	if got.Intent != domain.IntentLookup {
		t.Errorf("expected lookup, got %q", got.Intent)
	}
	if got.Confident {
		t.Error("expected an unconfident verdict")
	}
}

func TestClassify_OutOfScopeAppliance(t *testing.T) {
	got := classify(t, "I need a heating element for my oven")

	if got.Intent != domain.IntentOutOfScope {
		t.Errorf("expected out_of_scope, got %q", got.Intent)
	}
}

func TestInScope(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"I need a water filter for my fridge", true},
		{"Will this fit my WDT780SAEM1?", true},
		{"My dishwasher won't drain", true},
		{"heating element for my oven", false},
		{"How do I fix my car?", false},
		{"What's the weather today?", false},
	}
	for _, tc := range cases {
		if got := InScope(tc.text); got != tc.want {
			t.Errorf("InScope(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestProblemDetector(t *testing.T) {
	d := NewProblemDetector()

	text := "My ice maker isn't working properly"
	if !d.Detect(text, ExtractParameters(text)) {
		t.Errorf("expected a problem indication for %q", text)
	}

	text = "I need a water filter"
	if d.Detect(text, ExtractParameters(text)) {
		t.Errorf("did not expect a problem indication for %q", text)
	}
}
