package domain

// Intent is the categorical purpose of a user utterance.
type Intent string

const (
	IntentLookup        Intent = "lookup"
	IntentCompatibility Intent = "compatibility"
	IntentInstall       Intent = "install"
	IntentDiagnose      Intent = "diagnose"
	IntentCart          Intent = "cart"
	IntentOrder         Intent = "order"
	IntentOutOfScope    Intent = "out_of_scope"
)

// Intents lists every valid intent, used for defensive parsing of
// LLM classification output.
var Intents = []Intent{
	IntentLookup,
	IntentCompatibility,
	IntentInstall,
	IntentDiagnose,
	IntentCart,
	IntentOrder,
	IntentOutOfScope,
}

// IsValid reports whether i is one of the known intents.
func (i Intent) IsValid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// ClassificationSource records which pipeline stage produced the verdict.
type ClassificationSource string

const (
	SourceRule             ClassificationSource = "rule"
	SourceProblemIndicator ClassificationSource = "problem_indicator"
	SourceLLM              ClassificationSource = "llm"
)

// Classification is the transient output of the classifier chain,
// consumed immediately by context enrichment.
type Classification struct {
	Intent    Intent
	Source    ClassificationSource
	Confident bool
}
