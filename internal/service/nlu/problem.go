package nlu

import (
	"strings"

	"github.com/seu-repo/partassist/internal/domain"
)

// ProblemDetector catches utterances that describe a malfunction
// without ever asking for help in so many words. "My ice maker isn't
// working" carries no diagnose vocabulary, but the symptom phrasing
// plus an appliance or part mention is enough to treat it as one.
type ProblemDetector struct{}

func NewProblemDetector() *ProblemDetector {
	return &ProblemDetector{}
}

// Detect reports whether the utterance describes a problem with an
// identifiable appliance or part.
func (d *ProblemDetector) Detect(text string, params domain.ExtractedParams) bool {
	lower := strings.ToLower(text)
	if !containsAny(lower, symptoms) {
		return false
	}
	if params.PartName != "" || params.ApplianceType != "" || params.PartNumber != "" {
		return true
	}
	return containsAny(lower, applianceKeywords) || containsAny(lower, partKeywords)
}
