package nlu

import "strings"

// ReferencesPrior reports whether the utterance leans on something
// said earlier, either through a pronoun ("how do I install it") or a
// follow-up opener ("what about the larger one"). Conversation state
// only fills in missing entities for these turns.
func ReferencesPrior(text string) bool {
	lower := strings.ToLower(text)
	for _, prefix := range followUpPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '?' || r == '!'
	}) {
		if pronouns[word] {
			return true
		}
	}
	return false
}
