package docs

import (
	"context"
	"sort"
	"strings"

	"github.com/seu-repo/partassist/internal/domain"
)

// Memory retrieves documentation passages from the built-in guide set
// using keyword overlap scoring. Title hits weigh more than body hits,
// and an appliance type narrows the candidate set when known.
type Memory struct {
	passages []domain.Passage
}

func NewMemory() *Memory {
	return &Memory{passages: seedPassages}
}

func (m *Memory) Retrieve(ctx context.Context, topic, applianceType, query string, limit int) ([]domain.Passage, error) {
	terms := tokenize(query)
	var scored []domain.Passage
	for _, p := range m.passages {
		if topic != "" && p.DocType != topic {
			continue
		}
		if applianceType != "" && p.ApplianceType != applianceType {
			continue
		}
		score := score(p, terms)
		if score <= 0 {
			continue
		}
		p.Score = score
		scored = append(scored, p)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

func score(p domain.Passage, terms []string) float64 {
	title := strings.ToLower(p.Title)
	body := strings.ToLower(p.Content)
	var s float64
	for _, t := range terms {
		if strings.Contains(title, t) {
			s += 2
		}
		if strings.Contains(body, t) {
			s += 1
		}
	}
	return s
}

// stopwords are too common to carry retrieval signal.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "is": true,
	"it": true, "to": true, "how": true, "do": true, "i": true,
	"and": true, "of": true, "in": true, "for": true, "not": true,
	"isn't": true, "won't": true, "what": true, "with": true,
}

func tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '?' || r == '!'
	})
	var out []string
	for _, f := range fields {
		if len(f) < 3 || stopwords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}
