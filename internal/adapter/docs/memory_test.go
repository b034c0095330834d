package docs

import (
	"context"
	"strings"
	"testing"
)

func TestRetrieve_TopicFiltering(t *testing.T) {
	m := NewMemory()

	passages, err := m.Retrieve(context.Background(), "installation", "", "install water inlet valve", 3)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if len(passages) == 0 {
		t.Fatal("expected installation passages")
	}
	for _, p := range passages {
		if p.DocType != "installation" {
			t.Errorf("expected installation passages only, got %q", p.DocType)
		}
	}
	if !strings.Contains(passages[0].Title, "Water Inlet Valve") {
		t.Errorf("expected the inlet valve guide first, got %q", passages[0].Title)
	}
}

func TestRetrieve_ApplianceFiltering(t *testing.T) {
	m := NewMemory()

	passages, err := m.Retrieve(context.Background(), "troubleshooting", "dishwasher", "dishwasher not draining water", 5)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if len(passages) == 0 {
		t.Fatal("expected troubleshooting passages")
	}
	for _, p := range passages {
		if p.ApplianceType != "dishwasher" {
			t.Errorf("expected dishwasher passages only, got %q", p.ApplianceType)
		}
	}
	if !strings.Contains(passages[0].Title, "Not Draining") {
		t.Errorf("expected the draining guide first, got %q", passages[0].Title)
	}
}

func TestRetrieve_RankedByScore(t *testing.T) {
	m := NewMemory()

	passages, err := m.Retrieve(context.Background(), "troubleshooting", "", "ice maker not making ice", 5)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	for i := 1; i < len(passages); i++ {
		if passages[i].Score > passages[i-1].Score {
			t.Errorf("passages not sorted by score: %v then %v", passages[i-1].Score, passages[i].Score)
		}
	}
}

func TestRetrieve_NoMatch(t *testing.T) {
	m := NewMemory()

	passages, err := m.Retrieve(context.Background(), "installation", "", "zzz qqq", 3)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if len(passages) != 0 {
		t.Errorf("expected no passages, got %d", len(passages))
	}
}
