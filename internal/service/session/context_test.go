package session

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/domain"
	"github.com/seu-repo/partassist/internal/service/nlu"
)

func TestEnrich_FollowUpInheritsPriorPart(t *testing.T) {
	// Arrange: a turn that identified the ice maker.
	c := NewContext("s1")
	first := "My ice maker isn't working"
	c.Update(first, domain.IntentDiagnose, nlu.ExtractParameters(first))

	// Act: the follow-up names nothing explicitly.
	second := "How do I install it?"
	enriched := c.Enrich(second, nlu.ExtractParameters(second))

	// Assert
	if enriched.PartName != "ice maker" {
		t.Errorf("expected inherited part name %q, got %q", "ice maker", enriched.PartName)
	}
}

func TestEnrich_NeverOverwritesPresentFields(t *testing.T) {
	c := NewContext("s1")
	first := "I need a water filter for my WRS325SDHZ refrigerator"
	c.Update(first, domain.IntentLookup, nlu.ExtractParameters(first))

	second := "What about a drain pump for my dishwasher?"
	enriched := c.Enrich(second, nlu.ExtractParameters(second))

	if enriched.PartName != "drain pump" {
		t.Errorf("expected drain pump, got %q", enriched.PartName)
	}
	if enriched.ApplianceType != "dishwasher" {
		t.Errorf("expected dishwasher, got %q", enriched.ApplianceType)
	}
	// The remembered model still fills the empty slot.
	if enriched.ModelNumber != "WRS325SDHZ" {
		t.Errorf("expected inherited model WRS325SDHZ, got %q", enriched.ModelNumber)
	}
}

func TestEnrich_StandaloneTurnIgnoresContext(t *testing.T) {
	c := NewContext("s1")
	first := "My dishwasher is leaking"
	c.Update(first, domain.IntentDiagnose, nlu.ExtractParameters(first))

	// A fresh query that names its own part does not refer back, so
	// the remembered appliance must not attach to it.
	second := "Find me a gasket"
	enriched := c.Enrich(second, nlu.ExtractParameters(second))

	if enriched.ApplianceType != "" {
		t.Errorf("expected no inherited appliance on a standalone query, got %q", enriched.ApplianceType)
	}
	if enriched.ModelNumber != "" {
		t.Errorf("expected no inherited model on a standalone query, got %q", enriched.ModelNumber)
	}
}

func TestEnrich_OffTopicTurnGainsNoEntities(t *testing.T) {
	c := NewContext("s1")
	first := "I need a water filter for my refrigerator"
	c.Update(first, domain.IntentLookup, nlu.ExtractParameters(first))

	second := "What's the weather like today?"
	enriched := c.Enrich(second, nlu.ExtractParameters(second))

	if enriched.HasEntity() {
		t.Errorf("expected an off-topic turn to stay entity-free, got %+v", enriched)
	}
}

func TestEnrich_Idempotent(t *testing.T) {
	c := NewContext("s1")
	first := "Do you have part PS11746337?"
	c.Update(first, domain.IntentLookup, nlu.ExtractParameters(first))

	second := "Is it compatible with my WDT780SAEM1?"
	once := c.Enrich(second, nlu.ExtractParameters(second))
	twice := c.Enrich(second, once)

	if once != twice {
		t.Errorf("enrich is not idempotent: %+v vs %+v", once, twice)
	}
}

func TestUpdate_PreservesEntitiesAbsentFromTurn(t *testing.T) {
	c := NewContext("s1")
	first := "I need a water filter for my WRS325SDHZ"
	c.Update(first, domain.IntentLookup, nlu.ExtractParameters(first))

	second := "thanks"
	c.Update(second, domain.IntentOutOfScope, nlu.ExtractParameters(second))

	if c.LastModelNumber != "WRS325SDHZ" {
		t.Errorf("model number was dropped, got %q", c.LastModelNumber)
	}
	if c.LastPartName != "water filter" {
		t.Errorf("part name was dropped, got %q", c.LastPartName)
	}
	if c.LastIntent != domain.IntentOutOfScope {
		t.Errorf("intent should track the latest turn, got %q", c.LastIntent)
	}
}

func TestUpdate_HistoryIsBounded(t *testing.T) {
	c := NewContext("s1")
	for i := 0; i < 25; i++ {
		query := fmt.Sprintf("turn %d", i)
		c.Update(query, domain.IntentLookup, domain.ExtractedParams{})
	}

	if len(c.History) != historyLimit {
		t.Errorf("expected history capped at %d, got %d", historyLimit, len(c.History))
	}
	if c.History[len(c.History)-1].Query != "turn 24" {
		t.Errorf("expected newest turn last, got %q", c.History[len(c.History)-1].Query)
	}
}

func TestManager_SessionIsolation(t *testing.T) {
	m := NewManager(zap.NewNop())

	a := m.Get("session-a")
	b := m.Get("session-b")
	a.Update("I need a water filter", domain.IntentLookup, nlu.ExtractParameters("I need a water filter"))

	if b.LastPartName != "" {
		t.Errorf("session-b saw session-a's state: %q", b.LastPartName)
	}
	if m.Get("session-a") != a {
		t.Error("expected the same context on repeat lookup")
	}

	m.Drop("session-a")
	if m.Count() != 1 {
		t.Errorf("expected 1 live session after drop, got %d", m.Count())
	}
}
