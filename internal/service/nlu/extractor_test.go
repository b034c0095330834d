package nlu

import (
	"testing"

	"github.com/seu-repo/partassist/internal/domain"
)

func TestExtractParameters_PartNumber(t *testing.T) {
	params := ExtractParameters("Do you have part PS11746337 in stock?")

	if params.PartNumber != "PS11746337" {
		t.Errorf("expected part number PS11746337, got %q", params.PartNumber)
	}
}

func TestExtractParameters_ModelNumberNotMistakenForPart(t *testing.T) {
	params := ExtractParameters("Is this part compatible with my WDT780SAEM1?")

	if params.ModelNumber != "WDT780SAEM1" {
		t.Errorf("expected model number WDT780SAEM1, got %q", params.ModelNumber)
	}
	if params.PartNumber != "" {
		t.Errorf("model number misread as part number %q", params.PartNumber)
	}
}

func TestExtractParameters_OrderNumberNotMistakenForPart(t *testing.T) {
	params := ExtractParameters("What's the status of my order ORD123456?")

	if params.OrderNumber != "ORD123456" {
		t.Errorf("expected order number ORD123456, got %q", params.OrderNumber)
	}
	if params.PartNumber != "" {
		t.Errorf("order number misread as part number %q", params.PartNumber)
	}
}

func TestExtractParameters_PartNameAndAppliance(t *testing.T) {
	params := ExtractParameters("I need a water filter for my fridge")

	if params.PartName != "water filter" {
		t.Errorf("expected part name %q, got %q", "water filter", params.PartName)
	}
	if params.ApplianceType != "refrigerator" {
		t.Errorf("expected appliance refrigerator, got %q", params.ApplianceType)
	}
}

func TestExtractParameters_LongestPartNameWins(t *testing.T) {
	params := ExtractParameters("my detergent dispenser is stuck")

	if params.PartName != "detergent dispenser" {
		t.Errorf("expected %q, got %q", "detergent dispenser", params.PartName)
	}
}

func TestExtractParameters_QuantityAndCartAction(t *testing.T) {
	params := ExtractParameters("Add 2 water filters to my cart")

	if params.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", params.Quantity)
	}
	if params.CartAction != domain.CartActionAdd {
		t.Errorf("expected cart action add, got %q", params.CartAction)
	}
}

func TestExtractParameters_Empty(t *testing.T) {
	params := ExtractParameters("hello there")

	if params.HasEntity() {
		t.Errorf("expected no entities, got %+v", params)
	}
}

func TestDefaultPartNumber(t *testing.T) {
	if got := DefaultPartNumber("ice maker"); got != "PS11722167" {
		t.Errorf("expected PS11722167, got %q", got)
	}
	if got := DefaultPartNumber("flux capacitor"); got != "" {
		t.Errorf("expected empty for unknown part name, got %q", got)
	}
}
