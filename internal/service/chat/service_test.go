package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/domain"
	"github.com/seu-repo/partassist/internal/mocks"
	"github.com/seu-repo/partassist/internal/service/nlu"
	"github.com/seu-repo/partassist/internal/service/session"
)

var testPart = &domain.Part{
	PartNumber:       "PS11746337",
	Name:             "Water Inlet Valve",
	ApplianceType:    "refrigerator",
	Price:            64.95,
	Stock:            "in_stock",
	CompatibleModels: []string{"WRS325SDHZ"},
}

type serviceDeps struct {
	catalog *mocks.MockCatalog
	docs    *mocks.MockDocsRetriever
	carts   *mocks.MockCartStore
	orders  *mocks.MockOrderStore
	queue   *mocks.MockMessageQueue
}

func newTestService(deps *serviceDeps) *Service {
	logger := zap.NewNop()
	pipeline := nlu.NewPipeline(nil, nlu.PipelineConfig{
		LLMTimeout:               100 * time.Millisecond,
		ProblemDetectorBeforeLLM: true,
	}, logger)
	return NewService(
		pipeline,
		session.NewManager(logger),
		deps.catalog,
		deps.docs,
		deps.carts,
		deps.orders,
		deps.queue,
		logger,
	)
}

func defaultDeps() *serviceDeps {
	return &serviceDeps{
		catalog: &mocks.MockCatalog{
			FindPartFunc: func(ctx context.Context, partNumber string) (*domain.Part, error) {
				if partNumber == testPart.PartNumber {
					return testPart, nil
				}
				return nil, nil
			},
		},
		docs:   &mocks.MockDocsRetriever{},
		carts:  &mocks.MockCartStore{},
		orders: &mocks.MockOrderStore{},
		queue:  &mocks.MockMessageQueue{},
	}
}

func TestProcessTurn_LookupByPartNumber(t *testing.T) {
	service := newTestService(defaultDeps())

	resp := service.ProcessTurn(context.Background(), "s1", "Do you have part PS11746337?")

	if resp.Intent != domain.IntentLookup {
		t.Errorf("expected lookup, got %q", resp.Intent)
	}
	if resp.Product == nil || resp.Product.PartNumber != "PS11746337" {
		t.Errorf("expected product payload, got %+v", resp.Product)
	}
	if len(resp.SuggestedActions) == 0 {
		t.Error("expected suggested actions")
	}
}

func TestProcessTurn_LookupByNameUsesDefaultPartNumber(t *testing.T) {
	deps := defaultDeps()
	var requested string
	deps.catalog.FindPartFunc = func(ctx context.Context, partNumber string) (*domain.Part, error) {
		requested = partNumber
		return testPart, nil
	}
	service := newTestService(deps)

	resp := service.ProcessTurn(context.Background(), "s1", "I need a water inlet valve")

	if resp.Intent != domain.IntentLookup {
		t.Errorf("expected lookup, got %q", resp.Intent)
	}
	if requested != "PS11746337" {
		t.Errorf("expected default part number lookup, got %q", requested)
	}
}

func TestProcessTurn_CompatibilityHappyPath(t *testing.T) {
	deps := defaultDeps()
	deps.catalog.CheckCompatibilityFunc = func(ctx context.Context, partNumber, modelNumber string) (bool, error) {
		return partNumber == "PS11746337" && modelNumber == "WRS325SDHZ", nil
	}
	service := newTestService(deps)

	resp := service.ProcessTurn(context.Background(), "s1", "Is part PS11746337 compatible with my WRS325SDHZ?")

	if resp.Intent != domain.IntentCompatibility {
		t.Errorf("expected compatibility, got %q", resp.Intent)
	}
	if resp.Compatibility == nil || !resp.Compatibility.Compatible {
		t.Errorf("expected a compatible result, got %+v", resp.Compatibility)
	}
}

func TestProcessTurn_CompatibilityAsksForMissingModel(t *testing.T) {
	service := newTestService(defaultDeps())

	resp := service.ProcessTurn(context.Background(), "s1", "Is part PS11746337 compatible?")

	if resp.Intent != domain.IntentCompatibility {
		t.Errorf("expected compatibility, got %q", resp.Intent)
	}
	if resp.Compatibility != nil {
		t.Error("expected no result while the model number is missing")
	}
	if !strings.Contains(resp.Message, "model") {
		t.Errorf("expected a prompt for the model number, got %q", resp.Message)
	}
}

func TestProcessTurn_FollowUpInheritsContext(t *testing.T) {
	deps := defaultDeps()
	deps.docs.RetrieveFunc = func(ctx context.Context, topic, applianceType, query string, limit int) ([]domain.Passage, error) {
		return []domain.Passage{{Title: "Installing a Water Inlet Valve", Content: "1. Unplug the unit."}}, nil
	}
	service := newTestService(deps)

	first := service.ProcessTurn(context.Background(), "s1", "Do you have part PS11746337?")
	if first.Intent != domain.IntentLookup {
		t.Fatalf("expected lookup on first turn, got %q", first.Intent)
	}

	second := service.ProcessTurn(context.Background(), "s1", "How do I install it?")

	if second.Intent != domain.IntentInstall {
		t.Errorf("expected install, got %q", second.Intent)
	}
	if second.Product == nil || second.Product.PartNumber != "PS11746337" {
		t.Errorf("expected the prior part to carry over, got %+v", second.Product)
	}
}

func TestProcessTurn_SymptomPromotedToDiagnose(t *testing.T) {
	deps := defaultDeps()
	deps.docs.RetrieveFunc = func(ctx context.Context, topic, applianceType, query string, limit int) ([]domain.Passage, error) {
		if topic != "troubleshooting" {
			t.Errorf("expected troubleshooting retrieval, got %q", topic)
		}
		return []domain.Passage{{Title: "Ice Maker Not Making Ice", Content: "Check the shutoff arm."}}, nil
	}
	service := newTestService(deps)

	resp := service.ProcessTurn(context.Background(), "s1", "My ice maker isn't working")

	if resp.Intent != domain.IntentDiagnose {
		t.Errorf("expected diagnose, got %q", resp.Intent)
	}
	if !strings.Contains(resp.Message, "Ice Maker Not Making Ice") {
		t.Errorf("expected troubleshooting guidance, got %q", resp.Message)
	}
}

func TestProcessTurn_CartAdd(t *testing.T) {
	deps := defaultDeps()
	var added domain.CartItem
	deps.carts.AddFunc = func(ctx context.Context, sessionID string, item domain.CartItem) error {
		added = item
		return nil
	}
	deps.carts.ItemsFunc = func(ctx context.Context, sessionID string) (*domain.Cart, error) {
		return &domain.Cart{Items: []domain.CartItem{added}, Total: added.Price * float64(added.Quantity)}, nil
	}
	service := newTestService(deps)

	resp := service.ProcessTurn(context.Background(), "s1", "Add part PS11746337 to my cart")

	if resp.Intent != domain.IntentCart {
		t.Errorf("expected cart, got %q", resp.Intent)
	}
	if added.PartNumber != "PS11746337" || added.Quantity != 1 {
		t.Errorf("unexpected cart item %+v", added)
	}
	if resp.Cart == nil || len(resp.Cart.Items) != 1 {
		t.Errorf("expected cart payload, got %+v", resp.Cart)
	}
}

func TestProcessTurn_CartsAreSessionScoped(t *testing.T) {
	deps := defaultDeps()
	sessions := make(map[string]int)
	deps.carts.AddFunc = func(ctx context.Context, sessionID string, item domain.CartItem) error {
		sessions[sessionID]++
		return nil
	}
	service := newTestService(deps)

	service.ProcessTurn(context.Background(), "alpha", "Add part PS11746337 to my cart")
	service.ProcessTurn(context.Background(), "beta", "Add part PS11746337 to my cart")

	if sessions["alpha"] != 1 || sessions["beta"] != 1 {
		t.Errorf("expected one add per session, got %v", sessions)
	}
}

func TestProcessTurn_OrderStatus(t *testing.T) {
	deps := defaultDeps()
	deps.orders.LookupFunc = func(ctx context.Context, orderNumber string) (*domain.Order, error) {
		if orderNumber == "ORD123456" {
			return &domain.Order{OrderNumber: "ORD123456", Status: "Shipped", TrackingNumber: "1Z999", Carrier: "UPS"}, nil
		}
		return nil, nil
	}
	service := newTestService(deps)

	resp := service.ProcessTurn(context.Background(), "s1", "What's the status of my order ORD123456?")

	if resp.Intent != domain.IntentOrder {
		t.Errorf("expected order, got %q", resp.Intent)
	}
	if resp.Order == nil || resp.Order.Status != "Shipped" {
		t.Errorf("expected order payload, got %+v", resp.Order)
	}
	if !strings.Contains(resp.Message, "shipped") {
		t.Errorf("expected status in message, got %q", resp.Message)
	}
}

func TestProcessTurn_OrderNotFound(t *testing.T) {
	service := newTestService(defaultDeps())

	resp := service.ProcessTurn(context.Background(), "s1", "Where is my order ORD999999?")

	if resp.Intent != domain.IntentOrder {
		t.Errorf("expected order, got %q", resp.Intent)
	}
	if resp.Order != nil {
		t.Errorf("expected no order payload, got %+v", resp.Order)
	}
	if !strings.Contains(resp.Message, "ORD999999") {
		t.Errorf("expected the order number echoed back, got %q", resp.Message)
	}
}

func TestProcessTurn_OutOfScope(t *testing.T) {
	service := newTestService(defaultDeps())

	resp := service.ProcessTurn(context.Background(), "s1", "What's the weather like today?")

	if resp.Intent != domain.IntentOutOfScope {
		t.Errorf("expected out_of_scope, got %q", resp.Intent)
	}
	if len(resp.SuggestedActions) == 0 {
		t.Error("expected redirect suggestions")
	}
}

func TestProcessTurn_OutOfScopeAfterInScopeTurn(t *testing.T) {
	service := newTestService(defaultDeps())

	first := service.ProcessTurn(context.Background(), "s1", "I need a water filter for my refrigerator")
	if first.Intent != domain.IntentLookup {
		t.Fatalf("expected lookup on first turn, got %q", first.Intent)
	}

	// The remembered appliance must not bleed into an off-topic turn.
	second := service.ProcessTurn(context.Background(), "s1", "What's the weather like today?")

	if second.Intent != domain.IntentOutOfScope {
		t.Errorf("expected out_of_scope, got %q", second.Intent)
	}
}

func TestProcessTurn_CatalogFailureDegradesGracefully(t *testing.T) {
	deps := defaultDeps()
	deps.catalog.FindPartFunc = func(ctx context.Context, partNumber string) (*domain.Part, error) {
		return nil, errors.New("connection refused")
	}
	service := newTestService(deps)

	resp := service.ProcessTurn(context.Background(), "s1", "Do you have part PS11746337?")

	if resp == nil {
		t.Fatal("expected a structured reply despite the failure")
	}
	if resp.Message == "" {
		t.Error("expected an apologetic message")
	}
	if resp.Intent != domain.IntentLookup {
		t.Errorf("expected lookup intent preserved, got %q", resp.Intent)
	}
	var rephrase bool
	for _, action := range resp.SuggestedActions {
		if strings.Contains(strings.ToLower(action), "rephras") {
			rephrase = true
		}
	}
	if !rephrase {
		t.Errorf("expected a rephrase suggestion on failure, got %v", resp.SuggestedActions)
	}
}

func TestProcessTurn_PublishesTurnEvent(t *testing.T) {
	deps := defaultDeps()
	service := newTestService(deps)

	service.ProcessTurn(context.Background(), "s1", "Do you have part PS11746337?")

	if len(deps.queue.Published) != 1 {
		t.Fatalf("expected one turn event, got %d", len(deps.queue.Published))
	}
	if deps.queue.Subjects[0] != "chat.turns" {
		t.Errorf("expected chat.turns subject, got %q", deps.queue.Subjects[0])
	}
	var event TurnEvent
	if err := json.Unmarshal(deps.queue.Published[0], &event); err != nil {
		t.Fatalf("turn event is not valid JSON: %v", err)
	}
	if event.SessionID != "s1" || event.Intent != domain.IntentLookup {
		t.Errorf("unexpected turn event %+v", event)
	}
}
