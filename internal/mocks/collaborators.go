package mocks

import (
	"context"

	"github.com/seu-repo/partassist/internal/domain"
)

// MockCatalog is a mock implementation of the Catalog interface
type MockCatalog struct {
	FindPartFunc           func(ctx context.Context, partNumber string) (*domain.Part, error)
	SearchPartsFunc        func(ctx context.Context, query, applianceType string, limit int) ([]domain.Part, error)
	FindByModelFunc        func(ctx context.Context, modelNumber string, limit int) ([]domain.Part, error)
	CheckCompatibilityFunc func(ctx context.Context, partNumber, modelNumber string) (bool, error)
	PopularPartsFunc       func(ctx context.Context, applianceType string, limit int) ([]domain.Part, error)
}

func (m *MockCatalog) FindPart(ctx context.Context, partNumber string) (*domain.Part, error) {
	if m.FindPartFunc != nil {
		return m.FindPartFunc(ctx, partNumber)
	}
	return nil, nil
}

func (m *MockCatalog) SearchParts(ctx context.Context, query, applianceType string, limit int) ([]domain.Part, error) {
	if m.SearchPartsFunc != nil {
		return m.SearchPartsFunc(ctx, query, applianceType, limit)
	}
	return nil, nil
}

func (m *MockCatalog) FindByModel(ctx context.Context, modelNumber string, limit int) ([]domain.Part, error) {
	if m.FindByModelFunc != nil {
		return m.FindByModelFunc(ctx, modelNumber, limit)
	}
	return nil, nil
}

func (m *MockCatalog) CheckCompatibility(ctx context.Context, partNumber, modelNumber string) (bool, error) {
	if m.CheckCompatibilityFunc != nil {
		return m.CheckCompatibilityFunc(ctx, partNumber, modelNumber)
	}
	return false, nil
}

func (m *MockCatalog) PopularParts(ctx context.Context, applianceType string, limit int) ([]domain.Part, error) {
	if m.PopularPartsFunc != nil {
		return m.PopularPartsFunc(ctx, applianceType, limit)
	}
	return nil, nil
}

// MockDocsRetriever is a mock implementation of the DocsRetriever interface
type MockDocsRetriever struct {
	RetrieveFunc func(ctx context.Context, topic, applianceType, query string, limit int) ([]domain.Passage, error)
}

func (m *MockDocsRetriever) Retrieve(ctx context.Context, topic, applianceType, query string, limit int) ([]domain.Passage, error) {
	if m.RetrieveFunc != nil {
		return m.RetrieveFunc(ctx, topic, applianceType, query, limit)
	}
	return nil, nil
}

// MockCartStore is a mock implementation of the CartStore interface
type MockCartStore struct {
	AddFunc    func(ctx context.Context, sessionID string, item domain.CartItem) error
	RemoveFunc func(ctx context.Context, sessionID, partNumber string) error
	ItemsFunc  func(ctx context.Context, sessionID string) (*domain.Cart, error)
	ClearFunc  func(ctx context.Context, sessionID string) error
}

func (m *MockCartStore) Add(ctx context.Context, sessionID string, item domain.CartItem) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, sessionID, item)
	}
	return nil
}

func (m *MockCartStore) Remove(ctx context.Context, sessionID, partNumber string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, sessionID, partNumber)
	}
	return nil
}

func (m *MockCartStore) Items(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if m.ItemsFunc != nil {
		return m.ItemsFunc(ctx, sessionID)
	}
	return &domain.Cart{Items: []domain.CartItem{}}, nil
}

func (m *MockCartStore) Clear(ctx context.Context, sessionID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, sessionID)
	}
	return nil
}

// MockOrderStore is a mock implementation of the OrderStore interface
type MockOrderStore struct {
	LookupFunc func(ctx context.Context, orderNumber string) (*domain.Order, error)
}

func (m *MockOrderStore) Lookup(ctx context.Context, orderNumber string) (*domain.Order, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, orderNumber)
	}
	return nil, nil
}

// MockIntentClassifier is a mock implementation of the IntentClassifier interface
type MockIntentClassifier struct {
	ClassifyIntentFunc func(ctx context.Context, query string) (domain.Intent, error)
}

func (m *MockIntentClassifier) ClassifyIntent(ctx context.Context, query string) (domain.Intent, error) {
	if m.ClassifyIntentFunc != nil {
		return m.ClassifyIntentFunc(ctx, query)
	}
	return domain.IntentOutOfScope, nil
}

// MockMessageQueue is a mock implementation of the MessageQueue interface
type MockMessageQueue struct {
	Published   [][]byte
	Subjects    []string
	PublishFunc func(subject string, data []byte) error
}

func (m *MockMessageQueue) Publish(subject string, data []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(subject, data)
	}
	m.Subjects = append(m.Subjects, subject)
	m.Published = append(m.Published, data)
	return nil
}

func (m *MockMessageQueue) Subscribe(subject string, handler func(data []byte) error) error {
	return nil
}

func (m *MockMessageQueue) Close() error {
	return nil
}
