package ports

import (
	"context"

	"github.com/seu-repo/partassist/internal/domain"
)

// Catalog looks up parts and compatibility data. Implementations are
// read-mostly and safe for concurrent readers.
type Catalog interface {
	FindPart(ctx context.Context, partNumber string) (*domain.Part, error)
	SearchParts(ctx context.Context, query, applianceType string, limit int) ([]domain.Part, error)
	FindByModel(ctx context.Context, modelNumber string, limit int) ([]domain.Part, error)
	CheckCompatibility(ctx context.Context, partNumber, modelNumber string) (bool, error)
	PopularParts(ctx context.Context, applianceType string, limit int) ([]domain.Part, error)
}

// DocsRetriever returns documentation passages ranked by relevance.
// Topic is "installation" or "troubleshooting".
type DocsRetriever interface {
	Retrieve(ctx context.Context, topic, applianceType, query string, limit int) ([]domain.Passage, error)
}

// CartStore manages per-session shopping carts. Sessions never see
// each other's carts.
type CartStore interface {
	Add(ctx context.Context, sessionID string, item domain.CartItem) error
	Remove(ctx context.Context, sessionID, partNumber string) error
	Items(ctx context.Context, sessionID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// OrderStore resolves order numbers to order records. A nil order with
// nil error means the order was not found.
type OrderStore interface {
	Lookup(ctx context.Context, orderNumber string) (*domain.Order, error)
}

// IntentClassifier is the external LLM classification capability used
// as the last fallback stage. Implementations must respect ctx
// deadlines; callers treat any error as "keep the rule-based verdict".
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, query string) (domain.Intent, error)
}

// MessageQueue publishes and consumes turn events for async consumers.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}
