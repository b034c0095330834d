package cart

import (
	"context"
	"sort"
	"sync"

	"github.com/seu-repo/partassist/internal/domain"
)

// MemoryStore is the fallback cart store for deployments without
// Redis. Carts live only as long as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]map[string]domain.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]map[string]domain.CartItem)}
}

func (s *MemoryStore) Add(ctx context.Context, sessionID string, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[sessionID]
	if cart == nil {
		cart = make(map[string]domain.CartItem)
		s.carts[sessionID] = cart
	}
	if existing, ok := cart[item.PartNumber]; ok {
		item.Quantity += existing.Quantity
	}
	cart[item.PartNumber] = item
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, sessionID, partNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts[sessionID], partNumber)
	return nil
}

func (s *MemoryStore) Items(ctx context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart := &domain.Cart{Items: make([]domain.CartItem, 0, len(s.carts[sessionID]))}
	for _, item := range s.carts[sessionID] {
		cart.Items = append(cart.Items, item)
		cart.Total += item.Price * float64(item.Quantity)
	}
	sort.Slice(cart.Items, func(i, j int) bool {
		return cart.Items[i].PartNumber < cart.Items[j].PartNumber
	})
	return cart, nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
