package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/domain"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreWithClient(client, 0, zap.NewNop())
}

func valve(qty int) domain.CartItem {
	return domain.CartItem{PartNumber: "PS11746337", Name: "Water Inlet Valve", Price: 64.95, Quantity: qty}
}

func TestRedisStore_AddAndItems(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, "s1", valve(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cart, err := store.Items(ctx, "s1")
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cart.Items))
	}
	if cart.Total != 64.95 {
		t.Errorf("expected total 64.95, got %v", cart.Total)
	}
}

func TestRedisStore_AddSamePartBumpsQuantity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, "s1", valve(1))
	store.Add(ctx, "s1", valve(2))

	cart, err := store.Items(ctx, "s1")
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", cart.Items[0].Quantity)
	}
}

func TestRedisStore_SessionIsolation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, "alpha", valve(1))

	cart, err := store.Items(ctx, "beta")
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("session beta should have an empty cart, got %d items", len(cart.Items))
	}
}

func TestRedisStore_RemoveAndClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, "s1", valve(1))
	store.Add(ctx, "s1", domain.CartItem{PartNumber: "PS11743427", Name: "Drain Pump", Price: 86.45, Quantity: 1})

	if err := store.Remove(ctx, "s1", "PS11746337"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	cart, _ := store.Items(ctx, "s1")
	if len(cart.Items) != 1 || cart.Items[0].PartNumber != "PS11743427" {
		t.Errorf("unexpected cart after remove: %+v", cart.Items)
	}

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	cart, _ = store.Items(ctx, "s1")
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart after clear, got %d items", len(cart.Items))
	}
}

func TestRedisStore_ExpiryIsSet(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, time.Hour, zap.NewNop())
	ctx := context.Background()

	store.Add(ctx, "s1", valve(1))

	ttl := mr.TTL("cart:s1")
	if ttl != time.Hour {
		t.Errorf("expected TTL %v, got %v", time.Hour, ttl)
	}

	mr.FastForward(time.Hour + 1)
	cart, err := store.Items(ctx, "s1")
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Errorf("expected cart to expire, got %d items", len(cart.Items))
	}
}
