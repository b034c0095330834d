package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/domain"
)

// defaultCartTTL keeps abandoned carts from accumulating. Every write
// refreshes the clock.
const defaultCartTTL = 24 * time.Hour

// RedisStore keeps each session's cart in a Redis hash keyed by
// part number, so add and remove touch one field instead of the whole
// cart.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisStore(url string, ttl time.Duration, log *zap.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Ping to verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Successfully connected to Redis")
	return &RedisStore{
		client: client,
		ttl:    normalizeTTL(ttl),
		log:    log,
	}, nil
}

// NewRedisStoreWithClient wraps an existing client, used in tests.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: normalizeTTL(ttl), log: log}
}

func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return defaultCartTTL
	}
	return ttl
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStore) Add(ctx context.Context, sessionID string, item domain.CartItem) error {
	key := cartKey(sessionID)

	// Adding a part already in the cart bumps its quantity.
	if raw, err := s.client.HGet(ctx, key, item.PartNumber).Result(); err == nil {
		var existing domain.CartItem
		if err := json.Unmarshal([]byte(raw), &existing); err == nil {
			item.Quantity += existing.Quantity
		}
	} else if err != redis.Nil {
		return fmt.Errorf("cart read: %w", err)
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, item.PartNumber, data)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cart write: %w", err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, sessionID, partNumber string) error {
	key := cartKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.HDel(ctx, key, partNumber)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cart remove: %w", err)
	}
	return nil
}

func (s *RedisStore) Items(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := s.client.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cart read: %w", err)
	}

	cart := &domain.Cart{Items: make([]domain.CartItem, 0, len(raw))}
	for _, data := range raw {
		var item domain.CartItem
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			s.log.Warn("skipping undecodable cart entry",
				zap.String("session_id", sessionID), zap.Error(err))
			continue
		}
		cart.Items = append(cart.Items, item)
		cart.Total += item.Price * float64(item.Quantity)
	}
	sort.Slice(cart.Items, func(i, j int) bool {
		return cart.Items[i].PartNumber < cart.Items[j].PartNumber
	})
	return cart, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping() error {
	return s.client.Ping(context.Background()).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
