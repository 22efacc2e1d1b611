package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/redis/go-redis/v9"
)

const (
	keyIdemCheckout = "idem:checkout:%s"
	pendingMarker   = "pending"
)

type idempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *idempotencyStore {
	return &idempotencyStore{rdb: rdb, ttl: ttl}
}

// Reserve claims key for a new submission. It returns the order id when the
// key already produced an order, and ErrCheckoutInProgress while another
// submission with the same key is still running.
func (s *idempotencyStore) Reserve(ctx context.Context, key string) (string, error) {
	redisKey := fmt.Sprintf(keyIdemCheckout, key)

	ok, err := s.rdb.SetNX(ctx, redisKey, pendingMarker, s.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to reserve idempotency key: %w", err)
	}
	if ok {
		return "", nil
	}

	val, err := s.rdb.Get(ctx, redisKey).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET, try once more
		return s.Reserve(ctx, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read idempotency key: %w", err)
	}
	if val == pendingMarker {
		return "", entities.ErrCheckoutInProgress
	}
	return val, nil
}

func (s *idempotencyStore) Complete(ctx context.Context, key, orderID string) error {
	if err := s.rdb.Set(ctx, fmt.Sprintf(keyIdemCheckout, key), orderID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

func (s *idempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, fmt.Sprintf(keyIdemCheckout, key)).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
