// Package redis keeps short-lived request state in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dishly/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dishly:idempotency:"

// IdempotencyStore binds Idempotency-Key header values to the order the
// first request created. Bindings expire after ttl.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Reserve binds key to orderID with SET NX. When the key is taken it returns
// the order id already bound to it.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string, orderID kernel.UUID) (kernel.UUID, bool, error) {
	reserved, err := s.client.SetNX(ctx, keyPrefix+key, orderID.String(), s.ttl).Result()
	if err != nil {
		return kernel.UUID{}, false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if reserved {
		return orderID, true, nil
	}

	bound, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		// The binding expired between the two calls.
		return s.Reserve(ctx, key, orderID)
	}
	if err != nil {
		return kernel.UUID{}, false, fmt.Errorf("read idempotency key: %w", err)
	}

	boundID, err := kernel.UUIDFromString(bound)
	if err != nil {
		return kernel.UUID{}, false, fmt.Errorf("idempotency key %q holds %q: %w", key, bound, err)
	}
	return boundID, false, nil
}

// Release drops the binding so a failed request can be retried with the
// same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}
