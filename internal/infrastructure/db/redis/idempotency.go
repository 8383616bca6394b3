package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps Idempotency-Key headers to booking references.
// Key format: booking:idem:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// PutIfAbsent claims the key for the given reference. When the key was
// already claimed, the previously stored reference is returned and stored is
// false. Entries expire after idempotencyTTL.
func (s *IdempotencyStore) PutIfAbsent(ctx context.Context, key, reference string) (string, bool, error) {
	stored, err := s.client.SetNX(ctx, s.key(key), reference, idempotencyTTL).Result()
	if err != nil {
		return "", false, fmt.Errorf("idempotency claim: %w", err)
	}
	if stored {
		return reference, true, nil
	}

	existing, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		return "", false, fmt.Errorf("idempotency read: %w", err)
	}
	return existing, false, nil
}

func (s *IdempotencyStore) key(k string) string {
	return "booking:idem:" + k
}
