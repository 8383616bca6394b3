package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist stores revoked tokens until their natural expiry.
// Key format: auth:revoked:<token>
type Denylist struct {
	client *redis.Client
}

// NewDenylist creates a Denylist wrapping the given client.
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

// Revoke records the token as logged out for its remaining lifetime.
func (d *Denylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token was logged out.
func (d *Denylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (d *Denylist) key(token string) string {
	return "auth:revoked:" + token
}
