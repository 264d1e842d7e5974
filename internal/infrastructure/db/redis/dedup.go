package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// SaleDedup provides sale idempotency checks backed by Redis.
// Key format: sale:<idempotency_key>
type SaleDedup struct {
	client *redis.Client
}

// NewSaleDedup creates a SaleDedup wrapping the given Redis client.
func NewSaleDedup(client *redis.Client) *SaleDedup {
	return &SaleDedup{client: client}
}

// IsDuplicate reports whether a sale with this idempotency key has
// already been processed.
func (d *SaleDedup) IsDuplicate(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this sale has been processed (expires after dedupTTL).
func (d *SaleDedup) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, d.key(key), "1", dedupTTL).Err()
}

func (d *SaleDedup) key(key string) string {
	return "sale:" + key
}
