package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PoolCache keeps a short-lived copy of the unfiltered claimable pool so
// plain discovery polls skip postgres. Claims never trust it: the claim CAS
// re-checks the row, so a stale entry costs at worst one AlreadyClaimed.
type PoolCache struct {
	client *goredis.Client
	key    string
}

func NewPoolCache(r *Redis) *PoolCache {
	return &PoolCache{
		client: r.Client,
		key:    "missions:available",
	}
}

func (c *PoolCache) GetAvailable(ctx context.Context) ([]*domain.Mission, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var missions []*domain.Mission
	if err := json.Unmarshal(data, &missions); err != nil {
		return nil, err
	}
	return missions, nil
}

func (c *PoolCache) SetAvailable(ctx context.Context, missions []*domain.Mission, ttl time.Duration) error {
	b, err := json.Marshal(missions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

// Invalidate drops the cached pool after any claim/release/create.
func (c *PoolCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
