package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"
	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/pkg/e"

	"github.com/redis/go-redis/v9"
)

// CallbackQueue buffers order-status callbacks so a slow or unreachable
// orders service never blocks the claim path.
type CallbackQueue struct {
	client *redis.Client
	key    string
}

func NewCallbackQueue(client *redis.Client, key string) *CallbackQueue {
	return &CallbackQueue{client: client, key: key}
}

func (q *CallbackQueue) Enqueue(ctx context.Context, payload domain.OrderCallback) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *CallbackQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.OrderCallback, error) {
	var p domain.OrderCallback

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
