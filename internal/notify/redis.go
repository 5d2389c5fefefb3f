package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher pushes confirmations onto a Redis list consumed by the
// messaging worker.
type RedisPublisher struct {
	client *redis.Client
	key    string
}

func NewRedisPublisher(addr, password string, db int, key string) *RedisPublisher {
	return &RedisPublisher{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		key: key,
	}
}

// Ping checks connectivity at startup.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.client.Ping(ctx).Err()
}

func (p *RedisPublisher) Publish(ctx context.Context, c Confirmation) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation: %w", err)
	}
	return p.client.LPush(ctx, p.key, payload).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
