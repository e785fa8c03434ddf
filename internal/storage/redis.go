package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the encoded task list under one Redis key with no expiry
type RedisSlot struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewRedisSlot wraps client; each call is bounded by timeout
func NewRedisSlot(client *redis.Client, key string, timeout time.Duration) *RedisSlot {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &RedisSlot{client: client, key: key, timeout: timeout}
}

// DialRedis connects to addr and checks the server answers
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (r *RedisSlot) Read() ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return data, nil
}

func (r *RedisSlot) Write(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisSlot) Name() string {
	return "redis:" + r.key
}
