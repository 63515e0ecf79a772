// Package redis_lock provides a lease lock on Redis keys so that replicas
// never generate the same weekly report at the same time.
package redis_lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "receipt:lock:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLockDriver struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLockDriverWithURL creates a driver from a redis:// URL. ttl bounds
// how long a crashed holder can block a key.
func NewRedisLockDriverWithURL(url string, ttl time.Duration) (*RedisLockDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisLockDriver{client: redis.NewClient(opts), ttl: ttl}, nil
}

// TryAcquire sets the lock key when it is free. It returns the owner token
// and whether the lock was taken.
func (d *RedisLockDriver) TryAcquire(ctx context.Context, name string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := d.client.SetNX(ctx, keyPrefix+name, token, d.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire lock %s: %w", name, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release removes the lock if token still owns it. A lock that expired and
// was taken by someone else is left alone.
func (d *RedisLockDriver) Release(ctx context.Context, name, token string) error {
	err := releaseScript.Run(ctx, d.client, []string{keyPrefix + name}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release lock %s: %w", name, err)
	}
	return nil
}

func (d *RedisLockDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

func (d *RedisLockDriver) Close() error {
	return d.client.Close()
}
