package report_lock_gateway

import (
	"context"
	stdErrors "errors"
	"sync"
	"time"

	"receipt/domain"
	"receipt/port/report_lock_port"
	"receipt/utils/errors"
	"receipt/utils/logger"
)

// LeaseLocker is the lease API of the Redis lock driver.
type LeaseLocker interface {
	TryAcquire(ctx context.Context, name string) (string, bool, error)
	Release(ctx context.Context, name, token string) error
}

// RedisLockGateway shares report locks between replicas. Acquire polls the
// lease until it is free, waiting at most maxWait.
type RedisLockGateway struct {
	locker  LeaseLocker
	maxWait time.Duration
	poll    time.Duration
}

func NewRedisLockGateway(locker LeaseLocker, maxWait, poll time.Duration) *RedisLockGateway {
	return &RedisLockGateway{locker: locker, maxWait: maxWait, poll: poll}
}

func (g *RedisLockGateway) Acquire(ctx context.Context, key domain.ReportKey) (report_lock_port.ReleaseFunc, error) {
	name := key.String()
	waitCtx, cancel := context.WithTimeout(ctx, g.maxWait)
	defer cancel()

	ticker := time.NewTicker(g.poll)
	defer ticker.Stop()

	for {
		token, ok, err := g.locker.TryAcquire(waitCtx, name)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if waitCtx.Err() != nil {
				return nil, domain.ErrLockNotAcquired
			}
			lockErr := errors.LockError("failed to acquire report lock", err, map[string]interface{}{
				"report_key": name,
			})
			errors.LogError(logger.Logger, lockErr, "AcquireReportLock")
			return nil, lockErr
		}
		if ok {
			return g.releaser(name, token), nil
		}

		select {
		case <-ticker.C:
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, domain.ErrLockNotAcquired
		}
	}
}

// releaser frees the lease on a fresh context so that a canceled request
// still releases its lock.
func (g *RedisLockGateway) releaser(name, token string) report_lock_port.ReleaseFunc {
	var once sync.Once
	return func() {
		once.Do(func() { g.release(name, token) })
	}
}

func (g *RedisLockGateway) release(name, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.locker.Release(ctx, name, token); err != nil && !stdErrors.Is(err, context.Canceled) {
		logger.Logger.Warn("Failed to release report lock", "report_key", name, "error", err)
	}
}
