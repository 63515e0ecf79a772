package report_lock_gateway

import (
	"context"
	"sync"

	"receipt/domain"
	"receipt/port/report_lock_port"
)

// InMemoryLockGateway serializes generations per report key inside one
// process. Idle keys are dropped so the map does not grow without bound.
type InMemoryLockGateway struct {
	mu    sync.Mutex
	locks map[domain.ReportKey]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

func NewInMemoryLockGateway() *InMemoryLockGateway {
	return &InMemoryLockGateway{locks: make(map[domain.ReportKey]*keyLock)}
}

func (g *InMemoryLockGateway) Acquire(ctx context.Context, key domain.ReportKey) (report_lock_port.ReleaseFunc, error) {
	g.mu.Lock()
	l, ok := g.locks[key]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		g.locks[key] = l
	}
	l.refs++
	g.mu.Unlock()

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		g.unref(key, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			g.unref(key, l)
		})
	}, nil
}

func (g *InMemoryLockGateway) unref(key domain.ReportKey, l *keyLock) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(g.locks, key)
	}
}

// size reports the number of tracked keys.
func (g *InMemoryLockGateway) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.locks)
}
