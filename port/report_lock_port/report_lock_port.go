package report_lock_port

//go:generate go run go.uber.org/mock/mockgen -source=report_lock_port.go -destination=../../mocks/mock_report_lock_port.go -package=mocks

import (
	"context"

	"receipt/domain"
)

// ReleaseFunc releases a held report lock. It is safe to call more than once.
type ReleaseFunc func()

// ReportLockPort serializes generations of the same report key.
type ReportLockPort interface {
	// Acquire blocks until the key is held or ctx is done.
	Acquire(ctx context.Context, key domain.ReportKey) (ReleaseFunc, error)
}
