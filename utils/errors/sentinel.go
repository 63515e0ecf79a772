package errors

import (
	"context"
	"errors"

	"receipt/domain"
)

// Base errors usable with errors.Is across layers.
var (
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrLockUnavailable     = errors.New("report lock unavailable")
	ErrAggregationFailed   = errors.New("aggregation failed")
	ErrOperationTimeout    = errors.New("operation timeout")
	ErrInvalidInput        = errors.New("invalid input")
)

// IsDatabaseError checks if an error represents a database-related problem
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}

// IsLockError checks if an error comes from the report lock backend
func IsLockError(err error) bool {
	return errors.Is(err, ErrLockUnavailable)
}

// IsAggregationError checks if an error represents a failed extraction
func IsAggregationError(err error) bool {
	return errors.Is(err, ErrAggregationFailed)
}

// IsTimeoutError checks if an error represents a timeout condition
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout) || errors.Is(err, context.DeadlineExceeded)
}

// IsValidationError checks if an error represents invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, domain.ErrInvalidWeek)
}

// IsNoData reports the "no entries in the window" outcome, which is not a failure.
func IsNoData(err error) bool {
	return errors.Is(err, domain.ErrNoEntriesInWindow)
}

// IsRetryableError determines if an error represents a condition that can be retried
// by a later trigger. The no-data outcome and bad input never are.
func IsRetryableError(err error) bool {
	if err == nil || IsNoData(err) || IsValidationError(err) {
		return false
	}
	return IsDatabaseError(err) ||
		IsLockError(err) ||
		IsTimeoutError(err) ||
		errors.Is(err, domain.ErrLockNotAcquired)
}
