package domain

import "errors"

var (
	// ErrNoEntriesInWindow is the normal "nothing to report yet" outcome of a
	// generation. It is not a failure and must not be retried.
	ErrNoEntriesInWindow = errors.New("no entries found for this week")

	ErrReportNotFound      = errors.New("report not found")
	ErrSharedReportMissing = errors.New("report not found or not shared")
	ErrInvalidWeek         = errors.New("invalid year or week number")

	// ErrLockNotAcquired is returned when another generation holds the
	// report key for longer than the caller is willing to wait.
	ErrLockNotAcquired = errors.New("report generation already in progress")
)
