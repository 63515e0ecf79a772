// Package errors provides structured error handling for the receipt service.
// Errors carry a code, a message, an optional cause and contextual attributes
// so that gateways and usecases log failures uniformly.
package errors

import (
	stdContext "context"
	stdErrors "errors"
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeLock        ErrorCode = "LOCK_ERROR"
	ErrCodeAggregation ErrorCode = "AGGREGATION_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message, cause, and context.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match an AppError against the sentinel of its category.
func (e *AppError) Is(target error) bool {
	switch e.Code {
	case ErrCodeDatabase:
		return target == ErrDatabaseUnavailable
	case ErrCodeValidation:
		return target == ErrInvalidInput
	case ErrCodeLock:
		return target == ErrLockUnavailable
	case ErrCodeAggregation:
		return target == ErrAggregationFailed
	case ErrCodeTimeout:
		return target == ErrOperationTimeout
	}
	return false
}

// DatabaseError creates an AppError for database-related errors.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// LockError creates an AppError for failures of the report lock backend.
func LockError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeLock,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// AggregationError creates an AppError for a failed metric extraction.
func AggregationError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeAggregation,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TimeoutError creates an AppError for timeout-related errors.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeTimeout,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// StoreError classifies a failed store call. A cause that hit its context
// deadline becomes a timeout, anything else a database error.
func StoreError(message string, cause error, context map[string]interface{}) *AppError {
	if stdErrors.Is(cause, stdContext.DeadlineExceeded) {
		return TimeoutError(message, cause, context)
	}
	return DatabaseError(message, cause, context)
}

// LogError logs an AppError with structured logging and context
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil || err == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		for key, value := range appErr.Context {
			args = append(args, key, value)
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error occurred", args...)
		return
	}

	logger.Error("unknown error occurred",
		"operation", operation,
		"error", err.Error(),
	)
}
