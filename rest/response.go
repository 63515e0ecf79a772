package rest

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"receipt/domain"
	"receipt/utils/errors"
	"receipt/utils/logger"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{Success: false, Error: message})
}

// handleError maps usecase errors onto HTTP responses. fallback is the
// message shown for unexpected failures.
func handleError(c echo.Context, err error, operation, fallback string) error {
	switch {
	case errors.IsNoData(err):
		return respondError(c, http.StatusNotFound, "No entries found for this week")
	case stdErrors.Is(err, domain.ErrReportNotFound):
		return respondError(c, http.StatusNotFound, "Receipt not found")
	case stdErrors.Is(err, domain.ErrSharedReportMissing):
		return respondError(c, http.StatusNotFound, "Receipt not found or not shared")
	case errors.IsValidationError(err):
		return respondError(c, http.StatusBadRequest, validationMessage(err))
	case stdErrors.Is(err, domain.ErrLockNotAcquired):
		return respondError(c, http.StatusConflict, "Receipt generation already in progress")
	case errors.IsTimeoutError(err):
		logError(c, err, operation)
		return respondError(c, http.StatusGatewayTimeout, fallback)
	default:
		logError(c, err, operation)
		return respondError(c, http.StatusInternalServerError, fallback)
	}
}

func validationMessage(err error) string {
	var appErr *errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func logError(c echo.Context, err error, operation string) {
	ctx := c.Request().Context()
	logger.NewContextLogger(logger.Logger).WithContext(ctx).ErrorContext(ctx, "Request failed",
		"operation", operation,
		"path", c.Request().URL.Path,
		"error", err,
	)
}

// httpErrorHandler renders echo errors (unknown routes, auth failures) in
// the response envelope.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = respondError(c, status, message)
}
