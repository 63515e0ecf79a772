package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"receipt/domain"
	middleware_custom "receipt/middleware"
	"receipt/usecase/share_report_usecase"
	"receipt/utils/errors"
)

const (
	minYear = 1970
	maxYear = 9999
	minWeek = 1
	maxWeek = 53
)

type ReportFetcher interface {
	List(ctx context.Context, userID string, limit int) ([]*domain.WeeklyReport, error)
	Get(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error)
	Current(ctx context.Context, userID string) (*domain.WeeklyReport, error)
}

type ReportGenerator interface {
	Execute(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error)
}

type ReportSharer interface {
	Share(ctx context.Context, userID, reportID string) (*share_report_usecase.ShareLink, error)
	Unshare(ctx context.Context, userID, reportID string) error
	GetShared(ctx context.Context, token string) (*domain.SharedReportView, error)
}

type ReceiptHandler struct {
	fetcher   ReportFetcher
	generator ReportGenerator
	sharer    ReportSharer
}

func NewReceiptHandler(fetcher ReportFetcher, generator ReportGenerator, sharer ReportSharer) *ReceiptHandler {
	return &ReceiptHandler{fetcher: fetcher, generator: generator, sharer: sharer}
}

// ListReceipts handles GET /v1/receipts.
func (h *ReceiptHandler) ListReceipts(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return respondError(c, http.StatusBadRequest, "limit must be a positive integer")
		}
	}

	reports, err := h.fetcher.List(c.Request().Context(), userID, limit)
	if err != nil {
		return handleError(c, err, "ListReceipts", "Failed to fetch receipts")
	}
	return respondOK(c, reports)
}

// GetCurrentReceipt handles GET /v1/receipts/current.
func (h *ReceiptHandler) GetCurrentReceipt(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	report, err := h.fetcher.Current(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, err, "GetCurrentReceipt", "Failed to fetch current receipt")
	}
	return respondOK(c, report)
}

// GetReceipt handles GET /v1/receipts/:year/:week.
func (h *ReceiptHandler) GetReceipt(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	year, week, err := parseYearWeek(c)
	if err != nil {
		return handleError(c, err, "GetReceipt", "")
	}

	report, err := h.fetcher.Get(c.Request().Context(), userID, year, week)
	if err != nil {
		return handleError(c, err, "GetReceipt", "Failed to fetch receipt")
	}
	return respondOK(c, report)
}

// GenerateReceipt handles POST /v1/receipts/generate/:year/:week.
func (h *ReceiptHandler) GenerateReceipt(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}
	year, week, err := parseYearWeek(c)
	if err != nil {
		return handleError(c, err, "GenerateReceipt", "")
	}

	report, err := h.generator.Execute(c.Request().Context(), userID, year, week)
	if err != nil {
		return handleError(c, err, "GenerateReceipt", "Failed to generate receipt")
	}
	return respondOK(c, report)
}

// ShareReceipt handles POST /v1/receipts/:id/share.
func (h *ReceiptHandler) ShareReceipt(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	link, err := h.sharer.Share(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return handleError(c, err, "ShareReceipt", "Failed to share receipt")
	}
	return respondOK(c, link)
}

// UnshareReceipt handles DELETE /v1/receipts/:id/share.
func (h *ReceiptHandler) UnshareReceipt(c echo.Context) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	if err := h.sharer.Unshare(c.Request().Context(), userID, c.Param("id")); err != nil {
		return handleError(c, err, "UnshareReceipt", "Failed to unshare receipt")
	}
	return c.JSON(http.StatusOK, Response{Success: true})
}

// GetSharedReceipt handles GET /v1/receipts/shared/:token. It needs no user.
func (h *ReceiptHandler) GetSharedReceipt(c echo.Context) error {
	view, err := h.sharer.GetShared(c.Request().Context(), c.Param("token"))
	if err != nil {
		return handleError(c, err, "GetSharedReceipt", "Failed to fetch shared receipt")
	}
	return respondOK(c, view)
}

func requireUser(c echo.Context) (string, error) {
	userID, ok := middleware_custom.UserID(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}

func parseYearWeek(c echo.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < minYear || year > maxYear {
		return 0, 0, errors.ValidationError("Invalid year", map[string]interface{}{"year": c.Param("year")})
	}
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < minWeek || week > maxWeek {
		return 0, 0, errors.ValidationError("Invalid week number", map[string]interface{}{"week": c.Param("week")})
	}
	return year, week, nil
}
