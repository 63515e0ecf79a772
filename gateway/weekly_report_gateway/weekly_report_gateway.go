package weekly_report_gateway

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"receipt/domain"
	"receipt/driver/receipt_db"
	"receipt/utils/errors"
	"receipt/utils/logger"
)

// WeeklyReportGateway implements weekly_report_port.WeeklyReportPort and
// weekly_report_port.PreviousReportPort.
//
// Previous-week reports are read on every generation, so they are kept in a
// small expiring cache. Upserting a report evicts its key.
type WeeklyReportGateway struct {
	receiptDB *receipt_db.ReceiptDBRepository
	previous  *expirable.LRU[domain.ReportKey, *domain.WeeklyReport]
}

// NewWeeklyReportGateway creates the gateway. A cacheSize of 0 disables the
// previous-report cache.
func NewWeeklyReportGateway(repo *receipt_db.ReceiptDBRepository, cacheSize int, cacheTTL time.Duration) *WeeklyReportGateway {
	g := &WeeklyReportGateway{receiptDB: repo}
	if cacheSize > 0 {
		g.previous = expirable.NewLRU[domain.ReportKey, *domain.WeeklyReport](cacheSize, nil, cacheTTL)
	}
	return g
}

// CachesPreviousReports reports whether previous-week reads are cached.
func (g *WeeklyReportGateway) CachesPreviousReports() bool {
	return g.previous != nil
}

func (g *WeeklyReportGateway) unavailable(operation string) error {
	return errors.DatabaseError("database connection not available", nil, map[string]interface{}{
		"operation": operation,
	})
}

func (g *WeeklyReportGateway) wrap(err error, message, operation string, attrs map[string]interface{}) error {
	dbErr := errors.StoreError(message, err, attrs)
	errors.LogError(logger.Logger, dbErr, operation)
	return dbErr
}

func (g *WeeklyReportGateway) UpsertReport(ctx context.Context, report *domain.WeeklyReport) (*domain.WeeklyReport, error) {
	if g.receiptDB == nil {
		return nil, g.unavailable("UpsertReport")
	}

	saved, err := g.receiptDB.UpsertReport(ctx, report)
	if err != nil {
		return nil, g.wrap(err, "failed to upsert weekly report", "UpsertReport", map[string]interface{}{
			"report_key": report.Key().String(),
		})
	}

	if g.previous != nil {
		g.previous.Remove(saved.Key())
	}
	return saved, nil
}

func (g *WeeklyReportGateway) GetReport(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error) {
	if g.receiptDB == nil {
		return nil, g.unavailable("GetReport")
	}

	report, err := g.receiptDB.GetReport(ctx, userID, year, weekNumber)
	if err != nil {
		return nil, g.wrap(err, "failed to get weekly report", "GetReport", map[string]interface{}{
			"user_id": userID,
			"year":    year,
			"week":    weekNumber,
		})
	}
	return report, nil
}

// GetPreviousReport returns the report of the week before (year, weekNumber),
// or nil when there is none.
func (g *WeeklyReportGateway) GetPreviousReport(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error) {
	prevYear, prevWeek := domain.PreviousWeek(year, weekNumber)
	key := domain.ReportKey{UserID: userID, Year: prevYear, WeekNumber: prevWeek}

	if g.previous != nil {
		if cached, ok := g.previous.Get(key); ok {
			return cached, nil
		}
	}

	report, err := g.GetReport(ctx, userID, prevYear, prevWeek)
	if err != nil {
		return nil, err
	}
	if report != nil && g.previous != nil {
		g.previous.Add(key, report)
	}
	return report, nil
}

func (g *WeeklyReportGateway) ListReports(ctx context.Context, userID string, limit int) ([]*domain.WeeklyReport, error) {
	if g.receiptDB == nil {
		return nil, g.unavailable("ListReports")
	}

	reports, err := g.receiptDB.ListReports(ctx, userID, limit)
	if err != nil {
		return nil, g.wrap(err, "failed to list weekly reports", "ListReports", map[string]interface{}{
			"user_id": userID,
			"limit":   limit,
		})
	}
	return reports, nil
}

func (g *WeeklyReportGateway) MarkViewed(ctx context.Context, reportID string, viewedAt time.Time) error {
	if g.receiptDB == nil {
		return g.unavailable("MarkViewed")
	}

	if err := g.receiptDB.MarkViewed(ctx, reportID, viewedAt); err != nil {
		return g.wrap(err, "failed to mark weekly report viewed", "MarkViewed", map[string]interface{}{
			"report_id": reportID,
		})
	}
	return nil
}

func (g *WeeklyReportGateway) SetShared(ctx context.Context, userID, reportID, shareToken string, shared bool) (string, error) {
	if g.receiptDB == nil {
		return "", g.unavailable("SetShared")
	}

	token, err := g.receiptDB.SetShared(ctx, userID, reportID, shareToken, shared)
	if stdErrors.Is(err, domain.ErrReportNotFound) {
		return "", err
	}
	if err != nil {
		return "", g.wrap(err, "failed to update weekly report sharing", "SetShared", map[string]interface{}{
			"user_id":   userID,
			"report_id": reportID,
			"shared":    shared,
		})
	}
	return token, nil
}

func (g *WeeklyReportGateway) GetSharedReport(ctx context.Context, token string) (*domain.WeeklyReport, error) {
	if g.receiptDB == nil {
		return nil, g.unavailable("GetSharedReport")
	}

	report, err := g.receiptDB.GetSharedReport(ctx, token)
	if err != nil {
		return nil, g.wrap(err, "failed to get shared weekly report", "GetSharedReport", nil)
	}
	return report, nil
}
