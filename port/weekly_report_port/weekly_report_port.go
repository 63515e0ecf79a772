package weekly_report_port

//go:generate go run go.uber.org/mock/mockgen -source=weekly_report_port.go -destination=../../mocks/mock_weekly_report_port.go -package=mocks

import (
	"context"
	"time"

	"receipt/domain"
)

// WeeklyReportPort persists and queries weekly reports.
type WeeklyReportPort interface {
	// UpsertReport creates or replaces the report for its (user, year, week)
	// key in one atomic step. Viewed and sharing state of an existing report
	// are kept.
	UpsertReport(ctx context.Context, report *domain.WeeklyReport) (*domain.WeeklyReport, error)
	// GetReport returns nil, nil when no report exists for the key.
	GetReport(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error)
	ListReports(ctx context.Context, userID string, limit int) ([]*domain.WeeklyReport, error)
	MarkViewed(ctx context.Context, reportID string, viewedAt time.Time) error
	// SetShared flips the shared flag of a report owned by userID. An existing
	// share token is kept; shareToken is stored only when none exists yet. It
	// returns the token now attached to the report, or domain.ErrReportNotFound.
	SetShared(ctx context.Context, userID, reportID, shareToken string, shared bool) (string, error)
	// GetSharedReport returns nil, nil when no shared report carries token.
	GetSharedReport(ctx context.Context, token string) (*domain.WeeklyReport, error)
}

// PreviousReportPort is the read used by generation for week-over-week insights.
type PreviousReportPort interface {
	GetPreviousReport(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error)
}
