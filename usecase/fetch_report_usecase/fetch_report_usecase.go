package fetch_report_usecase

import (
	"context"
	"time"

	"receipt/domain"
	"receipt/port/weekly_report_port"
	"receipt/utils/errors"
	"receipt/utils/logger"
)

// ReportGenerator generates and stores a missing report.
type ReportGenerator interface {
	Execute(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error)
}

type FetchReportUsecase struct {
	reportPort   weekly_report_port.WeeklyReportPort
	generator    ReportGenerator
	defaultLimit int
	maxLimit     int
	now          func() time.Time
}

func NewFetchReportUsecase(reportPort weekly_report_port.WeeklyReportPort, generator ReportGenerator, defaultLimit, maxLimit int) *FetchReportUsecase {
	return &FetchReportUsecase{
		reportPort:   reportPort,
		generator:    generator,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		now:          time.Now,
	}
}

// List returns the user's reports, newest week first. A non-positive limit
// selects the default; larger limits are capped.
func (u *FetchReportUsecase) List(ctx context.Context, userID string, limit int) ([]*domain.WeeklyReport, error) {
	if userID == "" {
		return nil, errors.ValidationError("user id is required", nil)
	}
	if limit <= 0 {
		limit = u.defaultLimit
	}
	if limit > u.maxLimit {
		limit = u.maxLimit
	}

	reports, err := u.reportPort.ListReports(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []*domain.WeeklyReport{}
	}
	return reports, nil
}

// Get returns the report of (year, weekNumber), generating it first when it
// does not exist yet. The first read stamps ViewedAt.
func (u *FetchReportUsecase) Get(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error) {
	if userID == "" {
		return nil, errors.ValidationError("user id is required", nil)
	}

	report, err := u.reportPort.GetReport(ctx, userID, year, weekNumber)
	if err != nil {
		return nil, err
	}
	if report == nil {
		report, err = u.generator.Execute(ctx, userID, year, weekNumber)
		if err != nil {
			return nil, err
		}
	}

	if report.ViewedAt == nil {
		viewedAt := u.now().UTC()
		if err := u.reportPort.MarkViewed(ctx, report.ID, viewedAt); err != nil {
			logger.Logger.WarnContext(ctx, "Failed to mark weekly report viewed",
				"report_id", report.ID,
				"error", err,
			)
		} else {
			report.ViewedAt = &viewedAt
		}
	}
	return report, nil
}

// Current returns the report of the week containing now.
func (u *FetchReportUsecase) Current(ctx context.Context, userID string) (*domain.WeeklyReport, error) {
	year, week := domain.CurrentWeek(u.now())
	return u.Get(ctx, userID, year, week)
}
