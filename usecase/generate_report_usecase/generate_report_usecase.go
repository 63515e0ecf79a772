package generate_report_usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"receipt/domain"
	"receipt/port/entry_store_port"
	"receipt/port/report_lock_port"
	"receipt/port/weekly_report_port"
	"receipt/usecase/aggregation"
	"receipt/utils/errors"
	"receipt/utils/logger"
	"receipt/utils/metrics"
	"receipt/utils/otel"
)

// GenerateReportUsecase builds the weekly report of one user for one week and
// stores it. Generations of the same (user, year, week) are serialized by the
// lock port, so the last writer always saw the entries it wrote.
type GenerateReportUsecase struct {
	entryStore     entry_store_port.EntryStorePort
	reportPort     weekly_report_port.WeeklyReportPort
	previousReport weekly_report_port.PreviousReportPort
	reportLock     report_lock_port.ReportLockPort
}

func NewGenerateReportUsecase(
	entryStore entry_store_port.EntryStorePort,
	reportPort weekly_report_port.WeeklyReportPort,
	previousReport weekly_report_port.PreviousReportPort,
	reportLock report_lock_port.ReportLockPort,
) *GenerateReportUsecase {
	return &GenerateReportUsecase{
		entryStore:     entryStore,
		reportPort:     reportPort,
		previousReport: previousReport,
		reportLock:     reportLock,
	}
}

// Execute generates the report for an on-demand request.
func (u *GenerateReportUsecase) Execute(ctx context.Context, userID string, year, weekNumber int) (*domain.WeeklyReport, error) {
	return u.ExecuteWithTrigger(ctx, metrics.TriggerOnDemand, userID, year, weekNumber)
}

// ExecuteWithTrigger generates the report and labels metrics with trigger.
// It returns domain.ErrNoEntriesInWindow, and writes nothing, when the user
// has no entries in the week.
func (u *GenerateReportUsecase) ExecuteWithTrigger(ctx context.Context, trigger, userID string, year, weekNumber int) (*domain.WeeklyReport, error) {
	if userID == "" {
		return nil, errors.ValidationError("user id is required", nil)
	}

	key := domain.ReportKey{UserID: userID, Year: year, WeekNumber: weekNumber}
	ctx, span := otel.Tracer().Start(ctx, "GenerateReportUsecase.Execute",
		trace.WithAttributes(
			attribute.String("receipt.report_key", key.String()),
			attribute.String("receipt.trigger", trigger),
		),
	)
	defer span.End()

	started := time.Now()
	report, err := u.generate(ctx, key)
	elapsed := time.Since(started)

	log := logger.NewContextLogger(logger.Logger).WithContext(ctx).With(
		"report_key", key.String(),
		"trigger", trigger,
		"duration_ms", elapsed.Milliseconds(),
	)

	switch {
	case err == nil:
		metrics.RecordGeneration(trigger, metrics.OutcomeGenerated, elapsed.Seconds())
		log.Info("Weekly report generated", "total_entries", report.Stats.TotalEntries)
	case errors.IsNoData(err):
		metrics.RecordGeneration(trigger, metrics.OutcomeNoData, elapsed.Seconds())
		span.SetAttributes(attribute.Bool("receipt.no_data", true))
		log.Info("No entries for weekly report")
	default:
		metrics.RecordGeneration(trigger, metrics.OutcomeFailed, elapsed.Seconds())
		metrics.RecordError("GenerateReport", errorType(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("Weekly report generation failed", "error", err, "retryable", errors.IsRetryableError(err))
	}
	return report, err
}

func (u *GenerateReportUsecase) generate(ctx context.Context, key domain.ReportKey) (*domain.WeeklyReport, error) {
	release, err := u.reportLock.Acquire(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("acquire report lock: %w", err)
	}
	defer release()

	start, end := domain.WeekWindow(key.Year, key.WeekNumber)
	entries, err := u.entryStore.FindEntries(ctx, key.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoEntriesInWindow
	}
	metrics.RecordEntries(len(entries))

	facets, err := aggregation.Extract(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("extract facets: %w", err)
	}

	previous, err := u.previousReport.GetPreviousReport(ctx, key.UserID, key.Year, key.WeekNumber)
	if err != nil {
		logger.Logger.WarnContext(ctx, "Previous weekly report unavailable, skipping comparison",
			"report_key", key.String(),
			"error", err,
		)
		previous = nil
	}

	report := &domain.WeeklyReport{
		UserID:      key.UserID,
		Year:        key.Year,
		WeekNumber:  key.WeekNumber,
		StartDate:   start,
		EndDate:     end,
		Stats:       facets.Stats,
		MoodSummary: facets.MoodSummary,
		TopEmojis:   facets.TopEmojis,
		Highlights:  facets.Highlights,
		TopSongs:    facets.TopSongs,
		TopWords:    facets.TopWords,
		TopTags:     facets.TopTags,
		Locations:   facets.Locations,
		Insights:    aggregation.GenerateInsights(facets.Stats, previous),
	}

	saved, err := u.reportPort.UpsertReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("upsert report: %w", err)
	}
	return saved, nil
}

func errorType(err error) string {
	switch {
	case errors.IsDatabaseError(err):
		return string(errors.ErrCodeDatabase)
	case errors.IsLockError(err):
		return string(errors.ErrCodeLock)
	case errors.IsAggregationError(err):
		return string(errors.ErrCodeAggregation)
	case errors.IsTimeoutError(err):
		return string(errors.ErrCodeTimeout)
	case errors.IsValidationError(err):
		return string(errors.ErrCodeValidation)
	}
	return string(errors.ErrCodeUnknown)
}
