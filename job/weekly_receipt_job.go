package job

import (
	"context"
	"sync"
	"time"

	"receipt/domain"
	"receipt/usecase/weekly_batch_usecase"
	"receipt/utils/logger"
	"receipt/utils/metrics"
)

// WeeklyBatchRunner runs the weekly batch for one target week.
type WeeklyBatchRunner interface {
	Execute(ctx context.Context, trigger string, year, weekNumber int) (*weekly_batch_usecase.BatchSummary, error)
}

// WeeklyReceiptJob generates the just-completed week's reports for all
// eligible users. It is ticked often and only acts on the configured UTC
// weekday, once per target week.
type WeeklyReceiptJob struct {
	batch   WeeklyBatchRunner
	weekday time.Weekday
	now     func() time.Time

	mu       sync.Mutex
	lastYear int
	lastWeek int
}

func NewWeeklyReceiptJob(batch WeeklyBatchRunner, weekday time.Weekday) *WeeklyReceiptJob {
	return &WeeklyReceiptJob{batch: batch, weekday: weekday, now: time.Now}
}

// Run is the scheduler entry point.
func (j *WeeklyReceiptJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	if now.Weekday() != j.weekday {
		return nil
	}

	year, week := domain.CompletedWeek(now)

	j.mu.Lock()
	if j.lastYear == year && j.lastWeek == week {
		j.mu.Unlock()
		return nil
	}
	j.mu.Unlock()

	logger.Logger.InfoContext(ctx, "Starting scheduled weekly receipt batch", "year", year, "week", week)
	summary, err := j.batch.Execute(ctx, metrics.TriggerScheduled, year, week)
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.lastYear, j.lastWeek = year, week
	j.mu.Unlock()

	logger.Logger.InfoContext(ctx, "Scheduled weekly receipt batch completed",
		"year", year,
		"week", week,
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return nil
}
