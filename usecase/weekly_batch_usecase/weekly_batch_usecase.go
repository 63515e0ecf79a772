package weekly_batch_usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"receipt/domain"
	"receipt/port/eligible_user_port"
	"receipt/utils/errors"
	"receipt/utils/logger"
	"receipt/utils/metrics"
)

// ReportGenerator is the generation entry point used for each user.
type ReportGenerator interface {
	ExecuteWithTrigger(ctx context.Context, trigger, userID string, year, weekNumber int) (*domain.WeeklyReport, error)
}

// BatchSummary counts the per-user outcomes of one batch run.
type BatchSummary struct {
	Year       int `json:"year"`
	WeekNumber int `json:"weekNumber"`
	Users      int `json:"users"`
	Generated  int `json:"generated"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

type BatchOptions struct {
	Concurrency int
	// RateLimit bounds generations started per second. Zero disables it.
	RateLimit   float64
	RateBurst   int
	UserTimeout time.Duration
}

// WeeklyBatchUsecase generates one week's report for many users. A failure
// for one user is logged and counted and never stops the others.
type WeeklyBatchUsecase struct {
	eligibleUsers eligible_user_port.EligibleUserPort
	generator     ReportGenerator
	opts          BatchOptions
	limiter       *rate.Limiter
}

func NewWeeklyBatchUsecase(eligibleUsers eligible_user_port.EligibleUserPort, generator ReportGenerator, opts BatchOptions) *WeeklyBatchUsecase {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 1
	}
	return &WeeklyBatchUsecase{
		eligibleUsers: eligibleUsers,
		generator:     generator,
		opts:          opts,
		limiter:       rate.NewLimiter(limit, opts.RateBurst),
	}
}

// Execute runs the batch for every eligible user.
func (u *WeeklyBatchUsecase) Execute(ctx context.Context, trigger string, year, weekNumber int) (*BatchSummary, error) {
	users, err := u.eligibleUsers.ListEligibleUsers(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	return u.ExecuteForUsers(ctx, trigger, year, weekNumber, ids)
}

// ExecuteForUsers runs the batch for the given users only.
func (u *WeeklyBatchUsecase) ExecuteForUsers(ctx context.Context, trigger string, year, weekNumber int, userIDs []string) (*BatchSummary, error) {
	summary := &BatchSummary{Year: year, WeekNumber: weekNumber, Users: len(userIDs)}
	started := time.Now()

	logger.Logger.InfoContext(ctx, "Weekly batch started",
		"year", year,
		"week", weekNumber,
		"users", len(userIDs),
		"trigger", trigger,
	)

	var mu sync.Mutex
	count := func(field *int) {
		mu.Lock()
		*field++
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(u.opts.Concurrency)

	for _, userID := range userIDs {
		g.Go(func() error {
			if err := u.limiter.Wait(ctx); err != nil {
				count(&summary.Failed)
				return nil
			}

			userCtx := ctx
			if u.opts.UserTimeout > 0 {
				var cancel context.CancelFunc
				userCtx, cancel = context.WithTimeout(ctx, u.opts.UserTimeout)
				defer cancel()
			}

			_, err := u.generator.ExecuteWithTrigger(userCtx, trigger, userID, year, weekNumber)
			switch {
			case err == nil:
				count(&summary.Generated)
			case errors.IsNoData(err):
				count(&summary.Skipped)
			default:
				count(&summary.Failed)
				logger.Logger.WarnContext(ctx, "Weekly report failed for user",
					"user_id", userID,
					"year", year,
					"week", weekNumber,
					"error", err,
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	metrics.RecordBatch(summary.Generated, summary.Skipped, summary.Failed, float64(time.Now().Unix()))
	logger.Logger.InfoContext(ctx, "Weekly batch finished",
		"year", year,
		"week", weekNumber,
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}
