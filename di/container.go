package di

import (
	"context"
	"fmt"

	"receipt/config"
	"receipt/driver/receipt_db"
	"receipt/driver/redis_lock"
	"receipt/gateway/eligible_user_gateway"
	"receipt/gateway/entry_store_gateway"
	"receipt/gateway/report_lock_gateway"
	"receipt/gateway/weekly_report_gateway"
	"receipt/job"
	"receipt/port/report_lock_port"
	"receipt/usecase/fetch_report_usecase"
	"receipt/usecase/generate_report_usecase"
	"receipt/usecase/share_report_usecase"
	"receipt/usecase/weekly_batch_usecase"
)

type ApplicationComponents struct {
	GenerateReportUsecase *generate_report_usecase.GenerateReportUsecase
	FetchReportUsecase    *fetch_report_usecase.FetchReportUsecase
	ShareReportUsecase    *share_report_usecase.ShareReportUsecase
	WeeklyBatchUsecase    *weekly_batch_usecase.WeeklyBatchUsecase
	WeeklyReceiptJob      *job.WeeklyReceiptJob
	WeeklyReportGateway   *weekly_report_gateway.WeeklyReportGateway
	ReceiptDBRepository   *receipt_db.ReceiptDBRepository
}

// NewApplicationComponents wires the service. lockDriver may be nil, in
// which case report locks are held in process only.
func NewApplicationComponents(pool receipt_db.PgxIface, lockDriver *redis_lock.RedisLockDriver, cfg *config.Config) *ApplicationComponents {
	receiptDBRepository := receipt_db.NewReceiptDBRepository(pool)

	entryStoreGatewayImpl := entry_store_gateway.NewEntryStoreGateway(receiptDBRepository)
	eligibleUserGatewayImpl := eligible_user_gateway.NewEligibleUserGateway(receiptDBRepository)
	// Replicas sharing a Redis lock also share reports, and a local cache
	// would not see another replica's regeneration of the previous week.
	previousCacheSize := cfg.Report.PreviousCacheSize
	if lockDriver != nil {
		previousCacheSize = 0
	}
	weeklyReportGatewayImpl := weekly_report_gateway.NewWeeklyReportGateway(
		receiptDBRepository,
		previousCacheSize,
		cfg.Report.PreviousCacheTTL,
	)

	var reportLockGatewayImpl report_lock_port.ReportLockPort = report_lock_gateway.NewInMemoryLockGateway()
	if lockDriver != nil {
		reportLockGatewayImpl = report_lock_gateway.NewRedisLockGateway(lockDriver, cfg.Redis.LockWait, cfg.Redis.LockPoll)
	}

	generateReportUsecase := generate_report_usecase.NewGenerateReportUsecase(
		entryStoreGatewayImpl,
		weeklyReportGatewayImpl,
		weeklyReportGatewayImpl,
		reportLockGatewayImpl,
	)
	fetchReportUsecase := fetch_report_usecase.NewFetchReportUsecase(
		weeklyReportGatewayImpl,
		generateReportUsecase,
		cfg.Report.DefaultListLimit,
		cfg.Report.MaxListLimit,
	)
	shareReportUsecase := share_report_usecase.NewShareReportUsecase(weeklyReportGatewayImpl, cfg.Report.ShareBaseURL)

	weeklyBatchUsecase := weekly_batch_usecase.NewWeeklyBatchUsecase(
		eligibleUserGatewayImpl,
		generateReportUsecase,
		weekly_batch_usecase.BatchOptions{
			Concurrency: cfg.Weekly.BatchConcurrency,
			RateLimit:   cfg.Weekly.StoreRateLimit,
			RateBurst:   cfg.Weekly.StoreRateBurst,
			UserTimeout: cfg.Weekly.GenerationTimeout,
		},
	)
	weeklyReceiptJob := job.NewWeeklyReceiptJob(weeklyBatchUsecase, cfg.Weekly.Weekday())

	return &ApplicationComponents{
		GenerateReportUsecase: generateReportUsecase,
		FetchReportUsecase:    fetchReportUsecase,
		ShareReportUsecase:    shareReportUsecase,
		WeeklyBatchUsecase:    weeklyBatchUsecase,
		WeeklyReceiptJob:      weeklyReceiptJob,
		WeeklyReportGateway:   weeklyReportGatewayImpl,
		ReceiptDBRepository:   receiptDBRepository,
	}
}

// NewLockDriver connects to Redis when REDIS_URL is set. It returns nil
// without a URL so that locks stay in process.
func NewLockDriver(ctx context.Context, cfg config.RedisConfig) (*redis_lock.RedisLockDriver, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	driver, err := redis_lock.NewRedisLockDriverWithURL(cfg.URL, cfg.LockTTL)
	if err != nil {
		return nil, err
	}
	if err := driver.Ping(ctx); err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return driver, nil
}
