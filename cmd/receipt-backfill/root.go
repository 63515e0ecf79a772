package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"receipt/config"
	"receipt/di"
	"receipt/driver/receipt_db"
	"receipt/utils/logger"
)

var rootCmd = &cobra.Command{
	Use:   "receipt-backfill",
	Short: "Maintenance commands for weekly receipts",
	Long: `receipt-backfill regenerates weekly receipts outside the scheduler.

Example usage:
  receipt-backfill run --year 2024 --week 10             # all eligible users
  receipt-backfill run --year 2024 --week 10 --user u1   # one user
  receipt-backfill window --year 2024 --week 1           # print the UTC window
  receipt-backfill migrate                               # create tables`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runCmd, windowCmd, migrateCmd)
}

// environment holds the connections a command needs.
type environment struct {
	cfg  *config.Config
	pool *pgxpool.Pool
}

func openEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.InitLogger(logger.Options{Level: cfg.Logging.Level, ServiceName: "receipt-backfill"})

	pool, err := receipt_db.InitDBConnectionPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &environment{cfg: cfg, pool: pool}, nil
}

func (env *environment) components(ctx context.Context) (*di.ApplicationComponents, func(), error) {
	lockDriver, err := di.NewLockDriver(ctx, env.cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	closeLock := func() {}
	if lockDriver != nil {
		closeLock = func() { _ = lockDriver.Close() }
	}
	return di.NewApplicationComponents(env.pool, lockDriver, env.cfg), closeLock, nil
}
