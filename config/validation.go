package config

import (
	"fmt"
	"strings"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}
	if err := validateRedisConfig(&config.Redis); err != nil {
		return fmt.Errorf("redis config validation failed: %w", err)
	}
	if err := validateWeeklyConfig(&config.Weekly); err != nil {
		return fmt.Errorf("weekly config validation failed: %w", err)
	}
	if err := validateReportConfig(&config.Report); err != nil {
		return fmt.Errorf("report config validation failed: %w", err)
	}
	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}
	if err := validateOTelConfig(&config.OTel); err != nil {
		return fmt.Errorf("otel config validation failed: %w", err)
	}
	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}
	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive")
	}
	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %v", config.ShutdownTimeout)
	}
	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.Host == "" || config.Name == "" {
		return fmt.Errorf("host and database name are required")
	}
	if config.MaxConns <= 0 {
		return fmt.Errorf("max connections must be positive, got %d", config.MaxConns)
	}
	if config.MinConns < 0 || config.MinConns > config.MaxConns {
		return fmt.Errorf("min connections must be between 0 and %d, got %d", config.MaxConns, config.MinConns)
	}
	if config.QueryTimeout <= 0 {
		return fmt.Errorf("query timeout must be positive, got %v", config.QueryTimeout)
	}
	return nil
}

func validateRedisConfig(config *RedisConfig) error {
	if config.URL == "" {
		return nil
	}
	if config.LockTTL <= 0 || config.LockWait <= 0 || config.LockPoll <= 0 {
		return fmt.Errorf("lock ttl, wait and poll must be positive")
	}
	return nil
}

func validateWeeklyConfig(config *WeeklyConfig) error {
	if config.JobInterval <= 0 {
		return fmt.Errorf("job interval must be positive, got %v", config.JobInterval)
	}
	if _, err := parseWeekday(config.JobWeekday); err != nil {
		return err
	}
	if config.BatchConcurrency < 1 {
		return fmt.Errorf("batch concurrency must be at least 1, got %d", config.BatchConcurrency)
	}
	if config.StoreRateLimit <= 0 || config.StoreRateBurst < 1 {
		return fmt.Errorf("store rate limit and burst must be positive")
	}
	if config.GenerationTimeout <= 0 {
		return fmt.Errorf("generation timeout must be positive, got %v", config.GenerationTimeout)
	}
	return nil
}

func validateReportConfig(config *ReportConfig) error {
	if config.DefaultListLimit < 1 || config.DefaultListLimit > config.MaxListLimit {
		return fmt.Errorf("default list limit must be between 1 and %d, got %d", config.MaxListLimit, config.DefaultListLimit)
	}
	if config.PreviousCacheSize < 0 {
		return fmt.Errorf("previous report cache size must not be negative")
	}
	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", config.Level)
}

func validateOTelConfig(config *OTelConfig) error {
	if config.SampleRatio < 0 || config.SampleRatio > 1 {
		return fmt.Errorf("sample ratio must be between 0 and 1, got %v", config.SampleRatio)
	}
	if config.Enabled && config.Endpoint == "" {
		return fmt.Errorf("endpoint is required when otel is enabled")
	}
	return nil
}
