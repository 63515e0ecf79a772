package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	Weekly   WeeklyConfig   `json:"weekly"`
	Report   ReportConfig   `json:"report"`
	Auth     AuthConfig     `json:"auth"`
	Logging  LoggingConfig  `json:"logging"`
	OTel     OTelConfig     `json:"otel"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DatabaseConfig struct {
	Host           string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port           int           `json:"port" env:"DB_PORT" default:"5432"`
	User           string        `json:"user" env:"DB_USER" default:"devuser"`
	Password       string        `json:"-" env:"DB_PASSWORD" default:"devpassword"`
	Name           string        `json:"name" env:"DB_NAME" default:"devdb"`
	SSLMode        string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConns       int           `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
	MinConns       int           `json:"min_conns" env:"DB_MIN_CONNS" default:"2"`
	MaxConnLife    time.Duration `json:"max_conn_life" env:"DB_MAX_CONN_LIFE" default:"30m"`
	ConnectTimeout time.Duration `json:"connect_timeout" env:"DB_CONNECT_TIMEOUT" default:"30s"`
	QueryTimeout   time.Duration `json:"query_timeout" env:"DB_QUERY_TIMEOUT" default:"10s"`
}

// RedisConfig enables the shared report lock. An empty URL keeps locking
// in process.
type RedisConfig struct {
	URL      string        `json:"url" env:"REDIS_URL"`
	LockTTL  time.Duration `json:"lock_ttl" env:"REPORT_LOCK_TTL" default:"60s"`
	LockWait time.Duration `json:"lock_wait" env:"REPORT_LOCK_WAIT" default:"30s"`
	LockPoll time.Duration `json:"lock_poll" env:"REPORT_LOCK_POLL" default:"100ms"`
}

type WeeklyConfig struct {
	JobEnabled        bool          `json:"job_enabled" env:"WEEKLY_JOB_ENABLED" default:"true"`
	JobInterval       time.Duration `json:"job_interval" env:"WEEKLY_JOB_INTERVAL" default:"1h"`
	JobWeekday        string        `json:"job_weekday" env:"WEEKLY_JOB_WEEKDAY" default:"sunday"`
	JobTimeout        time.Duration `json:"job_timeout" env:"WEEKLY_JOB_TIMEOUT" default:"2h"`
	BatchConcurrency  int           `json:"batch_concurrency" env:"WEEKLY_BATCH_CONCURRENCY" default:"4"`
	StoreRateLimit    float64       `json:"store_rate_limit" env:"WEEKLY_STORE_RATE_LIMIT" default:"20"`
	StoreRateBurst    int           `json:"store_rate_burst" env:"WEEKLY_STORE_RATE_BURST" default:"5"`
	GenerationTimeout time.Duration `json:"generation_timeout" env:"WEEKLY_GENERATION_TIMEOUT" default:"30s"`
}

type ReportConfig struct {
	DefaultListLimit  int           `json:"default_list_limit" env:"REPORT_LIST_DEFAULT_LIMIT" default:"52"`
	MaxListLimit      int           `json:"max_list_limit" env:"REPORT_LIST_MAX_LIMIT" default:"104"`
	PreviousCacheSize int           `json:"previous_cache_size" env:"REPORT_PREVIOUS_CACHE_SIZE" default:"1024"`
	PreviousCacheTTL  time.Duration `json:"previous_cache_ttl" env:"REPORT_PREVIOUS_CACHE_TTL" default:"10m"`
	ShareBaseURL      string        `json:"share_base_url" env:"REPORT_SHARE_BASE_URL" default:"/receipts/shared"`
}

type AuthConfig struct {
	BackendTokenSecret     string `json:"-" env:"BACKEND_TOKEN_SECRET"`
	BackendTokenSecretFile string `json:"-" env:"BACKEND_TOKEN_SECRET_FILE"`
	BackendTokenIssuer     string `json:"backend_token_issuer" env:"BACKEND_TOKEN_ISSUER" default:"auth-hub"`
	BackendTokenAudience   string `json:"backend_token_audience" env:"BACKEND_TOKEN_AUDIENCE" default:"receipt"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

type OTelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"receipt"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	Endpoint       string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

// NewConfig loads a .env file when present, then environment variables with
// fallback to the tag defaults, and validates the result.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	// Docker secrets take precedence over the plain variable.
	if config.Auth.BackendTokenSecretFile != "" {
		content, err := os.ReadFile(config.Auth.BackendTokenSecretFile)
		if err != nil {
			return nil, fmt.Errorf("read backend token secret file: %w", err)
		}
		config.Auth.BackendTokenSecret = strings.TrimSpace(string(content))
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ConnectionString renders the pgx key/value DSN.
func (c DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=public connect_timeout=%d",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, int(c.ConnectTimeout.Seconds()),
	)
}

// Weekday returns the configured scheduler weekday.
func (c WeeklyConfig) Weekday() time.Weekday {
	wd, _ := parseWeekday(c.JobWeekday)
	return wd
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) || strings.EqualFold(d.String()[:3], s) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
