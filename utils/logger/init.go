package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide logger. It falls back to slog's default until
// InitLogger runs so packages can log from tests.
var Logger = slog.Default()

// GlobalContext enriches Logger with request scoped attributes.
var GlobalContext = NewContextLogger(Logger)

// Options configures InitLogger.
type Options struct {
	Level       string
	ServiceName string
	OTelEnabled bool
	Output      io.Writer
}

// InitLogger builds the JSON logger with trace correlation and, when enabled,
// an OpenTelemetry export branch.
func InitLogger(opts Options) *slog.Logger {
	level := ParseLevel(opts.Level)
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var handler slog.Handler
	if opts.OTelEnabled {
		handler = NewMultiHandler(out, level, opts.ServiceName)
	} else {
		handler = NewTraceContextHandler(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}

	Logger = slog.New(handler)
	GlobalContext = NewContextLogger(Logger)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "log_level", level.String(), "otel_enabled", opts.OTelEnabled)
	return Logger
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
