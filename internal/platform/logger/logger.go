// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/phrazzld/gym-api/internal/config"
	"github.com/spf13/afero"
)

// DateLayout is the date format embedded in daily log file names.
const DateLayout = "2006-01-02"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup initializes the application's logging system. It creates a structured
// JSON logger with the configured level, writing to stdout and, when
// logsCfg.WriteFiles is set, to the current day's file under
// logsCfg.Directory.
// The logger is installed as the slog default.
//
// The returned io.Closer releases the log file and must be closed on shutdown.
func Setup(cfg config.ServerConfig, logsCfg config.LogsConfig) (*slog.Logger, io.Closer, error) {
	level, ok := ParseLevel(cfg.LogLevel)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	var (
		out    io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)

	if logsCfg.WriteFiles {
		f, err := OpenDailyFile(afero.NewOsFs(), logsCfg, nil)
		if err != nil {
			return nil, nil, err
		}
		out = io.MultiWriter(os.Stdout, f)
		closer = f
	}

	logger := New(out, level)
	slog.SetDefault(logger)

	return logger, closer, nil
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
// Unknown names yield slog.LevelInfo and false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// DailyFileName returns the log file name for the day containing t,
// e.g. "application-2024-01-01.log".
func DailyFileName(logsCfg config.LogsConfig, t time.Time) string {
	return logsCfg.FilePrefix + t.Format(DateLayout) + logsCfg.FileSuffix
}
