package logger_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/gym-api/internal/config"
	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := logger.ParseLevel(tt.input)
		assert.Equal(t, tt.want, got, "level for %q", tt.input)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.input)
	}
}

func TestDailyFileName(t *testing.T) {
	t.Parallel()

	cfg := config.LogsConfig{FilePrefix: "application-", FileSuffix: ".log"}
	day := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "application-2024-01-01.log", logger.DailyFileName(cfg, day))
}

func TestDailyFile_SwitchesFileWhenDateChanges(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := config.LogsConfig{Directory: "/logs", FilePrefix: "application-", FileSuffix: ".log"}
	now := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)

	f, err := logger.OpenDailyFile(fs, cfg, func() time.Time { return now })
	require.NoError(t, err)

	_, err = f.Write([]byte("before midnight\n"))
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	_, err = f.Write([]byte("after midnight\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	first, err := afero.ReadFile(fs, "/logs/application-2024-01-01.log")
	require.NoError(t, err)
	assert.Equal(t, "before midnight\n", string(first))

	second, err := afero.ReadFile(fs, "/logs/application-2024-01-02.log")
	require.NoError(t, err)
	assert.Equal(t, "after midnight\n", string(second))

	_, err = f.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestSetupWritesDailyFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	dir := filepath.Join(t.TempDir(), "logs")
	logsCfg := config.LogsConfig{
		Directory:  dir,
		FilePrefix: "application-",
		FileSuffix: ".log",
		WriteFiles: true,
	}

	l, closer, err := logger.Setup(config.ServerConfig{LogLevel: "debug"}, logsCfg)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("member checked in", slog.Int64("person_id", 7))
	require.NoError(t, closer.Close())

	path := filepath.Join(dir, logger.DailyFileName(logsCfg, time.Now()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"member checked in"`)
	assert.Contains(t, string(data), `"person_id":7`)
	assert.Same(t, l, slog.Default())
}

func TestSetupWithoutFiles(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	dir := filepath.Join(t.TempDir(), "unused")
	l, closer, err := logger.Setup(
		config.ServerConfig{LogLevel: "warn"},
		config.LogsConfig{Directory: dir, WriteFiles: false},
	)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))
	assert.NoDirExists(t, dir)
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	fallback, _ := logger.NewTestLogger()
	ctxLogger, buf := logger.NewTestLogger()

	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))

	ctx := logger.WithLogger(context.Background(), ctxLogger)
	assert.Same(t, ctxLogger, logger.FromContextOrDefault(ctx, fallback))
	assert.Same(t, ctxLogger, logger.FromContext(ctx))

	ctx = logger.WithRequestID(ctx, "req-42")
	logger.FromContext(ctx).Info("handled")

	entries := buf.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0]["request_id"])
	assert.True(t, strings.Contains(buf.String(), "handled"))
}
