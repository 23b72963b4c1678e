package logfilter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phrazzld/gym-api/internal/platform/logger"
	"github.com/spf13/afero"
)

// ErrNoSourceFiles is returned when the log directory holds no file that
// matches the configured prefix and suffix.
var ErrNoSourceFiles = errors.New("no log files found")

// outputPattern names the export files created under OutputDirectory.
const outputPattern = "filtered-log-*.log"

// Config controls which files are read and where the export is written.
type Config struct {
	Directory       string
	FilePrefix      string
	FileSuffix      string
	OutputDirectory string

	// Delay is waited before any file is read.
	Delay time.Duration
}

// Filter copies the lines of the application log files that contain a
// given substring into a new export file.
type Filter struct {
	fs     afero.Fs
	cfg    Config
	logger *slog.Logger
}

// New creates a Filter reading and writing through fs.
func New(fs afero.Fs, cfg Config, logger *slog.Logger) *Filter {
	if fs == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("filesystem cannot be nil")
	}
	if cfg.OutputDirectory == "" {
		cfg.OutputDirectory = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Filter{
		fs:     fs,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "log_filter")),
	}
}

// SourceFiles lists the files in the log directory matching
// <prefix>*<suffix>, sorted by name.
func (f *Filter) SourceFiles() ([]string, error) {
	entries, err := afero.ReadDir(f.fs, f.cfg.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory %s: %w", f.cfg.Directory, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, f.cfg.FilePrefix) || !strings.HasSuffix(name, f.cfg.FileSuffix) {
			continue
		}
		files = append(files, filepath.Join(f.cfg.Directory, name))
	}
	return files, nil
}

// Run writes every line containing dateFilter to a new export file and
// returns its path. Files are processed in name order and lines keep their
// order within a file. A run that matches no lines still succeeds with an
// empty export. On any failure the partial export is removed.
func (f *Filter) Run(ctx context.Context, dateFilter string) (string, error) {
	log := logger.FromContextOrDefault(ctx, f.logger).With(slog.String("date_filter", dateFilter))

	if f.cfg.Delay > 0 {
		timer := time.NewTimer(f.cfg.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	sources, err := f.SourceFiles()
	if err != nil {
		return "", err
	}
	if len(sources) == 0 {
		log.Warn("no log files to filter",
			slog.String("directory", f.cfg.Directory),
			slog.String("pattern", f.cfg.FilePrefix+"*"+f.cfg.FileSuffix))
		return "", ErrNoSourceFiles
	}

	if err := f.fs.MkdirAll(f.cfg.OutputDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	out, err := afero.TempFile(f.fs, f.cfg.OutputDirectory, outputPattern)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	path := out.Name()

	matched, err := f.copyMatching(ctx, out, sources, dateFilter)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close export file: %w", closeErr)
	}
	if err != nil {
		if rmErr := f.fs.Remove(path); rmErr != nil {
			log.Warn("failed to remove partial export", slog.String("path", path), slog.String("error", rmErr.Error()))
		}
		return "", err
	}

	log.Info("log export written",
		slog.String("path", path),
		slog.Int("source_files", len(sources)),
		slog.Int("matched_lines", matched))
	return path, nil
}

func (f *Filter) copyMatching(ctx context.Context, out io.Writer, sources []string, dateFilter string) (int, error) {
	w := bufio.NewWriter(out)
	matched := 0

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return matched, err
		}
		n, err := f.copyFile(w, source, dateFilter)
		matched += n
		if err != nil {
			return matched, err
		}
	}

	if err := w.Flush(); err != nil {
		return matched, fmt.Errorf("write export file: %w", err)
	}
	return matched, nil
}

func (f *Filter) copyFile(w *bufio.Writer, source, dateFilter string) (int, error) {
	in, err := f.fs.Open(source)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", source, err)
	}
	defer in.Close()

	r := bufio.NewReader(in)
	matched := 0
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return matched, fmt.Errorf("read %s: %w", source, readErr)
		}

		line = strings.TrimRight(line, "\r\n")
		if line != "" && strings.Contains(line, dateFilter) {
			if _, err := w.WriteString(line + "\n"); err != nil {
				return matched, fmt.Errorf("write export file: %w", err)
			}
			matched++
		}

		if readErr == io.EOF {
			return matched, nil
		}
	}
}
