package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/phrazzld/gym-api/internal/config"
	"github.com/spf13/afero"
)

// DailyFile appends to the log file for the current day and switches to a
// new file on the first write after the date changes.
type DailyFile struct {
	fs  afero.Fs
	cfg config.LogsConfig
	now func() time.Time

	mu     sync.Mutex
	day    string
	file   afero.File
	closed bool
}

// OpenDailyFile creates cfg.Directory if needed and opens today's file.
// A nil now uses time.Now.
func OpenDailyFile(fs afero.Fs, cfg config.LogsConfig, now func() time.Time) (*DailyFile, error) {
	if now == nil {
		now = time.Now
	}
	if err := fs.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	d := &DailyFile{fs: fs, cfg: cfg, now: now}
	if err := d.open(now()); err != nil {
		return nil, err
	}
	return d, nil
}

// Write implements io.Writer.
func (d *DailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, os.ErrClosed
	}
	if t := d.now(); t.Format(DateLayout) != d.day {
		if err := d.open(t); err != nil {
			return 0, err
		}
	}
	return d.file.Write(p)
}

// Close closes the current file. Later writes fail with os.ErrClosed.
func (d *DailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.file.Close()
}

// open must be called with mu held, or before d is shared.
func (d *DailyFile) open(t time.Time) error {
	path := filepath.Join(d.cfg.Directory, DailyFileName(d.cfg, t))
	f, err := d.fs.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	if d.file != nil {
		_ = d.file.Close()
	}
	d.file = f
	d.day = t.Format(DateLayout)
	return nil
}
