// Package logging builds the slog logger used for run diagnostics: every record
// goes to the console and, when configured, is appended to a log file.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	timeLayout  = "2006-01-02 15:04:05"
	logFileMode = 0o644
)

// New returns a text logger writing to console and, if logFilePath is not
// empty, to an append-only file at logFilePath.
func New(console io.Writer, logFilePath string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: formatTime}

	handlers := []slog.Handler{slog.NewTextHandler(console, opts)}
	if logFilePath != "" {
		handlers = append(handlers, slog.NewTextHandler(NewAppendFile(logFilePath), opts))
	}

	return slog.New(fanout(handlers))
}

// AppendFile is an io.Writer that opens, appends to and closes its file on
// every Write, so no handle stays open between records. The parent directory
// is created on first use.
type AppendFile struct {
	path string
	mu   sync.Mutex
}

func NewAppendFile(path string) *AppendFile {
	return &AppendFile{path: path}
}

func (f *AppendFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return 0, err
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return 0, err
	}

	n, err := file.Write(p)
	return n, errors.Join(err, file.Close())
}

// fanout sends every record to all handlers. A failing handler does not stop the others.
type fanout []slog.Handler

func (h fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h {
		if handler.Enabled(ctx, r.Level) {
			errs = append(errs, handler.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanout, len(h))
	for i, handler := range h {
		next[i] = handler.WithAttrs(attrs)
	}
	return next
}

func (h fanout) WithGroup(name string) slog.Handler {
	next := make(fanout, len(h))
	for i, handler := range h {
		next[i] = handler.WithGroup(name)
	}
	return next
}

func formatTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		return slog.String(slog.TimeKey, a.Value.Time().Format(timeLayout))
	}
	return a
}
