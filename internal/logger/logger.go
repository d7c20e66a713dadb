package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"

	"github.com/hekt/live-dictation/internal/file"
)

// NewFileLogger appends text records to path, creating parent directories.
func NewFileLogger(path string, logLevel slog.Level) (*slog.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0o755)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := file.NewAppender(path)
	// fail here rather than on the first record
	if _, err := w.Write(nil); err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", w.Path(), err)
	}

	return NewConsoleLogger(w, logLevel), nil
}

// NewConsoleLogger writes text records to w, usually stderr so that they
// do not mix with the transcription on stdout.
func NewConsoleLogger(w io.Writer, logLevel slog.Level) *slog.Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(logLevel)

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelVar,
	}))
}

// NewDebugLogger logs to the file at path from logLevel up and keeps
// warnings and errors on console as well.
func NewDebugLogger(path string, logLevel slog.Level, console io.Writer) (*slog.Logger, error) {
	fileLogger, err := NewFileLogger(path, logLevel)
	if err != nil {
		return nil, err
	}

	return slog.New(slogmulti.Fanout(
		fileLogger.Handler(),
		NewConsoleLogger(console, slog.LevelWarn).Handler(),
	)), nil
}
