// Package logger wraps log/slog with a process-wide logger configured from
// LOG_LEVEL and LOG_FILE.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var (
	current atomic.Pointer[slog.Logger]
	level   atomic.Int32
)

func init() {
	level.Store(int32(INFO))
	current.Store(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

type Options struct {
	Level  string
	File   string
	Format string // "text" or "json"
}

// Configure replaces the global logger. A bad level or an unwritable file is
// reported but the logger is still usable afterwards.
func Configure(opts Options) error {
	lvl := Level(level.Load())
	var levelErr error
	if strings.TrimSpace(opts.Level) != "" {
		lvl, levelErr = ParseLevel(opts.Level)
	}

	writer := io.Writer(os.Stdout)
	var fileErr error
	if strings.TrimSpace(opts.File) != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			fileErr = err
		} else if f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err != nil {
			fileErr = err
		} else {
			writer = io.MultiWriter(os.Stdout, f)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: slogLevel(lvl)}
	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	level.Store(int32(lvl))
	current.Store(slog.New(handler))

	return errors.Join(levelErr, fileErr)
}

// SetOutput points the logger at w, keeping the configured level. Used by tests.
func SetOutput(w io.Writer) {
	lvl := Level(level.Load())
	current.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(lvl)})))
}

func SetLevel(l Level) {
	level.Store(int32(l))
}

func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("invalid log level %q", value)
	}
}

func slogLevel(l Level) slog.Level {
	switch l {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Enabled reports whether messages at l are emitted.
func Enabled(l Level) bool {
	return Level(level.Load()) <= l
}

// L returns the underlying slog logger.
func L() *slog.Logger {
	return current.Load()
}

// With returns a child logger carrying args, e.g. a component name.
func With(args ...any) *slog.Logger {
	return current.Load().With(args...)
}

func Debug(msg string, args ...any) {
	if Enabled(DEBUG) {
		current.Load().Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if Enabled(INFO) {
		current.Load().Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if Enabled(WARN) {
		current.Load().Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if Enabled(ERROR) {
		current.Load().Error(msg, args...)
	}
}

// Log writes at an arbitrary slog level, honouring ctx-aware handlers.
func Log(ctx context.Context, l slog.Level, msg string, args ...any) {
	current.Load().Log(ctx, l, msg, args...)
}
