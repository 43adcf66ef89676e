package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/robertwachen/fritterfrontend/config"
)

// Logger wraps slog. The zero value discards everything.
type Logger struct {
	log *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.Config, w io.Writer) (*Logger, error) {
	level, err := parseLevel(cfg.LoggerMode.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.LoggerMode.Prod {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &Logger{log: slog.New(h)}, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}

// Slog exposes the underlying logger for libraries that want one.
func (l Logger) Slog() *slog.Logger {
	if l.log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.log
}

func (l Logger) With(args ...any) Logger {
	if l.log == nil {
		return l
	}
	return Logger{log: l.log.With(args...)}
}

func (l Logger) Debug(msg string, args ...any) {
	if l.log != nil {
		l.log.Debug(msg, args...)
	}
}

func (l Logger) Info(msg string, args ...any) {
	if l.log != nil {
		l.log.Info(msg, args...)
	}
}

func (l Logger) Warn(msg string, args ...any) {
	if l.log != nil {
		l.log.Warn(msg, args...)
	}
}

func (l Logger) Error(msg string, args ...any) {
	if l.log != nil {
		l.log.Error(msg, args...)
	}
}

func (l Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
