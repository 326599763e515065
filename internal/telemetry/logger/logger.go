package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the application logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Config holds logger configuration.
type Config struct {
	Level     string    // debug, info, warn or error
	Format    string    // json or text
	Output    io.Writer // defaults to os.Stderr
	AddSource bool
}

// DefaultConfig returns JSON at info level on stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

// level is shared by every logger so it can be changed at runtime.
var level = new(slog.LevelVar)

var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

type slogLogger struct {
	*slog.Logger
}

func (l slogLogger) With(args ...any) Logger {
	return slogLogger{l.Logger.With(args...)}
}

// New builds a logger and sets the shared level from cfg.
func New(cfg Config) (Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			return redactSensitive(a)
		},
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		h = slog.NewJSONHandler(out, opts)
	case "text", "console":
		h = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	SetLevel(cfg.Level)
	return slogLogger{slog.New(h)}, nil
}

// SetLevel changes the level of every logger. Unknown names mean info.
func SetLevel(name string) {
	l, ok := levelNames[strings.ToLower(name)]
	if !ok {
		l = slog.LevelInfo
	}
	level.Set(l)
}

// GetLevel returns the current level name.
func GetLevel() string {
	switch level.Level() {
	case slog.LevelDebug:
		return "debug"
	case slog.LevelWarn:
		return "warn"
	case slog.LevelError:
		return "error"
	default:
		return "info"
	}
}

// ValidLevel reports whether name is a known level.
func ValidLevel(name string) bool {
	_, ok := levelNames[strings.ToLower(name)]
	return ok
}

// Slog returns the *slog.Logger behind l for components that take one.
func Slog(l Logger) *slog.Logger {
	if sl, ok := l.(slogLogger); ok {
		return sl.Logger
	}
	return slog.Default()
}

type holder struct{ Logger }

var defaultLogger atomic.Pointer[holder]

func init() {
	l, _ := New(DefaultConfig())
	defaultLogger.Store(&holder{l})
}

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) {
	if l != nil {
		defaultLogger.Store(&holder{l})
	}
}

// Default returns the process-wide logger.
func Default() Logger {
	return defaultLogger.Load().Logger
}

// Info logs with the default logger.
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}
