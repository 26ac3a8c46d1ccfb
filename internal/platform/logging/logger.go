package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/janisto/catalog-lambda/internal/platform/timeutil"
)

var (
	loggerOnce sync.Once
	baseLogger *slog.Logger
	level      = new(slog.LevelVar)
)

// utcHandler wraps slog.JSONHandler so every record is stamped in UTC.
type utcHandler struct {
	slog.Handler
}

func (h *utcHandler) Handle(ctx context.Context, r slog.Record) error {
	r.Time = r.Time.UTC()
	return h.Handler.Handle(ctx, r)
}

func (h *utcHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &utcHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *utcHandler) WithGroup(name string) slog.Handler {
	return &utcHandler{Handler: h.Handler.WithGroup(name)}
}

// levelNames maps slog levels to the severity strings written to CloudWatch.
var levelNames = map[slog.Level]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARN",
	slog.LevelError: "ERROR",
	levelFatal:      "FATAL",
}

const levelFatal = slog.LevelError + 4

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(timeutil.RFC3339Micros))
		a.Key = "timestamp"
	case slog.LevelKey:
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			if name, found := levelNames[lvl]; found {
				a.Value = slog.StringValue(name)
			}
		}
		a.Key = "severity"
	case slog.MessageKey:
		a.Key = "message"
	}
	return a
}

func initLogger() {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})
	baseLogger = slog.New(&utcHandler{Handler: h})
}

// Logger returns the process-wide slog.Logger instance.
func Logger() *slog.Logger {
	loggerOnce.Do(initLogger)
	return baseLogger
}

// SetLevel changes the minimum level of the process-wide logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to slog levels.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
