// Package log provides structured logging for ingestion operations.
//
// The Logger interface is a minimal slog-style surface (message plus
// alternating key/value fields) so callers never depend on a concrete
// backend. The production implementation wraps zerolog; the default is a
// no-op so the library stays silent unless the embedding application opts
// in with SetLogger.
package log

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/takara-ml/boostio/pkg/errors"
)

// Attribute keys shared across the library so log output stays queryable.
const (
	// PathKey names a single file being read.
	PathKey = "io.path"
	// SourcesKey is the number of source files in a path list.
	SourcesKey = "io.sources"
	// RowsKey is the number of data rows.
	RowsKey = "data.rows"
	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"
	// GroupsKey is the number of query-group entries.
	GroupsKey = "data.groups"
	// DurationMsKey is elapsed wall time in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Logger is the structured logging interface used throughout the library.
// Fields are alternating key/value pairs; an error value may be passed
// directly and is attached with its stack trace where available.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// With returns a logger that includes the given fields on every event.
	With(fields ...any) Logger
}

// loggerHolder keeps atomic.Value happy: the stored concrete type must be
// the same on every Store.
type loggerHolder struct {
	l Logger
}

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(loggerHolder{l: nopLogger{}})
}

// SetLogger replaces the library-wide logger.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	defaultLogger.Store(loggerHolder{l: l})
}

// GetLogger returns the library-wide logger.
func GetLogger() Logger {
	return defaultLogger.Load().(loggerHolder).l
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(zl zerolog.Logger) Logger {
	return &zerologLogger{zl: zl}
}

// NewConsoleLogger builds a zerolog-backed logger writing human-readable
// output to stderr at the given level.
func NewConsoleLogger(level zerolog.Level) Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) { l.emit(l.zl.Debug(), msg, fields) }
func (l *zerologLogger) Info(msg string, fields ...any)  { l.emit(l.zl.Info(), msg, fields) }
func (l *zerologLogger) Warn(msg string, fields ...any)  { l.emit(l.zl.Warn(), msg, fields) }
func (l *zerologLogger) Error(msg string, fields ...any) { l.emit(l.zl.Error(), msg, fields) }

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for k, v := range pairs(fields) {
		ctx = ctx.Interface(k, v)
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func (l *zerologLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	for i := 0; i < len(fields); i++ {
		if err, ok := fields[i].(error); ok {
			ev = ev.Err(err)
			if details := errors.GetSafeDetails(err); len(details) > 0 {
				ev = ev.Str("stacktrace", details[0])
			}
			continue
		}
		key, ok := fields[i].(string)
		if !ok || i+1 >= len(fields) {
			break
		}
		ev = ev.Interface(key, fields[i+1])
		i++
	}
	ev.Msg(msg)
}

// pairs folds a field slice into a key/value map, skipping bare errors and
// malformed trailing keys.
func pairs(fields []any) map[string]any {
	m := make(map[string]any, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		m[key] = fields[i+1]
	}
	return m
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func (n nopLogger) With(...any) Logger { return n }
