// Package log is a small leveled, structured logger with asynchronous
// delivery to pluggable transporters.
package log

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const queueCapacity = 1000

// Logger writes structured entries at or above its minimum level.
type Logger struct {
	level *atomic.Int32
	queue *queue
	base  []Field
}

// New creates a logger with the given minimum level and transporters.
func New(level Level, transporters ...Transporter) *Logger {
	lv := new(atomic.Int32)
	lv.Store(int32(level))
	return &Logger{
		level: lv,
		queue: newQueue(queueCapacity, transporters...),
	}
}

// SetLevel changes the minimum level for the logger and every child
// created with With.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// With returns a child logger that adds the given fields to every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	base := make([]Field, len(l.base), len(l.base)+len(keysAndValues)/2)
	copy(base, l.base)
	return &Logger{
		level: l.level,
		queue: l.queue,
		base:  appendPairs(base, keysAndValues),
	}
}

// Close flushes pending entries and closes the transporters.
func (l *Logger) Close() {
	l.queue.close()
}

// Dropped returns how many entries were discarded because the queue was full.
func (l *Logger) Dropped() int64 {
	return l.queue.dropped.Load()
}

func (l *Logger) log(ctx context.Context, level Level, msg string, keysAndValues []any) {
	if !l.Level().Enables(level) {
		return
	}

	entry := Entry{
		Timestamp: time.Now(),
		Level:     level,
		Caller:    caller(3),
		Message:   msg,
	}

	fields := make([]Field, 0, len(l.base)+len(keysAndValues)/2)
	fields = append(fields, l.base...)
	if ctx != nil {
		entry.RequestID = RequestIDFromContext(ctx)
		fields = append(fields, FieldsFromContext(ctx)...)
	}
	entry.Fields = appendPairs(fields, keysAndValues)

	l.queue.send(entry)
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) { l.log(nil, Debug, msg, keysAndValues) }
func (l *Logger) Info(msg string, keysAndValues ...any)  { l.log(nil, Info, msg, keysAndValues) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.log(nil, Warn, msg, keysAndValues) }
func (l *Logger) Error(msg string, keysAndValues ...any) { l.log(nil, Error, msg, keysAndValues) }

func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Debug, msg, keysAndValues)
}

func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Info, msg, keysAndValues)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Warn, msg, keysAndValues)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Error, msg, keysAndValues)
}

// --- Global Logger ---

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
	noopLogger   = newNoop()
)

func newNoop() *Logger {
	return New(Error+1, discard{})
}

type discard struct{}

func (discard) Name() string      { return "discard" }
func (discard) Write(Entry) error { return nil }
func (discard) Close() error      { return nil }

// SetDefault installs the logger used by the Global* functions.
func SetDefault(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Default returns the global logger, or a logger that discards everything
// when none has been set.
func Default() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// The Global* functions log through Default. They call log directly so the
// recorded caller is the call site, not this file.

func GlobalDebug(msg string, keysAndValues ...any) { Default().log(nil, Debug, msg, keysAndValues) }
func GlobalInfo(msg string, keysAndValues ...any)  { Default().log(nil, Info, msg, keysAndValues) }
func GlobalWarn(msg string, keysAndValues ...any)  { Default().log(nil, Warn, msg, keysAndValues) }
func GlobalError(msg string, keysAndValues ...any) { Default().log(nil, Error, msg, keysAndValues) }

func GlobalDebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Debug, msg, keysAndValues)
}

func GlobalInfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Info, msg, keysAndValues)
}

func GlobalWarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Warn, msg, keysAndValues)
}

func GlobalErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Error, msg, keysAndValues)
}
