package logging

import (
	"fmt"
	"time"
)

// Logger is a named emission handle dispensed by a Registry. It carries an
// overall pass-through level (DebugLevel unless a noise policy raised it)
// and a chain of sinks that each apply their own threshold on top.
//
// Emission is synchronous: a call returns only after every eligible sink
// has handled the record. That ordering is what lets Critical guarantee the
// record is on the console and in the file before the process exits.
type Logger struct {
	reg     *Registry
	name    string
	level   Severity
	console *consoleSink
	sinks   []Sink
}

// Name returns the registry key this logger was created under.
func (l *Logger) Name() string { return l.name }

// Debug emits a record at DEBUG severity.
func (l *Logger) Debug(format string, args ...any) { l.emit(DebugLevel, format, args) }

// Info emits a record at INFO severity.
func (l *Logger) Info(format string, args ...any) { l.emit(InfoLevel, format, args) }

// Warning emits a record at WARNING severity.
func (l *Logger) Warning(format string, args ...any) { l.emit(WarningLevel, format, args) }

// Error emits a record at ERROR severity.
func (l *Logger) Error(format string, args ...any) { l.emit(ErrorLevel, format, args) }

// Critical emits a record at CRITICAL severity. After the console and file
// sinks have written it, the termination sink ends the process with status
// 1, so in production use this call does not return.
func (l *Logger) Critical(format string, args ...any) { l.emit(CriticalLevel, format, args) }

// emit builds the record and fans it out to every sink whose threshold the
// severity meets. The format string is interpreted only when args are
// present; a bare message with a literal '%' passes through untouched. The
// registry mutex serializes the whole fan-out, so lines from concurrent
// goroutines never interleave and file order is arrival order.
func (l *Logger) emit(level Severity, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	rec := Record{
		Time:    time.Now(),
		Origin:  originFile(3),
		Logger:  l.name,
		Level:   level,
		Message: msg,
	}
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()
	if level < l.level {
		return
	}
	for _, s := range l.sinks {
		if level < s.Threshold() {
			continue
		}
		// Sink write failures are dropped: emission is best-effort, only
		// construction failures surface to callers.
		_ = s.Handle(rec)
	}
}
