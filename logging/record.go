package logging

import (
	"path/filepath"
	"runtime"
	"time"
)

// Record is one emitted log event. It is built once per emission call and
// then handed to every attached sink; sinks must treat it as read-only.
type Record struct {
	// Time is the moment of emission.
	Time time.Time
	// Origin is the base name of the source file that made the logging call.
	Origin string
	// Logger is the name of the logger the record was emitted through.
	Logger string
	// Level is the record's severity.
	Level Severity
	// Message is the fully rendered message text.
	Message string
}

// originFile reports the base file name of the caller skip frames up the
// stack, or "unknown" when the runtime cannot resolve it.
func originFile(skip int) string {
	_, file, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return filepath.Base(file)
}
