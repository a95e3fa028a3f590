package logging

import "strings"

// Severity is the ordered urgency of a log record. Higher values are more
// urgent; a sink accepts a record when the record's severity is at or above
// the sink's threshold.
type Severity int

const (
	DebugLevel Severity = iota
	InfoLevel
	WarningLevel
	ErrorLevel
	CriticalLevel
)

// severityNames holds the canonical display names, indexed by Severity.
var severityNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// String returns the canonical upper-case name of the severity, or "UNKNOWN"
// for values outside the five defined levels.
func (s Severity) String() string {
	if s < DebugLevel || s > CriticalLevel {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// ParseSeverity resolves a verbosity string to a Severity. Matching is
// case-insensitive against the five canonical names; anything else falls
// back to InfoLevel. The permissive fallback is deliberate: a malformed
// verbosity value must never be the reason logger construction fails.
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARNING":
		return WarningLevel
	case "ERROR":
		return ErrorLevel
	case "CRITICAL":
		return CriticalLevel
	default:
		return InfoLevel
	}
}

// ColorReset terminates any colored console line.
const ColorReset = "\033[0m"

// severityColors maps each severity to the ANSI escape that opens its
// console color. Bright variants, readable on dark and light terminals.
var severityColors = map[Severity]string{
	DebugLevel:    "\033[94m", // blue
	InfoLevel:     "\033[92m", // green
	WarningLevel:  "\033[93m", // yellow
	ErrorLevel:    "\033[91m", // red
	CriticalLevel: "\033[95m", // magenta
}

// ColorFor returns the ANSI color escape assigned to a severity. Severities
// without an assigned color fall back to ColorReset, so an out-of-range
// record still renders, just uncolored.
func ColorFor(s Severity) string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return ColorReset
}
