package logging

import (
	"io"
	"os"
)

// Sink is one destination in a logger's handler chain. Each sink filters
// records against its own threshold, independent of every other sink, which
// is what lets the console stay quiet while the shared file captures
// everything.
type Sink interface {
	// Threshold is the minimum severity the sink accepts.
	Threshold() Severity
	// Handle processes a single record at or above the threshold.
	Handle(r Record) error
}

// consoleSink writes rendered lines to the console writer, colorized when
// the registry's color mode resolved to on at attachment time.
type consoleSink struct {
	w     io.Writer
	min   Severity
	color bool
}

func (s *consoleSink) Threshold() Severity { return s.min }

func (s *consoleSink) Handle(r Record) error {
	_, err := io.WriteString(s.w, FormatRecord(r, s.color)+"\n")
	return err
}

// fileSink appends plain lines to the process-shared log file. Its
// threshold is pinned to DebugLevel: the file is the full-detail archive,
// decoupled from whatever verbosity the operator chose for the console.
type fileSink struct {
	f *os.File
}

func (s *fileSink) Threshold() Severity { return DebugLevel }

func (s *fileSink) Handle(r Record) error {
	_, err := io.WriteString(s.f, FormatRecord(r, false)+"\n")
	return err
}

// terminationSink ends the process when a critical record arrives. It
// performs no formatting and writes nothing; it sits last in the sink chain
// so the console and file sinks have already written the record before the
// process dies.
type terminationSink struct {
	exit func(int)
}

func (s *terminationSink) Threshold() Severity { return CriticalLevel }

func (s *terminationSink) Handle(r Record) error {
	if r.Level >= CriticalLevel {
		s.exit(1)
	}
	return nil
}
