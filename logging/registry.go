package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultDir is the directory, relative to the working directory, where the
// shared log file is created.
const DefaultDir = "logs"

// Registry owns the named loggers of one process. Loggers are created on
// first request and live for the life of the registry; asking for the same
// name again returns the existing handle with its sinks untouched. All
// loggers append to one shared log file whose name is fixed the first time
// any logger is built.
//
// The zero value is not usable; construct with NewRegistry. Most programs
// use the package-level Default registry instead of building their own.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger

	dir     string
	logPath string
	logFile *os.File

	console io.Writer
	color   ColorMode
	exit    func(int)
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithConsole redirects console sink output away from stderr. Tests pass a
// buffer here to observe rendered lines.
func WithConsole(w io.Writer) Option {
	return func(r *Registry) { r.console = w }
}

// WithDir overrides the directory holding the shared log file.
func WithDir(dir string) Option {
	return func(r *Registry) { r.dir = dir }
}

// WithColorMode sets the console colorization policy for loggers built by
// this registry.
func WithColorMode(m ColorMode) Option {
	return func(r *Registry) { r.color = m }
}

// WithExit replaces the process-termination call triggered by critical
// records. Tests substitute a stub to observe the exit status without
// killing the test binary. The replacement runs while the registry is
// locked, so it must not call back into the registry.
func WithExit(fn func(int)) Option {
	return func(r *Registry) { r.exit = fn }
}

// NewRegistry builds an empty registry. Without options it writes the
// console stream to stderr in color, keeps the shared file under
// DefaultDir, and terminates via os.Exit.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		loggers: make(map[string]*Logger),
		dir:     DefaultDir,
		console: os.Stderr,
		color:   ColorAlways,
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetLogger returns the logger registered under name, creating and wiring
// it on first request. consoleVerbosity sets the console threshold of a new
// logger; it is matched case-insensitively against the five severity names
// and falls back to INFO when empty or unrecognized. For a name that
// already exists the verbosity argument is ignored and the existing handle
// comes back unchanged, so call sites in different packages can request the
// same logger without stacking duplicate sinks.
//
// The only failure source is the shared log file: when its directory or the
// file itself cannot be created, construction aborts rather than silently
// dropping the file sink.
func (r *Registry) GetLogger(name, consoleVerbosity string) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLoggerLocked(name, consoleVerbosity)
}

func (r *Registry) getLoggerLocked(name, consoleVerbosity string) (*Logger, error) {
	if l, ok := r.loggers[name]; ok {
		return l, nil
	}
	f, err := r.sharedFileLocked()
	if err != nil {
		return nil, err
	}
	l := &Logger{
		reg:   r,
		name:  name,
		level: DebugLevel,
		console: &consoleSink{
			w:     r.console,
			min:   ParseSeverity(consoleVerbosity),
			color: r.color.enabled(r.console),
		},
	}
	// The termination sink goes last so the console and file sinks have
	// written a critical record before the process exits.
	l.sinks = []Sink{l.console, &fileSink{f: f}, &terminationSink{exit: r.exit}}
	r.loggers[name] = l
	return l, nil
}

// sharedFileLocked lazily opens the process-shared log file. The path is
// computed exactly once, stamped with the time of first use, so every
// logger of the registry appends to the same file no matter when it was
// built. Append mode keeps concurrent processes that land on the same
// second from clobbering each other's records.
func (r *Registry) sharedFileLocked() (*os.File, error) {
	if r.logFile != nil {
		return r.logFile, nil
	}
	if r.logPath == "" {
		if err := os.MkdirAll(r.dir, 0755); err != nil {
			return nil, fmt.Errorf("logging: create log directory %s: %w", r.dir, err)
		}
		r.logPath = filepath.Join(r.dir, time.Now().Format("2006-01-02_15-04-05")+".log")
	}
	f, err := os.OpenFile(r.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file %s: %w", r.logPath, err)
	}
	r.logFile = f
	return f, nil
}

// SetModuleLevels applies per-logger console verbosity overrides in one
// batch, creating any named logger that does not exist yet. Level strings
// follow the same rules as GetLogger's verbosity argument. Unlike
// GetLogger, the override always lands: this is the one sanctioned way to
// retune an existing logger's console threshold after construction.
func (r *Registry) SetModuleLevels(levels map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, level := range levels {
		l, err := r.getLoggerLocked(name, level)
		if err != nil {
			return err
		}
		l.console.min = ParseSeverity(level)
	}
	return nil
}

// LogPath reports the shared log file path, or the empty string while no
// logger has been built yet.
func (r *Registry) LogPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logPath
}

// Close releases the shared log file handle. Safe to call more than once.
// A logger built after Close reopens the same path in append mode, so the
// one-file-per-process rule holds even across a close.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.logFile == nil {
		return nil
	}
	err := r.logFile.Close()
	r.logFile = nil
	if err != nil {
		return fmt.Errorf("logging: close log file %s: %w", r.logPath, err)
	}
	return nil
}

// --- package-level default registry ---

// Default is the process-wide registry behind the package-level functions.
// Programs that need injection points build their own Registry instead.
var Default = NewRegistry()

// GetLogger resolves name in the Default registry. See Registry.GetLogger.
func GetLogger(name, consoleVerbosity string) (*Logger, error) {
	return Default.GetLogger(name, consoleVerbosity)
}

// SetModuleLevels applies console verbosity overrides to the Default
// registry. See Registry.SetModuleLevels.
func SetModuleLevels(levels map[string]string) error {
	return Default.SetModuleLevels(levels)
}

// ApplyNoisePolicy applies suppression floors to the Default registry. See
// Registry.ApplyNoisePolicy.
func ApplyNoisePolicy(overrides map[string]Severity) error {
	return Default.ApplyNoisePolicy(overrides)
}

// LogPath reports the Default registry's shared log file path.
func LogPath() string { return Default.LogPath() }

// Close closes the Default registry's shared log file.
func Close() error { return Default.Close() }
