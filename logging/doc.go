// Package logging provides named, severity-leveled loggers that write
// color-coded lines to the console and duplicate every record into a
// shared per-process log file.
//
// # Console Output
//
// Each line is rendered as
//
//	2026-03-14 09:21:07.512 - main.go - school.db - [WARNING] - pool nearly full
//
// and wrapped in the ANSI color of its severity: blue DEBUG, green INFO,
// yellow WARNING, red ERROR, magenta CRITICAL. The file copy uses the same
// layout without color codes.
//
// # Features
//
//   - Five severities: DEBUG, INFO, WARNING, ERROR, CRITICAL
//   - Per-logger console verbosity, set at creation or retuned in batch
//   - One shared log file per process, named after its first moment of use
//   - CRITICAL records terminate the process with exit status 1 after
//     both sinks have written them
//   - Suppression floors for noisy third-party log streams
//   - Optional TOML configuration for levels, color mode, and directory
//
// # Usage
//
// Request loggers by name; the same name always yields the same logger:
//
//	log, err := logging.GetLogger("school.api", "DEBUG")
//	if err != nil {
//	    // the shared log file could not be created
//	}
//	log.Info("listening on %s", addr)
//	log.Critical("unrecoverable: %v", err) // does not return
//
// Retune console verbosity per logger without touching call sites:
//
//	logging.SetModuleLevels(map[string]string{
//	    "school.db":  "WARNING",
//	    "school.api": "DEBUG",
//	})
//
// Silence a chatty dependency everywhere, file included:
//
//	logging.ApplyNoisePolicy(map[string]logging.Severity{
//	    "urllib3": logging.WarningLevel,
//	})
//
// Programs that need their own sinks, exit hook, or log directory build a
// private Registry with NewRegistry and options instead of the package
// functions.
package logging
