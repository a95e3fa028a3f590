package logging

// ApplyNoisePolicy raises the emission floor of named third-party log
// streams in one declarative batch, creating any logger that does not exist
// yet. A suppressed logger drops records below its floor before any sink
// sees them, console and shared file alike, so a chatty library's DEBUG
// output cannot surface in a program whose own loggers run wide open.
// Records at or above the floor flow through every sink as usual.
//
// The policy is meant to be applied once at startup with a static table of
// library names. Applying it again replaces the floors it names; it never
// lowers a console threshold that was set independently.
func (r *Registry) ApplyNoisePolicy(overrides map[string]Severity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, floor := range overrides {
		l, err := r.getLoggerLocked(name, floor.String())
		if err != nil {
			return err
		}
		l.level = floor
	}
	return nil
}
