package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode controls whether console sinks wrap their output in ANSI color
// escapes.
type ColorMode int

const (
	// ColorAlways colorizes unconditionally. This is the default: console
	// output carries the severity's color token even when redirected.
	ColorAlways ColorMode = iota
	// ColorNever disables colorization.
	ColorNever
	// ColorAuto colorizes only when the console writer is a terminal,
	// NO_COLOR is unset, and TERM is not "dumb".
	ColorAuto
)

// String returns the mode's flag spelling.
func (m ColorMode) String() string {
	switch m {
	case ColorNever:
		return "never"
	case ColorAuto:
		return "auto"
	default:
		return "always"
	}
}

// ParseColorMode resolves a mode string ("always", "auto", "never",
// case-insensitive). Anything else falls back to ColorAlways, mirroring the
// permissive handling of verbosity strings.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never":
		return ColorNever
	case "auto":
		return ColorAuto
	default:
		return ColorAlways
	}
}

// enabled decides, at sink-attachment time, whether output to w should be
// colorized under this mode.
func (m ColorMode) enabled(w io.Writer) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
			return false
		}
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return true
	}
}
