package logging

import "fmt"

// timeLayout is the timestamp layout used in every rendered line, console
// and file alike.
const timeLayout = "2006-01-02 15:04:05.000"

// FormatRecord renders a record as a single line:
//
//	<timestamp> - <originFile> - <loggerName> - [<LEVEL>] - <message>
//
// When colorize is true the whole line is wrapped in the color escape for
// the record's severity followed by ColorReset. The file sink always passes
// colorize=false so archived logs stay free of escape sequences.
func FormatRecord(r Record, colorize bool) string {
	line := fmt.Sprintf("%s - %s - %s - [%s] - %s",
		r.Time.Format(timeLayout), r.Origin, r.Logger, r.Level, r.Message)
	if !colorize {
		return line
	}
	return ColorFor(r.Level) + line + ColorReset
}
