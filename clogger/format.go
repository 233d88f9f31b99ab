package clogger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// Sprint functions are built once. fatih/color resolves NO_COLOR and
// non-terminal stdout globally, and the escapes are baked into the rendered
// line, so both sinks always receive identical bytes. Colored lines land in
// the log file verbatim, which keeps them replayable through a color-aware
// pager.
var (
	cyan    = color.New(color.FgCyan).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	red     = color.New(color.FgRed).SprintFunc()
	blue    = color.New(color.FgBlue).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
)

// glyph returns the level letter wrapped in its level color.
func glyph(level Level) string {
	switch level {
	case InfoLevel:
		return green(level.String())
	case WarnLevel:
		return yellow(level.String())
	case ErrorLevel:
		return red(level.String())
	case DebugLevel:
		return blue(level.String())
	default:
		return magenta(level.String())
	}
}

// formatRecord renders one record as a display line, newline included:
//
//	(<timestamp>) [<glyph>] [<target>] <message>
//
// The timestamp is millisecond-precision local time in cyan and the target is
// magenta. Warn and error messages take their level color; info and debug
// messages stay uncolored.
func formatRecord(ts time.Time, level Level, target, msg string) string {
	switch level {
	case WarnLevel:
		msg = yellow(msg)
	case ErrorLevel:
		msg = red(msg)
	}
	return fmt.Sprintf("(%s) [%s] [%s] %s\n",
		cyan(ts.Format("2006-01-02 15:04:05.000")),
		glyph(level),
		magenta(target),
		msg)
}
