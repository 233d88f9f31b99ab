// Package clogger is a process-wide logging facade with colorized,
// timestamped, leveled output fanned out to the terminal and a log file.
//
// # Output
//
// Every record renders as one line:
//
//	(<timestamp>) [<glyph>] [<target>] <message>
//
// The glyph is a single level letter (I/W/E/D), the timestamp has
// millisecond precision in local time, and the target tags the record's
// logical origin together with the call site as "name (file:line)".
// The same bytes go to standard output and to the file, colors included.
//
// # Usage
//
// Initialize once at startup; the first call wins and later calls are no-ops:
//
//	clogger.Init("/var/log/app.log")
//	clogger.Init(os.DevNull) // discard path: succeeds, drops file content
//
// Emit with an auto-derived target:
//
//	clogger.Infof("server started on port %d", 8080)
//	clogger.Errorf("failed to connect: %v", err)
//
// Or tag the logical origin explicitly:
//
//	clogger.WarnAs("server::http", "slow request: %s", path)
//
// For dependency injection, New returns a standalone instance with the same
// emission methods.
//
// # Behavior notes
//
// The severity floor is fixed at debug; TraceLevel exists but is never
// dispatched. Init panics if the log file cannot be opened. Helpers called
// before Init drop their records. There is no teardown API; the file handle
// is reclaimed at process exit. All entry points are safe for concurrent use
// and never interleave partial lines.
package clogger
