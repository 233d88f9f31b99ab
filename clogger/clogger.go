package clogger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Level defines log record severity.
type Level int

const (
	// TraceLevel is the lowest severity. It sits below the fixed dispatch
	// floor and has no emission helper; it is reserved for future use.
	TraceLevel Level = iota
	// DebugLevel enables debug logging.
	DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
)

// String returns the single-letter glyph used in rendered lines.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "T"
	case DebugLevel:
		return "D"
	case InfoLevel:
		return "I"
	case WarnLevel:
		return "W"
	case ErrorLevel:
		return "E"
	default:
		return "?"
	}
}

// Logger renders records and fans each one out to standard output and to an
// append-mode log file. All methods are safe for concurrent use; the zero
// value is not usable, construct with New.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	console  io.Writer
	file     *os.File
}

// Dependency injection point for testing console output.
var outStdout io.Writer = os.Stdout

// New opens logFilePath in append mode (creating it if needed) and returns a
// logger that writes every record to standard output and to the file. A
// discard path such as os.DevNull opens successfully and simply produces no
// file content.
func New(logFilePath string) (*Logger, error) {
	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", logFilePath)
	}
	return &Logger{
		minLevel: DebugLevel,
		console:  outStdout,
		file:     f,
	}, nil
}

// global state
var (
	initOnce sync.Once
	active   atomic.Pointer[Logger]
)

// Init installs the process-wide logger exactly once. The first call opens
// logFilePath in append mode, wires the console and file sinks, and emits a
// bootstrap record through the new pipeline; every later call, with any path,
// is a silent no-op and the first path wins for the process lifetime.
//
// Init panics if the file cannot be opened: all subsequent logging depends on
// the sink, so a broken one is surfaced immediately rather than discovered
// later. Helpers called before Init drop their records. There is no teardown;
// the file handle lives until process exit.
func Init(logFilePath string) {
	initOnce.Do(func() {
		l, err := New(logFilePath)
		if err != nil {
			panic(err)
		}
		active.Store(l)
		l.emit(InfoLevel, "clogger", "logger initialized")
	})
}

// emit renders one record and writes the identical bytes to both sinks while
// holding the mutex, so concurrent callers never interleave partial lines.
// Records below the floor reach neither sink. Write errors are dropped: a
// failing sink must never propagate into application code.
func (l *Logger) emit(level Level, target, msg string) {
	if level < l.minLevel {
		return
	}
	line := []byte(formatRecord(time.Now(), level, target, msg))
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.console.Write(line)
	_, _ = l.file.Write(line)
}

// callerTarget derives a target tag for the caller skip frames above this
// function, in "package.Function (file:line)" form. The runtime exposes no
// column information, so the tag carries file and line only.
func callerTarget(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
		// Strip the import path, keep package.Function.
		if i := strings.LastIndex(name, "/"); i >= 0 && i+1 < len(name) {
			name = name[i+1:]
		}
	}
	return fmt.Sprintf("%s (%s:%d)", name, file, line)
}

// taggedTarget suffixes an explicit target with the call site skip frames
// above this function.
func taggedTarget(target string, skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return target
	}
	return fmt.Sprintf("%s (%s:%d)", target, file, line)
}

// --- Package-level emission helpers (auto-derived target) ---

// Debugf logs a debug message formatted with fmt.Sprintf. The target tag is
// derived from the calling function. Thread-safe for concurrent use.
func Debugf(format string, v ...any) {
	if l := active.Load(); l != nil {
		l.emit(DebugLevel, callerTarget(2), fmt.Sprintf(format, v...))
	}
}

// Infof logs an informational message formatted with fmt.Sprintf. The target
// tag is derived from the calling function. Thread-safe for concurrent use.
func Infof(format string, v ...any) {
	if l := active.Load(); l != nil {
		l.emit(InfoLevel, callerTarget(2), fmt.Sprintf(format, v...))
	}
}

// Warnf logs a warning message formatted with fmt.Sprintf. The target tag is
// derived from the calling function. Thread-safe for concurrent use.
func Warnf(format string, v ...any) {
	if l := active.Load(); l != nil {
		l.emit(WarnLevel, callerTarget(2), fmt.Sprintf(format, v...))
	}
}

// Errorf logs an error message formatted with fmt.Sprintf. The target tag is
// derived from the calling function. Thread-safe for concurrent use.
func Errorf(format string, v ...any) {
	if l := active.Load(); l != nil {
		l.emit(ErrorLevel, callerTarget(2), fmt.Sprintf(format, v...))
	}
}

// --- Package-level emission helpers (explicit target) ---

// DebugAs logs a debug message under an explicit target tag, suffixed with
// the call site. Thread-safe for concurrent use.
func DebugAs(target, format string, v ...any) {
	if l := active.Load(); l != nil {
		l.emit(DebugLevel, taggedTarget(target, 2), fmt.Sprintf(format, v...))
	}
}

// InfoAs logs an informational message under an explicit target tag, suffixed
// with the call site. Thread-safe for concurrent use.
func InfoAs(target, format string, v ...any) {
	if l := active.Load(); l != nil {
		l.emit(InfoLevel, taggedTarget(target, 2), fmt.Sprintf(format, v...))
	}
}

// WarnAs logs a warning message under an explicit target tag, suffixed with
// the call site. Thread-safe for concurrent use.
func WarnAs(target, format string, v ...any) {
	if l := active.Load(); l != nil {
		l.emit(WarnLevel, taggedTarget(target, 2), fmt.Sprintf(format, v...))
	}
}

// ErrorAs logs an error message under an explicit target tag, suffixed with
// the call site. Thread-safe for concurrent use.
func ErrorAs(target, format string, v ...any) {
	if l := active.Load(); l != nil {
		l.emit(ErrorLevel, taggedTarget(target, 2), fmt.Sprintf(format, v...))
	}
}

// --- Instance emission methods, for injected loggers ---

// Debugf logs a debug message through this instance with an auto-derived
// target tag.
func (l *Logger) Debugf(format string, v ...any) {
	l.emit(DebugLevel, callerTarget(2), fmt.Sprintf(format, v...))
}

// Infof logs an informational message through this instance with an
// auto-derived target tag.
func (l *Logger) Infof(format string, v ...any) {
	l.emit(InfoLevel, callerTarget(2), fmt.Sprintf(format, v...))
}

// Warnf logs a warning message through this instance with an auto-derived
// target tag.
func (l *Logger) Warnf(format string, v ...any) {
	l.emit(WarnLevel, callerTarget(2), fmt.Sprintf(format, v...))
}

// Errorf logs an error message through this instance with an auto-derived
// target tag.
func (l *Logger) Errorf(format string, v ...any) {
	l.emit(ErrorLevel, callerTarget(2), fmt.Sprintf(format, v...))
}

// DebugAs logs a debug message through this instance under an explicit
// target tag.
func (l *Logger) DebugAs(target, format string, v ...any) {
	l.emit(DebugLevel, taggedTarget(target, 2), fmt.Sprintf(format, v...))
}

// InfoAs logs an informational message through this instance under an
// explicit target tag.
func (l *Logger) InfoAs(target, format string, v ...any) {
	l.emit(InfoLevel, taggedTarget(target, 2), fmt.Sprintf(format, v...))
}

// WarnAs logs a warning message through this instance under an explicit
// target tag.
func (l *Logger) WarnAs(target, format string, v ...any) {
	l.emit(WarnLevel, taggedTarget(target, 2), fmt.Sprintf(format, v...))
}

// ErrorAs logs an error message through this instance under an explicit
// target tag.
func (l *Logger) ErrorAs(target, format string, v ...any) {
	l.emit(ErrorLevel, taggedTarget(target, 2), fmt.Sprintf(format, v...))
}
