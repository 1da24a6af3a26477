package utilz

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel classifies the severity of a log entry. Levels are ordered, with
// TraceLevel the least severe and ErrorLevel the most.
type LogLevel int

const (
	// TraceLevel is for very fine-grained diagnostic output.
	TraceLevel LogLevel = iota
	// DebugLevel is for diagnostic output.
	DebugLevel
	// InfoLevel is for normal operational events. It is the default filter.
	InfoLevel
	// WarnLevel is for unexpected but non-fatal conditions.
	WarnLevel
	// ErrorLevel is for failures.
	ErrorLevel
)

// String returns the uppercase name of the level.
func (l LogLevel) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a level name, case-insensitively. Common aliases are
// accepted ("warning", "err"). Unrecognized input yields InfoLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error", "err":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// LogEntry is a single stored log line. Entries are immutable once created.
type LogEntry struct {
	Level   LogLevel
	Message string
	Time    time.Time
}

// String renders the entry as "[LEVEL] message". The timestamp is stored but
// not part of the rendered line.
func (e LogEntry) String() string {
	return "[" + e.Level.String() + "] " + e.Message
}

// Logger is an in-memory, append-only log buffer with a minimum-severity
// filter. Entries below the filter are discarded at log time; entries already
// stored are never re-filtered when the level changes. The buffer grows until
// Clear is called.
//
// A Logger is safe for concurrent use. The zero value is not ready; use
// NewLogger.
type Logger struct {
	mu      sync.RWMutex
	min     LogLevel
	entries []LogEntry
	out     io.Writer
}

// NewLogger returns a Logger with an empty buffer, the filter set to
// InfoLevel, and output directed to stdout.
func NewLogger() *Logger {
	return &Logger{
		min:     InfoLevel,
		entries: make([]LogEntry, 0, 64),
		out:     os.Stdout,
	}
}

// SetLevel sets the minimum severity required for future Log calls to be
// retained. Previously stored entries are unaffected.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.min = clampLevel(level)
}

// SetOutput redirects Print output. Passing nil restores stdout.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	l.out = w
}

// Log stores a timestamped entry if level is at or above the current filter,
// and is otherwise a no-op. Levels outside the known range are clamped, so
// anything below TraceLevel logs as trace and anything above ErrorLevel logs
// as error. Log never fails; the message is stored verbatim.
func (l *Logger) Log(level LogLevel, message string) {
	level = clampLevel(level)
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.min {
		return
	}
	l.entries = append(l.entries, LogEntry{
		Level:   level,
		Message: message,
		Time:    time.Now(),
	})
}

// LogMessage stores a message at the current filter level itself, so it is
// always retained.
func (l *Logger) LogMessage(message string) {
	l.mu.RLock()
	min := l.min
	l.mu.RUnlock()
	l.Log(min, message)
}

// Trace logs a message at TraceLevel.
func (l *Logger) Trace(message string) { l.Log(TraceLevel, message) }

// Debug logs a message at DebugLevel.
func (l *Logger) Debug(message string) { l.Log(DebugLevel, message) }

// Info logs a message at InfoLevel.
func (l *Logger) Info(message string) { l.Log(InfoLevel, message) }

// Warn logs a message at WarnLevel.
func (l *Logger) Warn(message string) { l.Log(WarnLevel, message) }

// Error logs a message at ErrorLevel.
func (l *Logger) Error(message string) { l.Log(ErrorLevel, message) }

// Entries returns a copy of all stored entries in insertion order.
func (l *Logger) Entries() []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Lines returns the stored entries rendered as "[LEVEL] message" strings, in
// insertion order. The buffer is left untouched.
func (l *Logger) Lines() []string {
	entries := l.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// Print writes each stored entry to the output writer, one per line, in
// insertion order.
func (l *Logger) Print() {
	l.mu.RLock()
	out := l.out
	l.mu.RUnlock()
	for _, line := range l.Lines() {
		fmt.Fprintln(out, line)
	}
}

// Clear empties the buffer. The filter is left unchanged. Clearing an empty
// buffer is a no-op.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

func clampLevel(level LogLevel) LogLevel {
	return ClampTo(level, TraceLevel, ErrorLevel)
}

// std is the process-wide default logger used by the package-level functions.
var std = NewLogger()

// Default returns the process-wide logger, for callers that prefer passing an
// explicit handle around.
func Default() *Logger {
	return std
}

// SetUpLogger sets the default logger's minimum severity. Only future Log
// calls are affected.
func SetUpLogger(level LogLevel) {
	std.SetLevel(level)
}

// Log stores a message on the default logger if level passes the current
// filter.
func Log(level LogLevel, message string) {
	std.Log(level, message)
}

// LogMessage stores a message on the default logger at its current filter
// level.
func LogMessage(message string) {
	std.LogMessage(message)
}

// LogTrace logs a message at TraceLevel on the default logger.
func LogTrace(message string) { std.Trace(message) }

// LogDebug logs a message at DebugLevel on the default logger.
func LogDebug(message string) { std.Debug(message) }

// LogInfo logs a message at InfoLevel on the default logger.
func LogInfo(message string) { std.Info(message) }

// LogWarn logs a message at WarnLevel on the default logger.
func LogWarn(message string) { std.Warn(message) }

// LogError logs a message at ErrorLevel on the default logger.
func LogError(message string) { std.Error(message) }

// GetLogs returns the default logger's rendered entries in insertion order.
func GetLogs() []string {
	return std.Lines()
}

// PrintLogs writes the default logger's entries to its output, one per line.
func PrintLogs() {
	std.Print()
}

// ClearLogs empties the default logger's buffer, leaving its filter intact.
func ClearLogs() {
	std.Clear()
}
