package daemon

import (
	"fmt"
	"log"
	"os"
)

// logLevelRank orders LogLevel values so Logger can filter by minimum
// severity. Higher rank is more severe.
var logLevelRank = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

// Logger is a small leveled wrapper over the standard library's
// log.Logger, writing to stderr — the same shape the teacher's CLI uses
// for its -verbose output, generalized to four levels instead of one
// on/off flag. No example repo in this daemon's reference corpus imports
// a structured logging library, so this stays on the standard library
// (see DESIGN.md).
type Logger struct {
	std *log.Logger
	min int
}

// NewLogger returns a Logger that writes to stderr, filtering out
// messages below level (one of ValidLogLevels; an unrecognized value
// defaults to "info").
func NewLogger(level string) *Logger {
	min, ok := logLevelRank[level]
	if !ok {
		min = logLevelRank["info"]
	}
	return &Logger{
		std: log.New(os.Stderr, "", log.LstdFlags),
		min: min,
	}
}

func (l *Logger) logf(level string, format string, args ...any) {
	if logLevelRank[level] < l.min {
		return
	}
	l.std.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.logf("debug", format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.logf("info", format, args...) }

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) { l.logf("warn", format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.logf("error", format, args...) }
