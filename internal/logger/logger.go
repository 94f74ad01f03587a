// Package logger provides leveled logging to stderr.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Logger is a wrapper around the standard library logger
type Logger struct {
	*log.Logger
	debug bool
}

// New creates a logger writing to w. Debug lines are dropped unless debug is set.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{
		Logger: log.New(w, "", 0),
		debug:  debug,
	}
}

func (l *Logger) formatMessage(level, format string, v ...interface{}) string {
	timestamp := time.Now().Format(time.RFC3339)
	return fmt.Sprintf("[%s] [%s] %s", timestamp, level, fmt.Sprintf(format, v...))
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.Logger.Println(l.formatMessage("INFO", format, v...))
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.Logger.Println(l.formatMessage("WARN", format, v...))
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.Logger.Println(l.formatMessage("ERROR", format, v...))
}

// Debug logs a debug message when debug output is enabled.
func (l *Logger) Debug(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.Logger.Println(l.formatMessage("DEBUG", format, v...))
}

// Global logger instance for application-wide logging
var Global = New(os.Stderr, false)

// SetGlobal sets the global logger
func SetGlobal(logger *Logger) {
	Global = logger
}
