// Package output provides terminal output utilities for create-nulla.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// stdout receives user-facing text written by Println.
var stdout io.Writer = os.Stdout

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides timestamp display. nil means on.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetStdout redirects Println. It returns the previous writer.
func SetStdout(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}

// ProjectLogger returns a child logger prefixed with the project slug.
func ProjectLogger(slug string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render("p:" + slug))
}

// IsDebug reports whether debug logging is enabled.
func IsDebug() bool {
	return logger.GetLevel() <= log.DebugLevel
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}
