package tlog

import (
	"time"
)

// Global instance for package-level functions
var defaultLogger = New()

// Default package-level functions that delegate to the default logger

// Init initializes or reconfigures the default logger's destination and threshold
func Init(level Level, filePath string, appendMode, timestampSuffix bool) error {
	return defaultLogger.Init(level, filePath, appendMode, timestampSuffix)
}

// ApplyConfig applies a validated configuration to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyOverride applies string key-value overrides to the default logger
func ApplyOverride(overrides ...string) error {
	return defaultLogger.ApplyOverride(overrides...)
}

// SetLevel sets the minimum level for subsequent log calls
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// SetTarget sets the output destination bit set
func SetTarget(target Target) {
	defaultLogger.SetTarget(target)
}

// SetTemplate sets the placeholder template
func SetTemplate(template string) {
	defaultLogger.SetTemplate(template)
}

// Log submits a message with an explicit level and source location
func Log(level Level, text string, file string, line int) {
	defaultLogger.Log(level, text, file, line)
}

// Trace logs a message at trace level
func Trace(args ...any) {
	defaultLogger.emit(LevelTrace, args)
}

// Debug logs a message at debug level
func Debug(args ...any) {
	defaultLogger.emit(LevelDebug, args)
}

// Info logs a message at info level
func Info(args ...any) {
	defaultLogger.emit(LevelInfo, args)
}

// Warning logs a message at warning level
func Warning(args ...any) {
	defaultLogger.emit(LevelWarning, args)
}

// Error logs a message at error level
func Error(args ...any) {
	defaultLogger.emit(LevelError, args)
}

// Critical logs a message at critical level
func Critical(args ...any) {
	defaultLogger.emit(LevelCritical, args)
}

// Flush waits until every queued message has been written, or the timeout elapses
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}

// Shutdown drains the default logger and releases its file handle
func Shutdown(timeout ...time.Duration) error {
	return defaultLogger.Shutdown(timeout...)
}
