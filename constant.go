package tlog

import (
	"time"
)

// Level orders log severities from most to least verbose. A message is
// accepted iff its level is at or above the configured minimum.
type Level int64

// Log level constants
const (
	LevelTrace    Level = -8
	LevelDebug    Level = -4
	LevelInfo     Level = 0
	LevelWarning  Level = 4
	LevelError    Level = 8
	LevelCritical Level = 12
)

// Target selects log destinations as a bit set. Console and File may be
// combined.
type Target int64

// Output target constants
const (
	TargetConsole Target = 0b01
	TargetFile    Target = 0b10
	TargetBoth           = TargetConsole | TargetFile
)

// DefaultTemplate is the placeholder template used when none is configured.
// Placeholders: {t} timestamp, {L} level name, {f} source file, {l} source
// line, {m} message text.
const DefaultTemplate = "{t} | {L} | {f}:{l} -> {m}"

// DefaultTimestampFormat renders timestamps as YYYY-MM-DD HH:MM:SS.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// suffixTimeFormat is inserted into file names when timestamp suffixing
// is enabled, e.g. app_log.log -> app_log_2024-01-01_12-00-00.log.
const suffixTimeFormat = "2006-01-02_15-04-05"

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
	// Shutdown join timeout when the caller does not provide one
	defaultShutdownTimeout = 2 * time.Second
)
