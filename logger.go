package tlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is the core struct that encapsulates all sink functionality.
// A zero-configured Logger is usable immediately: console output, the
// default template, and the most verbose level apply until Init is called.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         state
	initMu        sync.Mutex

	queue    *mailbox
	renderer *renderer

	startOnce sync.Once
	done      chan struct{} // closed by the worker on exit

	startupTime   time.Time
	heartbeatStop chan struct{} // guarded by initMu
}

// New creates a new Logger instance with default settings. The background
// worker starts lazily on the first submission or configuration.
func New() *Logger {
	l := &Logger{
		queue:       newMailbox(0),
		renderer:    newRenderer(DefaultTimestampFormat),
		done:        make(chan struct{}),
		startupTime: time.Now(),
	}

	l.currentConfig.Store(DefaultConfig())

	l.state.WorkerExited.Store(true)
	l.state.consoleWriter.Store(&consoleSink{w: os.Stdout})
	l.state.fileSink.Store((*fileSink)(nil))

	return l
}

// Init (re)configures the destination and threshold, keeping all other
// settings. It is re-invocable: a previously open log file is closed and
// the new path opened. Messages already queued are written via whichever
// file handle is active when the worker processes them.
func (l *Logger) Init(level Level, filePath string, appendMode, timestampSuffix bool) error {
	cfg := l.GetConfig()
	cfg.Level = level
	cfg.FilePath = filePath
	cfg.Append = appendMode
	cfg.TimestampSuffix = timestampSuffix
	return l.ApplyConfig(cfg)
}

// ApplyConfig applies a validated configuration to the logger.
// This is the primary way applications should configure the logger.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// applyConfig is the internal implementation, assuming initMu is held.
// A failure to open the log file is surfaced as a diagnostic and leaves the
// logger running degraded (console-effective); it is not a fatal error.
func (l *Logger) applyConfig(cfg *Config) error {
	if l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger already shut down")
	}

	oldCfg := l.getConfig()
	l.currentConfig.Store(cfg)

	l.queue.setCap(int(cfg.QueueCap))

	// Console writer
	var writer io.Writer = os.Stdout
	if cfg.ConsoleTarget == "stderr" {
		writer = os.Stderr
	}
	l.state.consoleWriter.Store(&consoleSink{w: writer})

	// File handle transitions
	currentSink := l.currentFileSink()
	needsNewFile := currentSink == nil || currentSink.file == nil ||
		oldCfg.FilePath != cfg.FilePath ||
		oldCfg.Append != cfg.Append ||
		oldCfg.TimestampSuffix != cfg.TimestampSuffix ||
		oldCfg.Encoding != cfg.Encoding

	if cfg.FilePath == "" {
		l.state.fileSink.Store((*fileSink)(nil))
		l.closeFileSink(currentSink)
	} else if needsNewFile {
		newSink, err := openLogFile(cfg, l.startupTime)
		if err != nil {
			// Degraded mode: keep running without a file handle. The worker
			// surfaces a diagnostic when a file write is attempted.
			l.internalLog("%v\n", err)
			newSink = nil
		}
		l.state.fileSink.Store(newSink)
		if currentSink != nil && (newSink == nil || currentSink.file != newSink.file) {
			l.closeFileSink(currentSink)
		}
	}

	// Heartbeat ticker
	if oldCfg.HeartbeatIntervalS != cfg.HeartbeatIntervalS || l.heartbeatStop == nil {
		l.stopHeartbeatLocked()
		if cfg.HeartbeatIntervalS > 0 {
			l.startHeartbeatLocked(time.Duration(cfg.HeartbeatIntervalS) * time.Second)
		}
	}

	l.start()

	return nil
}

// closeFileSink syncs and closes a superseded file handle.
func (l *Logger) closeFileSink(fs *fileSink) {
	if fs == nil || fs.file == nil {
		return
	}
	_ = fs.file.Sync()
	if err := fs.file.Close(); err != nil {
		l.internalLog("warning - failed to close log file '%s': %v\n", fs.path, err)
	}
}

// SetLevel sets the minimum level for subsequent log calls. Messages
// already queued are written regardless of the new minimum.
func (l *Logger) SetLevel(level Level) {
	l.initMu.Lock()
	defer l.initMu.Unlock()
	cfg := l.getConfig().Clone()
	cfg.Level = level
	l.currentConfig.Store(cfg)
}

// SetTarget sets the output destination bit set.
func (l *Logger) SetTarget(target Target) {
	l.initMu.Lock()
	defer l.initMu.Unlock()
	cfg := l.getConfig().Clone()
	cfg.Target = target
	l.currentConfig.Store(cfg)
}

// SetTemplate sets the placeholder template. An empty template restores the
// default.
func (l *Logger) SetTemplate(template string) {
	if strings.TrimSpace(template) == "" {
		template = DefaultTemplate
	}
	l.initMu.Lock()
	defer l.initMu.Unlock()
	cfg := l.getConfig().Clone()
	cfg.Template = template
	l.currentConfig.Store(cfg)
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// Log is the primary submission entry point. The level check is the fast
// path evaluated on the caller's goroutine: below-threshold calls construct
// and enqueue nothing.
func (l *Logger) Log(level Level, text string, file string, line int) {
	cfg := l.getConfig()
	if level < cfg.Level || l.state.ShutdownCalled.Load() {
		return
	}
	l.submit(Message{
		Level:     level,
		Text:      text,
		File:      file,
		Line:      line,
		Timestamp: time.Now(),
	})
}

// Trace logs a message at trace level, capturing the call site.
func (l *Logger) Trace(args ...any) { l.emit(LevelTrace, args) }

// Debug logs a message at debug level, capturing the call site.
func (l *Logger) Debug(args ...any) { l.emit(LevelDebug, args) }

// Info logs a message at info level, capturing the call site.
func (l *Logger) Info(args ...any) { l.emit(LevelInfo, args) }

// Warning logs a message at warning level, capturing the call site.
func (l *Logger) Warning(args ...any) { l.emit(LevelWarning, args) }

// Error logs a message at error level, capturing the call site.
func (l *Logger) Error(args ...any) { l.emit(LevelError, args) }

// Critical logs a message at critical level, capturing the call site.
func (l *Logger) Critical(args ...any) { l.emit(LevelCritical, args) }

// emit joins args into the message text and submits with the caller's
// source location. Must be called directly by an exported entry point so
// the frame skip lands on the user's call site.
func (l *Logger) emit(level Level, args []any) {
	cfg := l.getConfig()
	if level < cfg.Level || l.state.ShutdownCalled.Load() {
		return
	}
	file, line := callSite(2)
	l.submit(Message{
		Level:     level,
		Text:      joinArgs(args),
		File:      file,
		Line:      line,
		Timestamp: time.Now(),
	})
}

// submit enqueues a message, starting the worker if needed. When the
// bounded queue refused earlier messages, a successful push piggybacks a
// drop report so losses are visible in the output.
func (l *Logger) submit(msg Message) {
	l.start()

	if !l.queue.push(item{msg: msg}) {
		l.state.droppedMessages.Add(1)
		return
	}

	if n := l.state.droppedMessages.Swap(0); n > 0 {
		report := Message{
			Level:     LevelError,
			Text:      fmt.Sprintf("%d messages dropped due to queue overflow", n),
			File:      "tlog",
			Timestamp: time.Now(),
		}
		if !l.queue.push(item{msg: report}) {
			l.state.droppedMessages.Add(n) // Restore the count for the next report
		}
	}
}

// Flush waits until every message queued before the call has been written
// and the file buffer synced, or the timeout elapses. The confirmation
// travels through the queue itself, so FIFO order bounds the wait.
func (l *Logger) Flush(timeout time.Duration) error {
	l.start()

	confirm := make(chan struct{})
	if !l.queue.push(item{flush: confirm}) {
		return fmtErrorf("logger already shut down")
	}

	select {
	case <-confirm:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// Shutdown closes the mailbox, waits for the worker to drain every pending
// message and exit, then syncs and releases the file handle. Safe to call
// multiple times; later calls are no-ops.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	l.initMu.Lock()
	l.stopHeartbeatLocked()
	l.initMu.Unlock()

	l.queue.close()

	var finalErr error
	if l.state.Started.Load() {
		effectiveTimeout := defaultShutdownTimeout
		if len(timeout) > 0 {
			effectiveTimeout = timeout[0]
		}
		select {
		case <-l.done:
		case <-time.After(effectiveTimeout):
			finalErr = fmtErrorf("worker did not exit within timeout (%v)", effectiveTimeout)
		}
	}

	// The worker is joined (or timed out); release the file handle.
	if fs := l.currentFileSink(); fs != nil && fs.file != nil {
		if err := fs.file.Sync(); err != nil {
			syncErr := fmtErrorf("failed to sync log file '%s' during shutdown: %w", fs.path, err)
			finalErr = combineErrors(finalErr, syncErr)
		}
		if err := fs.file.Close(); err != nil {
			closeErr := fmtErrorf("failed to close log file '%s' during shutdown: %w", fs.path, err)
			finalErr = combineErrors(finalErr, closeErr)
		}
		l.state.fileSink.Store((*fileSink)(nil))
	}

	return finalErr
}

// start launches the worker goroutine exactly once.
func (l *Logger) start() {
	l.startOnce.Do(func() {
		l.state.Started.Store(true)
		l.state.WorkerExited.Store(false)
		go l.run()
	})
}

// internalLog handles writing internal diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	if !strings.HasPrefix(format, "tlog: ") {
		format = "tlog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
