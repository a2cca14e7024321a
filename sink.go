package tlog

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// bomFor returns the byte-order marker for the configured text encoding.
func bomFor(enc string) []byte {
	switch enc {
	case "utf-16le":
		return []byte{0xFF, 0xFE}
	case "utf-16be":
		return []byte{0xFE, 0xFF}
	default:
		return []byte{0xEF, 0xBB, 0xBF}
	}
}

// encoderFor returns the transcoding encoder for non-UTF-8 encodings,
// nil when bytes are written unchanged.
func encoderFor(enc string) *encoding.Encoder {
	switch enc {
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	default:
		return nil
	}
}

// timestampedPath inserts the startup timestamp before the file extension,
// or appends it when the path has none.
func timestampedPath(path string, startup time.Time) string {
	stamp := startup.Format(suffixTimeFormat)
	ext := filepath.Ext(path)
	if ext == "" {
		return path + "_" + stamp
	}
	return strings.TrimSuffix(path, ext) + "_" + stamp + ext
}

// openLogFile resolves the effective path, creates the parent directory if
// absent, opens the file in truncate or append mode, and stamps a
// byte-order marker when the file is new and empty.
func openLogFile(cfg *Config, startup time.Time) (*fileSink, error) {
	path := cfg.FilePath
	if cfg.TimestampSuffix {
		path = timestampedPath(path, startup)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmtErrorf("failed to create log directory '%s': %w", dir, err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if cfg.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file '%s': %w", path, err)
	}

	if fi, errStat := f.Stat(); errStat == nil && fi.Size() == 0 {
		if _, err := f.Write(bomFor(cfg.Encoding)); err != nil {
			_ = f.Close()
			return nil, fmtErrorf("failed to write byte-order marker to '%s': %w", path, err)
		}
	}

	return &fileSink{file: f, path: path, enc: encoderFor(cfg.Encoding)}, nil
}

// writeMessage renders one message and writes it to the active targets.
// Runs on the worker goroutine only. No lock is held during the write
// syscalls; the target set and template are read from the config current at
// write time, so live reconfiguration affects in-flight messages.
func (l *Logger) writeMessage(msg Message) {
	cfg := l.getConfig()
	l.renderer.setTimestampFormat(cfg.TimestampFormat)
	line := append(l.renderer.render(cfg.Template, msg), '\n')

	if cfg.Target&TargetConsole != 0 {
		if cw := l.consoleWriter(); cw != nil {
			if _, err := cw.w.Write(line); err != nil {
				l.internalLog("console write failed: %v\n", err)
			}
		}
	}

	if cfg.Target&TargetFile != 0 {
		l.writeFile(line)
	}

	l.state.totalWritten.Add(1)
}

// writeFile appends a rendered line to the current log file and forces a
// flush to disk. A missing file handle surfaces a diagnostic, not an error;
// write failures are reported and the line is lost for the file target.
func (l *Logger) writeFile(line []byte) {
	fs := l.currentFileSink()
	if fs == nil || fs.file == nil {
		l.internalLog("no log file open, file output skipped\n")
		return
	}

	payload := line
	if fs.enc != nil {
		encoded, err := fs.enc.Bytes(line)
		if err != nil {
			l.internalLog("failed to transcode line for '%s': %v\n", fs.path, err)
			return
		}
		payload = encoded
	}

	if _, err := fs.file.Write(payload); err != nil {
		l.internalLog("failed to write to log file '%s': %v\n", fs.path, err)
		return
	}
	// Sync per message so an unexpected termination loses nothing written
	if err := fs.file.Sync(); err != nil {
		l.internalLog("failed to sync log file '%s': %v\n", fs.path, err)
	}
}

// syncFile flushes the current log file buffer to disk.
func (l *Logger) syncFile() {
	if fs := l.currentFileSink(); fs != nil && fs.file != nil {
		if err := fs.file.Sync(); err != nil {
			l.internalLog("failed to sync log file '%s': %v\n", fs.path, err)
		}
	}
}

// currentFileSink safely retrieves the active file sink, which may be nil.
func (l *Logger) currentFileSink() *fileSink {
	fsPtr := l.state.fileSink.Load()
	if fsPtr == nil {
		return nil
	}
	fs, _ := fsPtr.(*fileSink)
	return fs
}

// consoleWriter safely retrieves the active console writer.
func (l *Logger) consoleWriter() *consoleSink {
	cwPtr := l.state.consoleWriter.Load()
	if cwPtr == nil {
		return nil
	}
	cw, _ := cwPtr.(*consoleSink)
	return cw
}
