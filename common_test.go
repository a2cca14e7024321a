package tlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// syncBuffer is a goroutine-safe bytes.Buffer for capturing console output
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// createTestLogger creates a file-backed logger with a deterministic path
// (no timestamp suffix) in a temp directory
func createTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "test.log")
	logger := New()

	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = logPath
	cfg.TimestampSuffix = false

	err := logger.ApplyConfig(cfg)
	require.NoError(t, err)

	return logger, logPath
}

// readLogLines reads a log file, strips the leading byte-order marker, and
// returns the newline-terminated lines
func readLogLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := strings.TrimPrefix(string(data), "\xef\xbb\xbf")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
