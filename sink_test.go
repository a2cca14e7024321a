package tlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampedPath(t *testing.T) {
	startup := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		path string
		want string
	}{
		{"app_log.log", "app_log_2024-01-01_12-00-00.log"},
		{"noext", "noext_2024-01-01_12-00-00"},
		{"logs/app.txt", "logs/app_2024-01-01_12-00-00.txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, timestampedPath(tt.path, startup))
	}
}

func TestBOMWrittenOnFreshFile(t *testing.T) {
	logger, logPath := createTestLogger(t)

	logger.Log(LevelInfo, "first", "a.go", 1)
	require.NoError(t, logger.Flush(time.Second))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	require.Greater(t, len(data), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	// The first rendered line follows the marker immediately
	assert.NotEqual(t, byte('\n'), data[3])
	assert.Contains(t, string(data[3:]), "first")

	logger.Shutdown()
}

func TestBOMNotRepeatedOnAppend(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = logPath
	cfg.TimestampSuffix = false

	logger := New()
	require.NoError(t, logger.ApplyConfig(cfg))
	logger.Log(LevelInfo, "first", "a.go", 1)
	require.NoError(t, logger.Shutdown())

	logger2 := New()
	require.NoError(t, logger2.ApplyConfig(cfg))
	logger2.Log(LevelInfo, "second", "a.go", 2)
	require.NoError(t, logger2.Shutdown())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	// Exactly one leading marker in the whole file
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.NotContains(t, string(data[3:]), "\xef\xbb\xbf")

	lines := readLogLines(t, logPath)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestTruncateModeResetsFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(logPath, []byte("stale content\n"), 0644))

	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = logPath
	cfg.TimestampSuffix = false
	cfg.Append = false

	logger := New()
	require.NoError(t, logger.ApplyConfig(cfg))
	logger.Log(LevelInfo, "fresh", "a.go", 1)
	require.NoError(t, logger.Shutdown())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "stale")
	// Truncated back to empty, so the marker is stamped again
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestUTF16LEEncoding(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = logPath
	cfg.TimestampSuffix = false
	cfg.Template = "{m}"
	cfg.Encoding = "utf-16le"

	logger := New()
	require.NoError(t, logger.ApplyConfig(cfg))
	logger.Log(LevelInfo, "hi", "a.go", 1)
	require.NoError(t, logger.Shutdown())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	want := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}
	assert.Equal(t, want, data)
}

func TestParentDirectoryCreated(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "deeper", "test.log")

	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = logPath
	cfg.TimestampSuffix = false

	logger := New()
	require.NoError(t, logger.ApplyConfig(cfg))
	logger.Log(LevelInfo, "created", "a.go", 1)
	require.NoError(t, logger.Shutdown())

	_, err := os.Stat(logPath)
	assert.NoError(t, err)
}

func TestTimestampSuffixApplied(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = filepath.Join(tmpDir, "app.log")
	cfg.TimestampSuffix = true

	logger := New()
	require.NoError(t, logger.ApplyConfig(cfg))
	logger.Log(LevelInfo, "stamped", "a.go", 1)
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	assert.Regexp(t, `^app_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.log$`, name)
}

func TestMissingFileHandleSkipsWrite(t *testing.T) {
	// File target selected but no path configured: writes are skipped with
	// a diagnostic, never a crash
	logger := New()
	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.InternalErrorsToStderr = false
	require.NoError(t, logger.ApplyConfig(cfg))

	logger.Log(LevelInfo, "nowhere to go", "a.go", 1)
	assert.NoError(t, logger.Flush(time.Second))
	assert.NoError(t, logger.Shutdown())
}

func TestUnwritablePathDegradesGracefully(t *testing.T) {
	logger := New()
	cfg := DefaultConfig()
	cfg.Target = TargetBoth
	cfg.FilePath = string([]byte{0}) + "/invalid/path.log"
	cfg.TimestampSuffix = false
	cfg.InternalErrorsToStderr = false

	// Open failure is a diagnostic, not a configuration error
	require.NoError(t, logger.ApplyConfig(cfg))
	assert.Nil(t, logger.currentFileSink())

	logger.Log(LevelInfo, "degraded", "a.go", 1)
	assert.NoError(t, logger.Shutdown())
}
