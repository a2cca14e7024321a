package tlog

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentProducersNoLoss(t *testing.T) {
	logger, logPath := createTestLogger(t)

	const producers = 20
	const perProducer = 200

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				logger.Log(LevelInfo, fmt.Sprintf("p%02d-%04d", id, i), "a.go", i)
			}
		}(p)
	}
	wg.Wait()
	require.NoError(t, logger.Shutdown(30*time.Second))

	lines := readLogLines(t, logPath)
	require.Len(t, lines, producers*perProducer)

	// Every distinct message arrived exactly once
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		idx := strings.LastIndex(line, "-> ")
		require.GreaterOrEqual(t, idx, 0, "malformed line: %q", line)
		body := line[idx+3:]
		assert.False(t, seen[body], "duplicate message: %s", body)
		seen[body] = true
	}
	assert.Len(t, seen, producers*perProducer)
}

func TestSingleProducerOrderPreserved(t *testing.T) {
	logger, logPath := createTestLogger(t)

	const total = 300
	for i := 0; i < total; i++ {
		logger.Log(LevelInfo, fmt.Sprintf("seq-%04d", i), "a.go", i)
	}
	require.NoError(t, logger.Shutdown(10*time.Second))

	lines := readLogLines(t, logPath)
	require.Len(t, lines, total)
	for i, line := range lines {
		assert.Contains(t, line, fmt.Sprintf("seq-%04d", i))
	}
}

func TestHeartbeatEmitted(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "heartbeat.log")

	logger := New()
	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = logPath
	cfg.TimestampSuffix = false
	cfg.HeartbeatIntervalS = 1
	require.NoError(t, logger.ApplyConfig(cfg))

	logger.Info("payload")
	time.Sleep(2500 * time.Millisecond)
	require.NoError(t, logger.Shutdown(5*time.Second))

	lines := readLogLines(t, logPath)
	heartbeats := 0
	for _, line := range lines {
		if strings.Contains(line, "heartbeat sequence=") {
			heartbeats++
			assert.Contains(t, line, "written=")
			assert.Contains(t, line, "dropped=")
		}
	}
	assert.GreaterOrEqual(t, heartbeats, 1)
}

func TestHeartbeatStopsOnShutdown(t *testing.T) {
	logger := New()
	cfg := DefaultConfig()
	cfg.Target = TargetConsole
	cfg.HeartbeatIntervalS = 1
	buf := &syncBuffer{}
	require.NoError(t, logger.ApplyConfig(cfg))
	logger.state.consoleWriter.Store(&consoleSink{w: buf})

	require.NoError(t, logger.Shutdown(5*time.Second))
	settled := buf.String()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, settled, buf.String(), "no heartbeat output after Shutdown")
}

func TestReinitUnderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	firstPath := filepath.Join(tmpDir, "first.log")
	secondPath := filepath.Join(tmpDir, "second.log")

	logger := New()
	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = firstPath
	cfg.TimestampSuffix = false
	require.NoError(t, logger.ApplyConfig(cfg))

	const total = 400
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			logger.Log(LevelInfo, fmt.Sprintf("load-%04d", i), "a.go", i)
		}
	}()

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, logger.Init(LevelTrace, secondPath, true, false))
	wg.Wait()
	require.NoError(t, logger.Shutdown(30*time.Second))

	// Every message lands in exactly one of the two files
	combined := append(readLogLines(t, firstPath), readLogLines(t, secondPath)...)
	require.Len(t, combined, total)
	seen := make(map[string]bool, total)
	for _, line := range combined {
		idx := strings.LastIndex(line, "-> ")
		require.GreaterOrEqual(t, idx, 0)
		seen[line[idx+3:]] = true
	}
	assert.Len(t, seen, total)
}

func TestBoundedQueueDropsAreReported(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "bounded.log")

	logger := New()
	cfg := DefaultConfig()
	cfg.Target = TargetFile
	cfg.FilePath = logPath
	cfg.TimestampSuffix = false
	cfg.QueueCap = 8
	require.NoError(t, logger.ApplyConfig(cfg))

	const attempts = 5000
	for i := 0; i < attempts; i++ {
		logger.Log(LevelInfo, fmt.Sprintf("burst-%04d", i), "a.go", i)
	}
	require.NoError(t, logger.Shutdown(30*time.Second))

	lines := readLogLines(t, logPath)
	assert.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), attempts)

	written := 0
	reported := uint64(0)
	for _, line := range lines {
		if strings.Contains(line, "messages dropped due to queue overflow") {
			var n uint64
			idx := strings.LastIndex(line, "-> ")
			fmt.Sscanf(line[idx+3:], "%d messages dropped", &n)
			reported += n
		} else {
			written++
		}
	}
	// Accounting closes: writes plus reported drops cover every attempt
	// (drops after the last successful push stay in the pending counter)
	assert.LessOrEqual(t, written+int(reported), attempts)
	assert.Equal(t, attempts, written+int(reported)+int(logger.state.droppedMessages.Load()))
}

func TestConsoleAndFileReceiveIdenticalLines(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "both.log")

	logger := New()
	cfg := DefaultConfig()
	cfg.Target = TargetBoth
	cfg.FilePath = logPath
	cfg.TimestampSuffix = false
	require.NoError(t, logger.ApplyConfig(cfg))
	buf := &syncBuffer{}
	logger.state.consoleWriter.Store(&consoleSink{w: buf})

	logger.Log(LevelWarning, "mirrored", "a.go", 7)
	require.NoError(t, logger.Shutdown(5*time.Second))

	fileLines := readLogLines(t, logPath)
	require.Len(t, fileLines, 1)
	consoleLines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, consoleLines, 1)
	assert.Equal(t, fileLines[0], consoleLines[0])
}
