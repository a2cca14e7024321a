package tlog

import (
	"fmt"
	"time"
)

// startHeartbeatLocked launches the heartbeat ticker goroutine. The caller
// must hold initMu.
func (l *Logger) startHeartbeatLocked(interval time.Duration) {
	stop := make(chan struct{})
	l.heartbeatStop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.logHeartbeat()
			case <-stop:
				return
			}
		}
	}()
}

// stopHeartbeatLocked stops the heartbeat ticker goroutine if running. The
// caller must hold initMu.
func (l *Logger) stopHeartbeatLocked() {
	if l.heartbeatStop != nil {
		close(l.heartbeatStop)
		l.heartbeatStop = nil
	}
}

// logHeartbeat emits logger statistics through the normal pipeline,
// bypassing the level filter so heartbeats survive a raised threshold.
func (l *Logger) logHeartbeat() {
	if l.state.ShutdownCalled.Load() {
		return
	}

	sequence := l.state.heartbeatSeq.Add(1)
	uptime := time.Since(l.startupTime)

	text := fmt.Sprintf("heartbeat sequence=%d written=%d dropped=%d uptime_s=%.0f",
		sequence,
		l.state.totalWritten.Load(),
		l.state.droppedMessages.Load(),
		uptime.Seconds(),
	)

	l.submit(Message{
		Level:     LevelInfo,
		Text:      text,
		File:      "tlog",
		Timestamp: time.Now(),
	})
}
