package tlog

import (
	"sync/atomic"
)

// state encapsulates the runtime state of the logger
type state struct {
	Started        atomic.Bool
	ShutdownCalled atomic.Bool
	WorkerExited   atomic.Bool // Tracks if the worker goroutine is running or has exited

	consoleWriter atomic.Value // stores *consoleSink
	fileSink      atomic.Value // stores *fileSink

	droppedMessages atomic.Uint64 // Counter for messages dropped by the bounded queue
	totalWritten    atomic.Uint64 // Counter for messages written to the sinks
	heartbeatSeq    atomic.Uint64 // Counter for heartbeat sequence numbers
}
