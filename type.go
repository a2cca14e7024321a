package tlog

import (
	"io"
	"os"
	"time"

	"golang.org/x/text/encoding"
)

// Message is a single log entry. Values are immutable once constructed;
// Timestamp is captured at submission time, not write time, so causal
// ordering survives delayed writes.
type Message struct {
	Level     Level
	Text      string
	File      string
	Line      int
	Timestamp time.Time
}

// item is a mailbox entry: either a message, or a flush request carrying
// the confirmation channel closed once prior entries are on disk.
type item struct {
	msg   Message
	flush chan struct{}
}

// consoleSink is a wrapper around an io.Writer, atomic value type change workaround
type consoleSink struct {
	w io.Writer
}

// fileSink bundles the open log file with its resolved path and encoder so
// the worker observes all three as one atomic unit.
type fileSink struct {
	file *os.File
	path string
	enc  *encoding.Encoder // nil writes UTF-8 bytes unchanged
}
