package tlog

// run is the worker loop, the single consumer of the mailbox. It stays in
// Running until the mailbox is closed by Shutdown, then drains and exits.
func (l *Logger) run() {
	defer func() {
		l.state.WorkerExited.Store(true)
		close(l.done)
	}()

	for {
		batch, closing := l.queue.wait()
		l.writeBatch(batch)
		if closing {
			// Draining: one final sweep catches anything pushed between the
			// close signal and the moment the sweep observes empty.
			l.writeBatch(l.queue.drain())
			l.syncFile()
			return
		}
	}
}

// writeBatch writes a batch sequentially, preserving FIFO order. Flush
// requests are confirmed in place, after everything queued ahead of them.
func (l *Logger) writeBatch(batch []item) {
	for _, it := range batch {
		if it.flush != nil {
			l.syncFile()
			close(it.flush)
			continue
		}
		l.writeMessage(it.msg)
	}
}
