package tlog

import (
	"sync"
)

// mailbox is the pending-message queue between producers and the worker.
// A single mutex establishes the total FIFO order across concurrent
// producers; the condition variable wakes the worker when work arrives.
type mailbox struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []item
	cap    int // 0 means unbounded
	closed bool
}

func newMailbox(cap int) *mailbox {
	m := &mailbox{cap: cap}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// push appends to the tail and wakes one waiting consumer. It never blocks
// beyond the critical section. Returns false when the mailbox is closed or
// the optional capacity bound is reached (drop-newest).
func (m *mailbox) push(it item) bool {
	m.mu.Lock()
	if m.closed || (m.cap > 0 && len(m.items) >= m.cap) {
		m.mu.Unlock()
		return false
	}
	m.items = append(m.items, it)
	m.mu.Unlock()
	m.cond.Signal()
	return true
}

// wait blocks until the mailbox is non-empty or closed, then hands the
// entire current batch to the caller in FIFO order. The closing flag tells
// the consumer no further pushes can arrive.
func (m *mailbox) wait() ([]item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for len(m.items) == 0 && !m.closed {
		m.cond.Wait()
	}
	batch := m.items
	m.items = nil
	return batch, m.closed
}

// drain returns whatever is queued without blocking.
func (m *mailbox) drain() []item {
	m.mu.Lock()
	defer m.mu.Unlock()
	batch := m.items
	m.items = nil
	return batch
}

// close marks the mailbox closed and wakes all waiters. Pushes after close
// are refused; items already queued remain available to wait/drain.
func (m *mailbox) close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.cond.Broadcast()
}

// setCap updates the optional capacity bound. Items already queued beyond a
// smaller bound are not discarded.
func (m *mailbox) setCap(cap int) {
	m.mu.Lock()
	m.cap = cap
	m.mu.Unlock()
}

// depth reports the number of queued items.
func (m *mailbox) depth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
