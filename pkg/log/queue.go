package log

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// queue delivers entries to transporters on a single background goroutine.
// When the queue is full the oldest pending entry is dropped.
type queue struct {
	entries      chan Entry
	transporters []Transporter
	dropped      atomic.Int64

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func newQueue(capacity int, transporters ...Transporter) *queue {
	q := &queue{
		entries:      make(chan Entry, capacity),
		transporters: transporters,
	}
	q.wg.Add(1)
	go q.run()
	return q
}

// send enqueues an entry. It never blocks and is a no-op after close.
func (q *queue) send(entry Entry) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return
	}

	for {
		select {
		case q.entries <- entry:
			return
		default:
		}
		select {
		case <-q.entries:
			q.dropped.Add(1)
		default:
		}
	}
}

// close drains pending entries, then closes every transporter.
// Safe to call more than once.
func (q *queue) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.entries)
	q.mu.Unlock()

	q.wg.Wait()
	for _, t := range q.transporters {
		_ = t.Close()
	}
}

func (q *queue) run() {
	defer q.wg.Done()
	for entry := range q.entries {
		for _, t := range q.transporters {
			if err := t.Write(entry); err != nil {
				fmt.Fprintf(os.Stderr, "log transporter %q failed: %v\n", t.Name(), err)
			}
		}
	}
}
