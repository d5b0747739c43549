// Package mounts keeps mounted views in memory until they expire.
package mounts

import (
	"sync"
	"time"

	"cosmos-daily/internal/usecases"
	"cosmos-daily/pkg/log"
)

var _ usecases.MountStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory MountStore with TTL support.
type MemoryStore struct {
	views sync.Map
	ttl   time.Duration
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// mountEntry holds a view with expiration metadata.
type mountEntry struct {
	view      *usecases.ViewController
	expiresAt time.Time
}

// NewMemoryStore creates a store whose entries live for ttl after they are
// put. Expired entries are swept every sweepEvery.
func NewMemoryStore(ttl, sweepEvery time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:  ttl,
		now:  time.Now,
		stop: make(chan struct{}),
	}
	go s.cleanup(sweepEvery)
	return s
}

// Put stores a view under id.
func (s *MemoryStore) Put(id string, vc *usecases.ViewController) {
	s.views.Store(id, &mountEntry{
		view:      vc,
		expiresAt: s.now().Add(s.ttl),
	})
}

// Get returns the view stored under id if it has not expired.
func (s *MemoryStore) Get(id string) (*usecases.ViewController, bool) {
	value, ok := s.views.Load(id)
	if !ok {
		return nil, false
	}

	entry := value.(*mountEntry)
	if s.now().After(entry.expiresAt) {
		s.evict(id, entry)
		return nil, false
	}
	return entry.view, true
}

// Len returns the number of stored views, expired ones included.
func (s *MemoryStore) Len() int {
	n := 0
	s.views.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Sweep removes every expired view and cancels any fetch still in flight.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	removed := 0
	s.views.Range(func(key, value any) bool {
		entry := value.(*mountEntry)
		if now.After(entry.expiresAt) {
			s.evict(key.(string), entry)
			removed++
		}
		return true
	})
	return removed
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) evict(id string, entry *mountEntry) {
	if s.views.CompareAndDelete(id, entry) {
		entry.view.Cancel()
	}
}

func (s *MemoryStore) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.GlobalDebug("expired views swept", "count", n)
			}
		case <-s.stop:
			return
		}
	}
}
