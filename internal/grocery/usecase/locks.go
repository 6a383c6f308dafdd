package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// weekLocks serializes regenerations per (user, week) so a slow run cannot be
// overwritten by a stale concurrent one. Locks expire after an idle TTL far
// longer than any regeneration takes.
type weekLocks struct {
	mu    sync.Mutex
	locks *expirable.LRU[string, *sync.Mutex]
}

func newWeekLocks() *weekLocks {
	return &weekLocks{
		locks: expirable.NewLRU[string, *sync.Mutex](
			1000,           // Max 1000 active (user, week) keys
			nil,            // No eviction callback
			time.Minute*10, // TTL: 10 minutes idle
		),
	}
}

// Lock acquires the mutex for key and returns its unlock func.
func (w *weekLocks) Lock(key string) func() {
	w.mu.Lock()
	mu, ok := w.locks.Get(key)
	if !ok {
		mu = &sync.Mutex{}
		w.locks.Add(key, mu)
	}
	w.mu.Unlock()

	mu.Lock()
	return mu.Unlock
}
