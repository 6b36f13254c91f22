// Package concurrency serialises work per key, so one player's requests
// against a session run one at a time.
package concurrency

import (
	"sync"
)

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager handles named locks. Entries are dropped once no caller holds or waits on them.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free and returns the matching unlock func
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		lm.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(lm.locks, key)
		}
		lm.mu.Unlock()
	}
}

// WithLock runs fn while holding key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	unlock := lm.Lock(key)
	defer unlock()
	return fn()
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
