// Package session holds transient per-player game state between requests.
package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Casino_Go/internal/domain"
)

// SchemaVersion is stamped on every stored entry.
// Increment this when a session struct changes shape to drop old entries.
const SchemaVersion = "1.0"

type entry struct {
	version string
	state   []byte
}

// LRUStore is an in-memory session store. Entries expire after ttl and the
// least recently used entry is evicted past size; either way the bet is forfeit.
type LRUStore struct {
	lru *expirable.LRU[string, *entry]
}

// NewLRUStore creates a session store holding at most size sessions for ttl each
func NewLRUStore(size int, ttl time.Duration) *LRUStore {
	return &LRUStore{
		lru: expirable.NewLRU[string, *entry](size, nil, ttl),
	}
}

// LoadSession returns the stored state for key.
// Entries written under another schema version are dropped and reported missing.
func (s *LRUStore) LoadSession(_ context.Context, key domain.SessionKey) ([]byte, bool, error) {
	k := key.String()
	e, found := s.lru.Get(k)
	if !found {
		return nil, false, nil
	}
	if e.version != SchemaVersion {
		s.lru.Remove(k)
		return nil, false, nil
	}
	return e.state, true, nil
}

// SaveSession stores state for key, replacing any existing entry and resetting its TTL
func (s *LRUStore) SaveSession(_ context.Context, key domain.SessionKey, state []byte) error {
	s.lru.Add(key.String(), &entry{
		version: SchemaVersion,
		state:   append([]byte(nil), state...),
	})
	return nil
}

// ClearSession removes the session for key. Clearing a missing session is not an error.
func (s *LRUStore) ClearSession(_ context.Context, key domain.SessionKey) error {
	s.lru.Remove(key.String())
	return nil
}

// Len reports the number of live sessions
func (s *LRUStore) Len() int {
	return s.lru.Len()
}
