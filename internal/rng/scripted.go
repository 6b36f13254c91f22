package rng

import "sync"

// Scripted replays a fixed list of draws, cycling when exhausted.
// Each value is reduced modulo n so a script can be reused across ranges.
type Scripted struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewScripted returns a Source that yields values in order
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Draws reports how many values have been consumed
func (s *Scripted) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}
