package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestIntN_Bounds(t *testing.T) {
	sources := map[string]Source{
		"seeded": NewSeeded(7),
		"secure": NewSecure(),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				v := src.IntN(37)
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 37)
			}
		})
	}
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"deck count", 1, 8},
		{"single value", 5, 5},
		{"inverted range returns min", 9, 3},
	}

	src := NewSeeded(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := IntRange(src, tt.min, tt.max)
				if tt.min >= tt.max {
					assert.Equal(t, tt.min, v)
					continue
				}
				assert.GreaterOrEqual(t, v, tt.min)
				assert.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	src := NewSeeded(99)
	s := make([]int, 52)
	for i := range s {
		s[i] = i
	}

	Shuffle(src, s)

	seen := make(map[int]bool, len(s))
	for _, v := range s {
		seen[v] = true
	}
	assert.Len(t, seen, 52)
}

func TestShuffle_SameSeedSameOrder(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e", "f"}
	b := append([]string(nil), a...)

	Shuffle(NewSeeded(3), a)
	Shuffle(NewSeeded(3), b)

	assert.Equal(t, a, b)
}

func TestScripted(t *testing.T) {
	src := NewScripted(5, 12, -3)

	assert.Equal(t, 5, src.IntN(6))
	assert.Equal(t, 0, src.IntN(6), "values wrap modulo n")
	assert.Equal(t, 3, src.IntN(6), "negative values use their magnitude")
	assert.Equal(t, 5, src.IntN(6), "script cycles")
	require.Equal(t, 4, src.Draws())
}

func TestNew_PicksBySeed(t *testing.T) {
	_, seeded := New(10).(*lockedSource)
	assert.True(t, seeded)

	a, b := New(10), New(10)
	assert.Equal(t, a.IntN(1<<30), b.IntN(1<<30))
}
