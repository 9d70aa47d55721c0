package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource(t *testing.T) {
	t.Run("same seed produces identical sequence", func(t *testing.T) {
		a := New(42)
		b := New(42)
		for i := 0; i < 1000; i++ {
			assert.Equal(t, a.Uint64(), b.Uint64())
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := New(1)
		b := New(2)
		same := true
		for i := 0; i < 16; i++ {
			if a.Uint64() != b.Uint64() {
				same = false
				break
			}
		}
		assert.False(t, same)
	})

	t.Run("reseed restarts the sequence", func(t *testing.T) {
		s := New(7)
		first := s.Uint64()
		for i := 0; i < 100; i++ {
			s.Uint64()
		}
		s.Seed(7)
		assert.Equal(t, first, s.Uint64())
		assert.Equal(t, uint64(7), s.InitialSeed())
	})

	t.Run("zero seed still generates", func(t *testing.T) {
		s := New(0)
		assert.NotEqual(t, uint64(0), s.Uint64())
	})

	t.Run("Intn stays in range", func(t *testing.T) {
		s := New(99)
		for i := 0; i < 1000; i++ {
			v := s.Intn(4)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 4)
		}
	})

	t.Run("Intn covers all values", func(t *testing.T) {
		s := New(5)
		seen := make(map[int]bool)
		for i := 0; i < 1000; i++ {
			seen[s.Intn(4)] = true
		}
		assert.Len(t, seen, 4)
	})

	t.Run("empty range yields lower bound", func(t *testing.T) {
		s := New(3)
		assert.Equal(t, 0, s.Intn(0))
		assert.Equal(t, 5, s.IntRange(5, 5))
		assert.Equal(t, 5, s.IntRange(5, 3))
	})

	t.Run("IntRange stays in range", func(t *testing.T) {
		s := New(11)
		for i := 0; i < 1000; i++ {
			v := s.IntRange(2, 9)
			assert.GreaterOrEqual(t, v, 2)
			assert.Less(t, v, 9)
		}
	})
}
