package dice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBounds(t *testing.T) {
	src := Default()
	for sides := 1; sides <= 6; sides++ {
		for i := 0; i < 200; i++ {
			face := src.Roll(sides)
			if face < 1 || face > sides {
				t.Fatalf("roll out of bounds for d%d: %d", sides, face)
			}
		}
	}
	assert.Equal(t, 0, src.Roll(0))
}

func TestSeededIsReplicable(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		sides := i%5 + 2
		assert.Equal(t, a.Roll(sides), b.Roll(sides))
	}
}

func TestSeededCoversAllFaces(t *testing.T) {
	src := NewSeeded(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		seen[src.Roll(6)] = true
	}
	assert.Len(t, seen, 6)
}

func TestSequence(t *testing.T) {
	seq := NewSequence(2, 9, 1)

	assert.Equal(t, 2, seq.Roll(2))
	assert.Equal(t, 4, seq.Roll(4), "faces above the die are clamped")
	assert.Equal(t, 1, seq.Roll(6))
	assert.Equal(t, 1, seq.Roll(6), "exhausted sequence rolls 1")
	assert.Zero(t, seq.Remaining())

	throws := seq.Throws()
	require.Len(t, throws, 4)
	assert.Equal(t, Throw{Sides: 4, Face: 4}, throws[1])
}

func TestSeededConcurrentUse(t *testing.T) {
	src := NewSeeded(1)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				face := src.Roll(3)
				if face < 1 || face > 3 {
					t.Errorf("roll out of bounds: %d", face)
				}
			}
		}()
	}
	wg.Wait()
}
