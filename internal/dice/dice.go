// Package dice provides the randomness used by the combat resolver.
//
// Every source rolls a single die and returns a face in 1..sides. The default
// source reads crypto/rand; tests and simulations inject a seeded or a fixed
// sequence source so that results can be replayed.
package dice

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// RandomSource rolls one die with the given number of sides.
type RandomSource interface {
	Roll(sides int) int
}

// cryptoSource fetches a strongly uniform face via crypto/rand.
// It holds no state and is safe for concurrent use.
type cryptoSource struct{}

// Default returns the production source.
func Default() RandomSource { return cryptoSource{} }

func (cryptoSource) Roll(sides int) int {
	if sides <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(sides)))
	if err != nil {
		// back to math/rand/v2
		return mrand.IntN(sides) + 1
	}
	return int(n.Int64()) + 1
}

// Seeded is a replicable source backed by a PCG generator.
type Seeded struct {
	mu sync.Mutex
	r  *mrand.Rand
}

// NewSeeded returns a source that yields the same faces for the same seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: mrand.New(mrand.NewPCG(seed, 0))}
}

func (s *Seeded) Roll(sides int) int {
	if sides <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(sides) + 1
}

// Sequence replays a fixed list of faces, one per roll.
// Faces larger than the die are clamped to its maximum; once the list is
// exhausted every roll returns 1.
type Sequence struct {
	mu    sync.Mutex
	faces []int
	used  []Throw
}

// Throw records one roll served by a Sequence.
type Throw struct {
	Sides int
	Face  int
}

// NewSequence prepares a deterministic sequence of faces.
func NewSequence(faces ...int) *Sequence {
	return &Sequence{faces: append([]int(nil), faces...)}
}

func (s *Sequence) Roll(sides int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	face := 1
	if len(s.faces) > 0 {
		face = s.faces[0]
		s.faces = s.faces[1:]
	}
	if face > sides {
		face = sides
	}
	s.used = append(s.used, Throw{Sides: sides, Face: face})
	return face
}

// Throws returns the rolls served so far.
func (s *Sequence) Throws() []Throw {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Throw(nil), s.used...)
}

// Remaining reports how many scripted faces have not been consumed.
func (s *Sequence) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.faces)
}
