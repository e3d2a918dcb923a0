package search

import (
	"encoding/binary"
	"sync"

	"lukechampine.com/frand"
)

// Chooser picks one move from a non-empty slice of candidates. The search
// never calls Choose with an empty slice.
type Chooser interface {
	Choose(moves []Move) Move
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(moves []Move) Move

// Choose calls f(moves).
func (f ChooserFunc) Choose(moves []Move) Move {
	return f(moves)
}

// FirstChooser always picks the first candidate. It makes stochastic search
// fully deterministic.
var FirstChooser Chooser = ChooserFunc(func(moves []Move) Move {
	return moves[0]
})

// randomChooser picks uniformly using an frand generator.
type randomChooser struct {
	mu  sync.Mutex
	rng *frand.RNG
}

// NewRandomChooser returns a chooser backed by the process-wide frand source.
func NewRandomChooser() Chooser {
	return ChooserFunc(func(moves []Move) Move {
		return moves[frand.Intn(len(moves))]
	})
}

// NewSeededChooser returns a chooser whose sequence of picks depends only on
// seed, so stochastic searches using it can be replayed.
func NewSeededChooser(seed uint64) Chooser {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return &randomChooser{rng: frand.NewCustom(key, 1024, 12)}
}

// Choose picks a random candidate.
func (c *randomChooser) Choose(moves []Move) Move {
	c.mu.Lock()
	defer c.mu.Unlock()
	return moves[c.rng.Intn(len(moves))]
}
