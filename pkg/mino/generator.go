package mino

import (
	"math/rand"
	"sync"
)

// Randomizer is the random source used to pick pieces. *rand.Rand
// satisfies it; tests may supply a fixed sequence.
type Randomizer interface {
	Intn(n int) int
}

// Generator hands out tetrominoes chosen uniformly at random from the
// catalog. Every shape it returns is an independent copy.
type Generator struct {
	Pieces []PieceType

	r Randomizer
	*sync.Mutex
}

// NewGenerator returns a generator seeded with seed. Generators created with
// the same seed produce the same sequence.
func NewGenerator(seed int64) *Generator {
	return NewGeneratorFrom(rand.New(rand.NewSource(seed)))
}

// NewGeneratorFrom returns a generator drawing from r.
func NewGeneratorFrom(r Randomizer) *Generator {
	pieces := make([]PieceType, len(AllPieces))
	copy(pieces, AllPieces)

	return &Generator{Pieces: pieces, r: r, Mutex: new(sync.Mutex)}
}

// NextType picks the type of the next piece.
func (g *Generator) NextType() PieceType {
	g.Lock()
	defer g.Unlock()

	return g.Pieces[g.r.Intn(len(g.Pieces))]
}

// Next returns a fresh copy of a randomly chosen tetromino.
func (g *Generator) Next() Shape {
	return NewTetromino(g.NextType())
}
