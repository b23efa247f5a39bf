package generate

import (
	"errors"

	"github.com/katalvlaran/lvlmagic/magic"
)

// ErrUnsupportedOrder indicates an order outside a strategy's domain.
var ErrUnsupportedOrder = errors.New("generate: order outside strategy domain")

// Strategy produces a finished magic square for a supported order.
// Implementations must be deterministic: the same order always yields
// the same square.
type Strategy interface {
	// Name identifies the strategy in messages and transcripts.
	Name() string
	// Generate returns a validated magic square of the given order, or
	// ErrUnsupportedOrder when the order lies outside the domain.
	Generate(order int) (*magic.Square, error)
}

// Classification is the verdict an exploratory construction reports on
// its output. Step-vector producers are not guaranteed to land on a
// magic square for arbitrary parameters, so "did not find one" is a
// normal outcome, distinct from invalid input.
type Classification int

const (
	// NotMagic: some row or column sum deviates.
	NotMagic Classification = iota
	// SemiMagic: all row and column sums agree, but a diagonal deviates
	// or an entry repeats.
	SemiMagic
	// FullyMagic: rows, columns, and both diagonals agree, with all
	// entries pairwise distinct.
	FullyMagic
)

// String returns the lowercase verdict name.
func (c Classification) String() string {
	switch c {
	case FullyMagic:
		return "fully-magic"
	case SemiMagic:
		return "semi-magic"
	default:
		return "failed"
	}
}
