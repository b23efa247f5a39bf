package magic

import (
	"errors"

	"github.com/katalvlaran/lvlmagic/grid"
)

// Sentinel errors for magic-square construction and transforms.
var (
	// ErrShape indicates a value count that differs from order².
	ErrShape = errors.New("magic: value count must equal order squared")
	// ErrNotMagic indicates a line-sum or distinctness violation; wrapped
	// messages carry the offending line and its observed sum.
	ErrNotMagic = errors.New("magic: not a magic square")
	// ErrDegenerate indicates an affine map with scale 0, which collapses
	// every entry to the same value.
	ErrDegenerate = errors.New("magic: affine scale must be non-zero")
	// ErrInvalidPermutation indicates a row or column permutation that
	// breaks a diagonal sum, or an argument that is not a permutation.
	ErrInvalidPermutation = errors.New("magic: permutation breaks a required invariant")
)

// Axis selects a reflection axis for Square.Reflect.
type Axis int

const (
	// Horizontal reflects about the center row.
	Horizontal Axis = iota
	// Vertical reflects about the center column.
	Vertical
	// Diagonal reflects about the main diagonal (matrix transpose).
	Diagonal
	// Antidiagonal reflects about the antidiagonal.
	Antidiagonal
)

// Square is an immutable magic square: a grid of pairwise-distinct
// integers whose rows, columns, and both main diagonals share one sum.
// A Square is only obtainable through a validating constructor or a
// sum-preserving transform, so the invariant cannot be broken later.
type Square struct {
	g *grid.Grid
	m int
}

// NormalConstant returns the magic constant n(n²+1)/2 of a normal
// order-n square populated with 1..n².
func NormalConstant(n int) int {
	return n * (n*n + 1) / 2
}
