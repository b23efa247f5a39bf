package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrOrder indicates a requested order below 1.
	ErrOrder = errors.New("grid: order must be at least 1")
	// ErrShape indicates a value count that differs from order².
	ErrShape = errors.New("grid: value count must equal order squared")
	// ErrRagged indicates input rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
	// ErrBounds indicates a row or column index outside [0, order).
	ErrBounds = errors.New("grid: index out of range")
)

// Diagonal selects one of the two main diagonals of a square.
type Diagonal int

const (
	// Main runs from the top-left cell to the bottom-right cell.
	Main Diagonal = iota
	// Anti runs from the top-right cell to the bottom-left cell.
	Anti
)

// Grid is an immutable order-n square of integers in row-major layout.
// All derivations (Set, Transpose, Subgrid) return new Grids; no method
// mutates the receiver.
type Grid struct {
	order int
	cells []int
}
