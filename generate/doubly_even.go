package generate

import (
	"fmt"

	"github.com/katalvlaran/lvlmagic/magic"
)

// DoublyEvenOptions tunes the pattern/complement construction.
//
// Fields:
//   - Pattern — a square 0/1 mask tiled over the grid. Cells under a 1
//     keep the row-major count n·i+j+1; cells under a 0 take its
//     complement n²+1 − (n·i+j+1).
//
// The default criss-cross mask is the textbook one; a caller may supply
// another mask, and Generate will reject it if the result is not magic.
type DoublyEvenOptions struct {
	Pattern [][]int
}

// DefaultDoublyEvenOptions returns the classical 4×4 criss-cross mask:
// diagonally placed cells keep their count, the rest are complemented.
func DefaultDoublyEvenOptions() DoublyEvenOptions {
	return DoublyEvenOptions{
		Pattern: [][]int{
			{1, 0, 0, 1},
			{0, 1, 1, 0},
			{0, 1, 1, 0},
			{1, 0, 0, 1},
		},
	}
}

// DoublyEven builds magic squares of order divisible by four by the
// pattern/complement method: count cells row by row, and complement the
// count with respect to n²+1 wherever the tiled mask says so.
type DoublyEven struct {
	opts DoublyEvenOptions
}

// NewDoublyEven constructs the strategy with the given options.
func NewDoublyEven(opts DoublyEvenOptions) DoublyEven {
	return DoublyEven{opts: opts}
}

// Name identifies the strategy.
func (DoublyEven) Name() string { return "doubly-even" }

// Generate returns the pattern/complement square of the given order.
// Returns ErrUnsupportedOrder unless order is a positive multiple of 4,
// and magic.ErrNotMagic when a custom mask fails to produce a magic
// square.
// Complexity: O(n²).
func (d DoublyEven) Generate(order int) (*magic.Square, error) {
	if order < 4 || order%4 != 0 {
		return nil, fmt.Errorf("%w: doubly-even requires order ≡ 0 (mod 4), got %d", ErrUnsupportedOrder, order)
	}
	pattern := d.opts.Pattern
	if len(pattern) == 0 {
		pattern = DefaultDoublyEvenOptions().Pattern
	}
	for _, row := range pattern {
		if len(row) != len(pattern) {
			return nil, fmt.Errorf("generate: doubly-even mask must be square, got %d rows", len(pattern))
		}
	}

	n := order
	span := len(pattern)
	cells := make([]int, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			entry := n*i + j + 1
			if pattern[i%span][j%span] == 0 {
				entry = n*n - entry + 1
			}
			cells = append(cells, entry)
		}
	}

	return magic.FromValues(n, cells)
}
