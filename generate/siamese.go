package generate

import (
	"fmt"

	"github.com/katalvlaran/lvlmagic/magic"
)

// Siamese builds odd-order magic squares by the classical diagonal-step
// walk: 1 starts in the middle of the top row, each successor moves one
// cell up and right (wrapping around both edges), and a collision drops
// the value one cell straight down instead.
//
// Deterministic; order 3 yields the square with constant 15 whose
// dihedral images are the eight classical order-3 magic squares.
type Siamese struct{}

// Name identifies the strategy.
func (Siamese) Name() string { return "siamese" }

// Generate returns the diagonal-step square of the given odd order.
// Returns ErrUnsupportedOrder for orders below 1 or even orders.
// Complexity: O(n²).
func (Siamese) Generate(order int) (*magic.Square, error) {
	if order < 1 || order%2 == 0 {
		return nil, fmt.Errorf("%w: siamese requires odd order ≥ 1, got %d", ErrUnsupportedOrder, order)
	}

	// Scratch placement; frozen into an immutable Square only once the
	// walk has filled every cell.
	n := order
	cells := make([]int, n*n)
	r, c := 0, n/2
	for v := 1; v <= n*n; v++ {
		cells[r*n+c] = v
		nr, nc := (r-1+n)%n, (c+1)%n
		if cells[nr*n+nc] != 0 {
			nr, nc = (r+1)%n, c
		}
		r, c = nr, nc
	}

	return magic.FromValues(n, cells)
}
