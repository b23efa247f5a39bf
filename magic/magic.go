package magic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlmagic/grid"
)

// FromValues validates order-n row-major values as a magic square.
// The candidate constant is the first row's sum; every remaining row,
// every column, and both main diagonals must match it, and all entries
// must be pairwise distinct.
// Returns ErrShape on a count mismatch and ErrNotMagic (wrapping the
// first offending line and its observed sum) on a validation failure.
// Complexity: O(n²).
func FromValues(order int, values []int) (*Square, error) {
	g, err := grid.FromValues(order, values)
	if err != nil {
		if errors.Is(err, grid.ErrShape) {
			return nil, ErrShape
		}

		return nil, err
	}

	return FromGrid(g)
}

// FromRows validates a slice of rows as a magic square.
// Returns ErrShape when the block is not square, otherwise as FromGrid.
func FromRows(rows [][]int) (*Square, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		if errors.Is(err, grid.ErrRagged) {
			return nil, ErrShape
		}

		return nil, err
	}

	return FromGrid(g)
}

// FromGrid validates an existing Grid as a magic square.
// Returns ErrNotMagic when any line sum deviates from the first row's
// sum or any entry repeats.
// Complexity: O(n²).
func FromGrid(g *grid.Grid) (*Square, error) {
	m, err := validate(g)
	if err != nil {
		return nil, err
	}

	return &Square{g: g, m: m}, nil
}

// validate computes the candidate constant and checks every line and
// the distinctness of all entries. The first offense is reported.
func validate(g *grid.Grid) (int, error) {
	n := g.Order()
	first, _ := g.Row(0)
	m := sum(first)
	for i := 1; i < n; i++ {
		row, _ := g.Row(i)
		if s := sum(row); s != m {
			return 0, fmt.Errorf("%w: row %d sum = %d, want %d", ErrNotMagic, i, s, m)
		}
	}
	for j := 0; j < n; j++ {
		col, _ := g.Col(j)
		if s := sum(col); s != m {
			return 0, fmt.Errorf("%w: column %d sum = %d, want %d", ErrNotMagic, j, s, m)
		}
	}
	if s := sum(g.Diag(grid.Main)); s != m {
		return 0, fmt.Errorf("%w: main diagonal sum = %d, want %d", ErrNotMagic, s, m)
	}
	if s := sum(g.Diag(grid.Anti)); s != m {
		return 0, fmt.Errorf("%w: antidiagonal sum = %d, want %d", ErrNotMagic, s, m)
	}
	seen := make(map[int]struct{}, n*n)
	for _, v := range g.Values() {
		if _, dup := seen[v]; dup {
			return 0, fmt.Errorf("%w: duplicate entry %d", ErrNotMagic, v)
		}
		seen[v] = struct{}{}
	}

	return m, nil
}

func sum(line []int) int {
	total := 0
	for _, v := range line {
		total += v
	}

	return total
}

// Order reports the number of rows (and columns).
func (s *Square) Order() int { return s.g.Order() }

// MagicConstant returns the common sum M shared by every line.
func (s *Square) MagicConstant() int { return s.m }

// Get returns the entry at (r,c), or grid.ErrBounds on an invalid index.
func (s *Square) Get(r, c int) (int, error) { return s.g.Get(r, c) }

// ToRows returns a deep copy of the square as a slice of rows — the
// sole interchange shape expected by renderers and collaborators.
func (s *Square) ToRows() [][]int { return s.g.Rows() }

// Grid returns the underlying immutable grid.
func (s *Square) Grid() *grid.Grid { return s.g }

// Equal reports whether s and other have the same order and identical
// entries at every position.
func (s *Square) Equal(other *Square) bool {
	return other != nil && s.g.Equal(other.g)
}

// IsNormal reports whether the entries are exactly 1..n², the shape the
// bordering engine in package frame requires of its seeds.
// Complexity: O(n²).
func (s *Square) IsNormal() bool {
	n := s.Order()
	seen := make([]bool, n*n+1)
	for _, v := range s.g.Values() {
		if v < 1 || v > n*n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
