package magic

import (
	"fmt"

	"github.com/katalvlaran/lvlmagic/grid"
)

// wrap freezes already-validated rows into a Square carrying constant m.
// Only sum-preserving transforms may call it; the rows are square and
// magic by construction, so grid.FromRows cannot fail here.
func wrap(rows [][]int, m int) *Square {
	g, _ := grid.FromRows(rows)

	return &Square{g: g, m: m}
}

// Affine maps every entry x to a·x+b and returns the new Square.
// The constant becomes a·M + b·n. An affine map with a ≠ 0 is injective,
// so distinctness and every line sum are preserved by construction.
// Returns ErrDegenerate when a = 0.
// Complexity: O(n²).
func (s *Square) Affine(a, b int) (*Square, error) {
	if a == 0 {
		return nil, ErrDegenerate
	}
	n := s.Order()
	rows := s.ToRows()
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = a*rows[i][j] + b
		}
	}

	return wrap(rows, a*s.m+b*n), nil
}

// Translate adds the constant h to every entry: Affine(1, h).
func (s *Square) Translate(h int) *Square {
	out, _ := s.Affine(1, h)

	return out
}

// Scale multiplies every entry by a: Affine(a, 0).
// Returns ErrDegenerate when a = 0.
func (s *Square) Scale(a int) (*Square, error) {
	return s.Affine(a, 0)
}

// Rotate turns the square counterclockwise through k quarter turns.
// Layout-only: every row, column, and diagonal of the result is a line
// of the original, so the constant is unchanged and Rotate never fails.
// Rotating four times returns a square equal to the receiver.
// Complexity: O(n²).
func (s *Square) Rotate(k int) *Square {
	k = ((k % 4) + 4) % 4
	n := s.Order()
	rows := s.ToRows()
	for ; k > 0; k-- {
		next := make([][]int, n)
		for i := range next {
			next[i] = make([]int, n)
			for j := range next[i] {
				next[i][j] = rows[j][n-i-1]
			}
		}
		rows = next
	}

	return wrap(rows, s.m)
}

// Reflect flips the square about the given axis. Layout-only and
// sum-preserving; reflecting twice about the same axis returns a square
// equal to the receiver.
// Complexity: O(n²).
func (s *Square) Reflect(axis Axis) *Square {
	n := s.Order()
	rows := s.ToRows()
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			switch axis {
			case Vertical:
				out[i][j] = rows[i][n-j-1]
			case Diagonal:
				out[i][j] = rows[j][i]
			case Antidiagonal:
				out[i][j] = rows[n-j-1][n-i-1]
			default: // Horizontal
				out[i][j] = rows[n-i-1][j]
			}
		}
	}

	return wrap(out, s.m)
}

// Transpose is Reflect(Diagonal).
func (s *Square) Transpose() *Square {
	return s.Reflect(Diagonal)
}

// checkPerm verifies that perm is a permutation of 0..n-1.
func checkPerm(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: got %d indices, want %d", ErrInvalidPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("%w: not a permutation of 0..%d", ErrInvalidPermutation, n-1)
		}
		seen[p] = true
	}

	return nil
}

// PermuteRows returns the square whose row i is the receiver's row
// perm[i]. Row and column sums survive any permutation; the diagonals
// survive only permutations in the square's symmetry group, so the
// result's diagonals are re-checked and a permutation that breaks one
// is rejected with ErrInvalidPermutation rather than silently degrading
// the result to a semi-magic square.
// Complexity: O(n²).
func (s *Square) PermuteRows(perm []int) (*Square, error) {
	n := s.Order()
	if err := checkPerm(perm, n); err != nil {
		return nil, err
	}
	rows := s.ToRows()
	out := make([][]int, n)
	for i, p := range perm {
		out[i] = rows[p]
	}

	return s.freezePermuted(out)
}

// PermuteCols returns the square whose column j is the receiver's
// column perm[j]. Policy as for PermuteRows.
// Complexity: O(n²).
func (s *Square) PermuteCols(perm []int) (*Square, error) {
	n := s.Order()
	if err := checkPerm(perm, n); err != nil {
		return nil, err
	}
	rows := s.ToRows()
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j, p := range perm {
			out[i][j] = rows[i][p]
		}
	}

	return s.freezePermuted(out)
}

// freezePermuted re-checks the two diagonals of a row/column-permuted
// layout and freezes it. Rows and columns need no re-check.
func (s *Square) freezePermuted(rows [][]int) (*Square, error) {
	n := len(rows)
	main, anti := 0, 0
	for i := 0; i < n; i++ {
		main += rows[i][i]
		anti += rows[i][n-i-1]
	}
	if main != s.m {
		return nil, fmt.Errorf("%w: main diagonal sum = %d, want %d", ErrInvalidPermutation, main, s.m)
	}
	if anti != s.m {
		return nil, fmt.Errorf("%w: antidiagonal sum = %d, want %d", ErrInvalidPermutation, anti, s.m)
	}

	return wrap(rows, s.m), nil
}
