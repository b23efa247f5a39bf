package grid

// New constructs a zero-filled Grid of the given order.
// Returns ErrOrder when order < 1.
// Complexity: O(n²) time and memory.
func New(order int) (*Grid, error) {
	if order < 1 {
		return nil, ErrOrder
	}

	return &Grid{order: order, cells: make([]int, order*order)}, nil
}

// FromValues constructs a Grid of the given order from row-major values.
// The input slice is copied, never retained.
// Returns ErrOrder when order < 1, ErrShape when len(values) ≠ order².
// Complexity: O(n²) time and memory.
func FromValues(order int, values []int) (*Grid, error) {
	if order < 1 {
		return nil, ErrOrder
	}
	if len(values) != order*order {
		return nil, ErrShape
	}
	cells := make([]int, len(values))
	copy(cells, values)

	return &Grid{order: order, cells: cells}, nil
}

// FromRows constructs a Grid from a slice of rows.
// Returns ErrOrder on empty input, ErrRagged when any row length differs
// from the row count (the square must be as wide as it is tall).
// Complexity: O(n²) time and memory.
func FromRows(rows [][]int) (*Grid, error) {
	order := len(rows)
	if order < 1 {
		return nil, ErrOrder
	}
	cells := make([]int, 0, order*order)
	for _, row := range rows {
		if len(row) != order {
			return nil, ErrRagged
		}
		cells = append(cells, row...)
	}

	return &Grid{order: order, cells: cells}, nil
}

// Order reports the number of rows (and columns).
func (g *Grid) Order() int { return g.order }

// inBounds reports whether (r,c) addresses a cell of the grid.
func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.order && c >= 0 && c < g.order
}

// index maps (r,c) to the row-major cell index r*order + c.
func (g *Grid) index(r, c int) int { return r*g.order + c }

// Get returns the value at (r,c), or ErrBounds when the index is invalid.
// Complexity: O(1).
func (g *Grid) Get(r, c int) (int, error) {
	if !g.inBounds(r, c) {
		return 0, ErrBounds
	}

	return g.cells[g.index(r, c)], nil
}

// Set returns a new Grid equal to g except that cell (r,c) holds v.
// The receiver is left untouched. Returns ErrBounds on an invalid index.
// Complexity: O(n²) time and memory (copy on write).
func (g *Grid) Set(r, c, v int) (*Grid, error) {
	if !g.inBounds(r, c) {
		return nil, ErrBounds
	}
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	cells[g.index(r, c)] = v

	return &Grid{order: g.order, cells: cells}, nil
}

// Row returns a copy of row i, or ErrBounds when i is invalid.
// Complexity: O(n).
func (g *Grid) Row(i int) ([]int, error) {
	if i < 0 || i >= g.order {
		return nil, ErrBounds
	}
	row := make([]int, g.order)
	copy(row, g.cells[g.index(i, 0):g.index(i, 0)+g.order])

	return row, nil
}

// Col returns a copy of column j, or ErrBounds when j is invalid.
// Complexity: O(n).
func (g *Grid) Col(j int) ([]int, error) {
	if j < 0 || j >= g.order {
		return nil, ErrBounds
	}
	col := make([]int, g.order)
	for i := 0; i < g.order; i++ {
		col[i] = g.cells[g.index(i, j)]
	}

	return col, nil
}

// Diag returns the selected main diagonal, top row first.
// Complexity: O(n).
func (g *Grid) Diag(d Diagonal) []int {
	out := make([]int, g.order)
	for i := 0; i < g.order; i++ {
		if d == Anti {
			out[i] = g.cells[g.index(i, g.order-i-1)]
		} else {
			out[i] = g.cells[g.index(i, i)]
		}
	}

	return out
}

// Transpose returns a new Grid with rows and columns exchanged.
// Complexity: O(n²) time and memory.
func (g *Grid) Transpose() *Grid {
	cells := make([]int, len(g.cells))
	for i := 0; i < g.order; i++ {
		for j := 0; j < g.order; j++ {
			cells[j*g.order+i] = g.cells[g.index(i, j)]
		}
	}

	return &Grid{order: g.order, cells: cells}
}

// Subgrid returns the size×size block whose top-left corner is (r0,c0).
// Returns ErrOrder when size < 1, ErrBounds when the block does not fit.
// Complexity: O(size²) time and memory.
func (g *Grid) Subgrid(r0, c0, size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrOrder
	}
	if !g.inBounds(r0, c0) || !g.inBounds(r0+size-1, c0+size-1) {
		return nil, ErrBounds
	}
	cells := make([]int, 0, size*size)
	for i := r0; i < r0+size; i++ {
		cells = append(cells, g.cells[g.index(i, c0):g.index(i, c0)+size]...)
	}

	return &Grid{order: size, cells: cells}, nil
}

// Rows returns a deep copy of the grid as a slice of rows.
// Complexity: O(n²) time and memory.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.order)
	for i := range rows {
		rows[i], _ = g.Row(i)
	}

	return rows
}

// Values returns a copy of the row-major cell slice.
// Complexity: O(n²).
func (g *Grid) Values() []int {
	values := make([]int, len(g.cells))
	copy(values, g.cells)

	return values
}

// Equal reports whether g and other have the same order and identical
// entries at every position.
// Complexity: O(n²).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.order != other.order {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}

	return true
}
