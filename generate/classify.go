package generate

// Classify inspects a square block of values and reports how close it
// is to magic: FullyMagic when every row, column, and both diagonals
// share one sum and no entry repeats, SemiMagic when all rows and
// columns agree but a diagonal deviates or an entry repeats, NotMagic
// otherwise (including ragged or empty input).
// Complexity: O(n²).
func Classify(rows [][]int) Classification {
	n := len(rows)
	if n == 0 {
		return NotMagic
	}
	for _, row := range rows {
		if len(row) != n {
			return NotMagic
		}
	}

	m := 0
	for _, v := range rows[0] {
		m += v
	}
	for _, row := range rows {
		s := 0
		for _, v := range row {
			s += v
		}
		if s != m {
			return NotMagic
		}
	}
	for j := 0; j < n; j++ {
		s := 0
		for i := 0; i < n; i++ {
			s += rows[i][j]
		}
		if s != m {
			return NotMagic
		}
	}

	main, anti := 0, 0
	seen := make(map[int]struct{}, n*n)
	distinct := true
	for i := 0; i < n; i++ {
		main += rows[i][i]
		anti += rows[i][n-i-1]
		for _, v := range rows[i] {
			if _, dup := seen[v]; dup {
				distinct = false
			}
			seen[v] = struct{}{}
		}
	}
	if main != m || anti != m || !distinct {
		return SemiMagic
	}

	return FullyMagic
}
