package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/lvlmagic/magic"
)

// Rows lays out a rectangular slice of rows with every entry
// right-justified to the width of the widest entry. Rows end with a
// newline; the result is empty for no rows.
func Rows(rows [][]int) string {
	width := 0
	for _, row := range rows {
		for _, v := range row {
			if l := len(strconv.Itoa(v)); l > width {
				width = l
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(text.AlignRight.Apply(strconv.Itoa(v), width))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Square renders a magic square in the fixed-width layout of Rows.
func Square(s *magic.Square) string {
	return Rows(s.ToRows())
}

// Table renders a magic square as a boxed table, one cell per entry.
func Table(s *magic.Square) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	for _, row := range s.ToRows() {
		cells := make(table.Row, len(row))
		for j, v := range row {
			cells[j] = v
		}
		t.AppendRow(cells)
	}

	return t.Render()
}

// Transcript reports one bordering step: the seed square, the framed
// square two orders above it, and a closing SUCCESS! line. The framed
// square is labeled with the seed's order, matching the convention of
// reading a bordering step by the square it grew from.
func Transcript(seed, framed *magic.Square) string {
	n := seed.Order()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Input for n=%d:\n%s\n", n, Square(seed))
	fmt.Fprintf(&sb, "Output for n=%d:\n%s\n", n, Square(framed))
	sb.WriteString("SUCCESS!\n")

	return sb.String()
}
