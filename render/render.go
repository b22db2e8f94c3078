// Package render draws the board as text, one rhombic row per line,
// with each side's stones colorized for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/lewisl/hex-game/board"
)

// Board writes an ASCII picture of g to w: X's stones in cyan, O's in
// magenta, empty cells as a dot. Each row is indented by its row index
// so the rhombic lattice's slant is visible, matching the way the
// original printed the board to a terminal.
func Board(w io.Writer, g *board.Game) {
	for r := 1; r <= g.Size; r++ {
		fmt.Fprint(w, strings.Repeat(" ", r-1))
		for c := 1; c <= g.Size; c++ {
			idx, _ := board.RowColToIndex(g.Size, r, c)
			fmt.Fprint(w, glyph(g.Graph.GetMarker(idx)), " ")
		}
		fmt.Fprintln(w)
	}
}

func glyph(m board.Marker) string {
	switch m {
	case board.X:
		return aurora.Cyan("X").String()
	case board.O:
		return aurora.Magenta("O").String()
	default:
		return "."
	}
}
