// Package render draws grids as text. It is the rendering boundary of
// the engine: callers that want pixels take the same numbers and do
// their own layout.
package render

import (
	"strings"

	"svw.info/sudokukit/internal/domain"
)

// Text renders the board with one symbol per cell, dots for empties,
// and rules between regions.
func Text(g *domain.Grid) string {
	size := g.Size()
	cell := g.CellShape()

	var sb strings.Builder
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			sb.WriteByte(' ')
			if v := g.Value(r, c); v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteString(domain.Symbol(v).String())
			}
			if (c+1)%cell.Width == 0 && c+1 != size {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
		if (r+1)%cell.Height == 0 && r+1 != size {
			sb.WriteString(rule(size, cell.Width))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// rule builds the horizontal separator with a junction under every
// region divider.
func rule(size, width int) string {
	blocks := make([]string, 0, size/width)
	for c := 0; c < size; c += width {
		blocks = append(blocks, strings.Repeat("-", 2*width))
	}
	return strings.Join(blocks, "-+")
}
