package domain

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadGrid parses the textual board layout: whitespace-separated
// one-character cells, comment lines starting with '#', and an optional
// "# boardsize W x H" directive naming the region shape. Without the
// directive the cell count must form a square board of square regions.
func ReadGrid(r io.Reader) (*Grid, error) {
	var (
		cell    CellSize
		haveDim bool
		values  []int
	)
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if strings.HasPrefix(fields[0], "#") {
			if len(fields) >= 3 && strings.EqualFold(fields[1], "boardsize") {
				dims, err := parseBoardsize(fields[2:])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineno, err)
				}
				cell, haveDim = dims, true
			}
			continue
		}
		for _, tok := range fields {
			sym, err := ParseSymbol(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: token %q is not a cell value", ErrFormat, lineno, tok)
			}
			values = append(values, sym.Integer())
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	if !haveDim {
		n := int(math.Sqrt(math.Sqrt(float64(len(values)))))
		if n*n*n*n != len(values) {
			return nil, fmt.Errorf("%w: %d cells do not form a square board of square regions and no boardsize directive was given", ErrFormat, len(values))
		}
		cell = CellSize{Width: n, Height: n}
	}
	return gridFromValues(cell, values)
}

// parseBoardsize reads the remainder of a boardsize directive. The
// dimensions may be spread over the tokens in any way, as long as they
// join to "WxH".
func parseBoardsize(rest []string) (CellSize, error) {
	joined := strings.ToLower(strings.Join(rest, ""))
	parts := strings.Split(joined, "x")
	if len(parts) != 2 {
		return CellSize{}, fmt.Errorf("%w: boardsize directive %q, want \"W x H\"", ErrFormat, strings.Join(rest, " "))
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return CellSize{}, fmt.Errorf("%w: boardsize width %q: %v", ErrFormat, parts[0], err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return CellSize{}, fmt.Errorf("%w: boardsize height %q: %v", ErrFormat, parts[1], err)
	}
	return CellSize{Width: w, Height: h}, nil
}

func gridFromValues(cell CellSize, values []int) (*Grid, error) {
	g, err := NewGrid(cell)
	if err != nil {
		return nil, err
	}
	if len(values) != g.size*g.size {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d board", ErrFormat, len(values), g.size, g.size)
	}
	for i, v := range values {
		if v > g.size {
			return nil, fmt.Errorf("%w: cell %d holds %s, boardsize is %d", ErrFormat, i, Symbol(v), g.size)
		}
		g.numbers[i] = uint8(v)
	}
	return g, nil
}

// Write renders the grid in the persisted layout: a boardsize header,
// three-column cells, double spacing after each region column, and a
// blank line after each region row.
func (g *Grid) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# boardsize %d x %d\n", g.cell.Width, g.cell.Height)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			fmt.Fprintf(bw, "%3s", Symbol(g.Value(r, c)))
			if (c+1)%g.cell.Width == 0 && c+1 != g.size {
				bw.WriteString("  ")
			}
		}
		bw.WriteByte('\n')
		if (r+1)%g.cell.Height == 0 && r+1 != g.size {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
