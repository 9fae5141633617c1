package domain

import "fmt"

// CellSize describes the region shape: Width columns by Height rows.
// The board is Width*Height cells on a side.
type CellSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Boardsize returns the side length of a board with this region shape.
func (c CellSize) Boardsize() int { return c.Width * c.Height }

// CellCoord identifies a cell by zero-based row and column.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid holds the numbers of a boardsize² board partitioned into
// Width×Height regions. Zero means empty. Mutation goes through
// SetValue so the value invariant holds everywhere else.
type Grid struct {
	cell    CellSize
	size    int
	numbers []uint8
}

// NewGrid allocates an empty grid for the given region shape.
func NewGrid(cell CellSize) (*Grid, error) {
	size := cell.Boardsize()
	if size <= 1 {
		return nil, fmt.Errorf("%w: %dx%d regions make a board of size %d", ErrConfig, cell.Width, cell.Height, size)
	}
	if size > MaxSymbol {
		return nil, fmt.Errorf("%w: boardsize %d exceeds the symbol alphabet (%d)", ErrConfig, size, MaxSymbol)
	}
	return &Grid{cell: cell, size: size, numbers: make([]uint8, size*size)}, nil
}

// GridFromNumbers rebuilds a grid from a row-major matrix, validating
// the shape and every value.
func GridFromNumbers(cell CellSize, rows [][]uint8) (*Grid, error) {
	g, err := NewGrid(cell)
	if err != nil {
		return nil, err
	}
	if len(rows) != g.size {
		return nil, fmt.Errorf("%w: %d rows for boardsize %d", ErrFormat, len(rows), g.size)
	}
	for r, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrFormat, r, len(row), g.size)
		}
		for c, v := range row {
			if err := g.SetValue(r, c, int(v)); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// CellShape returns the region shape.
func (g *Grid) CellShape() CellSize { return g.cell }

// Size returns the board side length.
func (g *Grid) Size() int { return g.size }

// Value returns the number at (row, col). Bounds are the caller's
// responsibility.
func (g *Grid) Value(row, col int) int { return int(g.numbers[row*g.size+col]) }

// SetValue stores v at (row, col); v must lie in [0, boardsize].
func (g *Grid) SetValue(row, col, v int) error {
	if v < 0 || v > g.size {
		return fmt.Errorf("%w: value %d not in [0, %d]", ErrRange, v, g.size)
	}
	g.numbers[row*g.size+col] = uint8(v)
	return nil
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{cell: g.cell, size: g.size, numbers: make([]uint8, len(g.numbers))}
	copy(out.numbers, g.numbers)
	return out
}

// Numbers returns a fresh matrix of the stored values for callers that
// lay the board out elsewhere.
func (g *Grid) Numbers() [][]uint8 {
	out := make([][]uint8, g.size)
	for r := 0; r < g.size; r++ {
		out[r] = make([]uint8, g.size)
		copy(out[r], g.numbers[r*g.size:(r+1)*g.size])
	}
	return out
}

// FilledCount reports how many cells hold a nonzero value.
func (g *Grid) FilledCount() int {
	n := 0
	for _, v := range g.numbers {
		if v != 0 {
			n++
		}
	}
	return n
}

// RegionOrigin gives the top-left coordinate of the region containing
// (row, col).
func (g *Grid) RegionOrigin(row, col int) (int, int) {
	return (row / g.cell.Height) * g.cell.Height, (col / g.cell.Width) * g.cell.Width
}

// Equal reports whether both grids have the same shape and numbers.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.cell != o.cell {
		return false
	}
	for i := range g.numbers {
		if g.numbers[i] != o.numbers[i] {
			return false
		}
	}
	return true
}
