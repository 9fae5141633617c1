// Package solver holds the candidate-set engine and the rule-based
// deduction passes built on top of it.
package solver

import (
	"math/bits"

	"svw.info/sudokukit/internal/domain"
)

// Engine tracks the set of still-viable values for every cell of a
// board as a bitmask (bit v set means v remains possible). Assigning a
// value narrows the cell to that single value and eliminates it from
// all peers; eliminations that leave a peer with one candidate queue a
// forced assignment, and the queue drains before control returns.
//
// The changes counter grows by one on every assignment and shrinks by
// one only when a solved cell is explicitly cleared. Deduction loops
// compare it across rounds to detect a fixpoint; its absolute value has
// no other meaning.
type Engine struct {
	cell    domain.CellSize
	size    int
	full    uint64
	cells   []uint64
	changes int
	queue   []int
}

// New seeds an engine from a grid snapshot. Every cell starts with the
// full candidate range, then each nonzero value is assigned through the
// regular propagation path. The engine never aliases the grid.
func New(g *domain.Grid) *Engine {
	size := g.Size()
	e := &Engine{
		cell:  g.CellShape(),
		size:  size,
		full:  (uint64(1)<<uint(size+1) - 1) &^ 1,
		cells: make([]uint64, size*size),
	}
	for i := range e.cells {
		e.cells[i] = e.full
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if v := g.Value(r, c); v != 0 {
				e.Assign(r, c, v)
			}
		}
	}
	return e
}

// NewEmpty builds an engine over an all-empty board.
func NewEmpty(cell domain.CellSize) (*Engine, error) {
	g, err := domain.NewGrid(cell)
	if err != nil {
		return nil, err
	}
	return New(g), nil
}

// Reset reopens every cell and zeroes the changes counter.
func (e *Engine) Reset() {
	for i := range e.cells {
		e.cells[i] = e.full
	}
	e.changes = 0
	e.queue = e.queue[:0]
}

// Size returns the board side length.
func (e *Engine) Size() int { return e.size }

// CellShape returns the region shape.
func (e *Engine) CellShape() domain.CellSize { return e.cell }

// Changes returns the net assignment counter.
func (e *Engine) Changes() int { return e.changes }

func (e *Engine) index(row, col int) int { return row*e.size + col }

func (e *Engine) mask(row, col int) uint64 { return e.cells[e.index(row, col)] }

func (e *Engine) has(row, col, value int) bool {
	return e.mask(row, col)&(1<<uint(value)) != 0
}

// rowSpan returns the half-open row range of the region containing row.
func (e *Engine) rowSpan(row int) (int, int) {
	ini := (row / e.cell.Height) * e.cell.Height
	return ini, ini + e.cell.Height
}

// colSpan returns the half-open column range of the region containing col.
func (e *Engine) colSpan(col int) (int, int) {
	ini := (col / e.cell.Width) * e.cell.Width
	return ini, ini + e.cell.Width
}

// Value returns the solved value at (row, col), or 0 while the cell is
// not down to a single candidate.
func (e *Engine) Value(row, col int) int {
	m := e.mask(row, col)
	if bits.OnesCount64(m) != 1 {
		return 0
	}
	return bits.TrailingZeros64(m)
}

// CandidateCount returns the size of the cell's candidate set.
func (e *Engine) CandidateCount(row, col int) int {
	return bits.OnesCount64(e.mask(row, col))
}

// Possible lists the cell's candidates in ascending order.
func (e *Engine) Possible(row, col int) []int {
	m := e.mask(row, col)
	out := make([]int, 0, bits.OnesCount64(m))
	for ; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}
	return out
}

// Assign forces (row, col) to value and propagates the elimination to
// every peer. The value need not be among the current candidates:
// seeding a board that contradicts itself leaves the clashing peer with
// an empty set instead of failing.
func (e *Engine) Assign(row, col, value int) {
	e.place(e.index(row, col), value)
	e.drain()
}

// Clear reverts a solved cell to the full candidate range and takes one
// change back. Eliminations the cell previously pushed onto its peers
// stay in place; only the cell's own set is restored. Clearing an
// unsolved cell is a no-op.
func (e *Engine) Clear(row, col int) {
	idx := e.index(row, col)
	if bits.OnesCount64(e.cells[idx]) != 1 {
		return
	}
	e.cells[idx] = e.full
	e.changes--
}

// Restore pins a cell to value with no propagation and no changes
// accounting. The generator uses it to hand extra givens back onto a
// punched board.
func (e *Engine) Restore(row, col, value int) {
	e.cells[e.index(row, col)] = 1 << uint(value)
}

// place writes the single-candidate mask, counts the change, and queues
// the eliminations on all peers. Callers must drain afterwards.
func (e *Engine) place(idx, value int) {
	e.cells[idx] = 1 << uint(value)
	e.changes++

	row, col := idx/e.size, idx%e.size
	for h := 0; h < e.size; h++ {
		if h != col {
			e.eliminate(e.index(row, h), value)
		}
	}
	for v := 0; v < e.size; v++ {
		if v != row {
			e.eliminate(e.index(v, col), value)
		}
	}
	rini, rmax := e.rowSpan(row)
	cini, cmax := e.colSpan(col)
	for v := rini; v < rmax; v++ {
		for h := cini; h < cmax; h++ {
			if v != row || h != col {
				e.eliminate(e.index(v, h), value)
			}
		}
	}
}

// eliminate drops value from one cell's candidates. A cell reduced to a
// single candidate is queued for forced assignment.
func (e *Engine) eliminate(idx, value int) {
	bit := uint64(1) << uint(value)
	m := e.cells[idx]
	if m&bit == 0 {
		return
	}
	m &^= bit
	e.cells[idx] = m
	if bits.OnesCount64(m) == 1 {
		e.queue = append(e.queue, idx)
	}
}

// drain runs queued forced assignments until none remain. A queued cell
// whose set was emptied in the meantime is skipped; the empty set stays
// behind as the contradiction marker.
func (e *Engine) drain() {
	for n := 0; n < len(e.queue); n++ {
		idx := e.queue[n]
		m := e.cells[idx]
		if bits.OnesCount64(m) != 1 {
			continue
		}
		e.place(idx, bits.TrailingZeros64(m))
	}
	e.queue = e.queue[:0]
}

// subtract removes value from one cell and runs any forced assignments
// the removal triggers.
func (e *Engine) subtract(idx, value int) {
	e.eliminate(idx, value)
	e.drain()
}

// Finished reports whether every cell is down to exactly one candidate.
func (e *Engine) Finished() bool {
	for _, m := range e.cells {
		if bits.OnesCount64(m) != 1 {
			return false
		}
	}
	return true
}

// HasHoles reports whether any cell has run out of candidates.
func (e *Engine) HasHoles() bool {
	for _, m := range e.cells {
		if m == 0 {
			return true
		}
	}
	return false
}

// Solvable reports local consistency: no row, column, or region holds
// the same solved value in two cells, and no cell has run out of
// candidates. It is not a completability proof; a board can pass and
// still admit no completion.
func (e *Engine) Solvable() bool {
	if e.HasHoles() {
		return false
	}
	for j := 0; j < e.size; j++ {
		if !e.houseConsistent(e.rowIndexes(j)) {
			return false
		}
	}
	for i := 0; i < e.size; i++ {
		if !e.houseConsistent(e.colIndexes(i)) {
			return false
		}
	}
	for j := 0; j < e.size; j += e.cell.Height {
		for i := 0; i < e.size; i += e.cell.Width {
			if !e.houseConsistent(e.regionIndexes(j, i)) {
				return false
			}
		}
	}
	return true
}

// houseConsistent checks one row, column, or region for repeated solved
// values. A solved cell's mask is exactly its value bit, so duplicates
// show up as mask overlap.
func (e *Engine) houseConsistent(house []int) bool {
	var seen uint64
	for _, idx := range house {
		m := e.cells[idx]
		if bits.OnesCount64(m) != 1 {
			continue
		}
		if seen&m != 0 {
			return false
		}
		seen |= m
	}
	return true
}

// Grid snapshots the engine into a fresh grid: each solved cell's value,
// zero elsewhere.
func (e *Engine) Grid() *domain.Grid {
	g, _ := domain.NewGrid(e.cell)
	for r := 0; r < e.size; r++ {
		for c := 0; c < e.size; c++ {
			if v := e.Value(r, c); v != 0 {
				g.SetValue(r, c, v)
			}
		}
	}
	return g
}

// rowIndexes lists the cell indexes of one row.
func (e *Engine) rowIndexes(row int) []int {
	idxs := make([]int, e.size)
	for i := range idxs {
		idxs[i] = e.index(row, i)
	}
	return idxs
}

// colIndexes lists the cell indexes of one column.
func (e *Engine) colIndexes(col int) []int {
	idxs := make([]int, e.size)
	for j := range idxs {
		idxs[j] = e.index(j, col)
	}
	return idxs
}

// regionIndexes lists the region containing (row, col) in row-major
// order.
func (e *Engine) regionIndexes(row, col int) []int {
	rini, rmax := e.rowSpan(row)
	cini, cmax := e.colSpan(col)
	idxs := make([]int, 0, e.cell.Width*e.cell.Height)
	for v := rini; v < rmax; v++ {
		for h := cini; h < cmax; h++ {
			idxs = append(idxs, e.index(v, h))
		}
	}
	return idxs
}
