package solver

import (
	"math/bits"

	"svw.info/sudokukit/internal/domain"
)

// A pass makes one sweep over the board applying a single deduction
// technique. Passes assign through the engine, so every find propagates
// before the sweep moves on.
type pass func(*Engine)

var (
	normalPasses = []pass{uniqueCandidates, pointingElimination}
	hardPasses   = []pass{uniqueCandidates, pointingElimination, nakedSubsets}
)

// passesFor maps a difficulty to its ordered technique list. Easy uses
// propagation alone and has no passes.
func passesFor(d domain.Difficulty) []pass {
	switch d {
	case domain.Normal:
		return normalPasses
	case domain.Hard:
		return hardPasses
	}
	return nil
}

// ApplyPasses runs the difficulty's technique list once over the board.
func (e *Engine) ApplyPasses(d domain.Difficulty) {
	for _, p := range passesFor(d) {
		p(e)
	}
}

// uniqueCandidates assigns any candidate that no other cell of the same
// row, column, or region still allows. Row wins over column wins over
// region, and a cell takes at most one deduction per sweep.
func uniqueCandidates(e *Engine) {
	for j := 0; j < e.size; j++ {
		for i := 0; i < e.size; i++ {
			if e.CandidateCount(j, i) <= 1 {
				continue
			}
			if e.assignUnique(j, i, e.rowIndexes(j)) {
				continue
			}
			if e.assignUnique(j, i, e.colIndexes(i)) {
				continue
			}
			e.assignUnique(j, i, e.regionIndexes(j, i))
		}
	}
}

// assignUnique assigns the first candidate of (row, col) that appears
// nowhere else in the house.
func (e *Engine) assignUnique(row, col int, house []int) bool {
	self := e.index(row, col)
	for m := e.cells[self]; m != 0; m &= m - 1 {
		v := bits.TrailingZeros64(m)
		if e.uniqueIn(house, self, v) {
			e.Assign(row, col, v)
			return true
		}
	}
	return false
}

func (e *Engine) uniqueIn(house []int, self, value int) bool {
	bit := uint64(1) << uint(value)
	for _, idx := range house {
		if idx != self && e.cells[idx]&bit != 0 {
			return false
		}
	}
	return true
}

// pointingElimination clears a candidate from the remainder of a row or
// column when its region confines the candidate to that line.
func pointingElimination(e *Engine) {
	for j := 0; j < e.size; j++ {
		for i := 0; i < e.size; i++ {
			e.pointAlongRow(j, i)
			e.pointAlongColumn(j, i)
		}
	}
}

// pointAlongRow checks each candidate of (row, col): when no other row
// of the region allows it, the region must place it in this row, so the
// rest of the row outside the region drops it.
func (e *Engine) pointAlongRow(row, col int) {
	if e.CandidateCount(row, col) <= 1 {
		return
	}
	rini, rmax := e.rowSpan(row)
	cini, cmax := e.colSpan(col)
	for m := e.mask(row, col); m != 0; m &= m - 1 {
		v := bits.TrailingZeros64(m)
		// Cascades from earlier removals may have taken v from this
		// cell already; a stale candidate must not license anything.
		if !e.has(row, col, v) {
			continue
		}
		if e.regionAllowsInOtherRows(rini, rmax, cini, cmax, row, v) {
			continue
		}
		for h := 0; h < cini; h++ {
			e.subtract(e.index(row, h), v)
		}
		for h := cmax; h < e.size; h++ {
			e.subtract(e.index(row, h), v)
		}
	}
}

// pointAlongColumn is the column analogue of pointAlongRow.
func (e *Engine) pointAlongColumn(row, col int) {
	if e.CandidateCount(row, col) <= 1 {
		return
	}
	rini, rmax := e.rowSpan(row)
	cini, cmax := e.colSpan(col)
	for m := e.mask(row, col); m != 0; m &= m - 1 {
		v := bits.TrailingZeros64(m)
		if !e.has(row, col, v) {
			continue
		}
		if e.regionAllowsInOtherColumns(rini, rmax, cini, cmax, col, v) {
			continue
		}
		for r := 0; r < rini; r++ {
			e.subtract(e.index(r, col), v)
		}
		for r := rmax; r < e.size; r++ {
			e.subtract(e.index(r, col), v)
		}
	}
}

func (e *Engine) regionAllowsInOtherRows(rini, rmax, cini, cmax, row, value int) bool {
	for r := rini; r < rmax; r++ {
		if r == row {
			continue
		}
		for c := cini; c < cmax; c++ {
			if e.has(r, c, value) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) regionAllowsInOtherColumns(rini, rmax, cini, cmax, col, value int) bool {
	for r := rini; r < rmax; r++ {
		for c := cini; c < cmax; c++ {
			if c == col {
				continue
			}
			if e.has(r, c, value) {
				return true
			}
		}
	}
	return false
}

// nakedSubsets finds n unsolved cells of a house whose candidates union
// to exactly n values and strips those values from the rest of the
// house. Larger subsets are tried first; every row, then every column,
// then every region.
func nakedSubsets(e *Engine) {
	for j := 0; j < e.size; j++ {
		e.nakedSubsetHouse(e.rowIndexes(j), true)
	}
	for i := 0; i < e.size; i++ {
		e.nakedSubsetHouse(e.colIndexes(i), false)
	}
	for j := 0; j < e.size; j += e.cell.Height {
		for i := 0; i < e.size; i += e.cell.Width {
			e.nakedSubsetHouse(e.regionIndexes(j, i), true)
		}
	}
}

// nakedSubsetHouse runs the subset search over one house. sizeGuard
// skips combinations holding a cell with more candidates than the
// subset size; any member of a qualifying subset fits inside the union,
// so the guard never changes which subsets qualify. The column sweep
// runs unguarded.
func (e *Engine) nakedSubsetHouse(house []int, sizeGuard bool) {
	var unsolved []int
	for _, idx := range house {
		if bits.OnesCount64(e.cells[idx]) > 1 {
			unsolved = append(unsolved, idx)
		}
	}
	for x := len(unsolved) - 1; x >= 2; x-- {
		combinations(unsolved, x, func(combo []int) {
			if sizeGuard {
				for _, idx := range combo {
					if bits.OnesCount64(e.cells[idx]) > x {
						return
					}
				}
			}
			var union uint64
			for _, idx := range combo {
				union |= e.cells[idx]
			}
			if bits.OnesCount64(union) != x {
				return
			}
			e.stripOutside(house, combo, union)
		})
	}
}

// stripOutside removes every value in union from the house cells not in
// the combination.
func (e *Engine) stripOutside(house, combo []int, union uint64) {
	for _, idx := range house {
		if containsIndex(combo, idx) {
			continue
		}
		for m := union; m != 0; m &= m - 1 {
			e.subtract(idx, bits.TrailingZeros64(m))
		}
	}
}

func containsIndex(idxs []int, idx int) bool {
	for _, i := range idxs {
		if i == idx {
			return true
		}
	}
	return false
}

// combinations calls fn with every x-element combination of items in
// lexicographic order. The slice handed to fn is reused between calls.
func combinations(items []int, x int, fn func([]int)) {
	if x <= 0 || x > len(items) {
		return
	}
	choose := make([]int, x)
	for i := range choose {
		choose[i] = i
	}
	combo := make([]int, x)
	for {
		for i, k := range choose {
			combo[i] = items[k]
		}
		fn(combo)

		i := x - 1
		for i >= 0 && choose[i] == len(items)-x+i {
			i--
		}
		if i < 0 {
			return
		}
		choose[i]++
		for k := i + 1; k < x; k++ {
			choose[k] = choose[k-1] + 1
		}
	}
}
