package generator

import (
	"context"
	"math/rand"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/solver"
)

// punch removes givens for as long as the puzzle stays solvable under
// the tier: first boardsize² random probes, then deterministic full
// sweeps until one clears nothing.
func (r *Random) punch(ctx context.Context, rng *rand.Rand, eng *solver.Engine, d domain.Difficulty) error {
	size := eng.Size()
	for n := 0; n < size*size; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.punchCell(ctx, eng, d, rng.Intn(size), rng.Intn(size)); err != nil {
			return err
		}
	}

	prev := -1
	for prev != eng.Changes() {
		prev = eng.Changes()
		for j := 0; j < size; j++ {
			for i := 0; i < size; i++ {
				if err := r.punchCell(ctx, eng, d, j, i); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// punchCell blanks one solved cell on a trial copy and keeps the
// clearing only when a freshly seeded solve under the same tier still
// completes the board.
func (r *Random) punchCell(ctx context.Context, eng *solver.Engine, d domain.Difficulty, row, col int) error {
	if eng.Value(row, col) == 0 {
		return nil
	}
	trial := eng.Grid()
	trial.SetValue(row, col, 0)
	_, ok, _, err := r.Solver.Solve(ctx, trial, d)
	if err != nil {
		return err
	}
	if ok {
		eng.Clear(row, col)
	}
	return nil
}

// restoreGivens hands handicap extra numbers back after punching. Cells
// are drawn uniformly until enough unsolved ones turned up; each gets
// its solved value pinned directly, with no propagation and no changes
// accounting.
func restoreGivens(rng *rand.Rand, eng *solver.Engine, solution *domain.Grid, handicap int) {
	size := eng.Size()
	for handicap > 0 && !eng.Finished() {
		col := rng.Intn(size)
		row := rng.Intn(size)
		if eng.CandidateCount(row, col) == 1 {
			continue
		}
		eng.Restore(row, col, solution.Value(row, col))
		handicap--
	}
}
