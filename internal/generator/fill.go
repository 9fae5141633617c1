package generator

import (
	"context"
	"fmt"
	"math/rand"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/solver"
)

// fill drives randomized placement until every cell is solved. Sweeps
// repeat while they keep changing the board; a sweep round that stalls
// on an unfinished board throws everything away and starts over, up to
// the restart budget. Returns how many restarts it took.
func (r *Random) fill(ctx context.Context, rng *rand.Rand, eng *solver.Engine, d domain.Difficulty) (int, error) {
	max := r.MaxRestarts
	if max <= 0 {
		max = DefaultMaxRestarts
	}
	restarts := 0
	for {
		prev := -1
		for prev != eng.Changes() {
			if err := ctx.Err(); err != nil {
				return restarts, err
			}
			prev = eng.Changes()
			r.sweep(rng, eng, d)
		}
		if eng.Finished() {
			return restarts, nil
		}
		restarts++
		if restarts >= max {
			return restarts, fmt.Errorf("%w: %d restarts filling a %dx%d board", ErrBudget, restarts, eng.Size(), eng.Size())
		}
		eng.Reset()
	}
}

// sweep visits every unsolved cell in row-major order and tries one
// random placement on each.
func (r *Random) sweep(rng *rand.Rand, eng *solver.Engine, d domain.Difficulty) {
	size := eng.Size()
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			if eng.Value(j, i) != 0 {
				continue
			}
			r.placeRandom(rng, eng, j, i, d)
		}
	}
}

// placeRandom assigns a random candidate at (row, col). A placement
// that empties any cell is taken straight back, leaving the emptied
// peer as-is; one that sticks gets the tier's passes run on it.
func (r *Random) placeRandom(rng *rand.Rand, eng *solver.Engine, row, col int, d domain.Difficulty) {
	cands := eng.Possible(row, col)
	if len(cands) <= 1 {
		return
	}
	eng.Assign(row, col, cands[rng.Intn(len(cands))])
	if eng.HasHoles() {
		eng.Clear(row, col)
		return
	}
	eng.ApplyPasses(d)
}
