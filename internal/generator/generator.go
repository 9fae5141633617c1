// Package generator builds puzzles by filling a board with random
// assignments under candidate propagation, then punching out every
// given the difficulty's techniques can recover.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/sudokukit/internal/ctxlog"
	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
	"svw.info/sudokukit/internal/solver"
)

// DefaultMaxRestarts bounds how many times the fill phase may throw the
// board away before generation gives up.
const DefaultMaxRestarts = 250

// ErrBudget reports a fill phase that kept getting stuck until the
// restart budget ran out.
var ErrBudget = errors.New("generation restart budget exhausted")

// Random generates puzzles with a randomized fill and verified hole
// punching. The Solver re-solves candidate boards to confirm each
// removal stays within the requested difficulty.
type Random struct {
	Solver      ports.Solver
	MaxRestarts int // 0 means DefaultMaxRestarts
}

// NewRandom wires a generator that verifies removals with the solver.
func NewRandom(s ports.Solver) *Random {
	return &Random{Solver: s, MaxRestarts: DefaultMaxRestarts}
}

// Generate builds a puzzle of the given shape and difficulty. A zero
// seed draws one from the clock. Handicap pins that many extra givens
// back onto the punched board. The returned puzzle always carries the
// full solution alongside the givens.
func (r *Random) Generate(ctx context.Context, seed int64, cell domain.CellSize, d domain.Difficulty, handicap int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	eng, err := solver.NewEmpty(cell)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	log := ctxlog.FromContext(ctx)
	restarts, err := r.fill(ctx, rng, eng, d)
	stats := ports.Stats{Changes: eng.Changes(), Restarts: restarts, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	log.Debug("board filled", "restarts", restarts, "changes", eng.Changes())

	solution := eng.Grid()
	if err := r.punch(ctx, rng, eng, d); err != nil {
		stats.Changes = eng.Changes()
		stats.Duration = time.Since(start)
		return nil, stats, err
	}
	if handicap > 0 {
		restoreGivens(rng, eng, solution, handicap)
	}

	givens := eng.Grid()
	log.Debug("board punched",
		"difficulty", d.String(), "givens", givens.FilledCount(), "handicap", handicap)

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: d,
		CellSize:   cell,
		Givens:     givens.Numbers(),
		Solution:   solution.Numbers(),
		Checksum:   domain.GridChecksum(givens),
		CreatedAt:  time.Now().UnixNano(),
	}
	stats.Changes = eng.Changes()
	stats.Duration = time.Since(start)
	return p, stats, nil
}
