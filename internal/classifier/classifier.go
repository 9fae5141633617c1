// Package classifier grades boards by the weakest technique tier that
// completes them.
package classifier

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/ctxlog"
	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// Grader classifies by re-solving under each tier in turn.
type Grader struct {
	Solver ports.Solver
}

func New(s ports.Solver) *Grader { return &Grader{Solver: s} }

// Classify tries every tier in increasing strength, each on a fresh
// seeding of the board, and returns the first that fully solves it.
// ok is false when even the strongest tier stalls; that is a valid
// grading outcome, not an error.
func (g *Grader) Classify(ctx context.Context, board *domain.Grid) (domain.Difficulty, bool, ports.Stats, error) {
	start := time.Now()
	var total ports.Stats
	for _, d := range domain.Tiers() {
		_, ok, st, err := g.Solver.Solve(ctx, board, d)
		total.Changes += st.Changes
		total.Duration = time.Since(start)
		if err != nil {
			return 0, false, total, err
		}
		if ok {
			ctxlog.FromContext(ctx).Debug("board graded", "difficulty", d.String())
			return d, true, total, nil
		}
	}
	ctxlog.FromContext(ctx).Debug("board beyond known techniques")
	return 0, false, total, nil
}
