package solver

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/ctxlog"
	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// RuleSolver solves by candidate propagation plus the difficulty's
// deduction passes, never by search. Boards beyond the tier's reach
// come back unsolved with ok false.
type RuleSolver struct{}

func NewRuleSolver() *RuleSolver { return &RuleSolver{} }

// Solve seeds a fresh engine from g and reruns the tier's passes until
// a full round leaves the changes counter untouched. ok reports whether
// every cell ended solved; the returned grid carries whatever progress
// was made. An inconsistent board returns immediately with ok false.
func (s *RuleSolver) Solve(ctx context.Context, g *domain.Grid, d domain.Difficulty) (*domain.Grid, bool, ports.Stats, error) {
	start := time.Now()
	eng := New(g)
	if !eng.Solvable() {
		return eng.Grid(), false, ports.Stats{Changes: eng.Changes(), Duration: time.Since(start)}, nil
	}

	prev := -1
	for prev != eng.Changes() {
		if err := ctx.Err(); err != nil {
			return eng.Grid(), false, ports.Stats{Changes: eng.Changes(), Duration: time.Since(start)}, err
		}
		prev = eng.Changes()
		eng.ApplyPasses(d)
	}

	done := eng.Finished()
	ctxlog.FromContext(ctx).Debug("solve round complete",
		"difficulty", d.String(), "solved", done, "changes", eng.Changes())
	return eng.Grid(), done, ports.Stats{Changes: eng.Changes(), Duration: time.Since(start)}, nil
}
