package ports

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	// Changes is the engine's net assignment counter after the
	// operation: one per placed number, minus explicit reverts.
	Changes int
	// Restarts counts full board rebuilds during generation.
	Restarts int
	Duration time.Duration
}

// Solver runs rule-based deduction up to a difficulty tier. The
// returned board is a solved copy when ok is true; when ok is false it
// holds whatever progress the tier could make.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid, d domain.Difficulty) (*domain.Grid, bool, Stats, error)
}

// Generator creates a puzzle whose solution needs exactly the requested
// tier. Handicap leaves that many extra givens on the board.
type Generator interface {
	Generate(ctx context.Context, seed int64, cell domain.CellSize, d domain.Difficulty, handicap int) (*domain.Puzzle, Stats, error)
}

// Classifier grades a board by the weakest tier that fully solves it.
// ok is false when even the strongest tier gets stuck.
type Classifier interface {
	Classify(ctx context.Context, g *domain.Grid) (domain.Difficulty, bool, Stats, error)
}

// Validator performs fast constraint checks (row/column/region).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
