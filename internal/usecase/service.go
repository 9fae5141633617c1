// Package usecase aggregates the engine ports behind one service so
// adapters depend on a single seam.
package usecase

import (
	"context"
	"errors"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

type Service struct {
	Solver     ports.Solver
	Generator  ports.Generator
	Classifier ports.Classifier
	Validator  ports.Validator
	Storage    ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, c ports.Classifier, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Classifier: c, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *domain.Grid, d domain.Difficulty) (*domain.Grid, bool, ports.Stats, error) {
	if u.Solver == nil {
		return nil, false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g, d)
}

func (u *Service) Generate(ctx context.Context, seed int64, cell domain.CellSize, d domain.Difficulty, handicap int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, cell, d, handicap)
}

func (u *Service) Classify(ctx context.Context, g *domain.Grid) (domain.Difficulty, bool, ports.Stats, error) {
	if u.Classifier == nil {
		return 0, false, ports.Stats{}, errNotConfigured
	}
	return u.Classifier.Classify(ctx, g)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
