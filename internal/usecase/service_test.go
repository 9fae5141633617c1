package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
	"svw.info/sudokukit/internal/solver"
)

func TestServiceDelegatesSolve(t *testing.T) {
	svc := NewService(solver.NewRuleSolver(), nil, nil, nil, nil)

	g, err := domain.GridFromNumbers(domain.CellSize{Width: 2, Height: 2}, [][]uint8{
		{0, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	require.NoError(t, err)

	out, solved, st, err := svc.Solve(context.Background(), g, domain.Easy)
	require.NoError(t, err)
	require.True(t, solved)
	require.Equal(t, 1, out.Value(0, 0))
	require.Positive(t, st.Changes)
}

func TestServiceRejectsMissingDependencies(t *testing.T) {
	svc := &Service{}
	ctx := context.Background()

	_, _, _, err := svc.Solve(ctx, nil, domain.Easy)
	require.ErrorContains(t, err, "not configured")

	_, _, err = svc.Generate(ctx, 1, domain.CellSize{Width: 2, Height: 2}, domain.Easy, 0)
	require.ErrorContains(t, err, "not configured")

	_, _, _, err = svc.Classify(ctx, nil)
	require.ErrorContains(t, err, "not configured")

	_, _, err = svc.Validate(ctx, nil)
	require.ErrorContains(t, err, "not configured")

	require.ErrorContains(t, svc.Save(ctx, &domain.Puzzle{}), "not configured")
	_, err = svc.Load(ctx, "id")
	require.ErrorContains(t, err, "not configured")
	_, err = svc.List(ctx)
	require.ErrorContains(t, err, "not configured")
}

// stubStorage counts calls so the delegation can be observed without a
// filesystem.
type stubStorage struct {
	saved  []*domain.Puzzle
	loaded []string
	lists  int
}

func (s *stubStorage) Save(ctx context.Context, p *domain.Puzzle) error {
	s.saved = append(s.saved, p)
	return nil
}

func (s *stubStorage) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	s.loaded = append(s.loaded, id)
	return &domain.Puzzle{ID: id}, nil
}

func (s *stubStorage) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	s.lists++
	return []domain.PuzzleMeta{{ID: "a"}}, nil
}

var _ ports.Storage = (*stubStorage)(nil)

func TestServiceDelegatesStorage(t *testing.T) {
	st := &stubStorage{}
	svc := NewService(nil, nil, nil, nil, st)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, &domain.Puzzle{ID: "x"}))
	p, err := svc.Load(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, "x", p.ID)
	metas, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)

	require.Len(t, st.saved, 1)
	require.Equal(t, []string{"x"}, st.loaded)
	require.Equal(t, 1, st.lists)
}
