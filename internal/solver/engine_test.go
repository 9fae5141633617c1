package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudokukit/internal/domain"
)

func mustGrid(t *testing.T, cell domain.CellSize, rows [][]uint8) *domain.Grid {
	t.Helper()
	g, err := domain.GridFromNumbers(cell, rows)
	require.NoError(t, err)
	return g
}

func mustEmpty(t *testing.T, cell domain.CellSize) *Engine {
	t.Helper()
	e, err := NewEmpty(cell)
	require.NoError(t, err)
	return e
}

var complete2x2 = [][]uint8{
	{1, 2, 3, 4},
	{3, 4, 1, 2},
	{2, 1, 4, 3},
	{4, 3, 2, 1},
}

func TestNewEmptyOpensFullRange(t *testing.T) {
	e := mustEmpty(t, domain.CellSize{Width: 2, Height: 2})
	require.Equal(t, 0, e.Changes())
	require.Equal(t, []int{1, 2, 3, 4}, e.Possible(0, 0))
	require.Equal(t, 4, e.CandidateCount(3, 3))
	require.False(t, e.Finished())
	require.True(t, e.Solvable())

	_, err := NewEmpty(domain.CellSize{Width: 1, Height: 1})
	require.ErrorIs(t, err, domain.ErrConfig)
}

func TestAssignEliminatesPeers(t *testing.T) {
	e := mustEmpty(t, domain.CellSize{Width: 2, Height: 2})
	e.Assign(0, 0, 1)

	require.Equal(t, 1, e.Value(0, 0))
	require.Equal(t, 1, e.Changes())
	require.Equal(t, []int{2, 3, 4}, e.Possible(0, 1), "row peer")
	require.Equal(t, []int{2, 3, 4}, e.Possible(3, 0), "column peer")
	require.Equal(t, []int{2, 3, 4}, e.Possible(1, 1), "region peer")
	require.Equal(t, []int{1, 2, 3, 4}, e.Possible(3, 3), "non-peer untouched")
}

func TestAssignCascadesForcedCells(t *testing.T) {
	e := mustEmpty(t, domain.CellSize{Width: 2, Height: 2})
	e.Assign(0, 0, 1)
	e.Assign(0, 1, 2)
	e.Assign(0, 2, 3)

	require.Equal(t, 4, e.Value(0, 3), "last row cell is forced")
	require.Equal(t, 4, e.Changes(), "three explicit plus one forced")
}

func TestSeedSolvesTrivialBoard(t *testing.T) {
	g := mustGrid(t, domain.CellSize{Width: 2, Height: 2}, [][]uint8{
		{0, 2, 3, 4},
		{3, 0, 1, 2},
		{2, 1, 0, 3},
		{4, 3, 2, 0},
	})
	e := New(g)
	require.True(t, e.Finished(), "propagation alone fills the diagonal")
	require.True(t, e.Solvable())
	require.True(t, e.Grid().Equal(mustGrid(t, domain.CellSize{Width: 2, Height: 2}, complete2x2)))
}

func TestSeedContradictionLeavesHole(t *testing.T) {
	g := mustGrid(t, domain.CellSize{Width: 2, Height: 2}, [][]uint8{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	e := New(g)
	require.True(t, e.HasHoles(), "second 1 empties the first cell")
	require.False(t, e.Solvable())
}

func TestClearRevertsOnlySolvedCells(t *testing.T) {
	e := mustEmpty(t, domain.CellSize{Width: 2, Height: 2})
	e.Assign(1, 1, 3)
	require.Equal(t, 1, e.Changes())

	e.Clear(1, 1)
	require.Equal(t, 0, e.Changes())
	require.Equal(t, []int{1, 2, 3, 4}, e.Possible(1, 1))

	// Clearing an unsolved cell must change nothing.
	e.Clear(0, 0)
	require.Equal(t, 0, e.Changes())
}

func TestClearDoesNotRestorePeerEliminations(t *testing.T) {
	e := mustEmpty(t, domain.CellSize{Width: 2, Height: 2})
	e.Assign(0, 0, 1)
	require.Equal(t, []int{2, 3, 4}, e.Possible(0, 1))

	e.Clear(0, 0)
	require.Equal(t, []int{1, 2, 3, 4}, e.Possible(0, 0), "own set reopens")
	require.Equal(t, []int{2, 3, 4}, e.Possible(0, 1), "peer elimination stays")
}

func TestRestoreBypassesPropagationAndChanges(t *testing.T) {
	e := mustEmpty(t, domain.CellSize{Width: 2, Height: 2})
	e.Restore(1, 1, 3)

	require.Equal(t, 3, e.Value(1, 1))
	require.Equal(t, 0, e.Changes())
	require.Equal(t, []int{1, 2, 3, 4}, e.Possible(1, 0), "no elimination reaches peers")
}

func TestSolvableChecksEveryHouse(t *testing.T) {
	cases := []struct {
		name string
		pins [][3]int // row, col, value
	}{
		{"row duplicate", [][3]int{{0, 0, 1}, {0, 3, 1}}},
		{"column duplicate", [][3]int{{0, 2, 4}, {3, 2, 4}}},
		{"first region duplicate", [][3]int{{0, 0, 2}, {1, 1, 2}}},
		{"last region duplicate", [][3]int{{2, 2, 3}, {3, 3, 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := mustEmpty(t, domain.CellSize{Width: 2, Height: 2})
			for _, p := range tc.pins {
				e.Restore(p[0], p[1], p[2])
			}
			require.False(t, e.Solvable())
		})
	}

	e := New(mustGrid(t, domain.CellSize{Width: 2, Height: 2}, complete2x2))
	require.True(t, e.Solvable())
	require.True(t, e.Finished())
}

func TestGridSnapshotDoesNotAlias(t *testing.T) {
	e := mustEmpty(t, domain.CellSize{Width: 2, Height: 2})
	e.Assign(2, 3, 1)

	snap := e.Grid()
	require.Equal(t, 1, snap.Value(2, 3))
	require.Equal(t, 0, snap.Value(0, 0), "unsolved cells snapshot as empty")

	require.NoError(t, snap.SetValue(2, 3, 2))
	require.Equal(t, 1, e.Value(2, 3), "engine unaffected by snapshot edits")
}

func TestResetReopensBoard(t *testing.T) {
	e := New(mustGrid(t, domain.CellSize{Width: 2, Height: 2}, complete2x2))
	require.True(t, e.Finished())

	e.Reset()
	require.Equal(t, 0, e.Changes())
	require.False(t, e.Finished())
	require.Equal(t, []int{1, 2, 3, 4}, e.Possible(0, 0))
}

func TestRectangularRegions(t *testing.T) {
	// 3x2 regions make a 6x6 board; region of (2,4) spans rows 2-3,
	// columns 3-5.
	e := mustEmpty(t, domain.CellSize{Width: 3, Height: 2})
	e.Assign(2, 4, 6)

	require.NotContains(t, e.Possible(3, 5), 6, "region peer")
	require.NotContains(t, e.Possible(2, 0), 6, "row peer")
	require.NotContains(t, e.Possible(5, 4), 6, "column peer")
	require.Contains(t, e.Possible(1, 3), 6, "cell above the region keeps it")
}
