package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"svw.info/sudokukit/internal/domain"
)

func TestTextLayout(t *testing.T) {
	g, err := domain.GridFromNumbers(domain.CellSize{Width: 2, Height: 2}, [][]uint8{
		{1, 2, 3, 4},
		{3, 0, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 0, 1},
	})
	require.NoError(t, err)

	want := "" +
		" 1 2 | 3 4\n" +
		" 3 . | 1 2\n" +
		"-----+----\n" +
		" 2 1 | 4 3\n" +
		" 4 3 | . 1\n"
	if diff := cmp.Diff(want, Text(g)); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestTextLetterSymbols(t *testing.T) {
	g, err := domain.NewGrid(domain.CellSize{Width: 4, Height: 3})
	require.NoError(t, err)
	require.NoError(t, g.SetValue(0, 0, 12))
	require.NoError(t, g.SetValue(11, 11, 10))

	out := Text(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12+3, "12 board rows plus 3 rules")
	require.True(t, strings.HasPrefix(lines[0], " C"), "12 renders as C: %q", lines[0])
	require.True(t, strings.HasSuffix(lines[14], "A"), "10 renders as A: %q", lines[14])
}

func TestTextRectangularRegions(t *testing.T) {
	g, err := domain.NewGrid(domain.CellSize{Width: 3, Height: 2})
	require.NoError(t, err)

	out := Text(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6+2)
	require.Equal(t, " . . . | . . .", lines[0])
	require.Equal(t, "-------+------", lines[2])
}
