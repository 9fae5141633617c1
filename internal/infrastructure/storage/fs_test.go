package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"svw.info/sudokukit/internal/domain"
)

func samplePuzzle(d domain.Difficulty) *domain.Puzzle {
	return &domain.Puzzle{
		Difficulty: d,
		CellSize:   domain.CellSize{Width: 2, Height: 2},
		Givens: [][]uint8{
			{1, 0, 0, 4},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{4, 0, 0, 1},
		},
		Seed: 7,
	}
}

func TestSaveAssignsIdentityAndPlacesFile(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)

	p := samplePuzzle(domain.Hard)
	require.NoError(t, s.Save(context.Background(), p))
	require.NotEmpty(t, p.ID, "save stamps an id")
	require.NotZero(t, p.CreatedAt, "save stamps a creation time")

	_, err := os.Stat(filepath.Join(dir, "hard", p.ID+".json"))
	require.NoError(t, err, "document lives under its tier directory")

	require.Error(t, s.Save(context.Background(), nil))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())

	p := samplePuzzle(domain.Normal)
	p.Name = "evening round"
	require.NoError(t, s.Save(context.Background(), p))

	back, err := s.Load(context.Background(), p.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(p, back); diff != "" {
		t.Fatalf("puzzle changed across save/load (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadLegacyFlatDocument(t *testing.T) {
	dir := t.TempDir()
	// A flat pre-tier document without a difficulty field.
	doc := `{"id":"old","cellSize":{"width":2,"height":2},"givens":[[1,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.json"), []byte(doc), 0o644))

	p, err := NewFS(dir).Load(context.Background(), "old")
	require.NoError(t, err)
	require.Equal(t, "old", p.ID)
	require.Equal(t, domain.Normal, p.Difficulty, "flat documents count as normal")
}

func TestLoadStampsDifficultyFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hard"), 0o755))
	doc := `{"id":"h1","cellSize":{"width":2,"height":2},"givens":[[0,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hard", "h1.json"), []byte(doc), 0o644))

	p, err := NewFS(dir).Load(context.Background(), "h1")
	require.NoError(t, err)
	require.Equal(t, domain.Hard, p.Difficulty)
}

func TestListAcrossTiers(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	for _, d := range domain.Tiers() {
		p := samplePuzzle(d)
		p.Name = d.String() + " sample"
		require.NoError(t, s.Save(ctx, p))
	}
	// Junk that List must step over.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 3)

	seen := map[domain.Difficulty]bool{}
	for _, m := range metas {
		require.NotEmpty(t, m.ID)
		require.NotZero(t, m.CreatedAt)
		seen[m.Difficulty] = true
	}
	require.Len(t, seen, 3, "one entry per tier")
}

func TestListEmptyStore(t *testing.T) {
	metas, err := NewFS(t.TempDir()).List(context.Background())
	require.NoError(t, err)
	require.Empty(t, metas)
}

func TestListMissingRoot(t *testing.T) {
	s := NewFS(filepath.Join(t.TempDir(), "never-created"))
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, metas)
	_, err = s.Load(context.Background(), "x")
	require.True(t, errors.Is(err, os.ErrNotExist))
}
