// Package storage persists puzzles as JSON documents on the
// filesystem, one directory per difficulty tier.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"svw.info/sudokukit/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

// Save writes the puzzle under its difficulty directory. Puzzles
// arriving without an id or creation time get them stamped here.
func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("invalid puzzle: nil")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Load looks the id up in every difficulty directory and then in the
// root itself, the flat layout older documents used. Documents that
// predate the difficulty field get it from the directory they sit in;
// flat ones count as normal.
func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	id = strings.TrimSpace(id)
	for _, d := range domain.Tiers() {
		p, err := s.readPuzzle(filepath.Join(s.dir, d.String(), id+".json"), d)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return p, err
	}
	return s.readPuzzle(filepath.Join(s.dir, id+".json"), domain.Normal)
}

func (s *FS) readPuzzle(path string, fallback domain.Difficulty) (*domain.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	var probe struct {
		Difficulty *json.RawMessage `json:"difficulty"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Difficulty == nil {
		out.Difficulty = fallback
	}
	return &out, nil
}

// List collects metadata from every tier directory plus the flat root.
// Unreadable or foreign files are skipped, not errors.
func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range domain.Tiers() {
		metas, err := s.listDir(filepath.Join(s.dir, d.String()), d)
		if err != nil {
			return nil, err
		}
		out = append(out, metas...)
	}
	metas, err := s.listDir(s.dir, domain.Normal)
	if err != nil {
		return nil, err
	}
	return append(out, metas...), nil
}

func (s *FS) listDir(dir string, fallback domain.Difficulty) ([]domain.PuzzleMeta, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []domain.PuzzleMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		var m struct {
			ID         string             `json:"id"`
			Name       string             `json:"name,omitempty"`
			Difficulty *domain.Difficulty `json:"difficulty"`
			CreatedAt  int64              `json:"createdAt"`
		}
		if err := json.Unmarshal(data, &m); err != nil || m.ID == "" {
			continue
		}
		d := fallback
		if m.Difficulty != nil {
			d = *m.Difficulty
		}
		out = append(out, domain.PuzzleMeta{
			ID:         m.ID,
			Name:       m.Name,
			Difficulty: d,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out, nil
}
