package domain

import (
	"hash/crc64"
	"strconv"
)

// Puzzle is a persisted generated board with its metadata. Givens holds
// the published cells, Solution the fully solved board they came from.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CellSize   CellSize   `json:"cellSize"`
	Givens     [][]uint8  `json:"givens"`
	Solution   [][]uint8  `json:"solution,omitempty"`
	Checksum   string     `json:"checksum,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// GivensGrid rebuilds the published board.
func (p *Puzzle) GivensGrid() (*Grid, error) {
	return GridFromNumbers(p.CellSize, p.Givens)
}

// SolutionGrid rebuilds the solved board, or nil when the solution was
// not persisted.
func (p *Puzzle) SolutionGrid() (*Grid, error) {
	if p.Solution == nil {
		return nil, nil
	}
	return GridFromNumbers(p.CellSize, p.Solution)
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

var checksumTable = crc64.MakeTable(crc64.ISO)

// GridChecksum fingerprints the board contents for puzzle identity.
func GridChecksum(g *Grid) string {
	h := crc64.New(checksumTable)
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			h.Write([]byte(strconv.Itoa(g.Value(r, c))))
		}
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
