// Package validator checks boards for rule violations without touching
// candidate state.
package validator

import (
	"context"

	"svw.info/sudokukit/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans rows, columns, and regions with value bitmasks and
// reports every cell that repeats an earlier value in its house.
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	size := g.Size()
	cell := g.CellShape()
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < size; r++ {
		var m uint64
		for c := 0; c < size; c++ {
			val := g.Value(r, c)
			if val == 0 {
				continue
			}
			bit := uint64(1) << uint(val)
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// columns
	for c := 0; c < size; c++ {
		var m uint64
		for r := 0; r < size; r++ {
			val := g.Value(r, c)
			if val == 0 {
				continue
			}
			bit := uint64(1) << uint(val)
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// regions
	for br := 0; br < size; br += cell.Height {
		for bc := 0; bc < size; bc += cell.Width {
			var m uint64
			for dr := 0; dr < cell.Height; dr++ {
				for dc := 0; dc < cell.Width; dc++ {
					val := g.Value(br+dr, bc+dc)
					if val == 0 {
						continue
					}
					bit := uint64(1) << uint(val)
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: br + dr, Col: bc + dc})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
