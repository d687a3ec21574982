package rules

import (
	"fmt"
	"math"

	"svw.info/varsudoku/grid"
)

// Region requires its cells to collectively hold each puzzle symbol exactly
// once. With a fully populated grid and symbols drawn from a fixed alphabet,
// uniqueness over exactly symbol-count cells is equivalent to full coverage.
type Region struct {
	line
}

// NewRegion builds a region over cells. The cell count must equal the
// puzzle's symbol alphabet size; anything else is a malformed definition and
// returns ErrCellCount.
func NewRegion(name string, cells []*grid.Cell, symbols int) (*Region, error) {
	if len(cells) != symbols {
		return nil, fmt.Errorf("%w: region %q has %d cells, want %d", ErrCellCount, name, len(cells), symbols)
	}
	return &Region{line{name: name, cells: cells, unique: true}}, nil
}

// StandardRegions builds the classic row, column, and box regions for a grid
// whose size is a perfect square (27 rules for a 9×9 grid). It errors for
// sizes without a square box layout.
func StandardRegions(g *grid.Grid) ([]Rule, error) {
	n := g.Size()
	box := int(math.Sqrt(float64(n)))
	if box*box != n {
		return nil, fmt.Errorf("%w: size %d has no square box layout", ErrCellCount, n)
	}
	rs := make([]Rule, 0, 3*n)
	for y := 0; y < n; y++ {
		r, err := NewRegion(fmt.Sprintf("row %d", y), g.Row(y), n)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	for x := 0; x < n; x++ {
		r, err := NewRegion(fmt.Sprintf("column %d", x), g.Column(x), n)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	for by := 0; by < box; by++ {
		for bx := 0; bx < box; bx++ {
			r, err := NewRegion(fmt.Sprintf("box %d,%d", bx, by), g.Box(bx, by, box, box), n)
			if err != nil {
				return nil, err
			}
			rs = append(rs, r)
		}
	}
	return rs, nil
}
