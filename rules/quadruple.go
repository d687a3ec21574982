package rules

import (
	"fmt"

	"svw.info/varsudoku/grid"
)

// Quadruple requires the digits of a clue to appear among up to four cells.
// The clue is a multiset and multiplicity is honored: a digit declared twice
// needs two distinct cells holding it.
type Quadruple struct {
	line
	digits []grid.Value
}

// NewQuadruple builds a quadruple clue over cells. Declaring more digits
// than cells returns ErrTooManyDigits; an empty cell list returns
// ErrCellCount.
func NewQuadruple(name string, cells []*grid.Cell, digits []grid.Value) (*Quadruple, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: quadruple %q has no cells", ErrCellCount, name)
	}
	if len(digits) > len(cells) {
		return nil, fmt.Errorf("%w: quadruple %q declares %d digits over %d cells",
			ErrTooManyDigits, name, len(digits), len(cells))
	}
	return &Quadruple{
		line:   line{name: name, cells: cells},
		digits: digits,
	}, nil
}

func (r *Quadruple) Check() bool {
	// multiset containment: every declared digit consumes one cell
	counts := make(map[grid.Value]int, len(r.cells))
	for _, v := range r.values() {
		counts[v]++
	}
	for _, d := range r.digits {
		if counts[d] == 0 {
			return false
		}
		counts[d]--
	}
	return true
}
