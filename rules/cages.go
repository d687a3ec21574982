package rules

import (
	"fmt"

	"svw.info/varsudoku/grid"
)

// KillerCage requires distinct values summing to an exact target.
type KillerCage struct {
	line
}

// NewKillerCage builds a cage over cells with the given sum target.
func NewKillerCage(name string, cells []*grid.Cell, sum int) *KillerCage {
	return &KillerCage{line{name: name, cells: cells, unique: true, sumTo: sum, hasSum: true}}
}

// LittleKiller requires an exact sum along a diagonal. Unlike a cage the
// diagonal may cross regions, so values may repeat and uniqueness is not
// checked.
type LittleKiller struct {
	line
}

// NewLittleKiller builds a little killer over the diagonal's cells.
func NewLittleKiller(name string, cells []*grid.Cell, sum int) *LittleKiller {
	return &LittleKiller{line{name: name, cells: cells, sumTo: sum, hasSum: true}}
}

// Sandwich requires the values strictly between the min and max sentinel
// symbols on a line to sum to a target. The sentinels are located by value;
// a line is assumed to hold each sentinel value once. A line missing either
// sentinel cannot satisfy the clue and fails the check.
type Sandwich struct {
	line
	minSym grid.Value
	maxSym grid.Value
	sum    int
}

// NewSandwich builds a sandwich over an ordered line of cells. The line
// needs room for both sentinels, so fewer than two cells is a construction
// error; a two-cell line has an empty interior summing to zero.
func NewSandwich(name string, cells []*grid.Cell, minSym, maxSym grid.Value, sum int) (*Sandwich, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("%w: sandwich %q has %d cells, want at least 2", ErrCellCount, name, len(cells))
	}
	return &Sandwich{
		line:   line{name: name, cells: cells},
		minSym: minSym,
		maxSym: maxSym,
		sum:    sum,
	}, nil
}

func (r *Sandwich) Check() bool {
	vals := r.values()
	lo := indexOf(vals, r.minSym)
	hi := indexOf(vals, r.maxSym)
	if lo < 0 || hi < 0 {
		// sentinel absent from the line: unsatisfiable, not an error
		return false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		// both sentinels resolve to the same cell: empty interior
		return r.sum == 0
	}
	return total(vals[lo+1:hi]) == r.sum
}

// indexOf returns the first position of v, -1 if absent.
func indexOf(vals []grid.Value, v grid.Value) int {
	for i, got := range vals {
		if got == v {
			return i
		}
	}
	return -1
}
