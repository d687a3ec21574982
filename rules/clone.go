package rules

import (
	"fmt"

	"svw.info/varsudoku/grid"
)

// Clone requires every group to hold the same values as the first group,
// position for position.
type Clone struct {
	name   string
	groups [][]*grid.Cell
}

// NewClone builds a clone over two or more groups of equal length. Unequal
// group lengths or fewer than two groups return ErrGroupShape.
func NewClone(name string, groups [][]*grid.Cell) (*Clone, error) {
	if len(groups) < 2 {
		return nil, fmt.Errorf("%w: clone %q has %d groups, want at least 2", ErrGroupShape, name, len(groups))
	}
	for i, g := range groups[1:] {
		if len(g) != len(groups[0]) {
			return nil, fmt.Errorf("%w: clone %q group %d has %d cells, want %d",
				ErrGroupShape, name, i+1, len(g), len(groups[0]))
		}
	}
	return &Clone{name: name, groups: groups}, nil
}

func (r *Clone) Name() string { return r.name }

func (r *Clone) CellCount() int {
	n := 0
	for _, g := range r.groups {
		n += len(g)
	}
	return n
}

// groupValues snapshots the current values, one sequence per group,
// preserving intra-group order.
func (r *Clone) groupValues() [][]grid.Value {
	vals := make([][]grid.Value, len(r.groups))
	for i, g := range r.groups {
		vs := make([]grid.Value, len(g))
		for j, c := range g {
			vs[j] = c.Value()
		}
		vals[i] = vs
	}
	return vals
}

func (r *Clone) Check() bool {
	vals := r.groupValues()
	for _, g := range vals[1:] {
		for j, v := range g {
			if v != vals[0][j] {
				return false
			}
		}
	}
	return true
}
