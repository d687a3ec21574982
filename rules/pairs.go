package rules

import "svw.info/varsudoku/grid"

// Difference requires |a−b| to equal a fixed difference.
type Difference struct {
	line
}

// NewDifference builds a difference rule over the pair (a, b).
func NewDifference(name string, a, b *grid.Cell, d int) *Difference {
	return &Difference{line{
		name:  name,
		cells: []*grid.Cell{a, b},
		relation: func(x, y grid.Value) bool {
			diff := int(x) - int(y)
			if diff < 0 {
				diff = -diff
			}
			return diff == d
		},
	}}
}

// Ratio requires one of the pair to be the other times a fixed ratio, in
// either direction.
type Ratio struct {
	line
}

// NewRatio builds a ratio rule over the pair (a, b).
func NewRatio(name string, a, b *grid.Cell, r int) *Ratio {
	return &Ratio{line{
		name:  name,
		cells: []*grid.Cell{a, b},
		relation: func(x, y grid.Value) bool {
			return int(x) == int(y)*r || int(y) == int(x)*r
		},
	}}
}

// XV requires the pair to sum to an exact target, typically 5 for a V
// marker and 10 for an X.
type XV struct {
	line
}

// NewXV builds an XV rule over the pair (a, b).
func NewXV(name string, a, b *grid.Cell, sum int) *XV {
	return &XV{line{name: name, cells: []*grid.Cell{a, b}, sumTo: sum, hasSum: true}}
}
