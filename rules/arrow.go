package rules

import "svw.info/varsudoku/grid"

// Arrow requires the cells along the arrow path to sum to the circle cell's
// value. The check is phrased over the total of all referenced cells: circle
// plus path must equal twice the circle, which is the same condition without
// special-casing the first element. The predicate closes over the circle
// cell so the target tracks its live value.
type Arrow struct {
	line
}

// NewArrow builds an arrow with its circle cell and path cells in order.
func NewArrow(name string, circle *grid.Cell, path []*grid.Cell) *Arrow {
	cells := append([]*grid.Cell{circle}, path...)
	return &Arrow{line{
		name:    name,
		cells:   cells,
		sumPred: func(total int) bool { return total == 2*int(circle.Value()) },
	}}
}
