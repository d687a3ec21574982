package rules

import "svw.info/varsudoku/grid"

// Odd requires its single cell to hold an odd value.
type Odd struct {
	line
}

// NewOdd builds an odd-cell rule over one cell.
func NewOdd(name string, c *grid.Cell) *Odd {
	return &Odd{line{
		name:    name,
		cells:   []*grid.Cell{c},
		sumPred: func(total int) bool { return total%2 != 0 },
	}}
}

// Even requires its single cell to hold an even value.
type Even struct {
	line
}

// NewEven builds an even-cell rule over one cell.
func NewEven(name string, c *grid.Cell) *Even {
	return &Even{line{
		name:    name,
		cells:   []*grid.Cell{c},
		sumPred: func(total int) bool { return total%2 == 0 },
	}}
}
