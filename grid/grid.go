// Package grid holds the cell arena a variant puzzle is checked against.
// A Grid owns its cells; rules hold *Cell references into the arena and
// observe every population step through them.
package grid

import "fmt"

// Value is a cell symbol, typically 1..N for an N×N grid.
// Unset marks a cell that has not been populated yet.
type Value int

// Unset is the zero Value of a freshly constructed cell.
const Unset Value = 0

// Cell is one grid position's mutable value slot. It is created by a Grid
// and never replaced, so any number of rules may alias the same *Cell and
// read a consistent current value.
type Cell struct {
	value Value
}

// Value returns the current value, Unset if not populated.
func (c *Cell) Value() Value { return c.value }

// Set overwrites the current value. Re-populating after a check is fine;
// checks always read the value fresh.
func (c *Cell) Set(v Value) { c.value = v }

// Clear resets the cell to Unset.
func (c *Cell) Clear() { c.value = Unset }

// IsSet reports whether the cell has been populated.
func (c *Cell) IsSet() bool { return c.value != Unset }

// Grid is a size×size arena of cells addressed by (x, y) with x the column
// and y the row, both zero-based. Cells live in one backing slice that is
// never resized, so *Cell pointers stay valid for the life of the grid.
type Grid struct {
	size  int
	cells []Cell
}

// New returns a grid of size×size unset cells. Size must be at least 1.
func New(size int) *Grid {
	if size < 1 {
		panic(fmt.Sprintf("grid: invalid size %d", size))
	}
	return &Grid{size: size, cells: make([]Cell, size*size)}
}

// Size returns the edge length of the grid.
func (g *Grid) Size() int { return g.size }

// At returns the cell at column x, row y. Coordinates out of
// [0, size) panic.
func (g *Grid) At(x, y int) *Cell {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of bounds for size %d", x, y, g.size))
	}
	return &g.cells[y*g.size+x]
}

// Value returns the current value at (x, y).
func (g *Grid) Value(x, y int) Value { return g.At(x, y).Value() }

// SetValue populates the cell at (x, y). Symbol range checks are the
// caller's responsibility.
func (g *Grid) SetValue(x, y int, v Value) { g.At(x, y).Set(v) }

// Row returns the cells of row y in column order.
func (g *Grid) Row(y int) []*Cell {
	cs := make([]*Cell, g.size)
	for x := 0; x < g.size; x++ {
		cs[x] = g.At(x, y)
	}
	return cs
}

// Column returns the cells of column x in row order.
func (g *Grid) Column(x int) []*Cell {
	cs := make([]*Cell, g.size)
	for y := 0; y < g.size; y++ {
		cs[y] = g.At(x, y)
	}
	return cs
}

// Box returns the w×h box whose top-left corner is at (bx*w, by*h),
// in row-major order. For a classic 9×9 grid, w = h = 3 and
// bx, by range over 0..2.
func (g *Grid) Box(bx, by, w, h int) []*Cell {
	cs := make([]*Cell, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cs = append(cs, g.At(bx*w+dx, by*h+dy))
		}
	}
	return cs
}
