package rules

import (
	"fmt"

	"svw.info/varsudoku/grid"
)

// Thermometer requires strictly increasing values from bulb to tip, in
// path order.
type Thermometer struct {
	line
}

// NewThermometer builds a thermometer over cells ordered bulb first.
func NewThermometer(name string, cells []*grid.Cell) *Thermometer {
	return &Thermometer{line{
		name:     name,
		cells:    cells,
		relation: func(a, b grid.Value) bool { return a < b },
	}}
}

// Palindrome requires the line to read the same in both directions.
type Palindrome struct {
	line
}

// NewPalindrome builds a palindrome over an ordered line of cells.
func NewPalindrome(name string, cells []*grid.Cell) *Palindrome {
	return &Palindrome{line{name: name, cells: cells}}
}

func (r *Palindrome) Check() bool {
	vals := r.values()
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		if vals[i] != vals[j] {
			return false
		}
	}
	return true
}

// BetweenLine requires every interior value to lie strictly between the two
// delimiter values at the ends of the line, whichever of them is larger.
type BetweenLine struct {
	line
}

// NewBetweenLine builds a between line over cells ordered
// [low delimiter, interior..., high delimiter]. At least the two delimiters
// are required.
func NewBetweenLine(name string, cells []*grid.Cell) (*BetweenLine, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("%w: between line %q has %d cells, want at least 2", ErrCellCount, name, len(cells))
	}
	return &BetweenLine{line{name: name, cells: cells}}, nil
}

func (r *BetweenLine) Check() bool {
	vals := r.values()
	lo, hi := vals[0], vals[len(vals)-1]
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, v := range vals[1 : len(vals)-1] {
		if v <= lo || v >= hi {
			return false
		}
	}
	return true
}

// Minimum requires the first cell's value to be strictly less than every
// peer's value.
type Minimum struct {
	line
}

// NewMinimum builds a minimum rule over [candidate, peers...].
func NewMinimum(name string, cells []*grid.Cell) *Minimum {
	return &Minimum{line{name: name, cells: cells}}
}

func (r *Minimum) Check() bool {
	vals := r.values()
	if len(vals) == 0 {
		return true
	}
	for _, v := range vals[1:] {
		if vals[0] >= v {
			return false
		}
	}
	return true
}

// Maximum requires the first cell's value to be strictly greater than every
// peer's value.
type Maximum struct {
	line
}

// NewMaximum builds a maximum rule over [candidate, peers...].
func NewMaximum(name string, cells []*grid.Cell) *Maximum {
	return &Maximum{line{name: name, cells: cells}}
}

func (r *Maximum) Check() bool {
	vals := r.values()
	if len(vals) == 0 {
		return true
	}
	for _, v := range vals[1:] {
		if vals[0] <= v {
			return false
		}
	}
	return true
}
