// Package rules implements the constraint rules a variant puzzle is
// checked against. Every rule holds references into a grid.Grid's cell
// arena and evaluates the cells' current values; rules never copy values
// at construction time.
package rules

import "errors"

// Rule is a single puzzle constraint. Check is a pure function of the
// referenced cells' current values, so calling it repeatedly without
// intervening mutation yields the same result.
type Rule interface {
	// Name tags the rule for diagnostic reports.
	Name() string
	// CellCount is the number of referenced cells; for grouped rules it
	// is the total across groups.
	CellCount() int
	// Check reports whether the current cell values satisfy the rule.
	Check() bool
}

// Sentinel errors for structural construction failures. These signal a
// malformed puzzle definition and are returned before any grid population;
// a rule that constructs successfully never errors at check time.
var (
	// ErrCellCount indicates a rule was given the wrong number of cells.
	ErrCellCount = errors.New("wrong cell count")

	// ErrGroupShape indicates clone groups of unequal length or too few groups.
	ErrGroupShape = errors.New("invalid group shape")

	// ErrTooManyDigits indicates a quadruple clue with more digits than cells.
	ErrTooManyDigits = errors.New("more digits than cells")
)
