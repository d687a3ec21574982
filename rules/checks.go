package rules

import "svw.info/varsudoku/grid"

// The three standard sub-checks. Each is a plain helper over a value
// snapshot so bespoke rules can reuse them alongside their own logic.

// allUnique reports whether no value occurs twice.
func allUnique(vals []grid.Value) bool {
	seen := make(map[grid.Value]struct{}, len(vals))
	for _, v := range vals {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// total sums the values as plain ints.
func total(vals []grid.Value) int {
	s := 0
	for _, v := range vals {
		s += int(v)
	}
	return s
}

// pairwise applies rel to every consecutive pair in order; all pairs must
// satisfy it. Fewer than two values is vacuously true.
func pairwise(vals []grid.Value, rel func(a, b grid.Value) bool) bool {
	for i := 1; i < len(vals); i++ {
		if !rel(vals[i-1], vals[i]) {
			return false
		}
	}
	return true
}

// line is the shared base for rules over one ordered run of cells. A
// concrete rule enables the subset of sub-checks it needs; Check passes only
// if every enabled sub-check passes. Values are read fresh on each call.
type line struct {
	name  string
	cells []*grid.Cell

	// toggleable sub-checks; a zero field is disabled
	unique   bool
	sumTo    int
	hasSum   bool
	sumPred  func(total int) bool
	relation func(a, b grid.Value) bool
}

func (l *line) Name() string { return l.name }

func (l *line) CellCount() int { return len(l.cells) }

// values snapshots the current cell values in reference order.
func (l *line) values() []grid.Value {
	vals := make([]grid.Value, len(l.cells))
	for i, c := range l.cells {
		vals[i] = c.Value()
	}
	return vals
}

func (l *line) Check() bool {
	vals := l.values()
	if l.unique && !allUnique(vals) {
		return false
	}
	if l.hasSum && total(vals) != l.sumTo {
		return false
	}
	if l.sumPred != nil && !l.sumPred(total(vals)) {
		return false
	}
	if l.relation != nil && !pairwise(vals, l.relation) {
		return false
	}
	return true
}
