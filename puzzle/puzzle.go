// Package puzzle aggregates a grid and its constraint rules and evaluates
// them into a structured report.
package puzzle

import (
	"svw.info/varsudoku/grid"
	"svw.info/varsudoku/rules"
)

// Puzzle owns a grid and the rules registered against it. Rules hold
// references into the puzzle's own grid; registering a rule built over a
// different grid is a caller error the engine does not detect.
type Puzzle struct {
	grid  *grid.Grid
	rules []rules.Rule
}

// New returns a puzzle over g with no rules.
func New(g *grid.Grid) *Puzzle {
	return &Puzzle{grid: g}
}

// Grid returns the puzzle's grid for population.
func (p *Puzzle) Grid() *grid.Grid { return p.grid }

// Size returns the grid's edge length.
func (p *Puzzle) Size() int { return p.grid.Size() }

// Add registers rules. Evaluation order follows registration order in
// reports, though no rule depends on another.
func (p *Puzzle) Add(rs ...rules.Rule) {
	p.rules = append(p.rules, rs...)
}

// Rules returns the registered rules in registration order.
func (p *Puzzle) Rules() []rules.Rule { return p.rules }

// Check reports whether every rule passes. It stops at the first failure;
// use Report for per-rule diagnostics.
func (p *Puzzle) Check() bool {
	for _, r := range p.rules {
		if !r.Check() {
			return false
		}
	}
	return true
}

// Report evaluates every rule, never stopping early, and returns the
// per-rule outcomes in registration order.
func (p *Puzzle) Report() Report {
	results := make([]Result, len(p.rules))
	for i, r := range p.rules {
		results[i] = Result{Rule: r.Name(), OK: r.Check()}
	}
	return Report{Results: results}
}
