// Package checker drives a puzzle's rule evaluation and reduces it to a
// structured report. Evaluation is read-only over the grid, so it must only
// run after population is complete.
package checker

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/varsudoku/puzzle"
)

// Stats captures performance characteristics of a check.
type Stats struct {
	Rules    int
	Duration time.Duration
}

// Checker evaluates every rule of a puzzle. The zero value checks
// sequentially and silently.
type Checker struct {
	// Workers caps concurrent rule evaluations. Values below 2 check
	// sequentially. Rules are pure reads over populated cells, so parallel
	// evaluation needs no locking.
	Workers int
	// Logger, when set, records each rule's outcome at debug level.
	Logger *slog.Logger
}

// New returns a sequential checker.
func New() *Checker { return &Checker{} }

// Check evaluates every registered rule of p, never stopping at a failing
// rule, and returns the per-rule report. The only error condition is context
// cancellation; a failing rule is a negative result, not an error.
func (c *Checker) Check(ctx context.Context, p *puzzle.Puzzle) (puzzle.Report, Stats, error) {
	start := time.Now()
	rs := p.Rules()
	results := make([]puzzle.Result, len(rs))

	if c.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.Workers)
		for i, r := range rs {
			i, r := i, r
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = c.eval(r.Name(), r.Check)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return puzzle.Report{}, Stats{Rules: len(rs), Duration: time.Since(start)}, err
		}
	} else {
		for i, r := range rs {
			if err := ctx.Err(); err != nil {
				return puzzle.Report{}, Stats{Rules: len(rs), Duration: time.Since(start)}, err
			}
			results[i] = c.eval(r.Name(), r.Check)
		}
	}

	return puzzle.Report{Results: results}, Stats{Rules: len(rs), Duration: time.Since(start)}, nil
}

func (c *Checker) eval(name string, check func() bool) puzzle.Result {
	ok := check()
	if c.Logger != nil {
		c.Logger.Debug("rule checked", "rule", name, "ok", ok)
	}
	return puzzle.Result{Rule: name, OK: ok}
}
