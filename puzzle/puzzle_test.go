package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/varsudoku/grid"
	"svw.info/varsudoku/rules"
)

func twoRulePuzzle(t *testing.T) (*Puzzle, *grid.Cell) {
	t.Helper()
	g := grid.New(2)
	p := New(g)
	c := g.At(0, 0)
	p.Add(
		rules.NewOdd("odd corner", c),
		rules.NewThermometer("top row", g.Row(0)),
	)
	return p, c
}

func TestReportEvaluatesEveryRule(t *testing.T) {
	p, _ := twoRulePuzzle(t)
	p.Grid().SetValue(0, 0, 2) // fails the odd rule
	p.Grid().SetValue(1, 0, 5)

	rep := p.Report()
	require.Len(t, rep.Results, 2, "a failing rule must not stop evaluation")
	assert.Equal(t, "odd corner", rep.Results[0].Rule)
	assert.False(t, rep.Results[0].OK)
	assert.True(t, rep.Results[1].OK)
	assert.False(t, rep.OK())
	assert.Equal(t, []string{"odd corner"}, rep.Failures())
}

func TestCheckAgreesWithReport(t *testing.T) {
	p, c := twoRulePuzzle(t)

	p.Grid().SetValue(0, 0, 1)
	p.Grid().SetValue(1, 0, 5)
	assert.True(t, p.Check())
	assert.True(t, p.Report().OK())

	c.Set(6)
	assert.False(t, p.Check())
	assert.False(t, p.Report().OK())
}

func TestRecheckAfterCorrection(t *testing.T) {
	p, c := twoRulePuzzle(t)
	p.Grid().SetValue(0, 0, 2)
	p.Grid().SetValue(1, 0, 5)
	require.False(t, p.Check())

	// correcting the grid and re-checking is a supported use case
	c.Set(1)
	assert.True(t, p.Check())
}

func TestEmptyPuzzlePasses(t *testing.T) {
	p := New(grid.New(1))
	assert.True(t, p.Check())
	assert.True(t, p.Report().OK())
	assert.Empty(t, p.Report().Failures())
}
