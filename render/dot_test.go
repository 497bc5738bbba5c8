package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/render"
	"github.com/katalvlaran/swapstrat/swapstrategy"
)

func TestDOT(t *testing.T) {
	m, err := coupling.New([]coupling.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, coupling.WithNumQubits(4))
	require.NoError(t, err)

	out := render.DOT(m, "device")
	assert.True(t, strings.HasPrefix(out, "graph CouplingMap {\n"))
	assert.Contains(t, out, `label="device";`)
	assert.Contains(t, out, `q3 [label="3"];`)
	assert.Contains(t, out, "q0 -- q1;")
	assert.Contains(t, out, "q1 -- q2;")
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Equal(t, out, render.DOT(m, "device"), "output must be deterministic")
}

func TestStrategyDOT(t *testing.T) {
	s, err := swapstrategy.FromLine([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)

	out, err := render.StrategyDOT(s, 1)
	require.NoError(t, err)
	assert.Contains(t, out, `label="layer 1 of 3";`)
	// after layer 0 the path reads 1-0-3-2-4; 0-3 and 2-4 are new
	assert.Contains(t, out, "q1 -- q0;")
	assert.Contains(t, out, "q0 -- q3 [penwidth=2.5];")
	assert.Contains(t, out, "q2 -- q4 [penwidth=2.5];")

	base, err := render.StrategyDOT(s, 0)
	require.NoError(t, err)
	assert.NotContains(t, base, "penwidth")

	_, err = render.StrategyDOT(s, 4)
	assert.ErrorIs(t, err, swapstrategy.ErrLayerOutOfRange)
}

func TestSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering skipped in short mode")
	}
	m, err := coupling.Line([]int{0, 1, 2})
	require.NoError(t, err)

	svg, err := render.SVG(context.Background(), render.DOT(m, "line"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
