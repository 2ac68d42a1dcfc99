package marsmap_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathseek/astar"
	"github.com/katalvlaran/pathseek/graph"
	"github.com/katalvlaran/pathseek/marsmap"
)

func TestParse(t *testing.T) {
	src := `
1,1: 1,2 2,1

1,2: 1,1
9,9:
`
	g, err := marsmap.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"1,1", "1,2", "2,1", "9,9"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("2,1", "1,1"), "edges are undirected")

	nb, err := g.Neighbors("1,2")
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{From: "1,2", To: "1,1", Weight: 1}}, nb)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"no colon":   "1,1: 1,2\n1,2 1,1\n",
		"empty name": "1,1: 1,2\n : 1,1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := marsmap.Parse(strings.NewReader(src))
			require.ErrorIs(t, err, marsmap.ErrMalformedLine)
			assert.Contains(t, err.Error(), "line 2")
		})
	}

	_, err := marsmap.Parse(strings.NewReader("1,1: 1,1\n"))
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)
}

func TestLoad(t *testing.T) {
	g, err := marsmap.Load("testdata/MarsMap")
	require.NoError(t, err)
	assert.Equal(t, 55, g.VertexCount())
	assert.Equal(t, 81, g.EdgeCount())

	_, err = marsmap.Load("testdata/missing")
	assert.Error(t, err)
}

func TestParseCoord(t *testing.T) {
	c, err := marsmap.ParseCoord("8,3")
	require.NoError(t, err)
	assert.Equal(t, marsmap.Coord{X: 8, Y: 3}, c)
	assert.Equal(t, "8,3", c.ID())

	for _, bad := range []string{"", "8", "a,1", "1,b"} {
		_, err := marsmap.ParseCoord(bad)
		assert.ErrorIs(t, err, marsmap.ErrBadCoord, bad)
	}
}

func TestHeuristics(t *testing.T) {
	goal := marsmap.Coord{X: 1, Y: 1}
	sld := marsmap.StraightLine(goal)
	man := marsmap.Manhattan(goal)

	assert.Zero(t, sld("1,1"))
	assert.Equal(t, 5.0, sld("4,5"))
	assert.Equal(t, 7.0, man("4,5"))
	assert.InDelta(t, math.Sqrt2, sld("2,2"), 1e-12)
	assert.Zero(t, sld("station"))
	assert.Zero(t, man("station"))

	assert.True(t, marsmap.Goal(goal)("1,1"))
	assert.False(t, marsmap.Goal(goal)("1,2"))
}

// TestRoute searches the bundled map from 8,8 to 1,1 with every heuristic;
// all are admissible on a 4-connected grid and must agree on cost.
func TestRoute(t *testing.T) {
	g, err := marsmap.Load("testdata/MarsMap")
	require.NoError(t, err)
	goal := marsmap.Coord{X: 1, Y: 1}

	for name, h := range map[string]astar.Heuristic{
		"zero":      astar.ZeroHeuristic,
		"sld":       marsmap.StraightLine(goal),
		"manhattan": marsmap.Manhattan(goal),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := astar.Search("8,8", astar.FromGraph(g), h, marsmap.Goal(goal))
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, 14.0, res.Cost)

			ids := res.IDs()
			require.Len(t, ids, 15)
			assert.Equal(t, "8,8", ids[0])
			assert.Equal(t, "1,1", ids[len(ids)-1])
			for i := 1; i < len(ids); i++ {
				assert.True(t, g.HasEdge(ids[i-1], ids[i]), "%s→%s", ids[i-1], ids[i])
			}
		})
	}
}
