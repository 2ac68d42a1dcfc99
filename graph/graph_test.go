package graph_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathseek/graph"
)

// GraphSuite exercises the adjacency-map graph.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestValidation covers every sentinel error of AddEdge/AddVertex.
func (s *GraphSuite) TestValidation() {
	g := graph.New()
	require.ErrorIs(s.T(), g.AddVertex(""), graph.ErrEmptyVertexID)
	require.ErrorIs(s.T(), g.AddEdge("", "B", 1), graph.ErrEmptyVertexID)
	require.ErrorIs(s.T(), g.AddEdge("A", "A", 1), graph.ErrLoopNotAllowed)
	require.ErrorIs(s.T(), g.AddEdge("A", "B", math.NaN()), graph.ErrBadWeight)
	require.ErrorIs(s.T(), g.AddEdge("A", "B", math.Inf(1)), graph.ErrBadWeight)
	require.ErrorIs(s.T(), g.RemoveEdge("A", "B"), graph.ErrEdgeNotFound)

	_, err := g.Neighbors("missing")
	require.ErrorIs(s.T(), err, graph.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(s.T(), err, graph.ErrEmptyVertexID)

	looped := graph.New(graph.WithLoops())
	require.NoError(s.T(), looped.AddEdge("A", "A", 2))
	require.Equal(s.T(), 1, looped.EdgeCount())
}

// TestUndirectedMirror checks that undirected edges are visible from both ends
// and that re-adding replaces the weight.
func (s *GraphSuite) TestUndirectedMirror() {
	g := graph.New()
	require.NoError(s.T(), g.AddEdge("A", "B", 3))
	require.NoError(s.T(), g.AddEdge("B", "A", 1))

	require.True(s.T(), g.HasEdge("A", "B"))
	require.True(s.T(), g.HasEdge("B", "A"))
	require.Equal(s.T(), 1, g.EdgeCount())

	nb, err := g.Neighbors("A")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []graph.Edge{{From: "A", To: "B", Weight: 1}}, nb)

	require.NoError(s.T(), g.RemoveEdge("B", "A"))
	require.False(s.T(), g.HasEdge("A", "B"))
	require.Zero(s.T(), g.EdgeCount())
	require.Equal(s.T(), 2, g.VertexCount())
}

// TestDirected checks one-way edges.
func (s *GraphSuite) TestDirected() {
	g := graph.New(graph.WithDirected())
	require.True(s.T(), g.Directed())
	require.NoError(s.T(), g.AddEdge("A", "B", 1))
	require.True(s.T(), g.HasEdge("A", "B"))
	require.False(s.T(), g.HasEdge("B", "A"))

	nb, err := g.Neighbors("B")
	require.NoError(s.T(), err)
	require.Empty(s.T(), nb)
	require.Equal(s.T(), 1, g.EdgeCount())
}

// TestDeterministicOrder checks sorted enumeration.
func (s *GraphSuite) TestDeterministicOrder() {
	g := graph.New()
	for _, to := range []string{"D", "B", "C", "A"} {
		require.NoError(s.T(), g.AddEdge("X", to, 1))
	}
	nb, err := g.Neighbors("X")
	require.NoError(s.T(), err)
	got := make([]string, len(nb))
	for i, e := range nb {
		got[i] = e.To
	}
	require.Equal(s.T(), []string{"A", "B", "C", "D"}, got)
	require.Equal(s.T(), []string{"A", "B", "C", "D", "X"}, g.Vertices())
}

// TestConcurrentReads runs readers against a writer.
func (s *GraphSuite) TestConcurrentReads() {
	g := graph.New()
	require.NoError(s.T(), g.AddVertex("hub"))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = g.AddEdge("hub", string(rune('a'+i%26)), float64(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_, _ = g.Neighbors("hub")
			_ = g.EdgeCount()
		}
	}()
	wg.Wait()
	require.Equal(s.T(), 27, g.VertexCount())
}
