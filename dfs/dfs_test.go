package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathseek/dfs"
	"github.com/katalvlaran/pathseek/space/spacetest"
)

// TestDFS_Errors verifies invalid inputs and options.
func TestDFS_Errors(t *testing.T) {
	actions := spacetest.Actions(spacetest.Chain(2))
	start := spacetest.Vertex("n0")

	_, err := dfs.Search(start, actions, nil)
	assert.True(t, errors.Is(err, dfs.ErrNilGoal))

	_, err = dfs.DepthLimited(start, actions, spacetest.Goal("n2"), -1)
	assert.True(t, errors.Is(err, dfs.ErrOptionViolation))

	_, err = dfs.Search(start, actions, spacetest.Goal("n2"), dfs.WithMaxExpansions(-3))
	assert.True(t, errors.Is(err, dfs.ErrOptionViolation))

	_, err = dfs.IterativeDeepening(start, actions, spacetest.Goal("n2"), -1)
	assert.True(t, errors.Is(err, dfs.ErrOptionViolation))

	_, err = dfs.IterativeDeepening(start, actions, nil, 3)
	assert.True(t, errors.Is(err, dfs.ErrNilGoal))
}

// TestDFS_LastSuccessorFirst checks the LIFO expansion order.
func TestDFS_LastSuccessorFirst(t *testing.T) {
	adj := spacetest.Adjacency{"S": {"A", "B"}, "A": {"G"}, "B": {"G"}}
	res, err := dfs.Search(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("G"))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []spacetest.Vertex{"S", "B", "G"}, res.States())
	assert.Equal(t, 3, res.Expanded)
}

// TestDFS_CycleTerminates relies on the closed set to stop on a cycle.
func TestDFS_CycleTerminates(t *testing.T) {
	adj := spacetest.Adjacency{"S": {"A"}, "A": {"B"}, "B": {"S"}}
	res, err := dfs.Search(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("Z"))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Expanded)

	res, err = dfs.Search(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("Z"),
		dfs.WithClosedSet(false), dfs.WithMaxExpansions(20))
	require.ErrorIs(t, err, dfs.ErrBudgetExceeded)
	assert.Equal(t, 21, res.Expanded)
}

// TestDepthLimited_Pruning places the only goal one level below the limit.
func TestDepthLimited_Pruning(t *testing.T) {
	const k = 2
	actions := spacetest.Actions(spacetest.Chain(k + 1))
	start := spacetest.Vertex("n0")
	goal := spacetest.Goal("n3")

	res, err := dfs.DepthLimited(start, actions, goal, k)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.States())
	assert.Empty(t, res.Action)
	assert.Equal(t, 2, res.Expanded)

	res, err = dfs.DepthLimited(start, actions, goal, k+1)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, k+1, res.Depth)
}

// TestDepthLimited_Zero only goal-tests the start state.
func TestDepthLimited_Zero(t *testing.T) {
	actions := spacetest.Actions(spacetest.Chain(2))
	res, err := dfs.DepthLimited(spacetest.Vertex("n0"), actions, spacetest.Goal("n1"), 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.Expanded)

	res, err = dfs.DepthLimited(spacetest.Vertex("n0"), actions, spacetest.Goal("n0"), 0)
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestIterativeDeepening_Completeness checks both sides of the solution depth.
func TestIterativeDeepening_Completeness(t *testing.T) {
	actions := spacetest.Actions(spacetest.Chain(3))
	start := spacetest.Vertex("n0")
	goal := spacetest.Goal("n3")

	miss, err := dfs.IterativeDeepening(start, actions, goal, 2)
	require.NoError(t, err)
	assert.False(t, miss.Found)
	assert.Equal(t, []int{0, 1, 2}, miss.Iterations)
	assert.Equal(t, 3, miss.Expanded)

	hit, err := dfs.IterativeDeepening(start, actions, goal, 5)
	require.NoError(t, err)
	require.True(t, hit.Found)
	assert.Equal(t, spacetest.Vertex("n3"), hit.State)
	assert.Equal(t, 3, hit.Depth)
	assert.Equal(t, []int{0, 1, 2, 3}, hit.Iterations)

	sum := 0
	for _, n := range hit.Iterations {
		sum += n
	}
	assert.Equal(t, sum, hit.Expanded)
}

// TestIterativeDeepening_Shallowest finds the 1-hop goal before the 3-hop one.
func TestIterativeDeepening_Shallowest(t *testing.T) {
	adj := spacetest.Adjacency{
		"S": {"X", "G1"},
		"X": {"Y"},
		"Y": {"G3"},
	}
	res, err := dfs.IterativeDeepening(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("G1", "G3"), 5)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, spacetest.Vertex("G1"), res.State)
	assert.Len(t, res.Iterations, 2)
}

// TestDFS_ClosedSetEquivalence compares results with and without the closed
// set on an acyclic graph.
func TestDFS_ClosedSetEquivalence(t *testing.T) {
	adj := spacetest.Adjacency{
		"S": {"A", "B"},
		"A": {"C", "D"},
		"B": {"C"},
		"C": {"E"},
		"D": {"E"},
		"E": {"G"},
	}
	actions := spacetest.Actions(adj)
	for _, limit := range []int{dfs.NoLimit, 4, 10} {
		opts := []dfs.Option{}
		if limit != dfs.NoLimit {
			opts = append(opts, dfs.WithLimit(limit))
		}
		on, err := dfs.Search(spacetest.Vertex("S"), actions, spacetest.Goal("G"), opts...)
		require.NoError(t, err)
		off, err := dfs.Search(spacetest.Vertex("S"), actions, spacetest.Goal("G"), append(opts, dfs.WithClosedSet(false))...)
		require.NoError(t, err)

		require.True(t, on.Found)
		assert.Equal(t, on.States(), off.States())
		assert.GreaterOrEqual(t, off.Expanded, on.Expanded)
	}
}

// TestDFS_Determinism repeats the same search.
func TestDFS_Determinism(t *testing.T) {
	adj := spacetest.Adjacency{"S": {"A", "B", "C"}, "A": {"D"}, "B": {"D", "S"}, "C": {"A"}, "D": {"G"}}
	actions := spacetest.Actions(adj)
	first, err := dfs.Search(spacetest.Vertex("S"), actions, spacetest.Goal("G"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dfs.Search(spacetest.Vertex("S"), actions, spacetest.Goal("G"))
		require.NoError(t, err)
		assert.Equal(t, first.Actions(), again.Actions())
		assert.Equal(t, first.Expanded, again.Expanded)
	}
}

// TestDFS_HooksAndCancel covers the pop hook and cancellation.
func TestDFS_HooksAndCancel(t *testing.T) {
	var popped []string
	actions := spacetest.Actions(spacetest.Chain(2))
	_, err := dfs.Search(spacetest.Vertex("n0"), actions, spacetest.Goal("n2"),
		dfs.WithOnPop(func(key string, _ int) { popped = append(popped, key) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2"}, popped)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Search(spacetest.Vertex("n0"), actions, spacetest.Goal("n2"), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := dfs.IterativeDeepening(spacetest.Vertex("n0"), actions, spacetest.Goal("n2"), 4, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Found)
}
