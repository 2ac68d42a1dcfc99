package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathseek/bfs"
	"github.com/katalvlaran/pathseek/space/spacetest"
)

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	actions := spacetest.Actions(spacetest.Chain(2))

	if _, err := bfs.Search(spacetest.Vertex("n0"), actions, nil); !errors.Is(err, bfs.ErrNilGoal) {
		t.Errorf("nil goal: want ErrNilGoal, got %v", err)
	}
	_, err := bfs.Search(spacetest.Vertex("n0"), actions, spacetest.Goal("n2"), bfs.WithMaxExpansions(-1))
	if !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative budget: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_StartIsGoal covers the zero-depth hit.
func TestSearch_StartIsGoal(t *testing.T) {
	res, err := bfs.Search(spacetest.Vertex("n0"), spacetest.Actions(spacetest.Chain(3)), spacetest.Goal("n0"))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, spacetest.Vertex("n0"), res.State)
	assert.Empty(t, res.Action)
	assert.Zero(t, res.Depth)
	assert.Zero(t, res.Expanded)
	assert.Nil(t, res.Actions())
}

// TestSearch_Shallowest builds a graph with a 1-hop and a 3-hop goal and
// checks that the 1-hop goal is reported.
func TestSearch_Shallowest(t *testing.T) {
	adj := spacetest.Adjacency{
		"S": {"X", "G1"},
		"X": {"Y"},
		"Y": {"G3"},
	}
	res, err := bfs.Search(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("G1", "G3"))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, spacetest.Vertex("G1"), res.State)
	assert.Equal(t, "to G1", res.Action)
	assert.Equal(t, 1, res.Depth)
	// S expands into G1 and X; G1 is dequeued first
	assert.Equal(t, 2, res.Expanded)
}

// TestSearch_NotFound checks exhaustion on a cycle with the closed set on.
func TestSearch_NotFound(t *testing.T) {
	adj := spacetest.Adjacency{"S": {"A"}, "A": {"S", "B"}, "B": {"A"}}
	res, err := bfs.Search(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("Z"))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.States())
	assert.Equal(t, 2, res.Expanded)
}

// TestSearch_Determinism repeats a search and compares every observable.
func TestSearch_Determinism(t *testing.T) {
	adj := spacetest.Adjacency{
		"S": {"A", "B", "C"},
		"A": {"B", "D"},
		"B": {"S", "E"},
		"C": {"E"},
		"D": {"F"},
		"E": {"F"},
	}
	first, err := bfs.Search(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("F"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := bfs.Search(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("F"))
		require.NoError(t, err)
		assert.Equal(t, first.State, again.State)
		assert.Equal(t, first.Expanded, again.Expanded)
		assert.Equal(t, first.Actions(), again.Actions())
	}
	assert.Equal(t, 3, first.Depth)
}

// TestSearch_ClosedSetEquivalence compares closed-set on and off on an
// acyclic diamond: same terminal state and path, more work when off.
func TestSearch_ClosedSetEquivalence(t *testing.T) {
	adj := spacetest.Adjacency{"S": {"A", "B"}, "A": {"G"}, "B": {"G"}}
	actions := spacetest.Actions(adj)

	on, err := bfs.Search(spacetest.Vertex("S"), actions, spacetest.Goal("G"))
	require.NoError(t, err)
	off, err := bfs.Search(spacetest.Vertex("S"), actions, spacetest.Goal("G"), bfs.WithClosedSet(false))
	require.NoError(t, err)

	require.True(t, on.Found)
	require.True(t, off.Found)
	assert.Equal(t, on.States(), off.States())
	assert.Equal(t, 3, on.Expanded)
	assert.Equal(t, 4, off.Expanded)
	assert.GreaterOrEqual(t, off.Expanded, on.Expanded)
}

// TestSearch_Budget shows the guard against re-expansion on a cycle.
func TestSearch_Budget(t *testing.T) {
	adj := spacetest.Adjacency{"S": {"A"}, "A": {"S"}}
	res, err := bfs.Search(spacetest.Vertex("S"), spacetest.Actions(adj), spacetest.Goal("Z"),
		bfs.WithClosedSet(false), bfs.WithMaxExpansions(10))
	require.ErrorIs(t, err, bfs.ErrBudgetExceeded)
	assert.False(t, res.Found)
	assert.Equal(t, 11, res.Expanded)
}

// TestSearch_Cancel verifies that a cancelled context aborts the search.
func TestSearch_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Search(spacetest.Vertex("n0"), spacetest.Actions(spacetest.Chain(3)), spacetest.Goal("n3"),
		bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestSearch_Hooks counts hook invocations on a chain.
func TestSearch_Hooks(t *testing.T) {
	var dequeued []string
	produced := 0
	res, err := bfs.Search(spacetest.Vertex("n0"), spacetest.Actions(spacetest.Chain(3)), spacetest.Goal("n3"),
		bfs.WithOnDequeue(func(key string, _ int) { dequeued = append(dequeued, key) }),
		bfs.WithOnExpand(func(_ string, _ int, n int) { produced += n }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2", "n3"}, dequeued)
	assert.Equal(t, res.Expanded, produced)
	assert.Equal(t, []string{"to n1", "to n2", "to n3"}, res.Actions())
}
