package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/tree"
)

// star builds 0 at the center with leaves 1..3 and a tail 3-4.
func star(t *testing.T) *tree.Graph {
	t.Helper()
	b := tree.NewBuilder(5)
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(0, 2, 2))
	require.NoError(t, b.AddEdge(0, 3, 3))
	require.NoError(t, b.AddEdge(3, 4, 4))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestBuilder_Errors(t *testing.T) {
	b := tree.NewBuilder(3)
	assert.ErrorIs(t, b.AddEdge(0, 3, 1), tree.ErrVertexOutOfRange)
	assert.ErrorIs(t, b.AddEdge(-1, 0, 1), tree.ErrVertexOutOfRange)
	assert.ErrorIs(t, b.AddEdge(1, 1, 1), tree.ErrLoop)
	assert.ErrorIs(t, b.AddEdge(0, 1, -2), tree.ErrNegativeMultiplier)

	require.NoError(t, b.AddEdge(0, 1, 1))
	assert.ErrorIs(t, b.AddEdge(1, 0, 1), tree.ErrMultiEdge)

	_, err := tree.NewBuilder(0).Build()
	assert.ErrorIs(t, err, tree.ErrBadOrder)
	assert.ErrorIs(t, tree.NewBuilder(-4).AddEdge(0, 1, 1), tree.ErrBadOrder)
}

func TestBuilder_RejectsCycle(t *testing.T) {
	// 0-1-2-0 triangle plus a pendant vertex.
	b := tree.NewBuilder(4)
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(1, 2, 1))
	require.NoError(t, b.AddEdge(2, 0, 1))
	require.NoError(t, b.AddEdge(2, 3, 1))

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, tree.ErrCycle))
}

func TestBuilder_MustBuild(t *testing.T) {
	b := tree.NewBuilder(2)
	require.NoError(t, b.AddEdge(0, 1, 3))
	g := b.MustBuild()
	assert.Equal(t, 1, g.Size())

	assert.Panics(t, func() { tree.NewBuilder(0).MustBuild() })
}

func TestBuilder_Connectivity(t *testing.T) {
	// Two components: 0-1 and 2-3.
	forest := func(opts ...tree.BuilderOption) (*tree.Graph, error) {
		b := tree.NewBuilder(4, opts...)
		require.NoError(t, b.AddEdge(0, 1, 1))
		require.NoError(t, b.AddEdge(2, 3, 1))
		return b.Build()
	}

	g, err := forest()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Size())

	_, err = forest(tree.WithRequireConnected())
	assert.ErrorIs(t, err, tree.ErrDisconnected)
}

func TestGraph_Accessors(t *testing.T) {
	g := star(t)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, []tree.Edge{{To: 0, Multiplier: 3}, {To: 4, Multiplier: 4}}, g.Neighbors(3))
	assert.Equal(t, []tree.FullEdge{
		{From: 0, To: 1, Multiplier: 1},
		{From: 0, To: 2, Multiplier: 2},
		{From: 0, To: 3, Multiplier: 3},
		{From: 3, To: 4, Multiplier: 4},
	}, g.Edges())
}

func TestWalk_CostsAndPaths(t *testing.T) {
	g := star(t)
	res, err := g.Walk(1, tree.WithScale(10))
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 0, 30, 40, 80}, res.Cost)
	assert.Equal(t, 1, res.Order[0])
	assert.Len(t, res.Order, 5)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3, 4}, path)

	_, err = g.Walk(9)
	assert.ErrorIs(t, err, tree.ErrVertexOutOfRange)
}

func TestWalk_FilterBlocksPassage(t *testing.T) {
	g := star(t)
	var visited []int
	res, err := g.Walk(1,
		tree.WithFilter(func(_, next int) bool { return next != 3 }),
		tree.WithOnVisit(func(v int, _ int64) { visited = append(visited, v) }),
	)
	require.NoError(t, err)

	// 3 is blocked, so 4 behind it is unreachable too.
	assert.Equal(t, tree.Unreached, res.Cost[3])
	assert.Equal(t, tree.Unreached, res.Cost[4])
	assert.ElementsMatch(t, []int{1, 0, 2}, visited)

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

// TestPathCost_Uniqueness checks that the walk cost from u to v equals the
// sum of multipliers along the only simple path, whichever end we start at.
func TestPathCost_Uniqueness(t *testing.T) {
	g := star(t)
	want := map[[2]int]int64{
		{1, 2}: 3, {1, 4}: 8, {2, 4}: 9, {0, 4}: 7, {4, 4}: 0,
	}
	for pair, cost := range want {
		got, ok := g.PathCost(pair[0], pair[1])
		require.True(t, ok, "pair %v", pair)
		assert.Equal(t, cost, got, "pair %v", pair)

		back, ok := g.PathCost(pair[1], pair[0])
		require.True(t, ok)
		assert.Equal(t, got, back, "path cost must be symmetric for %v", pair)
	}

	_, ok := g.PathCost(0, 17)
	assert.False(t, ok)
}
