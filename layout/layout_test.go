package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/state"
	"github.com/katalvlaran/burrow/tree"
)

func line(t *testing.T, n int) *tree.Graph {
	t.Helper()
	b := tree.NewBuilder(n)
	for v := 1; v < n; v++ {
		require.NoError(t, b.AddEdge(v-1, v, 1))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestSmall_MatchesClassicNumbering(t *testing.T) {
	c := layout.Small()

	assert.Equal(t, 19, c.Order())
	assert.Equal(t, 4, c.Kinds())
	for k, want := range [][]int{{7, 8}, {9, 10}, {11, 12}, {13, 14}} {
		assert.Equal(t, want, c.Room(k))
	}
	for k, want := range []int64{1, 10, 100, 1000} {
		assert.Equal(t, want, c.StepCost(k))
	}
	assert.Equal(t, 'C', c.Name(2))

	for v := 0; v <= 6; v++ {
		assert.True(t, c.IsOpen(v), "hallway stop %d", v)
	}
	for v := 15; v <= 18; v++ {
		assert.True(t, c.IsTransit(v), "doorway %d", v)
		assert.False(t, c.IsOpen(v))
	}
	kind, idx, ok := c.Slot(12)
	assert.True(t, ok)
	assert.Equal(t, 2, kind)
	assert.Equal(t, 1, idx)
	_, _, ok = c.Slot(3)
	assert.False(t, ok)
}

// TestSmall_PathCosts pins the classic distances: doorway cells make every
// hallway-to-entrance hop cost 2, and the outermost hallway cells cost 1.
func TestSmall_PathCosts(t *testing.T) {
	g := layout.Small().Graph()
	cases := []struct {
		u, v int
		want int64
	}{
		{0, 1, 1},
		{1, 2, 2},
		{1, 7, 2},
		{2, 7, 2},
		{2, 9, 2},
		{0, 8, 4},
		{8, 14, 10},
		{5, 6, 1},
		{6, 13, 3},
	}
	for _, tc := range cases {
		got, ok := g.PathCost(tc.u, tc.v)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "%d→%d", tc.u, tc.v)
	}
}

func TestDeep_Shape(t *testing.T) {
	c := layout.Deep()
	assert.Equal(t, 27, c.Order())
	assert.Equal(t, []int{7, 8, 9, 10}, c.Room(0))
	assert.Equal(t, []int{19, 20, 21, 22}, c.Room(3))
	geo := c.Geometry()
	require.NotNil(t, geo)
	assert.Equal(t, 4, geo.Depth)
	assert.Equal(t, 11, geo.Width())
	assert.Equal(t, []int{23, 24, 25, 26}, geo.Doors)
}

func TestBurrow_Errors(t *testing.T) {
	_, err := layout.Burrow(0, 2)
	assert.ErrorIs(t, err, layout.ErrBadShape)
	_, err = layout.Burrow(4, 0)
	assert.ErrorIs(t, err, layout.ErrBadShape)
	_, err = layout.Burrow(8, 8)
	assert.ErrorIs(t, err, layout.ErrTooLarge)

	c, err := layout.Burrow(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5+6+2, c.Order())
}

func TestNew_Validation(t *testing.T) {
	g := line(t, 4)

	_, err := layout.New(nil, [][]int{{0}}, []int64{1})
	assert.ErrorIs(t, err, layout.ErrNilGraph)

	_, err = layout.New(g, nil, nil)
	assert.ErrorIs(t, err, layout.ErrNoRooms)

	_, err = layout.New(g, [][]int{{0}}, []int64{1, 2})
	assert.ErrorIs(t, err, layout.ErrCostMismatch)

	_, err = layout.New(g, [][]int{{0}}, []int64{-1})
	assert.ErrorIs(t, err, layout.ErrNegativeCost)

	_, err = layout.New(g, [][]int{{}}, []int64{1})
	assert.ErrorIs(t, err, layout.ErrEmptyRoom)

	_, err = layout.New(g, [][]int{{0, 9}}, []int64{1})
	assert.ErrorIs(t, err, layout.ErrRoomVertex)

	_, err = layout.New(g, [][]int{{0, 1}, {1}}, []int64{1, 1})
	assert.ErrorIs(t, err, layout.ErrRoomVertex)

	_, err = layout.New(g, [][]int{{3}}, []int64{1}, layout.WithTransit(3))
	assert.ErrorIs(t, err, layout.ErrTransit)

	_, err = layout.New(g, [][]int{{3}}, []int64{1}, layout.WithNames('X', 'Y'))
	assert.ErrorIs(t, err, layout.ErrNames)

	_, err = layout.New(g, [][]int{{2}, {3}}, []int64{1, 1}, layout.WithNames('X', 'X'))
	assert.ErrorIs(t, err, layout.ErrNames)

	_, err = layout.New(g, [][]int{{3}}, []int64{1}, layout.WithGeometry(nil))
	assert.ErrorIs(t, err, layout.ErrBadShape)

	c, err := layout.New(g, [][]int{{3}, {2}}, []int64{1, 5}, layout.WithNames('x', 'y'))
	require.NoError(t, err)
	kind, ok := c.KindOf('y')
	assert.True(t, ok)
	assert.Equal(t, 1, kind)
	_, ok = c.KindOf('A')
	assert.False(t, ok)
	assert.Nil(t, c.Geometry())
}

const customLayout = `
vertices = 5
transit = [1]

[[edge]]
from = 0
to = 1

[[edge]]
from = 1
to = 2

[[edge]]
from = 1
to = 3
multiplier = 3

[[edge]]
from = 3
to = 4

[[room]]
name = "X"
step_cost = 2
slots = [3, 4]

[start]
X = [0, 2]
`

func TestDecode_Explicit(t *testing.T) {
	c, start, err := layout.Decode(strings.NewReader(customLayout))
	require.NoError(t, err)

	assert.Equal(t, 5, c.Order())
	assert.Equal(t, []int{3, 4}, c.Room(0))
	assert.Equal(t, int64(2), c.StepCost(0))
	assert.Equal(t, 'X', c.Name(0))
	assert.True(t, c.IsTransit(1))
	assert.Equal(t, []state.Agent{{Kind: 0, Vertex: 0}, {Kind: 0, Vertex: 2}}, start)

	cost, ok := c.Graph().PathCost(0, 4)
	require.True(t, ok)
	assert.Equal(t, int64(5), cost)
}

func TestDecode_Burrow(t *testing.T) {
	c, start, err := layout.Decode(strings.NewReader("[burrow]\nrooms = 3\ndepth = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Kinds())
	assert.Nil(t, start)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":       "vertices = [",
		"cycle":        "vertices = 3\n[[edge]]\nfrom=0\nto=1\n[[edge]]\nfrom=1\nto=2\n[[edge]]\nfrom=2\nto=0\n",
		"bad edge":     "vertices = 2\n[[edge]]\nfrom=0\nto=5\n",
		"long name":    "vertices = 1\n[[room]]\nname=\"AB\"\nstep_cost=1\nslots=[0]\n",
		"unknown type": "vertices = 1\n[[room]]\nname=\"A\"\nstep_cost=1\nslots=[0]\n[start]\nB=[0]\n",
		"start range":  "vertices = 1\n[[room]]\nname=\"A\"\nstep_cost=1\nslots=[0]\n[start]\nA=[4]\n",
	}
	for name, doc := range cases {
		_, _, err := layout.Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, layout.ErrDecode, name)
	}

	_, _, err := layout.Load("testdata/does-not-exist.toml")
	assert.Error(t, err)
}

func TestDecode_VertexCountBounded(t *testing.T) {
	for _, doc := range []string{"vertices = 9000000000000\n", "vertices = 65\n"} {
		_, _, err := layout.Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, layout.ErrDecode, doc)
		assert.ErrorIs(t, err, layout.ErrTooLarge, doc)
	}

	_, _, err := layout.Decode(strings.NewReader("vertices = -1\n"))
	assert.ErrorIs(t, err, tree.ErrBadOrder)
}
