package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/state"
)

func TestNew_GroupsByKind(t *testing.T) {
	s, err := state.New([]state.Agent{
		{Kind: 1, Vertex: 7},
		{Kind: 0, Vertex: 8},
		{Kind: 1, Vertex: 11},
		{Kind: 0, Vertex: 14},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []state.Agent{
		{Kind: 0, Vertex: 8},
		{Kind: 0, Vertex: 14},
		{Kind: 1, Vertex: 7},
		{Kind: 1, Vertex: 11},
	}, s.Agents())
	assert.Equal(t, "0@8 0@14 1@7 1@11", s.String())
	assert.Equal(t, 2, s.Count(0))
	assert.Equal(t, 0, s.Count(3))
}

func TestNew_Errors(t *testing.T) {
	_, err := state.New([]state.Agent{{Kind: 0, Vertex: 3}, {Kind: 1, Vertex: 3}})
	assert.ErrorIs(t, err, state.ErrOccupied)

	_, err = state.New([]state.Agent{{Kind: 0, Vertex: state.MaxVertices}})
	assert.ErrorIs(t, err, state.ErrVertexOutOfRange)

	_, err = state.New([]state.Agent{{Kind: -1, Vertex: 0}})
	assert.ErrorIs(t, err, state.ErrBadKind)

	many := make([]state.Agent, state.MaxAgents+1)
	for i := range many {
		many[i] = state.Agent{Kind: 0, Vertex: i}
	}
	_, err = state.New(many)
	assert.ErrorIs(t, err, state.ErrTooManyAgents)

	assert.Panics(t, func() { state.MustNew([]state.Agent{{Kind: 0, Vertex: -1}}) })
}

func TestMove_IsValueSemantics(t *testing.T) {
	s := state.MustNew([]state.Agent{{Kind: 0, Vertex: 1}, {Kind: 1, Vertex: 2}})
	next := s.Move(1, 5)

	assert.Equal(t, 2, s.Vertex(1), "parent must stay untouched")
	assert.Equal(t, 5, next.Vertex(1))
	assert.Equal(t, s.Vertex(0), next.Vertex(0))
	assert.NotEqual(t, s, next)
}

func TestKey_CanonicalUnderSwaps(t *testing.T) {
	a := state.MustNew([]state.Agent{{Kind: 0, Vertex: 9}, {Kind: 0, Vertex: 2}, {Kind: 1, Vertex: 4}})
	b := state.MustNew([]state.Agent{{Kind: 0, Vertex: 2}, {Kind: 0, Vertex: 9}, {Kind: 1, Vertex: 4}})

	assert.NotEqual(t, a, b)
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), a.Key().Key(), "Key is idempotent")

	// Agents of different types never swap.
	c := state.MustNew([]state.Agent{{Kind: 0, Vertex: 4}, {Kind: 0, Vertex: 2}, {Kind: 1, Vertex: 9}})
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestCompare_TotalOrder(t *testing.T) {
	a := state.MustNew([]state.Agent{{Kind: 0, Vertex: 1}, {Kind: 1, Vertex: 5}})
	b := state.MustNew([]state.Agent{{Kind: 0, Vertex: 1}, {Kind: 1, Vertex: 6}})
	c := state.MustNew([]state.Agent{{Kind: 0, Vertex: 2}, {Kind: 1, Vertex: 0}})
	d := state.MustNew([]state.Agent{{Kind: 0, Vertex: 1}})

	assert.Equal(t, 0, state.Compare(a, a))
	assert.Equal(t, -1, state.Compare(a, b))
	assert.Equal(t, 1, state.Compare(b, a))
	assert.Equal(t, -1, state.Compare(b, c), "first differing agent decides")
	assert.Equal(t, -1, state.Compare(d, a), "fewer agents sort first")

	// Same vertices, different types.
	e := state.MustNew([]state.Agent{{Kind: 0, Vertex: 1}, {Kind: 2, Vertex: 5}})
	assert.Equal(t, -1, state.Compare(a, e))
}

func TestBoard(t *testing.T) {
	s := state.MustNew([]state.Agent{{Kind: 3, Vertex: 0}, {Kind: 1, Vertex: 63}})
	b := s.Board()

	kind, ok := b.At(0)
	assert.True(t, ok)
	assert.Equal(t, 3, kind)
	kind, ok = b.At(63)
	assert.True(t, ok)
	assert.Equal(t, 1, kind)
	assert.True(t, b.Free(10))
}

func TestPositions_KeepTypesInTemplate(t *testing.T) {
	tmpl := state.MustNew([]state.Agent{{Kind: 0, Vertex: 1}, {Kind: 1, Vertex: 5}})
	moved := tmpl.Move(0, 7).Move(1, 2)

	got := tmpl.WithPositions(moved.Positions())
	assert.Equal(t, moved, got)
	assert.Equal(t, 1, got.Kind(1))

	// Positions order matches Compare when the types agree.
	p, q := tmpl.Positions(), moved.Positions()
	assert.Equal(t, state.Compare(tmpl, moved), p.Compare(&q))
	assert.Equal(t, state.Compare(moved, tmpl), q.Compare(&p))
	assert.Equal(t, 0, p.Compare(&p))
}
