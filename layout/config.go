package layout

import (
	"fmt"

	"github.com/katalvlaran/burrow/state"
	"github.com/katalvlaran/burrow/tree"
)

// slotRef locates a vertex inside the target-list table.
type slotRef struct {
	kind  int // -1 when the vertex belongs to no room
	index int // position in the room, 0 = entrance
}

// Config is one puzzle variant: the graph, one ordered target list (room)
// per agent type, and one step cost per type. It is immutable and safe to
// share between concurrent solves.
type Config struct {
	graph    *tree.Graph
	rooms    [][]int
	costs    []int64
	names    []rune
	slots    []slotRef
	transit  []bool
	geometry *Geometry
}

// New validates and assembles a Config.
//
// rooms[t] is the target list of type t, ordered from entrance to back.
// costs[t] is the step cost of type t.
//
// Validation (in order):
//  1. g non-nil (ErrNilGraph) and within state.MaxVertices (ErrTooLarge).
//  2. at least one room (ErrNoRooms), at most state.MaxKinds (ErrTooLarge).
//  3. len(costs) == len(rooms) (ErrCostMismatch), costs >= 0 (ErrNegativeCost).
//  4. every room non-empty (ErrEmptyRoom); room vertices in range, unique
//     and not shared (ErrRoomVertex).
//  5. transit vertices in range and not room vertices (ErrTransit).
//  6. names, if given, one per type and distinct (ErrNames).
func New(g *tree.Graph, rooms [][]int, costs []int64, opts ...Option) (*Config, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if n > state.MaxVertices {
		return nil, fmt.Errorf("%w: %d vertices > %d", ErrTooLarge, n, state.MaxVertices)
	}
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	if len(rooms) > state.MaxKinds {
		return nil, fmt.Errorf("%w: %d types > %d", ErrTooLarge, len(rooms), state.MaxKinds)
	}
	if len(costs) != len(rooms) {
		return nil, fmt.Errorf("%w: %d costs for %d rooms", ErrCostMismatch, len(costs), len(rooms))
	}

	c := &Config{
		graph:    g,
		rooms:    make([][]int, len(rooms)),
		costs:    append([]int64(nil), costs...),
		slots:    make([]slotRef, n),
		transit:  make([]bool, n),
		geometry: o.Geometry,
	}
	for v := range c.slots {
		c.slots[v] = slotRef{kind: -1}
	}

	for t, cost := range costs {
		if cost < 0 {
			return nil, fmt.Errorf("%w: type %d cost=%d", ErrNegativeCost, t, cost)
		}
	}

	for t, room := range rooms {
		if len(room) == 0 {
			return nil, fmt.Errorf("%w: type %d", ErrEmptyRoom, t)
		}
		for i, v := range room {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: type %d slot %d vertex %d out of range", ErrRoomVertex, t, i, v)
			}
			if c.slots[v].kind != -1 {
				return nil, fmt.Errorf("%w: vertex %d listed twice", ErrRoomVertex, v)
			}
			c.slots[v] = slotRef{kind: t, index: i}
		}
		c.rooms[t] = append([]int(nil), room...)
	}

	for _, v := range o.Transit {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: vertex %d out of range", ErrTransit, v)
		}
		if c.slots[v].kind != -1 {
			return nil, fmt.Errorf("%w: vertex %d is a room slot", ErrTransit, v)
		}
		c.transit[v] = true
	}

	names, err := resolveNames(o.Names, len(rooms))
	if err != nil {
		return nil, err
	}
	c.names = names

	return c, nil
}

// resolveNames returns explicit names after validation, or 'A', 'B', ...
func resolveNames(names []rune, kinds int) ([]rune, error) {
	if names == nil {
		out := make([]rune, kinds)
		for i := range out {
			out[i] = rune('A' + i)
		}
		return out, nil
	}
	if len(names) != kinds {
		return nil, fmt.Errorf("%w: %d names for %d types", ErrNames, len(names), kinds)
	}
	seen := make(map[rune]bool, kinds)
	for _, r := range names {
		if seen[r] {
			return nil, fmt.Errorf("%w: duplicate %q", ErrNames, r)
		}
		seen[r] = true
	}

	return append([]rune(nil), names...), nil
}

// Graph returns the underlying tree.
func (c *Config) Graph() *tree.Graph { return c.graph }

// Order returns the number of vertices.
func (c *Config) Order() int { return c.graph.Order() }

// Kinds returns the number of agent types.
func (c *Config) Kinds() int { return len(c.rooms) }

// Room returns the target list of type t, entrance first. Shared; do not modify.
func (c *Config) Room(t int) []int { return c.rooms[t] }

// StepCost returns the per-step cost of type t.
func (c *Config) StepCost(t int) int64 { return c.costs[t] }

// Name returns the display rune of type t.
func (c *Config) Name(t int) rune { return c.names[t] }

// KindOf maps a display rune back to its type.
func (c *Config) KindOf(r rune) (int, bool) {
	for t, name := range c.names {
		if name == r {
			return t, true
		}
	}

	return 0, false
}

// Slot reports which room v belongs to and its index in that room.
func (c *Config) Slot(v int) (kind, index int, ok bool) {
	ref := c.slots[v]
	if ref.kind < 0 {
		return -1, -1, false
	}

	return ref.kind, ref.index, true
}

// IsRoom reports whether v is in some target list.
func (c *Config) IsRoom(v int) bool { return c.slots[v].kind >= 0 }

// IsTransit reports whether v may only be walked across.
func (c *Config) IsTransit(v int) bool { return c.transit[v] }

// IsOpen reports whether v is an open (hallway) vertex: not a room slot and
// not a transit vertex.
func (c *Config) IsOpen(v int) bool { return !c.IsRoom(v) && !c.transit[v] }

// Geometry returns the drawing geometry, or nil for free-form layouts.
func (c *Config) Geometry() *Geometry { return c.geometry }
