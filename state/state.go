// Package state encodes an agent placement as a small fixed-size value.
//
// A State is a plain comparable struct (two fixed arrays and a count), so it
// can be copied, compared with ==, and used directly as a map key without any
// per-state heap allocation. Millions of these are created during a search.
package state

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Capacity limits of the fixed-size encoding.
const (
	// MaxVertices bounds the graph order; vertices fit in a uint8 and the
	// occupancy of a whole graph fits in a uint64 bitset.
	MaxVertices = 64

	// MaxAgents bounds the number of agents in one placement.
	MaxAgents = 32

	// MaxKinds bounds the number of agent types.
	MaxKinds = 16
)

// Empty marks an unoccupied vertex on a Board.
const Empty uint8 = 0xFF

// Sentinel errors returned by New.
var (
	// ErrTooManyAgents indicates more than MaxAgents agents.
	ErrTooManyAgents = errors.New("state: too many agents")

	// ErrVertexOutOfRange indicates a vertex outside 0..MaxVertices-1.
	ErrVertexOutOfRange = errors.New("state: vertex out of range")

	// ErrOccupied indicates two agents placed on the same vertex.
	ErrOccupied = errors.New("state: vertex already occupied")

	// ErrBadKind indicates a type outside 0..MaxKinds-1.
	ErrBadKind = errors.New("state: agent type out of range")
)

// Agent is one typed agent on one vertex.
type Agent struct {
	Kind   int
	Vertex int
}

// State is an immutable agent → vertex assignment.
//
// Agents are indexed 0..Len()-1 and kept grouped by ascending type: every
// agent of type 0 comes before every agent of type 1, and so on. Agents of
// the same type are interchangeable for goal checks but keep their own index.
type State struct {
	pos  [MaxAgents]uint8
	kind [MaxAgents]uint8
	n    uint8
}

// New validates agents and returns them as a State grouped by type.
// Within a type, agents keep the order they were given in.
func New(agents []Agent) (State, error) {
	var s State
	if len(agents) > MaxAgents {
		return s, fmt.Errorf("%w: %d > %d", ErrTooManyAgents, len(agents), MaxAgents)
	}

	sorted := append([]Agent(nil), agents...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Kind < sorted[j].Kind })

	var seen uint64
	for i, a := range sorted {
		if a.Vertex < 0 || a.Vertex >= MaxVertices {
			return State{}, fmt.Errorf("%w: agent %d at %d", ErrVertexOutOfRange, i, a.Vertex)
		}
		if a.Kind < 0 || a.Kind >= MaxKinds {
			return State{}, fmt.Errorf("%w: agent %d has type %d", ErrBadKind, i, a.Kind)
		}
		bit := uint64(1) << uint(a.Vertex)
		if seen&bit != 0 {
			return State{}, fmt.Errorf("%w: vertex %d", ErrOccupied, a.Vertex)
		}
		seen |= bit
		s.pos[i] = uint8(a.Vertex)
		s.kind[i] = uint8(a.Kind)
	}
	s.n = uint8(len(sorted))

	return s, nil
}

// MustNew is New for literals in tests and fixed layouts; it panics on error.
func MustNew(agents []Agent) State {
	s, err := New(agents)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of agents.
func (s State) Len() int { return int(s.n) }

// Vertex returns the vertex agent i occupies.
func (s State) Vertex(i int) int { return int(s.pos[i]) }

// Kind returns the type of agent i.
func (s State) Kind(i int) int { return int(s.kind[i]) }

// Agents returns a copy of the placement in agent order.
func (s State) Agents() []Agent {
	out := make([]Agent, s.n)
	for i := range out {
		out[i] = Agent{Kind: int(s.kind[i]), Vertex: int(s.pos[i])}
	}

	return out
}

// Move returns a new State in which agent i stands on vertex to.
// Precondition (unchecked): to is in range and unoccupied.
func (s State) Move(i, to int) State {
	s.pos[i] = uint8(to)
	return s
}

// Key returns the canonical form of s: positions sorted ascending inside each
// type group. Two placements that differ only by swapping interchangeable
// agents share one Key.
func (s State) Key() State {
	for i := 1; i < int(s.n); i++ {
		for j := i; j > 0 && s.kind[j-1] == s.kind[j] && s.pos[j-1] > s.pos[j]; j-- {
			s.pos[j-1], s.pos[j] = s.pos[j], s.pos[j-1]
		}
	}

	return s
}

// Positions returns the agent → vertex array of s without its types.
func (s State) Positions() Positions { return s.pos }

// WithPositions returns s with every agent moved to p. The types of s are
// kept, so p must come from a State with the same agents.
func (s State) WithPositions(p Positions) State {
	s.pos = p
	return s
}

// Board returns a vertex → type lookup with Empty for free vertices.
func (s State) Board() Board {
	var b Board
	for i := range b {
		b[i] = Empty
	}
	for i := 0; i < int(s.n); i++ {
		b[s.pos[i]] = s.kind[i]
	}

	return b
}

// Count returns how many agents of type kind the placement holds.
func (s State) Count(kind int) int {
	c := 0
	for i := 0; i < int(s.n); i++ {
		if int(s.kind[i]) == kind {
			c++
		}
	}

	return c
}

// String renders the placement as "type@vertex" pairs, e.g. "0@8 0@14 1@7".
func (s State) String() string {
	var sb strings.Builder
	for i := 0; i < int(s.n); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d@%d", s.kind[i], s.pos[i])
	}

	return sb.String()
}

// Compare is the explicit total order used to break cost ties in the
// frontier: agent count first, then lexicographic over the agent → vertex
// array, then over the agent → type array. It returns -1, 0 or +1.
func Compare(a, b State) int {
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	}
	for i := 0; i < int(a.n); i++ {
		if a.pos[i] != b.pos[i] {
			if a.pos[i] < b.pos[i] {
				return -1
			}
			return 1
		}
	}
	for i := 0; i < int(a.n); i++ {
		if a.kind[i] != b.kind[i] {
			if a.kind[i] < b.kind[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// Positions is the type-free half of a State. Moves never change an
// agent's type, so a search stores Positions per node and keeps a single
// State as the template that holds the types.
type Positions [MaxAgents]uint8

// Compare orders p and q lexicographically; it agrees with the package
// Compare for two States with identical types.
func (p *Positions) Compare(q *Positions) int { return bytes.Compare(p[:], q[:]) }

// Board is a vertex-indexed occupancy table.
type Board [MaxVertices]uint8

// At reports the type standing on v, if any.
func (b *Board) At(v int) (int, bool) {
	if b[v] == Empty {
		return 0, false
	}

	return int(b[v]), true
}

// Free reports whether v is unoccupied.
func (b *Board) Free(v int) bool { return b[v] == Empty }
