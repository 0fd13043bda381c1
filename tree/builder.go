package tree

import "fmt"

// Visitation colors for the cycle check.
const (
	white = iota // not yet reached
	gray         // on the current DFS path
	black        // fully explored
)

// Builder accumulates undirected edges and produces a validated Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	adj              [][]Edge
	edges            int
	requireConnected bool
	err              error // recorded by NewBuilder, surfaced by AddEdge/Build
}

// NewBuilder starts a graph over vertices 0..order-1.
// An order below 1 is recorded and reported as ErrBadOrder by Build.
func NewBuilder(order int, opts ...BuilderOption) *Builder {
	b := &Builder{}
	if order < 1 {
		b.err = fmt.Errorf("%w: got %d", ErrBadOrder, order)
		order = 0
	}
	b.adj = make([][]Edge, order)
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddEdge connects u and v in both directions with the given multiplier.
// Returns ErrVertexOutOfRange, ErrLoop, ErrMultiEdge or ErrNegativeMultiplier
// and leaves the builder unchanged on failure.
//
// Cycles are not detected here but in Build, once every edge is known.
func (b *Builder) AddEdge(u, v int, multiplier int64) error {
	if b.err != nil {
		return b.err
	}
	n := len(b.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: edge %d-%d with order %d", ErrVertexOutOfRange, u, v, n)
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrLoop, u)
	}
	if multiplier < 0 {
		return fmt.Errorf("%w: edge %d-%d multiplier=%d", ErrNegativeMultiplier, u, v, multiplier)
	}
	for _, e := range b.adj[u] {
		if e.To == v {
			return fmt.Errorf("%w: %d-%d", ErrMultiEdge, u, v)
		}
	}

	b.adj[u] = append(b.adj[u], Edge{To: v, Multiplier: multiplier})
	b.adj[v] = append(b.adj[v], Edge{To: u, Multiplier: multiplier})
	b.edges++

	return nil
}

// Build validates the accumulated edges and returns the immutable Graph.
//
// Validation order:
//  1. Any error recorded by NewBuilder.
//  2. Acyclicity (ErrCycle, wrapped with the offending back edge).
//  3. Connectivity, only with WithRequireConnected (ErrDisconnected).
//
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, error) {
	// 1) Errors recorded earlier win.
	if b.err != nil {
		return nil, b.err
	}

	// 2) One DFS per component; each new root starts a component.
	state := make([]int, len(b.adj))
	components := 0
	for v := range b.adj {
		if state[v] != white {
			continue
		}
		components++
		if err := b.visit(v, -1, state); err != nil {
			return nil, err
		}
	}

	// 3) A tree is a single component.
	if b.requireConnected && components > 1 {
		return nil, fmt.Errorf("%w: %d components", ErrDisconnected, components)
	}

	// 4) Copy the lists so later AddEdge calls cannot reach the Graph.
	adj := make([][]Edge, len(b.adj))
	for v, nbrs := range b.adj {
		adj[v] = append([]Edge(nil), nbrs...)
	}

	return &Graph{adj: adj, edges: b.edges}, nil
}

// visit runs the three-color DFS from id. Reaching a gray vertex other than
// the parent means a back edge, i.e. a cycle.
func (b *Builder) visit(id, parent int, state []int) error {
	state[id] = gray
	for _, e := range b.adj[id] {
		// The edge back to the parent is the same undirected edge.
		if e.To == parent {
			continue
		}
		switch state[e.To] {
		case white:
			if err := b.visit(e.To, id, state); err != nil {
				return err
			}
		case gray:
			return fmt.Errorf("%w: back edge %d-%d", ErrCycle, id, e.To)
		}
	}
	state[id] = black

	return nil
}

// MustBuild is Build for statically known layouts; it panics on error.
func (b *Builder) MustBuild() *Graph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	return g
}
