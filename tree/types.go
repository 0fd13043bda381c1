// Package tree defines the static weighted Graph used by the solver,
// the Builder that constructs it, and the sentinel errors raised while
// validating that the edge relation really forms a tree (or a forest).
//
// Errors:
//
//	ErrVertexOutOfRange   - an endpoint is outside 0..order-1.
//	ErrLoop               - an edge connects a vertex to itself.
//	ErrMultiEdge          - a second edge between the same pair of vertices.
//	ErrNegativeMultiplier - an edge carries a negative cost multiplier.
//	ErrCycle              - the edges close a cycle.
//	ErrDisconnected       - WithRequireConnected was given and the graph is a forest.
//	ErrBadOrder           - the builder was created with order < 1.
package tree

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrVertexOutOfRange indicates an edge endpoint outside 0..order-1.
	ErrVertexOutOfRange = errors.New("tree: vertex out of range")

	// ErrLoop indicates an edge from a vertex to itself.
	ErrLoop = errors.New("tree: self-loop not allowed")

	// ErrMultiEdge indicates a parallel edge between an already connected pair.
	ErrMultiEdge = errors.New("tree: parallel edge not allowed")

	// ErrNegativeMultiplier indicates an edge with a negative cost multiplier.
	ErrNegativeMultiplier = errors.New("tree: negative cost multiplier")

	// ErrCycle indicates that the edge relation contains a cycle, so paths
	// between some vertices are no longer unique.
	ErrCycle = errors.New("tree: graph contains a cycle")

	// ErrDisconnected indicates that a connected tree was required but the
	// edges only form a forest.
	ErrDisconnected = errors.New("tree: graph is not connected")

	// ErrBadOrder indicates a builder created for fewer than one vertex.
	ErrBadOrder = errors.New("tree: order must be positive")
)

// Edge is one directed half of an undirected tree edge.
type Edge struct {
	// To is the neighbor vertex.
	To int

	// Multiplier is the per-edge weight. The price of walking the edge is
	// Multiplier times the step cost of whoever walks it.
	Multiplier int64
}

// Graph is an immutable adjacency structure over vertices 0..Order()-1.
//
// A Graph returned by Builder.Build is guaranteed acyclic: between any two
// vertices there is at most one simple path. It is safe for concurrent
// readers since nothing mutates it after Build.
type Graph struct {
	adj   [][]Edge
	edges int
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.edges }

// Neighbors returns the neighbor list of v in insertion order.
// The returned slice is shared and must not be modified.
// Precondition: 0 <= v < Order(). Out-of-range vertices panic.
func (g *Graph) Neighbors(v int) []Edge { return g.adj[v] }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Edges returns every undirected edge once as (from, Edge) with from < Edge.To,
// ordered by from and then by insertion order.
func (g *Graph) Edges() []FullEdge {
	out := make([]FullEdge, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, e := range nbrs {
			if u < e.To {
				out = append(out, FullEdge{From: u, To: e.To, Multiplier: e.Multiplier})
			}
		}
	}

	return out
}

// FullEdge is an undirected edge with both endpoints spelled out.
type FullEdge struct {
	From       int
	To         int
	Multiplier int64
}

// BuilderOption configures a Builder before edges are added.
type BuilderOption func(*Builder)

// WithRequireConnected makes Build reject forests with ErrDisconnected.
func WithRequireConnected() BuilderOption {
	return func(b *Builder) { b.requireConnected = true }
}
