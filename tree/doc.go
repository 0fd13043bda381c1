// Package tree provides the static, weighted, acyclic graph that every burrow
// layout is built on.
//
// Overview:
//
//   - Vertices are the integers 0..Order()-1; no per-vertex state.
//   - Each undirected edge carries a cost multiplier. Walking an edge costs
//     multiplier × step cost of the walker.
//   - Graphs are immutable once built and safe for concurrent readers.
//
// Why a tree:
//
// Between any two vertices of a tree there is exactly one simple path, so the
// path found by a plain traversal IS the shortest path. The solver's
// reachability step relies on this: it walks outward once, never revisits a
// vertex and never relaxes a cost. A cycle would silently produce wrong
// costs, so Builder.Build rejects cycles up front with ErrCycle instead of
// leaving it as an unchecked precondition.
//
// Forests (several components) are accepted unless WithRequireConnected is
// given: unreachable vertices simply never show up in a walk.
//
// Example:
//
//	b := tree.NewBuilder(4)
//	_ = b.AddEdge(0, 1, 1)
//	_ = b.AddEdge(1, 2, 2)
//	_ = b.AddEdge(1, 3, 2)
//	g, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, _ := g.PathCost(0, 3) // 3
//
// Complexity:
//
//   - Build: O(V + E) (one three-color DFS).
//   - Walk:  O(V + E).
package tree
