package tree

import "fmt"

// Unreached marks vertices a walk never arrived at.
const Unreached int64 = -1

// WalkOptions customizes Graph.Walk.
type WalkOptions struct {
	// Filter reports whether the walk may step from curr onto next.
	// A rejected vertex is neither visited nor passed through.
	Filter func(curr, next int) bool

	// OnVisit is called once per reached vertex (origin included), in
	// breadth-first order, with the accumulated path cost.
	OnVisit func(v int, cost int64)

	// Scale multiplies every edge multiplier, e.g. an agent's step cost.
	Scale int64
}

// WalkOption configures a walk via functional arguments.
type WalkOption func(*WalkOptions)

// DefaultWalkOptions returns options that visit everything with Scale 1.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Filter:  func(_, _ int) bool { return true },
		OnVisit: func(int, int64) {},
		Scale:   1,
	}
}

// WithFilter restricts which vertices the walk may enter.
func WithFilter(fn func(curr, next int) bool) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(v int, cost int64)) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithScale sets the per-step cost factor applied to every edge.
func WithScale(scale int64) WalkOption {
	return func(o *WalkOptions) { o.Scale = scale }
}

// WalkResult holds per-vertex outcomes of a walk, indexed by vertex.
type WalkResult struct {
	// Order lists reached vertices in visit order, origin first.
	Order []int

	// Cost is the accumulated path cost, or Unreached.
	Cost []int64

	// Parent is the predecessor on the unique path, -1 for the origin and
	// for unreached vertices.
	Parent []int
}

// PathTo returns the vertices on the path from the origin to dest.
func (r *WalkResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Cost) || r.Cost[dest] == Unreached {
		return nil, fmt.Errorf("tree: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Walk explores the graph outward from origin. Since the graph is acyclic
// every reached vertex has exactly one path from origin, so a single
// breadth-first pass that never revisits a vertex yields exact path costs;
// no relaxation step is needed.
//
// Complexity: O(V + E).
func (g *Graph) Walk(origin int, opts ...WalkOption) (*WalkResult, error) {
	if origin < 0 || origin >= g.Order() {
		return nil, fmt.Errorf("%w: origin %d", ErrVertexOutOfRange, origin)
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Everything starts unreached.
	n := g.Order()
	res := &WalkResult{
		Order:  make([]int, 0, n),
		Cost:   make([]int64, n),
		Parent: make([]int, n),
	}
	for v := range res.Cost {
		res.Cost[v] = Unreached
		res.Parent[v] = -1
	}

	// 2) Breadth-first from origin.
	res.Cost[origin] = 0
	queue := make([]int, 0, n)
	queue = append(queue, origin)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)
		o.OnVisit(cur, res.Cost[cur])

		// 3) Extend to unseen neighbours the filter lets through. A reached
		// neighbour can only be the vertex we came from.
		for _, e := range g.adj[cur] {
			if res.Cost[e.To] != Unreached || !o.Filter(cur, e.To) {
				continue
			}
			res.Cost[e.To] = res.Cost[cur] + e.Multiplier*o.Scale
			res.Parent[e.To] = cur
			queue = append(queue, e.To)
		}
	}

	return res, nil
}

// PathCost sums the multipliers along the unique path from u to v.
// The boolean is false when v cannot be reached from u or either vertex is
// out of range.
func (g *Graph) PathCost(u, v int) (int64, bool) {
	if v < 0 || v >= g.Order() {
		return 0, false
	}
	res, err := g.Walk(u)
	if err != nil || res.Cost[v] == Unreached {
		return 0, false
	}

	return res.Cost[v], true
}
