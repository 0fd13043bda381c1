package solver

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/state"
)

const (
	// cancelCheckEvery is how many pops pass between context checks.
	cancelCheckEvery = 1024

	// progressEvery is how many expansions pass between debug progress lines.
	progressEvery = 100_000
)

// Solve returns the minimum total cost of moving every agent of initial into
// its type's room, searching the states of cfg in order of increasing cost.
//
// Preconditions and validation (in order):
//  1. options must be valid (ErrOptionViolation).
//  2. cfg must be non-nil (ErrNilConfig).
//  3. initial must hold at least one agent (ErrNoAgents).
//  4. every agent vertex must exist in cfg (ErrVertexOutOfRange).
//  5. every agent type must have a room (ErrUnknownType).
//
// "No solution" is not an error: Result.Found is false when the frontier
// empties, when MaxExpansions is hit (Truncated), or immediately when some
// type has fewer agents than its room has slots. A cancelled context
// returns the partial counters together with ctx.Err().
//
// States that differ only by swapping two agents of the same type are the
// same search node, so each configuration is expanded at most once.
//
// Complexity: O(N log N) heap work for N pushed states, with N bounded by
// the number of distinct placements of the agents on the graph.
func Solve(cfg *layout.Config, initial state.State, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	// 2) Validate the layout and the placement against it.
	if cfg == nil {
		return Result{}, ErrNilConfig
	}
	if initial.Len() == 0 {
		return Result{}, ErrNoAgents
	}
	for i := 0; i < initial.Len(); i++ {
		if v := initial.Vertex(i); v >= cfg.Order() {
			return Result{}, fmt.Errorf("%w: agent %d at vertex %d, layout has %d", ErrVertexOutOfRange, i, v, cfg.Order())
		}
		if k := initial.Kind(i); k >= cfg.Kinds() {
			return Result{}, fmt.Errorf("%w: agent %d has type %d, layout has %d", ErrUnknownType, i, k, cfg.Kinds())
		}
	}

	// 3) A room that can never be filled means no terminal state exists.
	for k := 0; k < cfg.Kinds(); k++ {
		if have, need := initial.Count(k), len(cfg.Room(k)); have < need {
			if o.Logger != nil {
				o.Logger.Debug("room cannot be filled", "type", string(cfg.Name(k)), "agents", have, "slots", need)
			}
			return Result{}, nil
		}
	}

	// 4) Run the search.
	r := &runner{
		cfg:      cfg,
		options:  o,
		template: initial,
		dist:     make(map[state.Positions]int64),
		visited:  make(map[state.Positions]struct{}),
		started:  time.Now(),
	}
	r.init(initial)

	return r.process()
}

// node is a finalized state kept for path reconstruction.
type node struct {
	parent   int32
	agent    uint8
	from, to uint8
	cost     int64
}

// runner holds the mutable state of a single Solve call.
//
// Maps and frontier hold Positions only; template supplies the agent types,
// which no move changes.
type runner struct {
	cfg      *layout.Config
	options  Options
	template state.State
	pq       frontier
	dist     map[state.Positions]int64    // best known cost per canonical key
	visited  map[state.Positions]struct{} // finalized canonical keys
	nodes    []node                       // arena of finalized states when ReturnPath
	succ     []Successor                  // reused successor buffer
	res      Result
	started  time.Time
}

func (r *runner) init(initial state.State) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{pos: initial.Positions(), cost: 0, parent: -1})
	r.dist[initial.Key().Positions()] = 0
	r.res.Pushed = 1
}

// key returns the canonical Positions of s.
func (r *runner) key(s state.State) state.Positions { return s.Key().Positions() }

// process pops states in (cost, state) order until a terminal state is
// finalized, the frontier empties, the cap is hit or the context ends.
func (r *runner) process() (Result, error) {
	ctx := r.options.Ctx
	pops := 0

	for r.pq.Len() > 0 {
		// 1) Honour cancellation without paying for a select on every pop.
		// The check runs on the very first pop too, so a context that is
		// already done never expands anything.
		if pops%cancelCheckEvery == 0 {
			select {
			case <-ctx.Done():
				return r.res, ctx.Err()
			default:
			}
		}
		pops++

		// 2) Pop the cheapest entry. The same placement may sit in the heap
		// several times with older, higher costs; only the first pop counts.
		e := heap.Pop(&r.pq).(entry)
		s := r.template.WithPositions(e.pos)
		key := r.key(s)
		if _, done := r.visited[key]; done {
			continue
		}

		// 3) Respect the expansion cap. The cap is checked before marking,
		// so Expanded never exceeds MaxExpansions.
		if limit := r.options.MaxExpansions; limit > 0 && r.res.Expanded >= limit {
			r.res.Truncated = true
			r.debug("expansion cap reached")
			return r.res, nil
		}
		r.visited[key] = struct{}{}
		r.res.Expanded++

		// The popped cost is final; remember how we got here when a path
		// was asked for.
		idx := int32(-1)
		if r.options.ReturnPath {
			r.nodes = append(r.nodes, node{
				parent: e.parent,
				agent:  e.agent,
				from:   e.from,
				to:     e.pos[e.agent],
				cost:   e.cost,
			})
			idx = int32(len(r.nodes) - 1)
		}

		// 4) The first terminal state popped has the minimum cost: every
		// state still in the frontier costs at least as much.
		b := s.Board()
		if IsTerminal(r.cfg, &b) {
			r.res.Found = true
			r.res.Cost = e.cost
			if r.options.ReturnPath {
				r.res.Moves = r.path(idx)
			}
			r.debug("solved", "cost", e.cost)
			return r.res, nil
		}

		r.options.OnExpand(s, e.cost)
		if r.res.Expanded%progressEvery == 0 {
			r.debug("searching", "cost", e.cost)
		}

		// 5) Relax every one-move successor.
		r.relax(s, &b, e.cost, idx)
	}

	// The frontier ran dry without a terminal state: no solution.
	r.debug("frontier exhausted")

	return r.res, nil
}

// relax pushes every successor of s whose cost beats the best known one.
func (r *runner) relax(s state.State, b *state.Board, cost int64, idx int32) {
	// Successors arrive in a fixed order and with cumulative costs.
	r.succ = appendSuccessors(r.succ[:0], r.cfg, s, b, cost, r.options.Rule)
	for _, next := range r.succ {
		// Finalized placements already have their least cost.
		key := r.key(next.State)
		if _, done := r.visited[key]; done {
			continue
		}
		// Not an improvement on a copy already queued.
		if best, ok := r.dist[key]; ok && next.Cost >= best {
			continue
		}
		// Record the new best and queue it; the older copy goes stale.
		r.dist[key] = next.Cost
		heap.Push(&r.pq, entry{
			pos:    next.State.Positions(),
			cost:   next.Cost,
			parent: idx,
			agent:  uint8(next.Move.Agent),
			from:   uint8(next.Move.From),
		})
		r.res.Pushed++
	}
}

// path walks the arena from idx back to the root and returns the moves in
// execution order. Each step cost is the difference of cumulative costs.
func (r *runner) path(idx int32) []Move {
	var moves []Move
	for i := idx; i >= 0 && r.nodes[i].parent >= 0; i = r.nodes[i].parent {
		n := r.nodes[i]
		moves = append(moves, Move{
			Agent: int(n.agent),
			Kind:  r.template.Kind(int(n.agent)),
			From:  int(n.from),
			To:    int(n.to),
			Cost:  n.cost - r.nodes[n.parent].cost,
		})
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}

func (r *runner) debug(msg string, keyvals ...interface{}) {
	if r.options.Logger == nil {
		return
	}
	keyvals = append(keyvals,
		"expanded", r.res.Expanded,
		"pushed", r.res.Pushed,
		"frontier", r.pq.Len(),
		"elapsed", time.Since(r.started).Round(time.Millisecond),
	)
	r.options.Logger.Debug(msg, keyvals...)
}
