package solver

import (
	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/state"
)

// frame is one pending vertex of the reachability walk.
type frame struct {
	v    int
	cost int64
}

// Reachable returns every legal stop of an agent of type kind standing on
// origin in s, with the cost of moving there in one move.
//
// The walk only passes through unoccupied vertices. Each edge crossed adds
// its multiplier times kind's step cost, and because the graph is a tree the
// first cost found for a vertex is the only one. A vertex is a stop when:
//
//   - it is not the origin and not a transit vertex;
//   - it is the settling slot of kind, or
//   - origin is a room vertex and the target is open, or
//   - origin is not a room vertex and rule is RuleRoam.
//
// Stops come back in walk order, which is deterministic for a given Config.
func Reachable(cfg *layout.Config, s state.State, origin, kind int, rule Rule) []Stop {
	b := s.Board()

	return reach(cfg, &b, origin, kind, rule, nil)
}

// reach appends the stops of (origin, kind) to dst. b must reflect the state
// the agent moves in; the agent's own cell counts as occupied and is skipped
// as the origin.
func reach(cfg *layout.Config, b *state.Board, origin, kind int, rule Rule, dst []Stop) []Stop {
	g := cfg.Graph()
	step := cfg.StepCost(kind)
	slot, hasSlot := Slot(cfg, b, kind)
	fromRoom := cfg.IsRoom(origin)

	// Each vertex is pushed at most once, so a fixed stack and a bitset
	// cover any layout without allocating.
	var (
		stack [state.MaxVertices]frame
		top   int
		seen  = uint64(1) << uint(origin)
	)
	stack[top] = frame{v: origin}
	top++

	for top > 0 {
		top--
		cur := stack[top]

		// The origin is never a stop; other cells go through the rule.
		if cur.v != origin && stoppable(cfg, cur.v, slot, hasSlot, fromRoom, rule) {
			dst = append(dst, Stop{Vertex: cur.v, Cost: cur.cost})
		}

		for _, e := range g.Neighbors(cur.v) {
			bit := uint64(1) << uint(e.To)
			// Occupied cells block the corridor beyond them too.
			if seen&bit != 0 || !b.Free(e.To) {
				continue
			}
			seen |= bit
			stack[top] = frame{v: e.To, cost: cur.cost + e.Multiplier*step}
			top++
		}
	}

	return dst
}

func stoppable(cfg *layout.Config, v, slot int, hasSlot, fromRoom bool, rule Rule) bool {
	switch {
	case cfg.IsTransit(v):
		return false
	case hasSlot && v == slot:
		return true
	case fromRoom:
		return cfg.IsOpen(v)
	default:
		return rule == RuleRoam
	}
}
