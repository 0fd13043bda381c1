package solver

import (
	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/state"
)

// Successors lists every state one move away from s. cost is the cost
// already paid to reach s; each Successor carries the cumulative total.
//
// Settled agents never move. Every other agent contributes one successor per
// legal stop returned by Reachable.
func Successors(cfg *layout.Config, s state.State, cost int64, rule Rule) []Successor {
	b := s.Board()

	return appendSuccessors(nil, cfg, s, &b, cost, rule)
}

func appendSuccessors(dst []Successor, cfg *layout.Config, s state.State, b *state.Board, cost int64, rule Rule) []Successor {
	var buf [state.MaxVertices]Stop

	for i := 0; i < s.Len(); i++ {
		v, kind := s.Vertex(i), s.Kind(i)
		if Settled(cfg, b, v, kind) {
			continue
		}
		for _, st := range reach(cfg, b, v, kind, rule, buf[:0]) {
			dst = append(dst, Successor{
				State: s.Move(i, st.Vertex),
				Cost:  cost + st.Cost,
				Move:  Move{Agent: i, Kind: kind, From: v, To: st.Vertex, Cost: st.Cost},
			})
		}
	}

	return dst
}
