// Package solver finds the cheapest sequence of moves that brings every agent
// of a placement into its type's room.
//
// What
//
//   - Uniform-cost search over whole placements (state.State values).
//   - One move relocates one agent along a path of free vertices; its price is
//     the sum of the edge multipliers crossed times the agent's step cost.
//   - A placement is terminal when every room slot holds an agent of the
//     room's own type.
//   - Returns a Result with the minimum cost, search counters and, on request,
//     the optimal move sequence.
//
// Move rules
//
//   - Settled agents (in their room with only their own type behind them)
//     never move.
//   - Transit vertices are never stops.
//   - An agent in a room may stop on an open vertex or on its settling slot.
//   - An agent on an open vertex may stop anywhere reachable (RuleRoam, the
//     default) or only on its settling slot (RuleStrict).
//
// Determinism
//
//	The frontier breaks cost ties by position array (the order of
//	state.Compare, since types are fixed for a search) and successors are
//	generated in agent-index order, then tree walk order. Two runs over the
//	same input expand the same states in the same order.
//
// Building blocks
//
//	Settled, Slot and IsTerminal read a state.Board; Reachable lists the stops
//	of one agent; Successors lists every one-move child of a placement. Solve
//	drives them with a lazy-deletion min-heap.
//
// Complexity
//
//   - Reachable: O(V) per agent, V = graph order.
//   - Successors: O(A·V) per state, A = number of agents.
//   - Solve: O(N·A·V + N log N) for N pushed states.
package solver
