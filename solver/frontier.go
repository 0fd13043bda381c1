package solver

import "github.com/katalvlaran/burrow/state"

// entry is one frontier record. A state may be pushed several times with
// decreasing costs; stale copies are skipped when popped.
//
// Only positions are stored: the agent types live once in the runner's
// template. The producing move is kept as the moved agent and its origin;
// the target and the step cost follow from pos and the costs.
type entry struct {
	pos    state.Positions
	cost   int64
	parent int32 // arena index of the parent node, -1 for the root
	agent  uint8 // agent moved from the parent
	from   uint8 // vertex that agent left
}

// frontier implements heap.Interface as a min-heap of entries ordered by
// cost, then by position array, so pops are reproducible across runs.
type frontier []entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].pos.Compare(&f[j].pos) < 0
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends an entry; used by heap.Push.
func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(entry))
}

// Pop removes and returns the last entry; used by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}
