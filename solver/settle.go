package solver

import (
	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/state"
)

// Settled reports whether an agent of type kind standing on v never needs to
// move again: v is in kind's room at index k and every slot behind k already
// holds an agent of the same type. Rooms fill from the back.
//
// Settlement is monotone. Moving other agents can only fill the slots behind
// v with more agents of the same type, never empty them, because a settled
// agent is never selected for a move.
func Settled(cfg *layout.Config, b *state.Board, v, kind int) bool {
	room, idx, ok := cfg.Slot(v)
	if !ok || room != kind {
		return false
	}
	for _, w := range cfg.Room(kind)[idx+1:] {
		if t, occ := b.At(w); !occ || t != kind {
			return false
		}
	}

	return true
}

// Slot returns the settling slot of type kind: the deepest free vertex of its
// room with only same-type agents behind it. ok is false when the room is
// full or still holds a foreign agent that has to leave first.
func Slot(cfg *layout.Config, b *state.Board, kind int) (v int, ok bool) {
	room := cfg.Room(kind)
	for i := len(room) - 1; i >= 0; i-- {
		t, occ := b.At(room[i])
		if !occ {
			return room[i], true
		}
		if t != kind {
			return -1, false
		}
	}

	return -1, false
}

// IsTerminal reports whether every slot of every room holds an agent of the
// room's own type.
func IsTerminal(cfg *layout.Config, b *state.Board) bool {
	for kind := 0; kind < cfg.Kinds(); kind++ {
		for _, v := range cfg.Room(kind) {
			if t, occ := b.At(v); !occ || t != kind {
				return false
			}
		}
	}

	return true
}
