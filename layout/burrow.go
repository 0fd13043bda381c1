package layout

import (
	"fmt"

	"github.com/katalvlaran/burrow/state"
	"github.com/katalvlaran/burrow/tree"
)

// Burrow builds the amphipod burrow with the given number of side rooms and
// slots per room.
//
// Vertex numbering, shown for Burrow(4, 2):
//
//	#############
//	#01d2d3d4d56#     0..6   hallway stops
//	###7#9#b#d###     7..14  room slots, entrance first
//	  #8#a#c#e#       15..18 doorways (d), transit only
//	  #########
//
// Hallway stops come first, then the rooms in type order, then one doorway
// per room. Every neighbouring pair of cells costs multiplier 1, so the
// doorway cell between stops 1 and 2 makes 1→2, 1→7 and 2→7 each cost 2.
// Type t steps cost 10^t.
func Burrow(rooms, depth int) (*Config, error) {
	if rooms < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: rooms=%d depth=%d", ErrBadShape, rooms, depth)
	}
	stops := rooms + 3
	order := stops + rooms*depth + rooms
	if order > state.MaxVertices || rooms > state.MaxKinds {
		return nil, fmt.Errorf("%w: rooms=%d depth=%d needs %d vertices", ErrTooLarge, rooms, depth, order)
	}

	geo := &Geometry{
		Rooms:   rooms,
		Depth:   depth,
		Hallway: make([]int, 2*rooms+3),
		Doors:   make([]int, rooms),
	}
	next := 0
	for col := range geo.Hallway {
		if geo.IsDoorColumn(col) {
			r := col/2 - 1
			geo.Doors[r] = stops + rooms*depth + r
			geo.Hallway[col] = geo.Doors[r]
			continue
		}
		geo.Hallway[col] = next
		next++
	}

	b := tree.NewBuilder(order, tree.WithRequireConnected())
	for col := 1; col < len(geo.Hallway); col++ {
		if err := b.AddEdge(geo.Hallway[col-1], geo.Hallway[col], 1); err != nil {
			return nil, err
		}
	}

	roomList := make([][]int, rooms)
	costs := make([]int64, rooms)
	cost := int64(1)
	for r := 0; r < rooms; r++ {
		entrance := stops + r*depth
		if err := b.AddEdge(geo.Doors[r], entrance, 1); err != nil {
			return nil, err
		}
		roomList[r] = make([]int, depth)
		for k := 0; k < depth; k++ {
			roomList[r][k] = entrance + k
			if k > 0 {
				if err := b.AddEdge(entrance+k-1, entrance+k, 1); err != nil {
					return nil, err
				}
			}
		}
		costs[r] = cost
		cost *= 10
	}

	// Every edge above hangs a new cell off a connected chain, so the result
	// is always a tree.
	return New(b.MustBuild(), roomList, costs, WithTransit(geo.Doors...), WithGeometry(geo))
}

// Small is the two-deep, four-room burrow: rooms [[7,8],[9,10],[11,12],[13,14]]
// and step costs [1,10,100,1000].
func Small() *Config { return mustBurrow(4, 2) }

// Deep is the four-deep, four-room burrow of the unfolded diagram.
func Deep() *Config { return mustBurrow(4, 4) }

func mustBurrow(rooms, depth int) *Config {
	c, err := Burrow(rooms, depth)
	if err != nil {
		panic(err)
	}

	return c
}
