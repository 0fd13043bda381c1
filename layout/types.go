package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while assembling a Config.
var (
	// ErrNilGraph indicates that no graph was supplied.
	ErrNilGraph = errors.New("layout: graph is nil")

	// ErrNoRooms indicates an empty target-list table.
	ErrNoRooms = errors.New("layout: no rooms")

	// ErrCostMismatch indicates that the cost table and the target-list
	// table disagree on the number of agent types.
	ErrCostMismatch = errors.New("layout: cost table does not match rooms")

	// ErrNegativeCost indicates a negative per-type step cost.
	ErrNegativeCost = errors.New("layout: negative step cost")

	// ErrEmptyRoom indicates a type with an empty target list.
	ErrEmptyRoom = errors.New("layout: empty room")

	// ErrRoomVertex indicates a target-list vertex that is out of range,
	// listed twice, or shared with another room or a transit vertex.
	ErrRoomVertex = errors.New("layout: invalid room vertex")

	// ErrTooLarge indicates a graph or table beyond the fixed-size state
	// encoding (state.MaxVertices vertices, state.MaxKinds types).
	ErrTooLarge = errors.New("layout: layout exceeds state capacity")

	// ErrNames indicates a names list of the wrong length or with duplicates.
	ErrNames = errors.New("layout: invalid type names")

	// ErrTransit indicates an out-of-range transit vertex.
	ErrTransit = errors.New("layout: invalid transit vertex")

	// ErrBadShape indicates Burrow dimensions that cannot form a burrow.
	ErrBadShape = errors.New("layout: invalid burrow shape")

	// ErrDecode indicates a malformed layout file.
	ErrDecode = errors.New("layout: cannot decode layout file")
)

// Options holds the optional parts of a Config.
type Options struct {
	// Names labels each type with a rune. Defaults to 'A', 'B', ...
	Names []rune

	// Transit lists pass-through vertices: agents may walk across them but
	// never stop on them.
	Transit []int

	// Geometry describes how a burrow is drawn; nil for free-form layouts.
	Geometry *Geometry

	err error
}

// Option configures New via functional arguments.
type Option func(*Options)

// WithNames sets the display rune of each type, in type order.
func WithNames(names ...rune) Option {
	return func(o *Options) {
		o.Names = append([]rune(nil), names...)
	}
}

// WithTransit marks vertices agents may cross but never stop on.
func WithTransit(vertices ...int) Option {
	return func(o *Options) {
		o.Transit = append(o.Transit, vertices...)
	}
}

// WithGeometry attaches a drawing geometry. A nil geometry is an option
// violation.
func WithGeometry(geo *Geometry) Option {
	return func(o *Options) {
		if geo == nil {
			o.err = fmt.Errorf("%w: nil geometry", ErrBadShape)
			return
		}
		o.Geometry = geo
	}
}

// Geometry is the drawing grid of a burrow: one hallway row and Depth room
// rows below it. Room r sits under hallway column DoorColumn(r).
type Geometry struct {
	// Rooms is the number of side rooms.
	Rooms int

	// Depth is the number of slots per room.
	Depth int

	// Hallway maps each hallway column to its stop vertex. Doorway columns
	// hold the doorway's transit vertex and are flagged in Doors.
	Hallway []int

	// Doors maps room index to its doorway transit vertex.
	Doors []int
}

// Width returns the number of hallway columns.
func (g *Geometry) Width() int { return len(g.Hallway) }

// DoorColumn returns the hallway column in front of room r.
func (g *Geometry) DoorColumn(r int) int { return 2*r + 2 }

// IsDoorColumn reports whether hallway column c is in front of a room.
func (g *Geometry) IsDoorColumn(c int) bool {
	return c >= 2 && c <= 2*g.Rooms && c%2 == 0
}
