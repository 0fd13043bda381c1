// Package parse reads burrow diagrams into a layout and a start placement.
//
// Accepted input:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The hallway width fixes the number of rooms (width = 2·rooms + 3) and the
// number of room rows fixes their depth. Letters name agent types, 'A' for
// the first room, 'B' for the second and so on; '.' is an empty cell.
// Hallway letters are allowed everywhere except in front of a door.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/state"
)

// Sentinel errors returned by Diagram.
var (
	// ErrFormat indicates a diagram whose walls or rows are malformed.
	ErrFormat = errors.New("parse: malformed diagram")

	// ErrUnknownType indicates a cell letter with no matching room.
	ErrUnknownType = errors.New("parse: unknown agent type")

	// ErrDoorway indicates an agent drawn on a cell in front of a door.
	ErrDoorway = errors.New("parse: agent on a doorway cell")
)

// unfoldRows are inserted after the first room row by WithUnfold.
var unfoldRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Puzzle is a parsed diagram: the burrow it describes and where every agent
// starts.
type Puzzle struct {
	Config *layout.Config
	Start  state.State
}

// Options configures Diagram.
type Options struct {
	// Unfold inserts the two hidden rows of the deep variant.
	Unfold bool
}

// Option configures Diagram via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with Unfold disabled.
func DefaultOptions() Options { return Options{} }

// WithUnfold inserts "#D#C#B#A#" and "#D#B#A#C#" after the first room row,
// turning a two-deep diagram into the four-deep one. It needs four rooms.
func WithUnfold() Option {
	return func(o *Options) { o.Unfold = true }
}

// Diagram reads a burrow diagram from r.
func Diagram(r io.Reader, opts ...Option) (Puzzle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lines, err := readLines(r)
	if err != nil {
		return Puzzle{}, err
	}
	if len(lines) < 3 {
		return Puzzle{}, fmt.Errorf("%w: need a wall, a hallway and at least one room row", ErrFormat)
	}
	if strings.Trim(lines[0], "# ") != "" {
		return Puzzle{}, fmt.Errorf("%w: first line must be a wall", ErrFormat)
	}

	hall := lines[1]
	if len(hall) < 5 || hall[0] != '#' || hall[len(hall)-1] != '#' {
		return Puzzle{}, fmt.Errorf("%w: hallway line %q", ErrFormat, hall)
	}
	cells := hall[1 : len(hall)-1]
	if len(cells)%2 == 0 {
		return Puzzle{}, fmt.Errorf("%w: hallway width %d must be odd", ErrFormat, len(cells))
	}
	rooms := (len(cells) - 3) / 2

	rows, err := roomRows(lines[2:], rooms)
	if err != nil {
		return Puzzle{}, err
	}
	if o.Unfold {
		if rooms != 4 {
			return Puzzle{}, fmt.Errorf("%w: unfolding needs 4 rooms, diagram has %d", ErrFormat, rooms)
		}
		rows = append(rows[:1], append(append([]string(nil), unfoldRows...), rows[1:]...)...)
	}

	cfg, err := layout.Burrow(rooms, len(rows))
	if err != nil {
		return Puzzle{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	geo := cfg.Geometry()

	var agents []state.Agent
	for c := 0; c < len(cells); c++ {
		if cells[c] == '.' {
			continue
		}
		if geo.IsDoorColumn(c) {
			return Puzzle{}, fmt.Errorf("%w: column %d", ErrDoorway, c)
		}
		kind, err := kindOf(cfg, cells[c])
		if err != nil {
			return Puzzle{}, err
		}
		agents = append(agents, state.Agent{Kind: kind, Vertex: geo.Hallway[c]})
	}
	for depth, row := range rows {
		for room := 0; room < rooms; room++ {
			ch := row[1+geo.DoorColumn(room)]
			if ch == '.' {
				continue
			}
			kind, err := kindOf(cfg, ch)
			if err != nil {
				return Puzzle{}, err
			}
			agents = append(agents, state.Agent{Kind: kind, Vertex: cfg.Room(room)[depth]})
		}
	}

	start, err := state.New(agents)
	if err != nil {
		return Puzzle{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return Puzzle{Config: cfg, Start: start}, nil
}

// readLines returns the non-blank lines of r with trailing whitespace cut.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// roomRows splits the lines after the hallway into room rows and the closing
// wall. Every room row must put a cell under each door column.
func roomRows(lines []string, rooms int) ([]string, error) {
	var rows []string
	for i, line := range lines {
		if strings.Trim(line, "# ") == "" {
			for _, rest := range lines[i+1:] {
				if strings.Trim(rest, "# ") != "" {
					return nil, fmt.Errorf("%w: text after closing wall", ErrFormat)
				}
			}
			break
		}
		if len(line) < 2*rooms+3 {
			return nil, fmt.Errorf("%w: room row %q too short", ErrFormat, line)
		}
		for room := 0; room < rooms; room++ {
			col := 3 + 2*room
			if line[col-1] != '#' || line[col+1] != '#' {
				return nil, fmt.Errorf("%w: room row %q has no wall beside room %d", ErrFormat, line, room)
			}
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no room rows", ErrFormat)
	}

	return rows, nil
}

func kindOf(cfg *layout.Config, ch byte) (int, error) {
	kind, ok := cfg.KindOf(rune(ch))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, ch)
	}

	return kind, nil
}
