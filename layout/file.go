package layout

import (
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/burrow/state"
	"github.com/katalvlaran/burrow/tree"
)

// fileLayout mirrors the TOML layout format:
//
//	vertices = 5
//	transit  = [1]
//
//	[[edge]]
//	from = 0
//	to = 1
//	multiplier = 2   # optional, defaults to 1
//
//	[[room]]
//	name = "A"
//	step_cost = 1
//	slots = [3, 4]   # entrance first
//
//	[start]
//	A = [0, 2]
type fileLayout struct {
	Vertices int               `toml:"vertices"`
	Transit  []int             `toml:"transit"`
	Edges    []fileEdge        `toml:"edge"`
	Rooms    []fileRoom        `toml:"room"`
	Start    map[string][]int  `toml:"start"`
	Burrow   *fileBurrowParams `toml:"burrow"`
}

type fileEdge struct {
	From       int    `toml:"from"`
	To         int    `toml:"to"`
	Multiplier *int64 `toml:"multiplier"`
}

type fileRoom struct {
	Name     string `toml:"name"`
	StepCost int64  `toml:"step_cost"`
	Slots    []int  `toml:"slots"`
}

// fileBurrowParams selects a generated burrow instead of explicit edges.
type fileBurrowParams struct {
	Rooms int `toml:"rooms"`
	Depth int `toml:"depth"`
}

// Load reads a TOML layout file from path. See Decode.
func Load(path string) (*Config, []state.Agent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a TOML layout and returns the Config together with the
// optional start placement from its [start] table (nil when absent).
//
// A file either lists vertices, edges and rooms explicitly, or contains a
// [burrow] table with rooms and depth, in which case the generated burrow
// is used and only [start] is read from the file.
func Decode(r io.Reader) (*Config, []state.Agent, error) {
	var f fileLayout
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	cfg, err := f.config()
	if err != nil {
		return nil, nil, err
	}
	start, err := f.start(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, start, nil
}

func (f *fileLayout) config() (*Config, error) {
	if f.Burrow != nil {
		return Burrow(f.Burrow.Rooms, f.Burrow.Depth)
	}

	// The builder allocates per vertex, so bound the count before trusting it.
	if f.Vertices > state.MaxVertices {
		return nil, fmt.Errorf("%w: %w: %d vertices, at most %d", ErrDecode, ErrTooLarge, f.Vertices, state.MaxVertices)
	}
	b := tree.NewBuilder(f.Vertices)
	for i, e := range f.Edges {
		mult := int64(1)
		if e.Multiplier != nil {
			mult = *e.Multiplier
		}
		if err := b.AddEdge(e.From, e.To, mult); err != nil {
			return nil, fmt.Errorf("%w: edge #%d: %w", ErrDecode, i, err)
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	rooms := make([][]int, len(f.Rooms))
	costs := make([]int64, len(f.Rooms))
	names := make([]rune, len(f.Rooms))
	for i, room := range f.Rooms {
		name, size := utf8.DecodeRuneInString(room.Name)
		if size == 0 || size != len(room.Name) {
			return nil, fmt.Errorf("%w: room #%d name %q must be a single character", ErrDecode, i, room.Name)
		}
		rooms[i] = room.Slots
		costs[i] = room.StepCost
		names[i] = name
	}

	return New(g, rooms, costs, WithNames(names...), WithTransit(f.Transit...))
}

func (f *fileLayout) start(cfg *Config) ([]state.Agent, error) {
	if f.Start == nil {
		return nil, nil
	}

	// Map iteration order is random; sort names for a deterministic placement.
	keys := make([]string, 0, len(f.Start))
	for k := range f.Start {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var agents []state.Agent
	for _, k := range keys {
		r, size := utf8.DecodeRuneInString(k)
		kind, ok := cfg.KindOf(r)
		if !ok || size != len(k) {
			return nil, fmt.Errorf("%w: unknown type %q in [start]", ErrDecode, k)
		}
		for _, v := range f.Start[k] {
			if v < 0 || v >= cfg.Order() {
				return nil, fmt.Errorf("%w: start vertex %d out of range", ErrDecode, v)
			}
			agents = append(agents, state.Agent{Kind: kind, Vertex: v})
		}
	}

	return agents, nil
}
