// Package render draws burrow placements and solution walkthroughs as text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/solver"
	"github.com/katalvlaran/burrow/state"
)

// palette holds one colour per agent type, reused cyclically.
var palette = []lipgloss.Color{
	lipgloss.Color("220"), // amber
	lipgloss.Color("172"), // bronze
	lipgloss.Color("166"), // copper
	lipgloss.Color("180"), // desert
	lipgloss.Color("36"),
	lipgloss.Color("75"),
	lipgloss.Color("35"),
	lipgloss.Color("167"),
}

var (
	styleWall = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleCost = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

// Options configures rendering.
type Options struct {
	// Color paints agents and walls with lipgloss styles.
	Color bool
}

// Option configures rendering via functional arguments.
type Option func(*Options)

// WithColor enables lipgloss colouring.
func WithColor() Option {
	return func(o *Options) { o.Color = true }
}

func options(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Diagram redraws s in the burrow diagram format that parse.Diagram reads.
// Layouts without a Geometry fall back to List.
func Diagram(cfg *layout.Config, s state.State, opts ...Option) string {
	geo := cfg.Geometry()
	if geo == nil {
		return List(cfg, s, opts...)
	}
	o := options(opts)
	b := s.Board()
	p := painter{cfg: cfg, board: &b, color: o.Color}

	width := geo.Width() + 2
	var sb strings.Builder

	sb.WriteString(p.wall(strings.Repeat("#", width)))
	sb.WriteByte('\n')

	sb.WriteString(p.wall("#"))
	for _, v := range geo.Hallway {
		sb.WriteString(p.cell(v))
	}
	sb.WriteString(p.wall("#"))
	sb.WriteByte('\n')

	for depth := 0; depth < geo.Depth; depth++ {
		for i := 0; i < width; i++ {
			col := i - 1
			switch {
			case col >= 0 && col < geo.Width() && geo.IsDoorColumn(col):
				sb.WriteString(p.cell(cfg.Room(col/2 - 1)[depth]))
			case depth == 0 || (i >= 2 && i < width-2):
				sb.WriteString(p.wall("#"))
			case i < 2:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	sb.WriteString(p.wall(strings.Repeat("#", width-4)))
	sb.WriteByte('\n')

	return sb.String()
}

// List writes s as "A@8 A@14 B@7 …" using the layout's type names.
func List(cfg *layout.Config, s state.State, opts ...Option) string {
	o := options(opts)
	b := s.Board()
	p := painter{cfg: cfg, board: &b, color: o.Color}

	parts := make([]string, 0, s.Len())
	for _, a := range s.Agents() {
		parts = append(parts, fmt.Sprintf("%s@%d", p.cell(a.Vertex), a.Vertex))
	}

	return strings.Join(parts, " ") + "\n"
}

// Steps renders a solution walkthrough: the start, then every move with its
// price and the running total, each followed by the resulting placement.
func Steps(cfg *layout.Config, start state.State, moves []solver.Move, opts ...Option) string {
	o := options(opts)
	var sb strings.Builder

	sb.WriteString("start\n")
	sb.WriteString(Diagram(cfg, start, opts...))

	s := start
	var total int64
	for i, m := range moves {
		total += m.Cost
		s = s.Move(m.Agent, m.To)

		line := fmt.Sprintf("step %d: %c %d → %d  cost %d  total %d", i+1, cfg.Name(m.Kind), m.From, m.To, m.Cost, total)
		if o.Color {
			line = styleCost.Render(line)
		}
		sb.WriteByte('\n')
		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(Diagram(cfg, s, opts...))
	}

	return sb.String()
}

type painter struct {
	cfg   *layout.Config
	board *state.Board
	color bool
}

func (p painter) cell(v int) string {
	kind, ok := p.board.At(v)
	if !ok {
		return "."
	}
	name := string(p.cfg.Name(kind))
	if !p.color {
		return name
	}

	return lipgloss.NewStyle().Bold(true).Foreground(palette[kind%len(palette)]).Render(name)
}

func (p painter) wall(s string) string {
	if !p.color {
		return s
	}

	return styleWall.Render(s)
}
