// Package solver defines the options, results and sentinel errors of the
// burrow search, plus the small value types passed between its stages.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/burrow/state"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilConfig indicates that no layout was supplied.
	ErrNilConfig = errors.New("solver: config is nil")

	// ErrNoAgents indicates an empty initial placement.
	ErrNoAgents = errors.New("solver: initial state has no agents")

	// ErrVertexOutOfRange indicates an agent placed outside the layout.
	ErrVertexOutOfRange = errors.New("solver: agent vertex out of range")

	// ErrUnknownType indicates an agent whose type has no target list.
	ErrUnknownType = errors.New("solver: agent type has no room")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Rule selects which reachable vertices count as legal stops for an agent
// that currently stands on an open vertex. Agents starting in a room follow
// the same rule under both: open vertices or their own settling slot.
type Rule int

const (
	// RuleRoam lets an agent on an open vertex stop on any reachable vertex.
	RuleRoam Rule = iota

	// RuleStrict lets an agent on an open vertex only move straight into its
	// settling slot, so every agent leaves a room at most once.
	RuleStrict
)

// String returns the rule name used in flags and logs.
func (r Rule) String() string {
	switch r {
	case RuleRoam:
		return "roam"
	case RuleStrict:
		return "strict"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule maps "roam" / "strict" to a Rule.
func ParseRule(s string) (Rule, error) {
	switch s {
	case "roam", "":
		return RuleRoam, nil
	case "strict":
		return RuleStrict, nil
	default:
		return 0, fmt.Errorf("%w: unknown rule %q", ErrOptionViolation, s)
	}
}

// Stop is one legal destination of a single move and what it costs.
type Stop struct {
	Vertex int
	Cost   int64
}

// Move records one agent relocation.
type Move struct {
	Agent int   // agent index in the parent State
	Kind  int   // agent type
	From  int   // vertex before the move
	To    int   // vertex after the move
	Cost  int64 // price of this move alone
}

// Successor is a one-move child of a State with its cumulative cost.
type Successor struct {
	State state.State
	Cost  int64
	Move  Move
}

// Result is the outcome of Solve.
//
// Found == false with a nil error is the normal "no solution" answer: the
// frontier ran dry, or Truncated is set because MaxExpansions was reached.
type Result struct {
	// Cost is the minimum total cost; meaningful only when Found.
	Cost int64

	// Found reports whether a fully settled state was reached.
	Found bool

	// Truncated reports that the expansion cap stopped the search early.
	Truncated bool

	// Expanded counts distinct states popped and expanded.
	Expanded int

	// Pushed counts frontier insertions, duplicates included.
	Pushed int

	// Moves is the optimal move sequence, only with WithReturnPath.
	Moves []Move
}

// Options configures Solve.
type Options struct {
	// Ctx allows cancellation; checked every cancelCheckEvery pops.
	Ctx context.Context

	// Rule selects the stop rule for agents on open vertices.
	Rule Rule

	// MaxExpansions caps expanded states; 0 means no cap.
	MaxExpansions int

	// ReturnPath records parents so the optimal move list can be rebuilt.
	ReturnPath bool

	// Logger receives debug progress; nil keeps the search silent.
	Logger *log.Logger

	// OnExpand is called for every expanded state with its final cost.
	OnExpand func(s state.State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option configures Solve via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// DefaultOptions returns the defaults: background context, RuleRoam, no
// expansion cap, no path, no logger, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Rule:          RuleRoam,
		MaxExpansions: 0,
		ReturnPath:    false,
		Logger:        nil,
		OnExpand:      func(state.State, int64) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRule selects the stop rule.
func WithRule(r Rule) Option {
	return func(o *Options) {
		if r != RuleRoam && r != RuleStrict {
			o.err = fmt.Errorf("%w: unknown rule %d", ErrOptionViolation, int(r))
			return
		}
		o.Rule = r
	}
}

// WithMaxExpansions stops the search after n expanded states and reports no
// solution with Truncated set. n == 0 disables the cap; n < 0 is invalid.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithReturnPath makes Result.Moves hold the optimal move sequence.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithLogger routes debug progress to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run for every expanded state.
func WithOnExpand(fn func(s state.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
