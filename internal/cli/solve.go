package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/burrow/layout"
	"github.com/katalvlaran/burrow/parse"
	"github.com/katalvlaran/burrow/render"
	"github.com/katalvlaran/burrow/solver"
	"github.com/katalvlaran/burrow/state"
)

// errNoInput is returned when neither a diagram nor --layout is given.
var errNoInput = errors.New("give a diagram file (or - for stdin) or --layout")

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	layoutPath    string
	unfold        bool
	rule          string
	strict        bool
	maxExpansions int
	steps         bool
	color         bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [diagram]",
		Short: "Print the least total energy needed to organize the burrow",
		Example: `  burrow solve input.txt
  burrow solve --unfold --steps input.txt
  burrow solve --rule strict input.txt
  burrow solve --layout custom.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.layoutPath, "layout", "", "read a TOML layout with a [start] table instead of a diagram")
	cmd.Flags().BoolVar(&opts.unfold, "unfold", false, "insert the two hidden rows of the deep burrow")
	cmd.Flags().StringVar(&opts.rule, "rule", "", "move rule, roam or strict (default roam, strict with --unfold)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "shorthand for --rule strict")
	cmd.Flags().IntVar(&opts.maxExpansions, "max-expansions", 0, "stop after this many expanded states (0 = no limit)")
	cmd.Flags().BoolVar(&opts.steps, "steps", false, "print the optimal moves one by one")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colour the diagrams")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, start, err := loadPuzzle(cmd, args, opts.layoutPath, opts.unfold)
	if err != nil {
		return err
	}
	logger.Debug("puzzle loaded", "vertices", cfg.Order(), "types", cfg.Kinds(), "agents", start.Len())

	rule, err := opts.moveRule(logger)
	if err != nil {
		return err
	}
	solveOptions := []solver.Option{
		solver.WithContext(ctx),
		solver.WithRule(rule),
		solver.WithMaxExpansions(opts.maxExpansions),
		solver.WithLogger(logger),
	}
	if opts.steps {
		solveOptions = append(solveOptions, solver.WithReturnPath())
	}

	prog := newProgress(logger)
	res, err := solver.Solve(cfg, start, solveOptions...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Searched %d states", res.Expanded))

	out := cmd.OutOrStdout()
	switch {
	case res.Found:
		printSuccess(out, "least energy %s", styleNumber.Render(strconv.FormatInt(res.Cost, 10)))
	case res.Truncated:
		printWarning(out, "no solution within %d expansions", opts.maxExpansions)
	default:
		printWarning(out, "no solution")
	}
	printKeyValue(out, "rule", rule.String())
	printKeyValue(out, "expanded", strconv.Itoa(res.Expanded))
	printKeyValue(out, "pushed", strconv.Itoa(res.Pushed))

	if opts.steps && res.Found {
		fmt.Fprintln(out)
		fmt.Fprint(out, render.Steps(cfg, start, res.Moves, renderOptions(opts.color)...))
	}

	return nil
}

// moveRule picks the search rule from --rule and --strict. Without either,
// the deep burrow gets the strict rule: its roam search space does not fit
// in memory.
func (o solveOpts) moveRule(logger *log.Logger) (solver.Rule, error) {
	if o.strict && o.rule != "" && o.rule != "strict" {
		return 0, fmt.Errorf("--strict conflicts with --rule %s", o.rule)
	}
	switch {
	case o.strict:
		return solver.RuleStrict, nil
	case o.rule != "":
		rule, err := solver.ParseRule(o.rule)
		if err == nil && rule == solver.RuleRoam && o.unfold {
			logger.Warn("roam rule on the deep burrow may exhaust memory")
		}
		return rule, err
	case o.unfold:
		logger.Info("Using the strict rule for the deep burrow", "override", "--rule roam")
		return solver.RuleStrict, nil
	}

	return solver.RuleRoam, nil
}

// loadPuzzle reads either a TOML layout (layoutPath) or a diagram named by
// args[0], where "-" means standard input.
func loadPuzzle(cmd *cobra.Command, args []string, layoutPath string, unfold bool) (*layout.Config, state.State, error) {
	if layoutPath != "" {
		if len(args) > 0 || unfold {
			return nil, state.State{}, fmt.Errorf("--layout cannot be combined with a diagram or --unfold")
		}
		cfg, agents, err := layout.Load(layoutPath)
		if err != nil {
			return nil, state.State{}, err
		}
		if len(agents) == 0 {
			return nil, state.State{}, fmt.Errorf("%s: layout has no [start] placement", layoutPath)
		}
		start, err := state.New(agents)
		if err != nil {
			return nil, state.State{}, err
		}
		return cfg, start, nil
	}

	if len(args) == 0 {
		return nil, state.State{}, errNoInput
	}

	var r io.Reader
	if args[0] == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, state.State{}, err
		}
		defer f.Close()
		r = f
	}

	var popts []parse.Option
	if unfold {
		popts = append(popts, parse.WithUnfold())
	}
	p, err := parse.Diagram(r, popts...)
	if err != nil {
		return nil, state.State{}, err
	}

	return p.Config, p.Start, nil
}

func renderOptions(color bool) []render.Option {
	if color {
		return []render.Option{render.WithColor()}
	}
	return nil
}
