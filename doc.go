// Package burrow solves the amphipod burrow: move typed agents around a
// weighted tree until every side room holds only its own type, paying the
// least total energy.
//
// What is in here?
//
//	tree/    - weighted trees: build with cycle checks, walk, path costs
//	layout/  - puzzle variants: rooms, step costs, transit cells, TOML files
//	state/   - fixed-size agent placements usable as map keys
//	solver/  - settlement rules, reachability, successors, uniform-cost search
//	parse/   - burrow diagrams in, Puzzle out (with the deep "unfold")
//	render/  - diagrams, agent lists and move-by-move walkthroughs
//	cmd/burrow, internal/cli - the command-line front end
//
// Quick tour:
//
//	p, _ := parse.Diagram(f)
//	res, _ := solver.Solve(p.Config, p.Start)
//	fmt.Println(res.Cost) // 12521 for the classic example
//
// The classic burrow, with its doorway cells marked d:
//
//	#############
//	#..d.d.d.d..#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Agents may never stop on a doorway. The same solver runs on any layout
// that fits in 64 vertices, whatever the number of rooms or their depth.
//
//	go install github.com/katalvlaran/burrow/cmd/burrow@latest
package burrow
