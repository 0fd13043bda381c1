// Package layout assembles puzzle variants: a tree.Graph, one ordered target
// list ("room") per agent type, and one step cost per type.
//
// A Config is built once per variant and handed to the solver unchanged. The
// solver never constructs or mutates layouts; the same search runs on every
// variant, whatever its size, room depth or number of types.
//
// Vertex classes:
//
//   - room slots: listed in exactly one target list, ordered entrance → back.
//   - transit:    pass-through only (the cell in front of a room door).
//   - open:       everything else; any agent may park there.
//
// Ready-made variants:
//
//	layout.Small()         // 4 rooms × 2 slots, 19 vertices
//	layout.Deep()          // 4 rooms × 4 slots, 27 vertices
//	layout.Burrow(r, d)    // r rooms × d slots
//
// Free-form layouts are read from TOML with Load/Decode; see fileLayout for
// the format. Every constructor validates its input, including tree-ness of
// the graph, and reports failures with the sentinel errors in types.go.
package layout
