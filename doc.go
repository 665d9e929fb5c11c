// Package keychain counts button presses through chains of keypads.
//
// 🚀 What is keychain?
//
//	A door opens with a code typed on a numeric keypad. A robot types it,
//	steered from a directional keypad that another robot operates, and so
//	on up to the directional keypad a human presses. keychain finds the
//	fewest human presses for any code and any number of robots:
//		• Keypad topologies: every tied shortest route between two keys
//		• Chains: numeric pad, robot pads, human pad
//		• Memoized resolution: counts, never literal press strings
//		• Batch solving on a worker pool with a shared cache
//		• Press materialization and simulation for shallow chains
//
// Packages:
//
//	bfs/        breadth-first search keeping all tied shortest-path parents
//	gridgraph/  a rectangular grid of cells as a graph, gap cells as water
//	keypad/     keys, layouts, route tables, the two fixed pads
//	chain/      chains, cache, Resolve, SolveSequence, SolveAll, Simulate
//	code/       door code parsing and complexity scoring
//	config/     TOML configuration
//
// Quick ASCII example:
//
//	+---+---+---+        +---+---+
//	| 7 | 8 | 9 |        | ^ | A |
//	+---+---+---+    +---+---+---+
//	| 4 | 5 | 6 |    | < | v | > |
//	+---+---+---+    +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
//	029A behind two robots takes 68 human presses.
//
//	go install github.com/katalvlaran/keychain/cmd/keychain@latest
package keychain
