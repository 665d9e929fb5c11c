// Package chain resolves press counts through a chain of keypads.
//
// A door keypad is operated by a robot arm, which is steered from a
// directional keypad operated by another robot, and so on up to the
// directional keypad a human presses. Every arm rests on Activate after
// it presses a key, so moving one arm from → to and pressing costs the
// presses needed on the level above to type a route from the topology's
// tie set, starting from Activate.
//
// What:
//
//   - Chain: the ordered keypads; Assemble builds the standard
//     [numeric, directional × (robots+1)] chain.
//   - Resolve / SolveSequence: memoized minimal press counts.
//   - SolveAll: many codes on a worker pool sharing one Cache.
//   - Presses / Simulate: materialize an optimal press sequence for shallow
//     chains and replay presses through the chain.
//
// Why:
//
//	The literal press sequence grows exponentially with depth, while the
//	number of distinct (level, from, to) movements is tiny. Counting
//	through a cache keeps 25 robots well under a millisecond.
//
// Complexity:
//
//	Resolve fills at most L·K² cache entries (L levels, K keys per pad),
//	each costing O(R·P) for R tied routes of P presses.
//
// Errors:
//
//   - ErrNilChain, ErrLevel: bad chain or level arguments.
//   - ErrCacheMismatch: a Cache reused with a different Chain.
//   - ErrOptionViolation: invalid SolveAll option.
//   - ErrOverflow: the count exceeds uint64 (around 45 robots).
//   - keypad.ErrKeyNotFound, keypad.ErrBlocked, keypad.ErrNotDirection:
//     keys or moves a keypad cannot serve.
package chain
