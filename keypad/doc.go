// Package keypad models small fixed keypads and the shortest ways a
// pointer can travel between their keys.
//
// A keypad is a rectangular grid with exactly one gap. Build turns a
// Layout into a Topology whose route table holds, for every ordered pair
// of keys, every shortest Route: the direction presses that move a
// pointer from one key to the other without entering the gap, followed
// by Activate. Tied routes are all kept, zigzags included, in key order.
//
// Two layouts are built in:
//
//	Numeric():      Directional():
//	  7 8 9           _ ^ A
//	  4 5 6           < v >
//	  1 2 3
//	  _ 0 A
//
// Errors:
//
//   - ErrTopology: malformed layout (configuration bug, fatal).
//   - ErrKeyNotFound: key or key pair not on the pad.
//   - ErrInvalidKey: unknown key character or value.
//   - ErrNotDirection, ErrBlocked: invalid pointer moves in Move/Walk.
package keypad
