package keypad

import "errors"

// Sentinel errors for keypad construction and lookups.
var (
	// ErrTopology indicates a malformed layout: bad size, a coordinate out of
	// bounds, a duplicated key, not exactly one gap, or keys that cannot reach
	// each other without crossing the gap. It is a configuration bug.
	ErrTopology = errors.New("keypad: malformed layout")

	// ErrKeyNotFound indicates a key (or key pair) absent from a keypad.
	ErrKeyNotFound = errors.New("keypad: key not found")

	// ErrInvalidKey indicates a character or value that names no Key.
	ErrInvalidKey = errors.New("keypad: invalid key")

	// ErrNotDirection indicates a non-direction key used as a move.
	ErrNotDirection = errors.New("keypad: key is not a direction")

	// ErrBlocked indicates a move that leaves the grid or lands on the gap.
	ErrBlocked = errors.New("keypad: move leaves the keypad")
)
