package chain

import "errors"

// Sentinel errors for chain assembly and resolution.
var (
	// ErrNilChain is returned when a nil *Chain, or a chain with a nil
	// level, is supplied.
	ErrNilChain = errors.New("chain: nil chain or keypad")

	// ErrLevel is returned for a level index outside the chain or a
	// negative intermediate robot count.
	ErrLevel = errors.New("chain: level out of range")

	// ErrCacheMismatch is returned when a Cache bound to one chain is
	// used with another.
	ErrCacheMismatch = errors.New("chain: cache belongs to another chain")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chain: invalid option supplied")

	// ErrOverflow is returned when a press count does not fit in uint64.
	ErrOverflow = errors.New("chain: press count overflows uint64")
)
