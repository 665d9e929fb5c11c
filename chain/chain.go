package chain

import (
	"fmt"

	"github.com/katalvlaran/keychain/keypad"
)

// Chain is an ordered, immutable list of keypads. Level 0 is the door
// keypad whose output is the code; the last level is the keypad the human
// touches. Every other level is operated by a robot whose arm is steered
// from the level above it.
type Chain struct {
	levels []*keypad.Topology
}

// New builds a chain from explicit levels, outermost (door) first.
// Returns ErrLevel for an empty list and ErrNilChain for a nil level.
func New(levels ...*keypad.Topology) (*Chain, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrLevel)
	}
	for i, l := range levels {
		if l == nil {
			return nil, fmt.Errorf("%w: level %d", ErrNilChain, i)
		}
	}
	return &Chain{levels: append([]*keypad.Topology(nil), levels...)}, nil
}

// Assemble returns [numeric, directional × (intermediate+1)]: the door
// pad, intermediate robot-operated directional pads, and the human's
// directional pad.
func Assemble(numeric, directional *keypad.Topology, intermediate int) (*Chain, error) {
	if intermediate < 0 {
		return nil, fmt.Errorf("%w: %d intermediate robots", ErrLevel, intermediate)
	}
	levels := make([]*keypad.Topology, 0, intermediate+2)
	levels = append(levels, numeric)
	for i := 0; i <= intermediate; i++ {
		levels = append(levels, directional)
	}
	return New(levels...)
}

// Default assembles the standard door chain with the built-in pads.
func Default(intermediate int) (*Chain, error) {
	return Assemble(keypad.Numeric(), keypad.Directional(), intermediate)
}

// Len returns the number of levels.
func (c *Chain) Len() int { return len(c.levels) }

// Human returns the index of the level the human presses directly.
func (c *Chain) Human() int { return len(c.levels) - 1 }

// Level returns the keypad at index i.
func (c *Chain) Level(i int) (*keypad.Topology, error) {
	if i < 0 || i >= len(c.levels) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrLevel, i, len(c.levels))
	}
	return c.levels[i], nil
}
