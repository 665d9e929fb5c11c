package chain

import (
	"fmt"

	"github.com/katalvlaran/keychain/keypad"
)

// Presses returns one optimal sequence of human presses that makes the
// door keypad emit keys. Its length equals SolveSequence. At every level
// the tied route of least resolved cost is chosen, the first in route
// order on equal cost.
//
// The result grows exponentially with chain depth; use it for shallow
// chains only and SolveSequence for counting.
func Presses(c *Chain, keys []keypad.Key, cache *Cache) ([]keypad.Key, error) {
	if c == nil {
		return nil, ErrNilChain
	}
	if cache == nil {
		cache = NewCache()
	}
	if err := cache.bind(c); err != nil {
		return nil, err
	}
	var out []keypad.Key
	if err := c.expand(0, keys, cache, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Chain) expand(level int, keys []keypad.Key, cache *Cache, out *[]keypad.Key) error {
	pad := c.levels[level]
	if level == c.Human() {
		for _, k := range keys {
			if !pad.Has(k) {
				return fmt.Errorf("%w: %v at level %d", keypad.ErrKeyNotFound, k, level)
			}
		}
		*out = append(*out, keys...)
		return nil
	}
	prev := keypad.Activate
	for _, k := range keys {
		routes, err := pad.Routes(prev, k)
		if err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		best, bestCost := 0, uint64(0)
		for i, r := range routes {
			cost, err := c.sequence(level+1, r, cache)
			if err != nil {
				return err
			}
			if i == 0 || cost < bestCost {
				best, bestCost = i, cost
			}
		}
		if err := c.expand(level+1, routes[best], cache, out); err != nil {
			return err
		}
		prev = k
	}
	return nil
}

// Simulate drives the chain with human presses and returns the keys
// pressed on the door keypad.
//
// Every robot arm starts over Activate. A direction press moves the arm
// one level down; Activate presses the key under it, which is then
// applied to the next level the same way. Keys reaching level 0 are
// emitted.
//
// Errors: keypad.ErrKeyNotFound for a press absent from the human pad,
// keypad.ErrBlocked when an arm would leave its pad or stop over the gap,
// keypad.ErrNotDirection when a digit reaches a robot as a command.
func Simulate(c *Chain, presses []keypad.Key) ([]keypad.Key, error) {
	if c == nil {
		return nil, ErrNilChain
	}
	human := c.Human()
	arms := make([]keypad.Coordinate, human)
	for l := range arms {
		pos, ok := c.levels[l].Coordinate(keypad.Activate)
		if !ok {
			return nil, fmt.Errorf("%w: no %v at level %d", keypad.ErrKeyNotFound, keypad.Activate, l)
		}
		arms[l] = pos
	}

	var out []keypad.Key
	for i, k := range presses {
		if !c.levels[human].Has(k) {
			return nil, fmt.Errorf("press %d: %w: %v", i, keypad.ErrKeyNotFound, k)
		}
		for level := human; ; level-- {
			if level == 0 {
				out = append(out, k)
				break
			}
			arm := level - 1
			if k != keypad.Activate {
				next, err := c.levels[arm].Move(arms[arm], k)
				if err != nil {
					return nil, fmt.Errorf("press %d, level %d: %w", i, arm, err)
				}
				arms[arm] = next
				break
			}
			k, _ = c.levels[arm].KeyAt(arms[arm])
		}
	}
	return out, nil
}
