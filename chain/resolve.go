package chain

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/keychain/keypad"
)

// Resolve returns the minimal number of human presses needed to move the
// pointer at level from → to and press to.
//
// At the human level every press costs one. Directly below it the cost is
// the shortest route length. Above that each tied route is typed on the
// next level starting from Activate (every robot rests on Activate after
// pressing) and the cheapest is kept in cache. A nil cache gets a private
// one for this call.
//
// Errors: ErrNilChain, ErrLevel, ErrCacheMismatch, ErrOverflow and
// keypad.ErrKeyNotFound when a key is absent from the pad it is typed on.
//
// Complexity: O(L·K²·R·P) for L levels, K keys per pad, R tied routes per
// pair (up to 10 on the numeric pad) and P presses per route; each
// (level, from, to) is computed once.
func Resolve(c *Chain, level int, from, to keypad.Key, cache *Cache) (uint64, error) {
	if c == nil {
		return 0, ErrNilChain
	}
	if level < 0 || level >= c.Len() {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrLevel, level, c.Len())
	}
	if cache == nil {
		cache = NewCache()
	}
	if err := cache.bind(c); err != nil {
		return 0, err
	}
	return c.resolve(level, from, to, cache)
}

// SolveSequence returns the minimal human press count that makes the door
// keypad emit keys, starting with its pointer on Activate.
func SolveSequence(c *Chain, keys []keypad.Key, cache *Cache) (uint64, error) {
	if c == nil {
		return 0, ErrNilChain
	}
	if cache == nil {
		cache = NewCache()
	}
	if err := cache.bind(c); err != nil {
		return 0, err
	}
	return c.sequence(0, keys, cache)
}

func (c *Chain) resolve(level int, from, to keypad.Key, cache *Cache) (uint64, error) {
	pad := c.levels[level]
	switch human := c.Human(); {
	case level == human:
		if !pad.Has(from) || !pad.Has(to) {
			return 0, fmt.Errorf("%w: %v→%v at level %d", keypad.ErrKeyNotFound, from, to, level)
		}
		return 1, nil
	case level+1 == human:
		// every tied route costs its length here; typing one checks the
		// human pad holds its keys
		routes, err := pad.Routes(from, to)
		if err != nil {
			return 0, fmt.Errorf("level %d: %w", level, err)
		}
		return c.sequence(human, routes[0], cache)
	}

	if v, ok := cache.Load(level, from, to); ok {
		return v, nil
	}
	routes, err := pad.Routes(from, to)
	if err != nil {
		return 0, fmt.Errorf("level %d: %w", level, err)
	}
	best := uint64(math.MaxUint64)
	for _, r := range routes {
		cost, err := c.sequence(level+1, r, cache)
		if err != nil {
			return 0, err
		}
		best = min(best, cost)
	}
	v, _ := cache.LoadOrStore(level, from, to, best)
	return v, nil
}

// sequence types keys at level, starting from Activate.
func (c *Chain) sequence(level int, keys []keypad.Key, cache *Cache) (uint64, error) {
	var total uint64
	prev := keypad.Activate
	for _, k := range keys {
		n, err := c.resolve(level, prev, k, cache)
		if err != nil {
			return 0, err
		}
		var carry uint64
		if total, carry = bits.Add64(total, n, 0); carry != 0 {
			return 0, fmt.Errorf("%w: level %d", ErrOverflow, level)
		}
		prev = k
	}
	return total, nil
}
