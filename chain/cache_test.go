package chain_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/keypad"
)

func TestCacheLoadOrStore(t *testing.T) {
	c := chain.NewCache()
	_, ok := c.Load(1, keypad.Up, keypad.Left)
	assert.False(t, ok)

	v, loaded := c.LoadOrStore(1, keypad.Up, keypad.Left, 7)
	assert.False(t, loaded)
	assert.Equal(t, uint64(7), v)

	// the first value wins
	v, loaded = c.LoadOrStore(1, keypad.Up, keypad.Left, 9)
	assert.True(t, loaded)
	assert.Equal(t, uint64(7), v)

	v, ok = c.Load(1, keypad.Up, keypad.Left)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), v)

	// level is part of the key
	_, ok = c.Load(2, keypad.Up, keypad.Left)
	assert.False(t, ok)

	assert.Equal(t, chain.CacheStats{Entries: 1, Hits: 1, Misses: 2}, c.Stats())
}

// TestCacheConcurrentStore races many writers on the same keys.
func TestCacheConcurrentStore(t *testing.T) {
	c := chain.NewPartitionedCache(4)
	var wg sync.WaitGroup
	winners := make([]uint64, 32)
	for i := range winners {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := keypad.Up; k <= keypad.Activate; k++ {
				c.LoadOrStore(0, keypad.Activate, k, uint64(k))
			}
			winners[i], _ = c.LoadOrStore(3, keypad.Up, keypad.Down, uint64(i))
		}()
	}
	wg.Wait()

	assert.Equal(t, 6, c.Len())
	for _, w := range winners {
		assert.Equal(t, winners[0], w, "every goroutine sees the first stored value")
	}
}

func TestCacheDump(t *testing.T) {
	c := chain.NewPartitionedCache(0)
	c.LoadOrStore(1, keypad.Left, keypad.Activate, 8)
	c.LoadOrStore(0, keypad.Activate, keypad.Key0, 18)
	c.LoadOrStore(0, keypad.Activate, keypad.Up, 3)
	c.Load(0, keypad.Activate, keypad.Key0)
	c.Load(0, keypad.Activate, keypad.Key0)

	var buf bytes.Buffer
	require.NoError(t, c.Dump(&buf))
	assert.Equal(t, strings.Join([]string{
		"0 A 0 18 2",
		"0 A ^ 3 0",
		"1 < A 8 0",
		"",
	}, "\n"), buf.String())
}

// TestCacheFilledBySolve checks solving populates only robot-operated levels.
func TestCacheFilledBySolve(t *testing.T) {
	c := mustChain(t, 2)
	cache := chain.NewCache()
	_, err := chain.SolveSequence(c, keys(t, "029A"), cache)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cache.Dump(&buf))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.True(t, line[0] == '0' || line[0] == '1', line)
	}
	v, ok := cache.Load(0, keypad.Activate, keypad.Key0)
	require.True(t, ok)
	assert.Equal(t, uint64(18), v)
}
