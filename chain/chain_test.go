package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/keypad"
)

func TestAssemble(t *testing.T) {
	num, dir := keypad.Numeric(), keypad.Directional()
	for _, n := range []int{0, 1, 2, 25} {
		c, err := chain.Assemble(num, dir, n)
		require.NoError(t, err)
		assert.Equal(t, n+2, c.Len())
		assert.Equal(t, n+1, c.Human())

		l0, err := c.Level(0)
		require.NoError(t, err)
		assert.Same(t, num, l0)
		for i := 1; i < c.Len(); i++ {
			li, err := c.Level(i)
			require.NoError(t, err)
			assert.Same(t, dir, li)
		}
	}

	_, err := chain.Assemble(num, dir, -1)
	require.ErrorIs(t, err, chain.ErrLevel)
	_, err = chain.Assemble(nil, dir, 0)
	require.ErrorIs(t, err, chain.ErrNilChain)
	_, err = chain.Assemble(num, nil, 0)
	require.ErrorIs(t, err, chain.ErrNilChain)
}

func TestNew(t *testing.T) {
	c, err := chain.New(keypad.Numeric())
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.Human())

	_, err = c.Level(1)
	require.ErrorIs(t, err, chain.ErrLevel)
	_, err = c.Level(-1)
	require.ErrorIs(t, err, chain.ErrLevel)

	_, err = chain.New()
	require.ErrorIs(t, err, chain.ErrLevel)
	_, err = chain.New(keypad.Numeric(), nil)
	require.ErrorIs(t, err, chain.ErrNilChain)
}

// TestNewCopiesLevels checks the chain does not alias the caller's slice.
func TestNewCopiesLevels(t *testing.T) {
	levels := []*keypad.Topology{keypad.Numeric(), keypad.Directional()}
	c, err := chain.New(levels...)
	require.NoError(t, err)
	levels[1] = keypad.Numeric()

	l1, err := c.Level(1)
	require.NoError(t, err)
	assert.Same(t, keypad.Directional(), l1)
}
