package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/keypad"
)

// exampleCodes are the sample door codes with their press counts behind
// two intermediate robots.
var exampleCodes = []struct {
	code    string
	value   uint64
	presses uint64
}{
	{"029A", 29, 68},
	{"980A", 980, 60},
	{"179A", 179, 68},
	{"456A", 456, 64},
	{"379A", 379, 64},
}

func keys(t testing.TB, s string) []keypad.Key {
	t.Helper()
	r, err := keypad.ParseRoute(s)
	require.NoError(t, err)
	return r
}

func mustChain(t testing.TB, intermediate int) *chain.Chain {
	t.Helper()
	c, err := chain.Default(intermediate)
	require.NoError(t, err)
	return c
}
