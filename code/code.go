// Package code reads door codes and scores them.
//
// A door code is a line of digits and the Activate key, e.g. "029A". Its
// value is the number formed by its digit keys in order (29), and its
// complexity is the human press count multiplied by that value.
package code

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/keychain/keypad"
)

// ErrParse indicates a code line that is empty or holds keys other than
// digits and A.
var ErrParse = errors.New("code: invalid door code")

// Code is one parsed door code.
type Code struct {
	Text string       // trimmed source text
	Keys []keypad.Key // keys to emit on the door pad
	Line int          // 1-based input line, 0 when not read from input
}

// Parse reads a single code. Surrounding whitespace is ignored.
func Parse(line string) (Code, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return Code{}, fmt.Errorf("%w: empty", ErrParse)
	}
	keys := make([]keypad.Key, 0, len(text))
	for i, r := range text {
		k, err := keypad.ParseKey(r)
		if err != nil || !(k.IsDigit() || k == keypad.Activate) {
			return Code{}, fmt.Errorf("%w: %q at offset %d", ErrParse, r, i)
		}
		keys = append(keys, k)
	}
	return Code{Text: text, Keys: keys}, nil
}

// ParseAll reads one code per line, skipping blank lines.
func ParseAll(r io.Reader) ([]Code, error) {
	var codes []Code
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		c, err := Parse(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		c.Line = n
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// Keys returns the key slices of codes, index-aligned.
func Keys(codes []Code) [][]keypad.Key {
	out := make([][]keypad.Key, len(codes))
	for i, c := range codes {
		out[i] = c.Keys
	}
	return out
}

// Number folds the digit keys of keys into a base-10 number of type T,
// ignoring every other key. Overflow wraps as T arithmetic does.
func Number[T constraints.Integer](keys []keypad.Key) T {
	var n T
	for _, k := range keys {
		if d, ok := k.Digit(); ok {
			n = n*10 + T(d)
		}
	}
	return n
}

// Value returns the numeric part of the code.
func (c Code) Value() uint64 { return Number[uint64](c.Keys) }

// Complexity returns presses × Value.
func (c Code) Complexity(presses uint64) uint64 { return presses * c.Value() }

// String returns the code text.
func (c Code) String() string { return c.Text }
