package keypad

import (
	"fmt"
	"strings"
)

// Key is a single keypad button: a digit 0–9 or a directional action.
// Keys are small comparable values and can be used as map keys or
// array indices (0 ≤ k < NumKeys).
type Key uint8

// Digit keys occupy 0–9 so that Key(d) is the digit d.
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Up
	Down
	Left
	Right
	Activate
	numKeys
)

// NumKeys is the size of the Key vocabulary.
const NumKeys = int(numKeys)

var keyRunes = [NumKeys]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '^', 'v', '<', '>', 'A'}

// Digit returns the key for digit d (0–9).
func Digit(d int) (Key, error) {
	if d < 0 || d > 9 {
		return 0, fmt.Errorf("%w: digit %d", ErrInvalidKey, d)
	}
	return Key(d), nil
}

// ParseKey maps a character to its Key: 0–9, ^ v < > and A.
func ParseKey(r rune) (Key, error) {
	for k, kr := range keyRunes {
		if kr == r {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKey, r)
}

// Valid reports whether k is part of the Key vocabulary.
func (k Key) Valid() bool { return k < numKeys }

// IsDigit reports whether k is one of Key0..Key9.
func (k Key) IsDigit() bool { return k <= Key9 }

// IsDirection reports whether k is Up, Down, Left or Right.
func (k Key) IsDirection() bool { return k >= Up && k <= Right }

// Digit returns the digit value of a digit key.
func (k Key) Digit() (int, bool) {
	if !k.IsDigit() {
		return 0, false
	}
	return int(k), true
}

// Delta returns the grid offset a direction key moves the pointer by.
// Y grows downwards.
func (k Key) Delta() (dx, dy int, ok bool) {
	switch k {
	case Up:
		return 0, -1, true
	case Down:
		return 0, 1, true
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	}
	return 0, 0, false
}

// Direction returns the direction key for a unit offset.
func Direction(dx, dy int) (Key, bool) {
	for _, k := range [...]Key{Up, Down, Left, Right} {
		if kx, ky, _ := k.Delta(); kx == dx && ky == dy {
			return k, true
		}
	}
	return 0, false
}

// String renders the key as it appears on a keypad.
func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return string(keyRunes[k])
}

// Coordinate is a grid position; X grows rightwards and Y downwards.
type Coordinate struct {
	X, Y int
}

// Route is a sequence of keys typed on the next keypad out: direction
// moves followed by a final Activate. len(Route) is its press count.
type Route []Key

// String renders the route as a compact string, e.g. "<^A".
func (r Route) String() string {
	var b strings.Builder
	for _, k := range r {
		b.WriteString(k.String())
	}
	return b.String()
}

// Turns counts how often consecutive moves change direction.
func (r Route) Turns() int {
	n := 0
	for i := 1; i < len(r); i++ {
		if r[i].IsDirection() && r[i-1].IsDirection() && r[i] != r[i-1] {
			n++
		}
	}
	return n
}

// ParseRoute reads a string of key characters into a Route.
func ParseRoute(s string) (Route, error) {
	r := make(Route, 0, len(s))
	for _, c := range s {
		k, err := ParseKey(c)
		if err != nil {
			return nil, err
		}
		r = append(r, k)
	}
	return r, nil
}
