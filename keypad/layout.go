package keypad

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// Gap characters accepted by ParseLayout.
const (
	gapRune   = '_'
	spaceRune = ' '
)

// Fixed layouts of the two keypads in the control chain.
var (
	// NumericRows is the door keypad:
	//
	//	7 8 9
	//	4 5 6
	//	1 2 3
	//	_ 0 A
	NumericRows = []string{"789", "456", "123", "_0A"}

	// DirectionalRows is the robot keypad:
	//
	//	_ ^ A
	//	< v >
	DirectionalRows = []string{"_^A", "<v>"}
)

// Layout is the raw description of a keypad: its bounding rectangle and
// the key at every occupied coordinate.
type Layout struct {
	Width, Height int
	Keys          map[Coordinate]Key
}

// ParseLayout reads one string per grid row. Each character is a key
// (0–9 ^ v < > A) or the gap ('_' or space). Rows must have equal length.
// Duplicate keys and gap counts are checked later by Build.
func ParseLayout(rows ...string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, fmt.Errorf("%w: no rows", ErrTopology)
	}
	l := Layout{
		Width:  utf8.RuneCountInString(rows[0]),
		Height: len(rows),
		Keys:   make(map[Coordinate]Key),
	}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != l.Width {
			return Layout{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrTopology, y, n, l.Width)
		}
		x := 0
		for _, r := range row {
			if r != gapRune && r != spaceRune {
				k, err := ParseKey(r)
				if err != nil {
					return Layout{}, fmt.Errorf("%w: row %d: %v", ErrTopology, y, err)
				}
				l.Keys[Coordinate{X: x, Y: y}] = k
			}
			x++
		}
	}
	return l, nil
}

// MustBuild parses rows and builds the topology, panicking on error.
// Intended for fixed layouts compiled into the program.
func MustBuild(rows ...string) *Topology {
	l, err := ParseLayout(rows...)
	if err != nil {
		panic(err)
	}
	t, err := Build(l)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	numeric     = sync.OnceValue(func() *Topology { return MustBuild(NumericRows...) })
	directional = sync.OnceValue(func() *Topology { return MustBuild(DirectionalRows...) })
)

// Numeric returns the shared numeric keypad topology.
func Numeric() *Topology { return numeric() }

// Directional returns the shared directional keypad topology.
func Directional() *Topology { return directional() }
