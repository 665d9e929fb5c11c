package keypad

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/keychain/bfs"
	"github.com/katalvlaran/keychain/gridgraph"
)

// Topology is an immutable keypad: which key sits where, and for every
// ordered key pair the full tie set of shortest Routes between them.
// All methods are safe for concurrent use.
type Topology struct {
	grid     *gridgraph.GridGraph
	keys     []Key        // sorted keys present on the pad
	cells    [NumKeys]int // key → row-major cell index, -1 when absent
	routes   [NumKeys][NumKeys][]Route
	shortest [NumKeys][NumKeys]int
}

// Build validates layout and computes its route table.
//
// For every ordered pair of keys it runs a breadth-first search over the
// 4-connected grid (the gap is never entered), keeps every shortest path,
// turns each into direction moves and appends Activate. A key paired with
// itself has the single route [Activate]. All tied routes are kept, sorted
// by key order.
//
// Returns ErrTopology for a non-positive size, coordinates out of bounds,
// invalid or duplicated keys, a gap count other than one, a disconnected
// layout, or any pair left without a route.
func Build(layout Layout) (*Topology, error) {
	w, h := layout.Width, layout.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %d×%d", ErrTopology, w, h)
	}
	if gaps := w*h - len(layout.Keys); gaps != 1 {
		return nil, fmt.Errorf("%w: %d gaps, want exactly 1", ErrTopology, gaps)
	}

	t := &Topology{}
	for i := range t.cells {
		t.cells[i] = -1
	}
	// land value key+1 keeps the gap at 0 (water)
	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
	}
	for c, k := range layout.Keys {
		if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
			return nil, fmt.Errorf("%w: %v at (%d,%d) outside %d×%d", ErrTopology, k, c.X, c.Y, w, h)
		}
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrTopology, k, c.X, c.Y)
		}
		if t.cells[k] >= 0 {
			return nil, fmt.Errorf("%w: duplicate key %v", ErrTopology, k)
		}
		t.cells[k] = c.Y*w + c.X
		values[c.Y][c.X] = int(k) + 1
		t.keys = append(t.keys, k)
	}
	slices.Sort(t.keys)

	grid, err := gridgraph.From2D(values, gridgraph.Conn4)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTopology, err)
	}
	if n := len(grid.ConnectedComponents()); n != 1 {
		return nil, fmt.Errorf("%w: keys form %d disconnected regions", ErrTopology, n)
	}
	t.grid = grid

	for _, from := range t.keys {
		if err := t.buildRoutesFrom(from); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// buildRoutesFrom fills the route table row of from.
func (t *Topology) buildRoutesFrom(from Key) error {
	res, err := bfs.BFS(t.grid, t.cells[from])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTopology, err)
	}
	for _, to := range t.keys {
		if to == from {
			t.setRoutes(from, to, []Route{{Activate}})
			continue
		}
		paths, err := res.PathsTo(t.cells[to])
		if err != nil {
			return fmt.Errorf("%w: no route %v→%v: %v", ErrTopology, from, to, err)
		}
		routes := make([]Route, 0, len(paths))
		for _, p := range paths {
			r, err := t.pathRoute(p)
			if err != nil {
				return err
			}
			routes = append(routes, r)
		}
		slices.SortFunc(routes, func(a, b Route) int { return slices.Compare(a, b) })
		t.setRoutes(from, to, routes)
	}
	return nil
}

// pathRoute converts a cell path into direction moves plus Activate.
func (t *Topology) pathRoute(path []int) (Route, error) {
	r := make(Route, 0, len(path))
	for i := 1; i < len(path); i++ {
		dx, dy, err := t.grid.Step(path[i-1], path[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTopology, err)
		}
		dir, _ := Direction(dx, dy)
		r = append(r, dir)
	}
	return append(r, Activate), nil
}

func (t *Topology) setRoutes(from, to Key, routes []Route) {
	t.routes[from][to] = routes
	t.shortest[from][to] = len(routes[0])
}

// Width returns the number of grid columns.
func (t *Topology) Width() int { return t.grid.Width }

// Height returns the number of grid rows.
func (t *Topology) Height() int { return t.grid.Height }

// Keys returns the keys on the pad in ascending order.
func (t *Topology) Keys() []Key { return slices.Clone(t.keys) }

// Has reports whether k is on the pad.
func (t *Topology) Has(k Key) bool { return k.Valid() && t.cells[k] >= 0 }

// Coordinate returns the grid position of k.
func (t *Topology) Coordinate(k Key) (Coordinate, bool) {
	if !t.Has(k) {
		return Coordinate{}, false
	}
	x, y := t.grid.Coordinate(t.cells[k])
	return Coordinate{X: x, Y: y}, true
}

// KeyAt returns the key at c; false for the gap or out-of-bounds positions.
func (t *Topology) KeyAt(c Coordinate) (Key, bool) {
	if !t.grid.IsLand(c.X, c.Y) {
		return 0, false
	}
	return Key(t.grid.CellValues[c.Y][c.X] - 1), true
}

// Routes returns the tie set of shortest routes from → to. The returned
// slice is shared and must not be modified.
// Returns ErrKeyNotFound if either key is not on the pad.
func (t *Topology) Routes(from, to Key) ([]Route, error) {
	if !t.Has(from) || !t.Has(to) {
		return nil, fmt.Errorf("%w: %v→%v", ErrKeyNotFound, from, to)
	}
	return t.routes[from][to], nil
}

// Shortest returns the press count of the shortest route from → to.
func (t *Topology) Shortest(from, to Key) (int, error) {
	if !t.Has(from) || !t.Has(to) {
		return 0, fmt.Errorf("%w: %v→%v", ErrKeyNotFound, from, to)
	}
	return t.shortest[from][to], nil
}

// Move applies one direction key to a pointer at c.
// Returns ErrNotDirection for non-direction keys and ErrBlocked when the
// pointer would leave the grid or stop over the gap.
func (t *Topology) Move(c Coordinate, dir Key) (Coordinate, error) {
	dx, dy, ok := dir.Delta()
	if !ok {
		return c, fmt.Errorf("%w: %v", ErrNotDirection, dir)
	}
	next := Coordinate{X: c.X + dx, Y: c.Y + dy}
	if !t.grid.IsLand(next.X, next.Y) {
		return c, fmt.Errorf("%w: %v from (%d,%d)", ErrBlocked, dir, c.X, c.Y)
	}
	return next, nil
}

// Walk replays r on the grid starting over from and returns the key the
// pointer ends on. Activate presses do not move the pointer.
func (t *Topology) Walk(from Key, r Route) (Key, error) {
	pos, ok := t.Coordinate(from)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, from)
	}
	for _, k := range r {
		if k == Activate {
			continue
		}
		var err error
		if pos, err = t.Move(pos, k); err != nil {
			return 0, err
		}
	}
	key, _ := t.KeyAt(pos)
	return key, nil
}

// String draws the pad one row per line with '_' for the gap.
func (t *Topology) String() string {
	var b strings.Builder
	for y := 0; y < t.grid.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < t.grid.Width; x++ {
			if k, ok := t.KeyAt(Coordinate{X: x, Y: y}); ok {
				b.WriteString(k.String())
			} else {
				b.WriteRune(gapRune)
			}
		}
	}
	return b.String()
}
