// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - The bfs.Graph view (HasVertex / Neighbors) over land cells
//   - Identification of connected components of “land” cells
//   - Direction lookup between adjacent cells (Step)
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/keychain/bfs"
)

var _ bfs.Graph = (*GridGraph)(nil)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with DefaultGridOptions and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is inside the grid and holds a land value.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// HasVertex reports whether idx names a land cell.
func (gg *GridGraph) HasVertex(idx int) bool {
	if idx < 0 || idx >= gg.Width*gg.Height {
		return false
	}
	return gg.IsLand(gg.Coordinate(idx))
}

// Neighbors returns the land cells adjacent to idx in NeighborOffsets order.
// Water and out-of-range cells have no neighbors.
func (gg *GridGraph) Neighbors(idx int) []int {
	if !gg.HasVertex(idx) {
		return nil
	}
	x, y := gg.Coordinate(idx)
	out := make([]int, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.IsLand(nx, ny) {
			out = append(out, gg.Index(nx, ny))
		}
	}
	return out
}

// Step returns the offset (dx,dy) leading from cell u to its neighbor v.
// Returns ErrNotAdjacent unless v is one of u's neighbor offsets away.
func (gg *GridGraph) Step(u, v int) (dx, dy int, err error) {
	ux, uy := gg.Coordinate(u)
	vx, vy := gg.Coordinate(v)
	dx, dy = vx-ux, vy-uy
	for _, d := range gg.neighborOffsets {
		if d[0] == dx && d[1] == dy {
			return dx, dy, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: (%d,%d)→(%d,%d)", ErrNotAdjacent, ux, uy, vx, vy)
}
