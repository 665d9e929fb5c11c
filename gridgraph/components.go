package gridgraph

import "github.com/katalvlaran/keychain/bfs"

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS visit order. Components are ordered by their first
// cell in row-major scan.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // water
			}
			i0 := gg.Index(x, y)
			if seen[i0] {
				continue
			}
			// i0 is land, so BFS cannot fail
			res, _ := bfs.BFS(gg, i0)
			for _, v := range res.Order {
				seen[v] = true
			}
			comps = append(comps, res.Order)
		}
	}
	return comps
}
