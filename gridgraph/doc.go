// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis and shortest-path search over small fixed layouts
// such as keypads.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Land cells (value ≥ LandThreshold) are vertices; water cells are holes.
//   - Implements bfs.Graph so bfs.BFS walks land cells only.
//   - Identifies connected components (“islands”) of land cells.
//   - Step maps two adjacent cells to the offset between them.
//
// Why:
//
//   - Keypads: a key grid with a gap the pointer may never cross.
//   - Game maps: contiguous land detection.
//   - Topology analysis: count islands and check a layout is connected.
//
// Complexity:
//
//   - Neighbors:           O(d),        Memory: O(d)      (d = number of neighbors, 4 or 8).
//   - ConnectedComponents: O(W×H×d),    Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNotAdjacent: Step called on cells that share no edge.
package gridgraph
