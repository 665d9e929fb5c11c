// Package bfs provides breadth-first search over a small int-vertex Graph,
// returning unweighted shortest-path distances, every tied parent link,
// and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parents: map from vertex → all predecessors lying on a shortest path
//   - PathTo reconstructs one shortest path; PathsTo enumerates all of them.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Keypad routing needs every shortest path between two keys, not just
//     the first one found: two equally short routes can differ in cost once
//     they are typed through further keypads.
//
// Determinism
//
//	BFS enqueues neighbors in the order Graph.Neighbors returns them, and
//	Parents preserves discovery order, so Order and PathsTo are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|, P = number of shortest paths)
//
//   - BFS:     O(V + E) time, O(V + E) memory (Parents may hold one entry per edge)
//   - PathsTo: O(P × depth)
//
// Usage
//
//	res, err := bfs.BFS(g, start)
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or hook errors
//	}
//	paths, err := res.PathsTo(dest) // ErrNoPath if dest was never reached
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo/PathsTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
