package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/keychain/bfs"
)

// adjGraph is a tiny undirected adjacency-list Graph for tests.
type adjGraph map[int][]int

func (g adjGraph) HasVertex(v int) bool { _, ok := g[v]; return ok }

func (g adjGraph) Neighbors(v int) []int { return g[v] }

// edge adds the undirected edge u–v.
func (g adjGraph) edge(u, v int) adjGraph {
	g[u] = append(g[u], v)
	g[v] = append(g[v], u)
	return g
}

// vertex adds an isolated vertex.
func (g adjGraph) vertex(v int) adjGraph {
	if _, ok := g[v]; !ok {
		g[v] = nil
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := adjGraph{}
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g.vertex(0)
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := adjGraph{}.vertex(0)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
	if len(res.Parents[0]) != 0 {
		t.Errorf("Parents[0] = %v; want none", res.Parents[0])
	}
}

// TestBFS_CycleTies covers a 4-cycle: the far vertex has two tied parents.
//
//	0───1
//	│   │
//	3───2
func TestBFS_CycleTies(t *testing.T) {
	g := adjGraph{}.edge(0, 1).edge(1, 2).edge(2, 3).edge(3, 0)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if got, want := res.Depth[2], 2; got != want {
		t.Errorf("Depth[2] = %d; want %d", got, want)
	}
	if want := []int{1, 3}; !reflect.DeepEqual(res.Parents[2], want) {
		t.Errorf("Parents[2] = %v; want %v", res.Parents[2], want)
	}
	// a vertex reached once keeps a single parent
	if want := []int{0}; !reflect.DeepEqual(res.Parents[1], want) {
		t.Errorf("Parents[1] = %v; want %v", res.Parents[1], want)
	}
}

// TestBFS_PathsTo enumerates all shortest paths across a 3×2 ladder.
//
//	0─1─2
//	│ │ │
//	3─4─5
func TestBFS_PathsTo(t *testing.T) {
	g := adjGraph{}.
		edge(0, 1).edge(1, 2).
		edge(3, 4).edge(4, 5).
		edge(0, 3).edge(1, 4).edge(2, 5)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	paths, err := res.PathsTo(5)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{0, 1, 2, 5},
		{0, 1, 4, 5},
		{0, 3, 4, 5},
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("PathsTo(5) = %v; want %v", paths, want)
	}
	// PathTo follows the first parent of every hop
	path, err := res.PathTo(5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path, want[0]) {
		t.Errorf("PathTo(5) = %v; want %v", path, want[0])
	}
	// start is its own single path
	self, _ := res.PathsTo(0)
	if !reflect.DeepEqual(self, [][]int{{0}}) {
		t.Errorf("PathsTo(0) = %v; want [[0]]", self)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := adjGraph{}.edge(1, 2).edge(8, 9)

	res, _ := bfs.BFS(g, 1)
	if !reflect.DeepEqual(res.Order, []int{1, 2}) {
		t.Errorf("From 1: got %v; want [1 2]", res.Order)
	}
	if _, err := res.PathsTo(9); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathsTo unreachable: want ErrNoPath, got %v", err)
	}
	if _, err := res.PathTo(9); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := adjGraph{}.edge(0, 1).edge(1, 2)
	// depth = 1 should only visit 0,1
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := adjGraph{}.edge(0, 1).edge(1, 2)
	// filter out 1→2
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := adjGraph{0: {0, 1, 1}, 1: {0, 0}}
	res, _ := bfs.BFS(g, 0)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := adjGraph{}.edge(0, 1).edge(1, 2)

	var enq, vis []string
	makeEntry := func(prefix string, v, d int) string {
		return prefix + ":" + strconv.Itoa(v) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, makeEntry("e", v, d)) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, makeEntry("v", v, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths 0@0, 1@1, 2@2
	wantDepths := []string{"0@0", "1@1", "2@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_VisitError checks that a hook error aborts and is wrapped.
func TestBFS_VisitError(t *testing.T) {
	g := adjGraph{}.edge(0, 1)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit error: want wrapped stop, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := adjGraph{}
	for i := 0; i < 100; i++ {
		g.edge(i, i+1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}
