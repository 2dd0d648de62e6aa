// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
)

// link adds an attribute-less edge and fails the test on error.
func link(t *testing.T, g *core.Graph, from, to string) {
	t.Helper()
	if err := g.AddEdge(from, to, nil); err != nil {
		t.Fatalf("AddEdge(%s,%s): %v", from, to, err)
	}
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found, including on an empty graph
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if res, err := bfs.BFS(g, ""); err != nil || len(res.Order) != 0 {
		t.Errorf("empty graph: want empty result, got %v, %v", res, err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph()
	_ = g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Roots, want) {
		t.Errorf("Roots = %v; want %v", res.Roots, want)
	}
}

// TestBFS_CycleAndDepths covers a simple undirected cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	link(t, g, "B", "C")
	link(t, g, "C", "D")
	link(t, g, "D", "A")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_Disconnected checks the restart over unvisited vertices: each
// component gets its own root at depth 0, in lexicographic order after start.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	link(t, g, "A", "B")
	link(t, g, "X", "Y")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "X", "Y"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := map[string]int{"A": 0, "B": 1, "X": 0, "Y": 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []string{"A", "X"}; !reflect.DeepEqual(res.Roots, want) {
		t.Errorf("Roots = %v; want %v", res.Roots, want)
	}

	// Starting from the second component puts it first; A follows as a root.
	res, _ = bfs.BFS(g, "X")
	if want := []string{"X", "Y", "A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("From X: Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_DirectedRestart: a vertex only reachable against edge direction
// becomes a root of its own.
func TestBFS_DirectedRestart(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	link(t, g, "B", "A")
	link(t, g, "B", "C")

	res, _ := bfs.BFS(g, "A")
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := map[string]int{"A": 0, "B": 0, "C": 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_SingleComponent ensures the restart can be switched off.
func TestBFS_SingleComponent(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "X", "Y")
	link(t, g, "P", "Q")

	resX, _ := bfs.BFS(g, "X", bfs.WithSingleComponent())
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	resP, _ := bfs.BFS(g, "P", bfs.WithSingleComponent())
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("From P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	link(t, g, "B", "C")
	// depth = 1 within the start component visits A,B only
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1), bfs.WithSingleComponent()); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// in full mode the cut-off vertex is picked up as a new root
	res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	if !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) || res.Depth["C"] != 0 {
		t.Errorf("MaxDepth=1 full: got %v %v; want [A B C] with C at 0", res.Order, res.Depth)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); res.Depth["C"] != 2 {
		t.Errorf("MaxDepth=10: Depth[C] = %d; want 2", res.Depth["C"])
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	link(t, g, "B", "C")
	// filter out B→C
	res, _ := bfs.BFS(g, "A",
		bfs.WithSingleComponent(),
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoop ensures a loop does not enqueue its vertex twice.
func TestBFS_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	link(t, g, "A", "A")
	link(t, g, "A", "B")
	res, _ := bfs.BFS(g, "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop: got %v; want %v", res.Order, want)
	}
}

// TestBFS_LabGraph runs the directed eight-vertex lab network.
func TestBFS_LabGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	adj := map[string][]string{
		"A": {"B", "D"}, "B": {"C", "E", "G"}, "C": {"A"}, "D": {"C"},
		"E": {"H"}, "F": {}, "G": {"F"}, "H": {"F", "G"},
	}
	for u, vs := range adj {
		_ = g.AddVertex(u)
		for _, v := range vs {
			link(t, g, u, v)
		}
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C", "E", "G", "H", "F"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2, "E": 2, "G": 2, "H": 3, "F": 3}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	if path, _ := res.PathTo("F"); !reflect.DeepEqual(path, []string{"A", "B", "G", "F"}) {
		t.Errorf("PathTo(F) = %v; want [A B G F]", path)
	}
	levels := res.Levels()
	if want := []string{"C", "E", "G"}; !reflect.DeepEqual(levels[2], want) {
		t.Errorf("Levels[2] = %v; want %v", levels[2], want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	link(t, g, "B", "C")

	var enq, deq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"A@0", "B@1", "C@2"}
	if len(enq) != 3 || len(deq) != 3 || len(vis) != 3 {
		t.Fatalf("hook counts = %d/%d/%d; want 3/3/3", len(enq), len(deq), len(vis))
	}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_VisitErrorAborts: an OnVisit error stops the walk and is wrapped.
func TestBFS_VisitErrorAborts(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	link(t, g, "B", "C")
	stop := errors.New("stop")

	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unvisited targets.
func TestBFS_PathTo(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("X")
	res, _ := bfs.BFS(g, "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	if _, err := res.PathTo("Y"); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo unvisited: want ErrNotReached, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		link(t, g, fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := core.NewGraph()
	link(t, g, "A", "B")
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
