package astar

import (
	"container/heap"
	"testing"
)

// TestFrontier_PopOrder verifies the full ordering: f ascending, then g
// ascending, then insertion sequence.
func TestFrontier_PopOrder(t *testing.T) {
	fr := make(frontier, 0, 8)
	heap.Init(&fr)

	pushes := []entry{
		{node: 0, f: 5, g: 3, seq: 0},
		{node: 1, f: 3, g: 2, seq: 1},
		{node: 2, f: 3, g: 1, seq: 2}, // beats node 1 on smaller g
		{node: 3, f: 3, g: 1, seq: 3}, // loses to node 2 on seq
		{node: 4, f: 7, g: 0, seq: 4},
		{node: 5, f: 5, g: 2, seq: 5}, // beats node 0 on smaller g
	}
	for _, e := range pushes {
		heap.Push(&fr, e)
	}

	want := []int32{2, 3, 1, 5, 0, 4}
	for i, wantNode := range want {
		got := heap.Pop(&fr).(entry)
		if got.node != wantNode {
			t.Errorf("pop %d = node %d (f=%d g=%d seq=%d); want node %d",
				i, got.node, got.f, got.g, got.seq, wantNode)
		}
	}
	if fr.Len() != 0 {
		t.Errorf("frontier length after draining = %d; want 0", fr.Len())
	}
}

// TestFrontier_LazyDuplicates models the decrease-key pattern: a cheaper
// duplicate for the same arena node pops before the stale original.
func TestFrontier_LazyDuplicates(t *testing.T) {
	fr := make(frontier, 0, 4)
	heap.Init(&fr)

	heap.Push(&fr, entry{node: 7, f: 9, g: 6, seq: 0}) // stale route
	heap.Push(&fr, entry{node: 7, f: 6, g: 3, seq: 1}) // improved route

	first := heap.Pop(&fr).(entry)
	if first.g != 3 {
		t.Errorf("first pop g = %d; want 3 (the improvement)", first.g)
	}
	second := heap.Pop(&fr).(entry)
	if second.g != 6 {
		t.Errorf("second pop g = %d; want 6 (the stale entry)", second.g)
	}
}
