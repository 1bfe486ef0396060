// frontier.go holds the search-node arena and the min-heap frontier.
package astar

import "github.com/AndKlet/gridpath/gridmap"

// noParent marks the start node's parent slot in the arena.
const noParent int32 = -1

// node is one reached state in the search. Nodes live in a flat arena and
// reference their predecessor by arena index, so path reconstruction
// never chases pointers.
type node struct {
	pos    gridmap.Pos
	g      int   // exact cost from the start
	h      int   // heuristic estimate to the goal
	f      int   // g + h, fixed at construction
	parent int32 // arena index of the predecessor, noParent for the start
}

// entry is a frontier reference to an arena node. The scheduling keys are
// copied into the entry so ordering never reads the arena.
type entry struct {
	node int32 // arena index
	f    int   // total estimate at push time
	g    int   // cost so far at push time
	seq  int   // push sequence number, breaks remaining ties
}

// frontier is a min-heap of entries ordered by f, then g, then seq.
// We use the “lazy” decrease-key approach: when a cheaper route to an
// already-admitted position is found, a fresh entry is pushed and the
// outdated one is skipped at pop time (its position is already settled).
//
// The full ordering (insertion sequence as the last key) makes pop order,
// and therefore returned paths, identical across runs on equal inputs.
type frontier []entry

// Len returns the number of entries in the heap.
func (fr frontier) Len() int { return len(fr) }

// Less orders by smallest f, then smallest g, then earliest push.
func (fr frontier) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}
	if fr[i].g != fr[j].g {
		return fr[i].g < fr[j].g
	}
	return fr[i].seq < fr[j].seq
}

// Swap swaps two entries in the heap.
func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

// Push adds a new entry x onto the heap.
// Called by heap.Push; x must be of type entry.
func (fr *frontier) Push(x interface{}) { *fr = append(*fr, x.(entry)) }

// Pop removes and returns the last entry from the heap.
// Called by heap.Pop; returns interface{} that must be cast to entry.
func (fr *frontier) Pop() interface{} {
	old := *fr
	n := len(old)
	item := old[n-1]
	*fr = old[:n-1]

	return item
}
