// Package astar implements A* shortest-path search on weighted grid maps.
//
// A* explores grid cells in order of estimated total cost f = g + h,
// where g is the exact accumulated cost from the start cell and h the
// heuristic estimate of the remaining cost to the goal. With the default
// Manhattan heuristic the estimate never exceeds the true remaining cost,
// so the first time the goal is popped its cost is minimal.
//
// Notes on implementation choices:
//
//   - Cell costs are snapshotted once into a flat row-major slice, so the
//     hot loop indexes plain ints instead of bounds-checked accessors.
//   - Admission follows a monotone-cost rule: a neighbor enters the
//     frontier only when its candidate cost strictly improves the best
//     known cost for that position. Membership of a position in the
//     frontier is irrelevant; only recorded costs gate re-insertion.
//   - We use a “lazy” decrease-key strategy: improvements push duplicate
//     entries and stale ones are discarded when popped.
//   - Neighbors expand in the fixed order row+1, col+1, row−1, col−1,
//     which together with the frontier's full ordering makes results
//     deterministic for equal inputs.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/AndKlet/gridpath/gridmap"
)

// stepOffsets enumerates the 4-connected neighborhood in expansion order:
// row+1, col+1, row−1, col−1.
var stepOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Search runs A* over m from start to goal and reports the least-cost
// route found. It accepts functional options to customize behavior
// (heuristic mode, cancellation, expansion cap).
//
// Returns:
//
//   - res: Path (start→goal inclusive), Cost (sum of entered-cell costs),
//     Expanded (settled-node count), and Found. A route that does not
//     exist yields Found=false with a nil Path and a nil error.
//   - err: invalid inputs, cancellation, or the expansion cap.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilGridMap).
//  2. The heuristic mode must be a defined constant (ErrUnknownHeuristic).
//  3. start must be inside the grid and off obstacles (wraps
//     gridmap.ErrOutOfBounds / gridmap.ErrInvalidPosition).
//  4. goal likewise.
//
// Complexity:
//
//   - Time:  O(W·H · log(W·H))
//   - Space: O(W·H)
func Search(m *gridmap.GridMap, start, goal gridmap.Pos, opts ...Option) (*Result, error) {
	// 1) Build options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the map pointer.
	if m == nil {
		return nil, ErrNilGridMap
	}

	// 3) Validate the heuristic mode before it can reach Estimate.
	if !cfg.Heuristic.Valid() {
		return nil, fmt.Errorf("%w: mode %d", ErrUnknownHeuristic, int(cfg.Heuristic))
	}

	// 4) Validate both endpoints: in bounds, not on obstacles.
	if err := checkEndpoint(m, start, "start"); err != nil {
		return nil, err
	}
	if err := checkEndpoint(m, goal, "goal"); err != nil {
		return nil, err
	}

	// 5) Prepare the runner and seed it with the start node.
	r := newRunner(m, goal, cfg)
	r.init(start)

	// 6) Run the expansion loop.
	goalNode, err := r.process()
	if err != nil {
		return nil, err
	}

	// 7) Exhausted frontier: a representable outcome, not an error.
	if goalNode == noParent {
		return &Result{Expanded: r.expanded, Found: false}, nil
	}

	// 8) Walk the parent chain for the final path.
	return &Result{
		Path:     r.reconstruct(goalNode),
		Cost:     r.arena[goalNode].g,
		Expanded: r.expanded,
		Found:    true,
	}, nil
}

// checkEndpoint verifies that p can terminate a route: inside the grid
// and not an obstacle. label names the coordinate in error messages.
func checkEndpoint(m *gridmap.GridMap, p gridmap.Pos, label string) error {
	v, err := m.CostAt(p)
	if err != nil {
		return fmt.Errorf("astar: %s: %w", label, err)
	}
	if v == gridmap.Obstacle {
		return fmt.Errorf("astar: %s %v: %w", label, p, gridmap.ErrInvalidPosition)
	}
	return nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	opts       Options     // Configuration options (heuristic, ctx, cap).
	goal       gridmap.Pos // Target cell; tested on every pop.
	rows, cols int         // Grid extents for flat indexing.
	cost       []int       // Row-major snapshot of cell costs.
	arena      []node      // All reached states, addressed by index.
	pq         frontier    // Min-heap of admitted, not-yet-settled states.
	best       []int       // Row-major best known g per position.
	settled    []bool      // Row-major finalized flags.
	seq        int         // Monotone push counter for the last tie-break.
	expanded   int         // Settled-node count.
}

// newRunner snapshots the grid into flat slices and sizes the frontier.
// Complexity: O(W·H).
func newRunner(m *gridmap.GridMap, goal gridmap.Pos, cfg Options) *runner {
	rows, cols := m.Rows(), m.Cols()
	r := &runner{
		opts:    cfg,
		goal:    goal,
		rows:    rows,
		cols:    cols,
		cost:    make([]int, rows*cols),
		best:    make([]int, rows*cols),
		settled: make([]bool, rows*cols),
		// A diagonal's worth of entries is a reasonable starting capacity.
		pq:    make(frontier, 0, rows+cols),
		arena: make([]node, 0, rows+cols),
	}

	// Snapshot costs once; the hot loop never calls back into the map.
	grid := m.Costs()
	var row []int
	for y := 0; y < rows; y++ {
		row = grid[y]
		copy(r.cost[y*cols:(y+1)*cols], row)
	}

	// No position has a known cost yet.
	for i := range r.best {
		r.best[i] = math.MaxInt
	}

	return r
}

// index maps a position to its row-major slot: row*cols + col.
// Complexity: O(1).
func (r *runner) index(p gridmap.Pos) int {
	return p.Row*r.cols + p.Col
}

// init pushes the start node with g=0 and its heuristic estimate.
func (r *runner) init(start gridmap.Pos) {
	heap.Init(&r.pq)

	h := r.opts.Heuristic.Estimate(start, r.goal)
	r.arena = append(r.arena, node{pos: start, g: 0, h: h, f: h, parent: noParent})
	r.best[r.index(start)] = 0

	heap.Push(&r.pq, entry{node: 0, f: h, g: 0, seq: r.seq})
}

// process is the core loop. It repeatedly pops the cheapest pending state,
// discards stale duplicates, tests for the goal, and expands neighbors.
//
// Loop termination conditions:
//
//   - The goal position is popped (returns its arena index).
//   - The frontier empties (returns noParent: no route exists).
//   - The context is canceled or the expansion cap is hit (returns an error).
func (r *runner) process() (int32, error) {
	var e entry
	var n node
	var idx int
	for r.pq.Len() > 0 {
		// 1) Control checks run between pops only, never mid-expansion.
		select {
		case <-r.opts.Ctx.Done():
			return noParent, fmt.Errorf("astar: after %d expansions: %w", r.expanded, r.opts.Ctx.Err())
		default:
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return noParent, fmt.Errorf("%w: settled %d nodes", ErrExpansionLimit, r.expanded)
		}

		// 2) Pop the smallest (f, g, seq) entry.
		e = heap.Pop(&r.pq).(entry)
		n = r.arena[e.node]
		idx = r.index(n.pos)

		// 3) Skip stale duplicates: position settled, or a cheaper route
		//    was recorded after this entry was pushed.
		if r.settled[idx] || e.g > r.best[idx] {
			continue
		}

		// 4) Goal test on pop, so the popped cost is already minimal under
		//    an admissible heuristic.
		if n.pos == r.goal {
			return e.node, nil
		}

		// 5) Finalize and expand.
		r.settled[idx] = true
		r.expanded++
		r.expand(e.node)
	}

	return noParent, nil
}

// expand admits every improving 4-neighbor of the node at arena index ni.
//
// A neighbor is admitted only when it is inside the grid, not an
// obstacle, not settled, and its candidate cost strictly improves the
// best known cost for that position (the monotone-cost rule).
func (r *runner) expand(ni int32) {
	n := r.arena[ni] // copy: the arena may grow below
	var np gridmap.Pos
	var idx, c, candidate, h int
	for _, d := range stepOffsets {
		np = gridmap.Pos{Row: n.pos.Row + d[0], Col: n.pos.Col + d[1]}
		if np.Row < 0 || np.Row >= r.rows || np.Col < 0 || np.Col >= r.cols {
			continue
		}
		idx = r.index(np)

		// Obstacles never enter the frontier.
		c = r.cost[idx]
		if c == gridmap.Obstacle {
			continue
		}
		if r.settled[idx] {
			continue
		}

		// Entering a cell costs that cell's own value.
		candidate = n.g + c
		if candidate >= r.best[idx] {
			continue
		}
		r.best[idx] = candidate

		h = r.opts.Heuristic.Estimate(np, r.goal)
		r.arena = append(r.arena, node{pos: np, g: candidate, h: h, f: candidate + h, parent: ni})
		r.seq++
		heap.Push(&r.pq, entry{node: int32(len(r.arena) - 1), f: candidate + h, g: candidate, seq: r.seq})
	}
}

// reconstruct walks parent indices from the goal node back to the start
// node, then reverses, yielding the path start→goal inclusive.
// Complexity: O(path length).
func (r *runner) reconstruct(goalNode int32) []gridmap.Pos {
	path := make([]gridmap.Pos, 0, r.rows+r.cols)
	for at := goalNode; at != noParent; at = r.arena[at].parent {
		path = append(path, r.arena[at].pos)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
