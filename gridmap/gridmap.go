// Package gridmap models a rectangular grid of integer traversal costs
// with impassable obstacle cells, the start/goal coordinates of a route
// request, and a display-only symbol overlay.
//
// The cost grid is deep-copied at construction and never mutated
// afterwards; everything that moves (the goal marker, path marks) lives
// in the overlay, so search results can never be perturbed by display
// state.
package gridmap

import (
	"fmt"
	"strings"
)

// GridMap couples an immutable cost grid with mutable display state and
// the coordinates of a routing task. It is not safe for concurrent use;
// concurrent searches should each operate on their own Clone.
type GridMap struct {
	rows, cols int
	cost       [][]int      // immutable after New
	overlay    map[Pos]rune // display markers only, never read by search
	start      Pos
	goal       Pos
	endGoal    Pos
	hasEndGoal bool
	tick       int
	covered    rune // overlay symbol displaced by the goal marker; 0 = none
}

// New constructs a GridMap from a non-empty, rectangular 2D cost slice.
// It deep-copies the input to ensure immutability and marks start and
// goal in the overlay.
//
// Validation (in order):
//  1. Grid must have at least one row and one column (ErrEmptyGrid).
//  2. All rows must share one length (ErrNonRectangular).
//  3. Every cell must be Obstacle or ≥ MinCost (ErrBadCell).
//  4. start, goal, and the optional end goal must lie inside the grid
//     (ErrOutOfBounds) and off obstacle cells (ErrInvalidPosition).
//
// Complexity: O(rows×cols) time and memory.
func New(cost [][]int, start, goal Pos, opts ...Option) (*GridMap, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 1) Reject empty input before touching anything else.
	if len(cost) == 0 || len(cost[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cost), len(cost[0])

	// 2) Reject ragged input.
	for r, row := range cost {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	// 3) Reject illegal cell values.
	for r, row := range cost {
		for c, v := range row {
			if v != Obstacle && v < MinCost {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrBadCell, r, c, v)
			}
		}
	}

	m := &GridMap{
		rows:    rows,
		cols:    cols,
		overlay: make(map[Pos]rune, 2),
		start:   start,
		goal:    goal,
		endGoal: cfg.EndGoal,
	}

	// 4) Validate the task coordinates against the (not yet copied) grid.
	if err := m.checkPlaceable(cost, start, "start"); err != nil {
		return nil, err
	}
	if err := m.checkPlaceable(cost, goal, "goal"); err != nil {
		return nil, err
	}
	if cfg.HasEndGoal {
		if err := m.checkPlaceable(cost, cfg.EndGoal, "end goal"); err != nil {
			return nil, err
		}
		m.hasEndGoal = true
	}

	// Deep copy to prevent external mutation.
	m.cost = make([][]int, rows)
	for r := 0; r < rows; r++ {
		m.cost[r] = make([]int, cols)
		copy(m.cost[r], cost[r])
	}

	m.overlay[start] = SymbolStart
	m.placeGoal(goal)

	return m, nil
}

// checkPlaceable verifies that p can host a task marker on the given grid:
// inside the extents and not on an obstacle. label names the coordinate in
// error messages ("start", "goal", "end goal").
func (m *GridMap) checkPlaceable(cost [][]int, p Pos, label string) error {
	if p.Row < 0 || p.Row >= m.rows || p.Col < 0 || p.Col >= m.cols {
		return fmt.Errorf("%w: %s %v in %d×%d grid", ErrOutOfBounds, label, p, m.rows, m.cols)
	}
	if cost[p.Row][p.Col] == Obstacle {
		return fmt.Errorf("%w: %s %v", ErrInvalidPosition, label, p)
	}
	return nil
}

// Rows returns the number of grid rows.
func (m *GridMap) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *GridMap) Cols() int { return m.cols }

// Start returns the start position of the routing task.
func (m *GridMap) Start() Pos { return m.start }

// Goal returns the current goal position. It changes only via AdvanceGoal.
func (m *GridMap) Goal() Pos { return m.goal }

// EndGoal returns the moving goal's final destination and whether one was
// configured.
func (m *GridMap) EndGoal() (Pos, bool) { return m.endGoal, m.hasEndGoal }

// InBounds reports whether p lies within the grid extents.
// Complexity: O(1).
func (m *GridMap) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// CostAt returns the traversal cost stored at p, or Obstacle for an
// impassable cell. Returns ErrOutOfBounds for positions outside the grid.
// Complexity: O(1).
func (m *GridMap) CostAt(p Pos) (int, error) {
	if !m.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, p, m.rows, m.cols)
	}
	return m.cost[p.Row][p.Col], nil
}

// IsObstacle reports whether p holds an obstacle cell.
// Returns ErrOutOfBounds for positions outside the grid.
func (m *GridMap) IsObstacle(p Pos) (bool, error) {
	v, err := m.CostAt(p)
	if err != nil {
		return false, err
	}
	return v == Obstacle, nil
}

// Costs returns a deep copy of the cost grid. Mutating the copy never
// affects the GridMap.
// Complexity: O(rows×cols).
func (m *GridMap) Costs() [][]int {
	out := make([][]int, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = make([]int, m.cols)
		copy(out[r], m.cost[r])
	}
	return out
}

// Mark places a display symbol at p in the overlay. The overlay is
// cosmetic: searches never consult it.
func (m *GridMap) Mark(p Pos, symbol rune) error {
	if !m.InBounds(p) {
		return fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, p, m.rows, m.cols)
	}
	m.overlay[p] = symbol
	return nil
}

// ClearMark removes the display symbol at p, if any.
func (m *GridMap) ClearMark(p Pos) {
	delete(m.overlay, p)
}

// MarkPath marks the intermediate cells of a path with SymbolPath,
// leaving the endpoints to their start/goal markers. Positions outside
// the grid are ignored.
func (m *GridMap) MarkPath(path []Pos) {
	if len(path) < 3 {
		return
	}
	var p Pos
	for _, p = range path[1 : len(path)-1] {
		if m.InBounds(p) {
			m.overlay[p] = SymbolPath
		}
	}
}

// Symbols returns the display snapshot of the map: each cell renders as
// its cost symbol (see SymbolFor), with overlay markers applied on top.
// The result is a fresh slice on every call.
// Complexity: O(rows×cols).
func (m *GridMap) Symbols() [][]rune {
	out := make([][]rune, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = make([]rune, m.cols)
		for c := 0; c < m.cols; c++ {
			out[r][c] = SymbolFor(m.cost[r][c])
		}
	}
	var p Pos
	var sym rune
	for p, sym = range m.overlay {
		out[p.Row][p.Col] = sym
	}
	return out
}

// String renders the display snapshot as text, one grid row per line,
// cells separated by single spaces.
func (m *GridMap) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.cols*2 + 1))
	symbols := m.Symbols()
	for r, row := range symbols {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, sym := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(sym)
		}
	}
	return b.String()
}

// Clone returns an independent deep copy: cost grid, overlay, task
// coordinates, and moving-goal state. Clones are the unit of concurrent
// use, one per goroutine.
func (m *GridMap) Clone() *GridMap {
	cp := &GridMap{
		rows:       m.rows,
		cols:       m.cols,
		cost:       m.Costs(),
		overlay:    make(map[Pos]rune, len(m.overlay)),
		start:      m.start,
		goal:       m.goal,
		endGoal:    m.endGoal,
		hasEndGoal: m.hasEndGoal,
		tick:       m.tick,
		covered:    m.covered,
	}
	var p Pos
	var sym rune
	for p, sym = range m.overlay {
		cp.overlay[p] = sym
	}
	return cp
}
