package astar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AndKlet/gridpath/astar"
	"github.com/AndKlet/gridpath/gridmap"
	"github.com/AndKlet/gridpath/mapgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Test Helpers
//----------------------------------------------------------------------------//

// openGrid returns a rows×cols all-ones grid.
func openGrid(rows, cols int) [][]int {
	g := make([][]int, rows)
	for r := range g {
		g[r] = make([]int, cols)
		for c := range g[r] {
			g[r][c] = 1
		}
	}
	return g
}

// mustMap builds a GridMap or fails the test.
func mustMap(t *testing.T, grid [][]int, start, goal gridmap.Pos, opts ...gridmap.Option) *gridmap.GridMap {
	t.Helper()
	m, err := gridmap.New(grid, start, goal, opts...)
	if err != nil {
		t.Fatalf("gridmap.New error: %v", err)
	}
	return m
}

// bfsSteps returns the minimum number of moves from start to goal on the
// raw grid treating every non-obstacle cell as cost 1, or -1 when goal is
// unreachable. It is the reference oracle for uniform-cost routes.
func bfsSteps(grid [][]int, start, goal gridmap.Pos) int {
	rows, cols := len(grid), len(grid[0])
	depth := make([]int, rows*cols)
	for i := range depth {
		depth[i] = -1
	}
	idx := func(p gridmap.Pos) int { return p.Row*cols + p.Col }

	queue := []gridmap.Pos{start}
	depth[idx(start)] = 0
	offsets := [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	var cur, next gridmap.Pos
	for len(queue) > 0 {
		cur = queue[0]
		queue = queue[1:]
		if cur == goal {
			return depth[idx(cur)]
		}
		for _, d := range offsets {
			next = gridmap.Pos{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if grid[next.Row][next.Col] == gridmap.Obstacle || depth[idx(next)] != -1 {
				continue
			}
			depth[idx(next)] = depth[idx(cur)] + 1
			queue = append(queue, next)
		}
	}
	return -1
}

// assertValidPath checks the structural route invariants: endpoints,
// 4-adjacency of consecutive cells, no obstacles, and that Result.Cost
// equals the sum of entered-cell costs.
func assertValidPath(t *testing.T, grid [][]int, start, goal gridmap.Pos, res *astar.Result) {
	t.Helper()
	require.True(t, res.Found, "expected a route")
	require.NotEmpty(t, res.Path, "found routes carry at least the start cell")

	assert.Equal(t, start, res.Path[0], "route must begin at start")
	assert.Equal(t, goal, res.Path[len(res.Path)-1], "route must end at goal")

	sum := 0
	for i, p := range res.Path {
		require.NotEqual(t, gridmap.Obstacle, grid[p.Row][p.Col], "cell %v on route is an obstacle", p)
		if i == 0 {
			continue
		}
		prev := res.Path[i-1]
		manhattan := abs(p.Row-prev.Row) + abs(p.Col-prev.Col)
		assert.Equal(t, 1, manhattan, "step %v→%v must be 4-adjacent", prev, p)
		sum += grid[p.Row][p.Col]
	}
	assert.Equal(t, sum, res.Cost, "Cost must equal the sum of entered-cell costs")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestSearch_Validation verifies every precondition failure path.
func TestSearch_Validation(t *testing.T) {
	walled := [][]int{
		{1, 1, 1},
		{1, -1, 1},
		{1, 1, 1},
	}
	m := mustMap(t, walled, gridmap.Pos{}, gridmap.Pos{Row: 2, Col: 2})

	cases := []struct {
		name  string
		m     *gridmap.GridMap
		start gridmap.Pos
		goal  gridmap.Pos
		opts  []astar.Option
		err   error
	}{
		{"NilMap", nil, gridmap.Pos{}, gridmap.Pos{}, nil, astar.ErrNilGridMap},
		{"UnknownHeuristic", m, gridmap.Pos{}, gridmap.Pos{Row: 2, Col: 2},
			[]astar.Option{astar.WithHeuristic(astar.HeuristicMode(9))}, astar.ErrUnknownHeuristic},
		{"StartOutOfBounds", m, gridmap.Pos{Row: -1, Col: 0}, gridmap.Pos{}, nil, gridmap.ErrOutOfBounds},
		{"GoalOutOfBounds", m, gridmap.Pos{}, gridmap.Pos{Row: 0, Col: 3}, nil, gridmap.ErrOutOfBounds},
		{"StartOnObstacle", m, gridmap.Pos{Row: 1, Col: 1}, gridmap.Pos{}, nil, gridmap.ErrInvalidPosition},
		{"GoalOnObstacle", m, gridmap.Pos{}, gridmap.Pos{Row: 1, Col: 1}, nil, gridmap.ErrInvalidPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.Search(tc.m, tc.start, tc.goal, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("Search error = %v; want %v", err, tc.err)
			}
			if res != nil {
				t.Errorf("Search result = %+v; want nil on validation failure", res)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Route Tests
//----------------------------------------------------------------------------//

// TestSearch_RoutesAroundObstacle: a central wall on an otherwise open
// 5×5 grid stretches the corner-to-corner route to 9 cells, cost 8.
func TestSearch_RoutesAroundObstacle(t *testing.T) {
	grid := openGrid(5, 5)
	grid[2][2] = gridmap.Obstacle
	start, goal := gridmap.Pos{Row: 0, Col: 0}, gridmap.Pos{Row: 4, Col: 4}
	m := mustMap(t, grid, start, goal)

	res, err := astar.Search(m, start, goal)
	require.NoError(t, err, "search must succeed")
	assertValidPath(t, grid, start, goal, res)
	assert.Len(t, res.Path, 9, "route length around the wall")
	assert.Equal(t, 8, res.Cost, "route cost around the wall")
	assert.NotContains(t, res.Path, gridmap.Pos{Row: 2, Col: 2}, "route must avoid the wall")
}

// TestSearch_NoPath: a start cell sealed off by obstacles yields
// Found=false with a nil path and a nil error.
func TestSearch_NoPath(t *testing.T) {
	grid := [][]int{
		{1, -1, 1},
		{-1, -1, 1},
		{1, 1, 1},
	}
	start, goal := gridmap.Pos{Row: 0, Col: 0}, gridmap.Pos{Row: 2, Col: 2}
	m := mustMap(t, grid, start, goal)

	res, err := astar.Search(m, start, goal)
	require.NoError(t, err, "an unreachable goal is not an error")
	assert.False(t, res.Found, "no route exists")
	assert.Nil(t, res.Path, "missing routes have a nil path")
	assert.Equal(t, 0, res.Cost, "missing routes have zero cost")
	assert.GreaterOrEqual(t, res.Expanded, 1, "the start cell is still settled")
}

// TestSearch_WeightedCorridor: on 1×5 costs [1,3,1,1,1] the only route
// costs 6: every entered cell counts, the start cell does not.
func TestSearch_WeightedCorridor(t *testing.T) {
	grid := [][]int{{1, 3, 1, 1, 1}}
	start, goal := gridmap.Pos{Row: 0, Col: 0}, gridmap.Pos{Row: 0, Col: 4}
	m := mustMap(t, grid, start, goal)

	res, err := astar.Search(m, start, goal)
	require.NoError(t, err, "search must succeed")
	assertValidPath(t, grid, start, goal, res)
	assert.Len(t, res.Path, 5, "corridor route spans every cell")
	assert.Equal(t, 6, res.Cost, "3+1+1+1 entered")
}

// TestSearch_CheaperDetourBeatsDirect ensures cost, not step count,
// drives the route: a 7-cell detour at cost 6 beats a 3-cell crossing at
// cost 10.
func TestSearch_CheaperDetourBeatsDirect(t *testing.T) {
	grid := [][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	}
	start, goal := gridmap.Pos{Row: 0, Col: 0}, gridmap.Pos{Row: 0, Col: 2}
	m := mustMap(t, grid, start, goal)

	res, err := astar.Search(m, start, goal)
	require.NoError(t, err, "search must succeed")
	assertValidPath(t, grid, start, goal, res)
	assert.Equal(t, 6, res.Cost, "the detour around the expensive column wins")
	assert.Len(t, res.Path, 7, "detour length")
}

// TestSearch_StartEqualsGoal returns the one-cell route at zero cost,
// distinct from "no route".
func TestSearch_StartEqualsGoal(t *testing.T) {
	p := gridmap.Pos{Row: 1, Col: 1}
	m := mustMap(t, openGrid(3, 3), p, p)

	res, err := astar.Search(m, p, p)
	require.NoError(t, err, "search must succeed")
	assert.True(t, res.Found, "trivial route exists")
	assert.Equal(t, []gridmap.Pos{p}, res.Path, "one-cell route")
	assert.Equal(t, 0, res.Cost, "no cell is entered")
}

//----------------------------------------------------------------------------//
// Cross-Check and Property Tests
//----------------------------------------------------------------------------//

// TestSearch_MatchesBFSOnUniformGrids cross-checks A* against a
// breadth-first oracle: with unit costs the cheapest route is the
// shortest one, and reachability verdicts must agree.
func TestSearch_MatchesBFSOnUniformGrids(t *testing.T) {
	start, goal := gridmap.Pos{Row: 0, Col: 0}, gridmap.Pos{Row: 14, Col: 19}
	for seed := int64(1); seed <= 6; seed++ {
		cfg := mapgen.DefaultConfig(15, 20)
		cfg.MaxCost = 1 // unit costs: cheapest == shortest
		cfg.ObstacleRatio = 0.3
		cfg.Seed = seed
		cfg.Open = []gridmap.Pos{start, goal}

		grid, err := mapgen.Generate(cfg)
		require.NoError(t, err, "seed %d: generation must succeed", seed)
		m := mustMap(t, grid, start, goal)

		res, err := astar.Search(m, start, goal)
		require.NoError(t, err, "seed %d: search must succeed", seed)

		steps := bfsSteps(grid, start, goal)
		if steps < 0 {
			assert.False(t, res.Found, "seed %d: BFS says unreachable", seed)
			continue
		}
		assertValidPath(t, grid, start, goal, res)
		assert.Equal(t, steps, res.Cost, "seed %d: unit-cost route cost equals BFS depth", seed)
		assert.Len(t, res.Path, steps+1, "seed %d: route cell count", seed)
	}
}

// TestSearch_RandomTerrainProperties exercises weighted random maps:
// structural invariants plus run-to-run determinism.
func TestSearch_RandomTerrainProperties(t *testing.T) {
	start, goal := gridmap.Pos{Row: 0, Col: 0}, gridmap.Pos{Row: 11, Col: 17}
	for seed := int64(10); seed < 16; seed++ {
		cfg := mapgen.DefaultConfig(12, 18)
		cfg.ObstacleRatio = 0.25
		cfg.Seed = seed
		cfg.Open = []gridmap.Pos{start, goal}

		grid, err := mapgen.Generate(cfg)
		require.NoError(t, err, "seed %d: generation must succeed", seed)
		m := mustMap(t, grid, start, goal)

		res, err := astar.Search(m, start, goal)
		require.NoError(t, err, "seed %d: search must succeed", seed)
		if !res.Found {
			assert.Equal(t, -1, bfsSteps(grid, start, goal), "seed %d: BFS must agree the goal is sealed", seed)
			continue
		}
		assertValidPath(t, grid, start, goal, res)
		assert.LessOrEqual(t, res.Expanded, 12*18, "seed %d: settled nodes bounded by the grid", seed)

		// Determinism: identical inputs replay the identical route.
		again, err := astar.Search(m, start, goal)
		require.NoError(t, err, "seed %d: replay must succeed", seed)
		assert.Equal(t, res.Path, again.Path, "seed %d: replayed route must match", seed)
	}
}

// TestSearch_SquaredEuclideanTradeoff pins the documented behavior: the
// squared estimator overestimates long routes and here returns a costlier
// crossing, while Manhattan finds the true optimum.
func TestSearch_SquaredEuclideanTradeoff(t *testing.T) {
	grid := [][]int{
		{1, 3, 3, 3, 1},
		{1, 1, 1, 1, 1},
	}
	start, goal := gridmap.Pos{Row: 0, Col: 0}, gridmap.Pos{Row: 0, Col: 4}
	m := mustMap(t, grid, start, goal)

	optimal, err := astar.Search(m, start, goal, astar.WithHeuristic(astar.Manhattan))
	require.NoError(t, err, "manhattan search must succeed")
	assertValidPath(t, grid, start, goal, optimal)
	assert.Equal(t, 6, optimal.Cost, "manhattan finds the cheap detour")

	greedy, err := astar.Search(m, start, goal, astar.WithHeuristic(astar.SquaredEuclidean))
	require.NoError(t, err, "squared-euclidean search must succeed")
	assertValidPath(t, grid, start, goal, greedy)
	assert.Equal(t, 10, greedy.Cost, "squared euclidean commits to the direct crossing")
}

//----------------------------------------------------------------------------//
// Control Tests
//----------------------------------------------------------------------------//

// TestSearch_ContextCancellation aborts before the first pop.
func TestSearch_ContextCancellation(t *testing.T) {
	m := mustMap(t, openGrid(8, 8), gridmap.Pos{}, gridmap.Pos{Row: 7, Col: 7})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := astar.Search(m, gridmap.Pos{}, gridmap.Pos{Row: 7, Col: 7}, astar.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Search error = %v; want context.Canceled", err)
	}
	if res != nil {
		t.Errorf("Search result = %+v; want nil on cancellation", res)
	}
}

// TestSearch_ExpansionLimit caps the expansion allowance below what the
// corridor needs.
func TestSearch_ExpansionLimit(t *testing.T) {
	m := mustMap(t, openGrid(1, 12), gridmap.Pos{}, gridmap.Pos{Row: 0, Col: 11})

	res, err := astar.Search(m, gridmap.Pos{}, gridmap.Pos{Row: 0, Col: 11}, astar.WithMaxExpansions(3))
	if !errors.Is(err, astar.ErrExpansionLimit) {
		t.Errorf("Search error = %v; want ErrExpansionLimit", err)
	}
	if res != nil {
		t.Errorf("Search result = %+v; want nil when the cap fires", res)
	}
}

// TestWithMaxExpansions_PanicsOnNegative documents the option contract.
func TestWithMaxExpansions_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithMaxExpansions(-1) did not panic")
		}
	}()
	astar.WithMaxExpansions(-1)(nil)
}

//----------------------------------------------------------------------------//
// Re-planning Tests
//----------------------------------------------------------------------------//

// TestSearch_ReplanAfterGoalTick models the moving-target loop: each
// search sees a fixed goal; movement happens between searches.
func TestSearch_ReplanAfterGoalTick(t *testing.T) {
	grid := openGrid(5, 5)
	m, err := gridmap.New(grid, gridmap.Pos{}, gridmap.Pos{Row: 0, Col: 4},
		gridmap.WithEndGoal(gridmap.Pos{Row: 4, Col: 4}))
	require.NoError(t, err, "map must build")

	before, err := astar.Search(m, m.Start(), m.Goal())
	require.NoError(t, err, "first search must succeed")
	assertValidPath(t, grid, m.Start(), gridmap.Pos{Row: 0, Col: 4}, before)

	// One relocation per four ticks.
	for i := 0; i < 4; i++ {
		m.AdvanceGoal()
	}
	require.Equal(t, gridmap.Pos{Row: 1, Col: 4}, m.Goal(), "goal must have stepped once")

	after, err := astar.Search(m, m.Start(), m.Goal())
	require.NoError(t, err, "re-planned search must succeed")
	assertValidPath(t, grid, m.Start(), gridmap.Pos{Row: 1, Col: 4}, after)
	assert.Equal(t, before.Cost+1, after.Cost, "one step farther on an open unit grid")
}
