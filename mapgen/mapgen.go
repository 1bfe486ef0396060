// Package mapgen generates random gridpath cost grids with deterministic
// seeds, for demos, tests, and benchmarks.
//
// What:
//
//   - Generate fills a rows×cols grid cell by cell in row-major order:
//     each cell becomes an obstacle with probability ObstacleRatio,
//     otherwise a uniform cost in [1, MaxCost].
//   - Cells listed in Open are forced to cost 1 afterwards, so start and
//     goal positions stay traversable whatever the dice said.
//
// Determinism:
//
//   - A fixed Seed replays the exact same grid: the generator owns its
//     rand.Rand and fills in a stable order.
//
// Errors:
//
//   - ErrBadConfig: non-positive dimensions, MaxCost < 1, ObstacleRatio
//     outside [0, 1), or an Open cell outside the grid.
package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/AndKlet/gridpath/gridmap"
)

// ErrBadConfig indicates a Config field outside its documented domain.
var ErrBadConfig = errors.New("mapgen: invalid generator configuration")

// Default knobs (named, no magic numbers).
const (
	defaultMaxCost       = 4    // matches the '.' ',' ':' ';' display range
	defaultObstacleRatio = 0.25 // quarter of the map is wall, on average
	defaultSeed          = 1    // reproducible unless overridden
)

// Config aggregates all generator knobs.
//
// Rows, Cols     – grid dimensions, each ≥ 1.
// MaxCost        – inclusive upper bound for traversal costs, ≥ 1.
// ObstacleRatio  – probability a cell becomes an obstacle, in [0, 1).
// Seed           – rand source seed; equal seeds replay equal grids.
// Open           – cells forced to cost 1 after the random fill.
type Config struct {
	Rows, Cols    int
	MaxCost       int
	ObstacleRatio float64
	Seed          int64
	Open          []gridmap.Pos
}

// DefaultConfig returns a Config with deterministic defaults for the
// given dimensions: MaxCost 4, ObstacleRatio 0.25, Seed 1, no forced-open
// cells.
func DefaultConfig(rows, cols int) Config {
	return Config{
		Rows:          rows,
		Cols:          cols,
		MaxCost:       defaultMaxCost,
		ObstacleRatio: defaultObstacleRatio,
		Seed:          defaultSeed,
	}
}

// Generate builds a random cost grid from cfg.
//
// Validation (in order):
//  1. Rows ≥ 1 and Cols ≥ 1.
//  2. MaxCost ≥ 1.
//  3. ObstacleRatio ∈ [0, 1).
//  4. Every Open cell inside the grid.
//
// Complexity: O(Rows×Cols) time and memory.
func Generate(cfg Config) ([][]int, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("%w: dimensions %d×%d (each must be ≥ 1)", ErrBadConfig, cfg.Rows, cfg.Cols)
	}
	if cfg.MaxCost < gridmap.MinCost {
		return nil, fmt.Errorf("%w: MaxCost %d (must be ≥ %d)", ErrBadConfig, cfg.MaxCost, gridmap.MinCost)
	}
	if cfg.ObstacleRatio < 0 || cfg.ObstacleRatio >= 1 {
		return nil, fmt.Errorf("%w: ObstacleRatio %v (must be in [0,1))", ErrBadConfig, cfg.ObstacleRatio)
	}
	var p gridmap.Pos
	for _, p = range cfg.Open {
		if p.Row < 0 || p.Row >= cfg.Rows || p.Col < 0 || p.Col >= cfg.Cols {
			return nil, fmt.Errorf("%w: open cell %v outside %d×%d grid", ErrBadConfig, p, cfg.Rows, cfg.Cols)
		}
	}

	// 2) Seeded source; the generator owns its RNG for reproducibility.
	rng := rand.New(rand.NewSource(cfg.Seed))

	// 3) Fill in deterministic row-major order.
	grid := make([][]int, cfg.Rows)
	var row []int
	for r := 0; r < cfg.Rows; r++ {
		row = make([]int, cfg.Cols)
		for c := 0; c < cfg.Cols; c++ {
			if rng.Float64() < cfg.ObstacleRatio {
				row[c] = gridmap.Obstacle
			} else {
				row[c] = gridmap.MinCost + rng.Intn(cfg.MaxCost)
			}
		}
		grid[r] = row
	}

	// 4) Force the requested cells open.
	for _, p = range cfg.Open {
		grid[p.Row][p.Col] = gridmap.MinCost
	}

	return grid, nil
}
