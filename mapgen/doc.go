// Package mapgen generates seeded random cost grids for gridpath.
//
// What:
//
//   - Generate fills a Rows×Cols grid in deterministic row-major order:
//     each cell independently becomes an Obstacle with probability
//     ObstacleRatio, otherwise a uniform cost in [1, MaxCost].
//   - Config.Open pins chosen cells to cost 1, so start and goal
//     positions stay walkable whatever the ratio.
//   - Equal seeds replay identical grids.
//
// Why:
//
//   - Benchmarks and property tests need unbounded map variety with
//     exact reproducibility.
//   - The CLI's generate command builds practice maps from it.
//
// Complexity:
//
//   - Generate: O(Rows×Cols) time and memory.
//
// Errors:
//
//   - ErrBadConfig: non-positive dimensions, MaxCost < 1, ObstacleRatio
//     outside [0,1), or an Open cell outside the grid.
package mapgen
