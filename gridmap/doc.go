// Package gridmap models weighted 2D cost maps for grid pathfinding,
// including obstacles, a display overlay, and a scripted moving goal.
//
// What:
//
//   - GridMap wraps a rectangular [][]int cost grid: every cell is either
//     a traversal cost ≥ 1 or the Obstacle sentinel (-1).
//   - The cost grid is deep-copied at construction and immutable after;
//     display markers (start, goal, path) live in a separate overlay that
//     searches never read.
//   - An optional end goal turns the goal into a scripted moving target:
//     AdvanceGoal relocates it one step toward the end goal on every
//     fourth call (row steps before column steps, obstacle-blind).
//
// Why:
//
//   - Game maps: terrain with per-cell movement costs and walls.
//   - Robotics sandboxes: replanning against a drifting target.
//   - Teaching: the overlay keeps "what the search sees" and "what the
//     screen shows" provably separate.
//
// Complexity:
//
//   - New / Clone / Costs / Symbols: O(rows×cols).
//   - CostAt / InBounds / IsObstacle / AdvanceGoal: O(1).
//
// Options:
//
//   - WithEndGoal(p): configure the moving goal's final destination.
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a cell is neither Obstacle nor a cost ≥ 1.
//   - ErrOutOfBounds: a coordinate lies outside the grid extents.
//   - ErrInvalidPosition: start/goal/end goal placed on an obstacle.
//
// GridMap is not synchronized; share nothing or use Clone per goroutine.
package gridmap
