// Package astar finds least-cost routes on weighted 2D grid maps with
// obstacles, using A* search with selectable heuristics.
//
// What:
//
//   - Search runs A* from start to goal over a gridmap.GridMap: 4-connected
//     movement, per-cell entry costs, obstacle cells excluded outright.
//   - A flat node arena plus a lazy decrease-key frontier keep the search
//     allocation-light; parent links are arena indices, not pointers.
//   - Admission is governed by a best-known-cost mapping: a position
//     re-enters the frontier only on strict cost improvement.
//   - Results are deterministic: fixed neighbor order and a fully ordered
//     frontier (f, then g, then insertion sequence).
//
// Why:
//
//   - Game AI: unit movement over terrain with per-tile costs.
//   - Simulations: repeated re-planning against a moving target.
//   - Benchmarking heuristics: Manhattan vs squared Euclidean on one API.
//
// Complexity:
//
//   - Search: O(W·H · log(W·H)) time, O(W·H) memory.
//   - HeuristicMode.Estimate: O(1).
//
// Options:
//
//   - WithHeuristic(mode): Manhattan (admissible, default) or
//     SquaredEuclidean (faster goal-ward pull; may return suboptimal paths).
//   - WithContext(ctx): cancellation, polled between pops.
//   - WithMaxExpansions(n): cap on settled nodes.
//
// Errors:
//
//   - ErrNilGridMap: nil map pointer.
//   - ErrUnknownHeuristic: mode outside the defined set.
//   - ErrExpansionLimit: the MaxExpansions cap fired.
//   - gridmap.ErrOutOfBounds / gridmap.ErrInvalidPosition (wrapped):
//     start or goal outside the grid or on an obstacle.
//
// An unreachable goal is NOT an error: Search returns Found=false with a
// nil Path and a nil error.
package astar
