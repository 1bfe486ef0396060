// Package gridpath is a toolkit for least-cost routing on weighted 2D
// grids — from the cost-map data model to A* search, map files, and
// rendering.
//
// 🚀 What is gridpath?
//
//	A small, focused library (plus CLI) that brings together:
//		• Cost maps: rectangular integer grids with obstacles and a display overlay
//		• A* search: min-heap frontier, Manhattan or squared-Euclidean heuristics
//		• Moving goal: a scripted target that steps toward a final destination
//		• Map files: CSV load/save with strict validation
//		• Map generation: seeded, reproducible random cost grids
//		• Rendering: PNG snapshots and a live terminal simulation
//
// ✨ Why choose gridpath?
//
//   - Deterministic – fixed expansion order and tie-breaks, seeded generators
//   - Honest results – "no path" is a result, not an error
//   - Clear contracts – sentinel errors, validated inputs, immutable cost grids
//   - Batteries included – CLI for solving, simulating, and generating maps
//
// Under the hood, everything is organized under focused subpackages:
//
//	gridmap/      — cost grid, obstacles, display overlay, moving goal
//	astar/        — heuristics, frontier, and the A* search itself
//	mapfile/      — CSV grid loading and saving
//	mapgen/       — seeded random grid generation
//	render/       — PNG rendering of symbol grids
//	cmd/gridpath/ — the command-line interface
//
// Quick ASCII example:
//
//	 S  .  .
//	 .  #  .
//	 .  .  G
//
//	a 3×3 map: start, one obstacle, goal. A* routes around the wall.
//
// Dive into the per-package docs for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/AndKlet/gridpath
package gridpath
