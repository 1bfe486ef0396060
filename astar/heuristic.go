// heuristic.go implements the closed set of remaining-cost estimators.
package astar

import "github.com/AndKlet/gridpath/gridmap"

// Valid reports whether the mode is one of the defined constants.
// Search rejects invalid modes before any expansion.
func (m HeuristicMode) Valid() bool {
	return m == Manhattan || m == SquaredEuclidean
}

// String names the mode for logs and flag parsing.
func (m HeuristicMode) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case SquaredEuclidean:
		return "euclidean2"
	default:
		return "unknown"
	}
}

// Estimate returns the heuristic distance from a to b.
// Estimate is pure and symmetric in its arguments.
//
// Callers must validate the mode first (see Valid); an invalid mode here
// is a programming defect and panics.
// Complexity: O(1).
func (m HeuristicMode) Estimate(a, b gridmap.Pos) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	switch m {
	case Manhattan:
		return dr + dc
	case SquaredEuclidean:
		return dr*dr + dc*dc
	}
	panic("astar: Estimate called with invalid HeuristicMode")
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
