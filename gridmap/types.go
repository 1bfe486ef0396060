// Package gridmap defines core types, options, and sentinel errors
// for the gridmap package of github.com/AndKlet/gridpath.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")

	// ErrBadCell indicates a cell value that is neither Obstacle nor a
	// positive traversal cost.
	ErrBadCell = errors.New("gridmap: cell values must be Obstacle or ≥ 1")

	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("gridmap: position outside grid extents")

	// ErrInvalidPosition indicates a start, goal, or end-goal coordinate
	// that coincides with an obstacle cell.
	ErrInvalidPosition = errors.New("gridmap: position coincides with an obstacle cell")
)

// Obstacle is the cell value that marks an impassable cell.
// Every other legal cell value is a traversal cost ≥ MinCost.
const (
	Obstacle = -1
	MinCost  = 1
)

// Display symbols used by Symbols, String, and the renderers.
// Costs 1–4 map to '.' ',' ':' ';' (light to heavy); larger costs
// render as their decimal digit up to 9, then SymbolDense.
const (
	SymbolObstacle = '#'
	SymbolStart    = 'S'
	SymbolGoal     = 'G'
	SymbolPath     = '*'
	SymbolDense    = '+'
)

// Pos is a grid coordinate in row-major convention:
// Row selects the horizontal line, Col the cell within it.
type Pos struct {
	Row, Col int
}

// String renders the position as "(row,col)" for errors and logs.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Options configures GridMap construction.
//
// EndGoal    – final destination of the scripted moving goal.
// HasEndGoal – whether EndGoal was supplied; without it AdvanceGoal is a no-op.
type Options struct {
	EndGoal    Pos
	HasEndGoal bool
}

// Option represents a functional option for configuring a GridMap.
type Option func(*Options)

// WithEndGoal supplies the final destination of the moving goal.
// The position is validated by New together with start and goal.
func WithEndGoal(p Pos) Option {
	return func(o *Options) {
		o.EndGoal = p
		o.HasEndGoal = true
	}
}

// DefaultOptions returns an Options struct with no end goal set.
// Use this as a starting point for functional-options overrides.
func DefaultOptions() Options {
	return Options{}
}

// SymbolFor maps a cell value to its display symbol: Obstacle to
// SymbolObstacle, costs 1–4 to the weight glyphs, 5–9 to their decimal
// digit, and anything heavier to SymbolDense.
func SymbolFor(value int) rune {
	switch {
	case value == Obstacle:
		return SymbolObstacle
	case value == 1:
		return '.'
	case value == 2:
		return ','
	case value == 3:
		return ':'
	case value == 4:
		return ';'
	case value >= 5 && value <= 9:
		return rune('0' + value)
	default:
		return SymbolDense
	}
}
