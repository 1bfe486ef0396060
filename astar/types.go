// Package astar defines core types and configuration options
// for A* shortest-path search on weighted grid maps.
//
// A* computes the minimum-cost path between two cells of a
// gridmap.GridMap by expanding positions in order of estimated total
// cost f = g + h, where g is the exact cost from the start and h a
// heuristic estimate of the remaining cost to the goal.
//
// Complexity:
//
//	– Time:  O(W·H · log(W·H))   where W×H is the grid size
//	   • Each cell is settled at most once (W·H pops).
//	   • Each admission may push a fresh frontier entry (lazy decrease-key).
//	   • Each heap operation costs O(log N), N ≤ number of pushes.
//	– Space: O(W·H)
//	   • Flat best-cost and settled slices sized to the grid.
//	   • The node arena grows with the number of admitted states.
//
// Options:
//
//	– WithHeuristic:     Manhattan (default, admissible) or SquaredEuclidean.
//	– WithContext:       cancellation checked between pops.
//	– WithMaxExpansions: hard cap on settled nodes (safety valve).
//
// Errors (sentinel):
//
//	– ErrNilGridMap       if the provided map pointer is nil.
//	– ErrUnknownHeuristic if the heuristic mode is not a defined constant.
//	– ErrExpansionLimit   if WithMaxExpansions was exceeded.
//	– ErrBadMaxExpansions if WithMaxExpansions receives a negative cap.
//	– start/goal violations wrap gridmap.ErrOutOfBounds or
//	  gridmap.ErrInvalidPosition.
//
// "No path exists" is NOT an error: Search reports it via Result.Found
// with a nil Path, distinct from a found zero-length route.
package astar

import (
	"context"
	"errors"

	"github.com/AndKlet/gridpath/gridmap"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGridMap indicates that a nil *gridmap.GridMap was passed to Search.
	ErrNilGridMap = errors.New("astar: grid map is nil")

	// ErrUnknownHeuristic indicates a HeuristicMode outside the defined set.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic mode")

	// ErrExpansionLimit indicates the search settled more nodes than the
	// configured MaxExpansions cap allows.
	ErrExpansionLimit = errors.New("astar: expansion limit exceeded")

	// ErrBadMaxExpansions indicates a negative MaxExpansions cap, which is
	// not a meaningful expansion allowance.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// HeuristicMode selects the remaining-cost estimator. The set is closed:
// dispatch happens through a single strategy function, never through
// runtime polymorphism.
type HeuristicMode int

const (
	// Manhattan estimates |Δrow| + |Δcol|. It never overestimates on a
	// 4-connected grid with costs ≥ 1, so paths found with it are optimal.
	Manhattan HeuristicMode = iota

	// SquaredEuclidean estimates Δrow² + Δcol². It grows faster than the
	// true remaining cost and therefore overestimates on long routes: the
	// search settles fewer nodes but may return a suboptimal path. Kept as
	// an intentional speed/accuracy trade-off.
	SquaredEuclidean
)

// Options configures the behavior of a Search call.
//
// Heuristic     – remaining-cost estimator (default Manhattan).
// Ctx           – cancellation context, checked once per frontier pop.
// MaxExpansions – cap on settled nodes; 0 disables the cap.
type Options struct {
	Heuristic     HeuristicMode
	Ctx           context.Context
	MaxExpansions int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic selects the remaining-cost estimator.
// Unknown modes are rejected by Search with ErrUnknownHeuristic.
func WithHeuristic(mode HeuristicMode) Option {
	return func(o *Options) {
		o.Heuristic = mode
	}
}

// WithContext attaches a cancellation context to the search. The context
// is polled between frontier pops, so cancellation latency is one
// expansion. A nil ctx falls back to context.Background().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			ctx = context.Background()
		}
		o.Ctx = ctx
	}
}

// WithMaxExpansions caps how many nodes the search may settle before
// giving up with ErrExpansionLimit. Zero disables the cap.
// Must pass a non-negative value; negative values cause ErrBadMaxExpansions.
func WithMaxExpansions(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = limit
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-options overrides.
//
// Defaults:
//   - Heuristic:     Manhattan (admissible; optimal paths).
//   - Ctx:           context.Background() (no cancellation).
//   - MaxExpansions: 0 (no cap).
func DefaultOptions() Options {
	return Options{
		Heuristic:     Manhattan,
		Ctx:           context.Background(),
		MaxExpansions: 0,
	}
}

// Result carries the outcome of one Search call.
//
// Path     – cells from start to goal inclusive; nil when Found is false.
// Cost     – sum of the costs of every entered cell; the start cell's own
// cost is never counted, so a one-cell route costs 0.
// Expanded – number of settled nodes, for diagnostics and budgets.
// Found    – whether a route exists. A false Found with a nil error is a
// legitimate outcome, not a failure.
type Result struct {
	Path     []gridmap.Pos
	Cost     int
	Expanded int
	Found    bool
}
