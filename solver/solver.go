// Package solver implements an instrumented backtracking search for 9x9
// sudoku puzzles.
//
// The search is a depth-first traversal over a fixed visitation order of the
// 81 cells, pruned by bitmask feasibility checks on rows, columns and boxes.
// The visitation order is pluggable (see Strategy); changing it reshapes the
// search tree without changing which solutions exist, which is what makes
// the collected Stats useful for ordering experiments.
//
// Each call to Find owns its board, masks, order and statistics for the
// duration of the call; invocations are independent and safe to run from
// different goroutines.
package solver

import (
	"math/rand"
	"time"

	"github.com/solverlab/sudoku/debug"
	"github.com/solverlab/sudoku/logger"
	"github.com/solverlab/sudoku/puzzle"
)

// Options configure a single search invocation.
type Options struct {
	// Strategy selects the cell visitation order. The zero value is
	// row-major.
	Strategy Strategy
	// FindAll exhausts the whole search tree instead of stopping at the
	// first solution.
	FindAll bool
	// Seed, when non-nil, seeds the source used by randomized strategies so
	// that a given seed reproduces an identical cell order and therefore
	// identical statistics.
	Seed *int64
}

// Result is the outcome of one search: the solutions in discovery order and
// the final statistics.
type Result struct {
	Solutions []puzzle.Grid
	Stats     Stats
}

// Solved reports whether at least one solution was found.
func (r *Result) Solved() bool {
	return len(r.Solutions) > 0
}

// First returns the first solution found, if any.
func (r *Result) First() (puzzle.Grid, bool) {
	if len(r.Solutions) == 0 {
		return puzzle.Grid{}, false
	}
	return r.Solutions[0], true
}

// Find searches g for solutions. The given grid is the puzzle's clues; it is
// copied, never mutated. Find returns an error only for a malformed explicit
// order; an unsolvable puzzle is a normal result with zero solutions.
func Find(g puzzle.Grid, opts Options) (*Result, error) {
	var seed int64
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	order, err := opts.Strategy.cellOrder(rng)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sc := &searchCtx{
		grid:    g,
		m:       masksOf(&g),
		order:   order,
		findAll: opts.FindAll,
	}
	sc.run(0, 0)

	sc.stats.SolutionsFound = len(sc.solutions)
	sc.stats.Duration = time.Since(start)
	debug.Assert(sc.stats.Consistent(), "tree width histogram disagrees with node count")

	log := logger.Logger()
	log.Debug().
		Stringer("order", opts.Strategy).
		Int("solutions", sc.stats.SolutionsFound).
		Int("nodes", sc.stats.Nodes).
		Int("backtracks", sc.stats.Backtracks).
		Dur("took", sc.stats.Duration).
		Msg("search complete")

	return &Result{Solutions: sc.solutions, Stats: sc.stats}, nil
}

// FindOne searches for the first solution under the given strategy, stopping
// as soon as one is found.
func FindOne(g puzzle.Grid, strategy Strategy) (*Result, error) {
	return Find(g, Options{Strategy: strategy})
}

// FindAll exhaustively searches for every solution under the given strategy.
func FindAll(g puzzle.Grid, strategy Strategy) (*Result, error) {
	return Find(g, Options{Strategy: strategy, FindAll: true})
}
