package solver

import (
	"github.com/solverlab/sudoku/puzzle"
)

// searchCtx is the mutable state of one search invocation. It is created by
// Find, exclusively owned by that call, and never shared: the recursion
// borrows it frame by frame.
type searchCtx struct {
	grid      puzzle.Grid
	m         masks
	order     []Cell
	findAll   bool
	stats     Stats
	solutions []puzzle.Grid
}

// run performs the depth-first search from position idx in the cell order.
// depth is the number of digits this invocation has placed so far.
func (s *searchCtx) run(idx, depth int) {
	// Clue cells are not decision points; skip them without a node.
	for idx < len(s.order) && s.grid[s.order[idx].Row][s.order[idx].Col] != 0 {
		idx++
	}

	if idx == len(s.order) {
		// Appending the grid copies it; the scratch board keeps mutating.
		s.solutions = append(s.solutions, s.grid)
		s.stats.Leaves++
		return
	}

	cell := s.order[idx]
	s.stats.Nodes++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
	s.stats.WidthByDepth[depth]++

	anyFeasible := false
	for d := uint8(1); d <= 9; d++ {
		if !s.m.canPlace(cell.Row, cell.Col, d) {
			continue
		}
		anyFeasible = true

		s.grid[cell.Row][cell.Col] = d
		s.m.set(cell.Row, cell.Col, d)

		s.run(idx+1, depth+1)

		if !s.findAll && len(s.solutions) > 0 {
			// Early stop: the placement stays in the scratch grid and masks
			// on the way out. Only the solution copy is read after Find
			// returns, and undoing here would inflate the backtrack count.
			return
		}

		s.grid[cell.Row][cell.Col] = 0
		s.m.clear(cell.Row, cell.Col, d)
		s.stats.Backtracks++
	}

	if !anyFeasible {
		// Dead end: no digit fits this cell.
		s.stats.Leaves++
	}
}
