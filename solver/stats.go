package solver

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/solverlab/sudoku/puzzle"
)

// Stats records the shape of one backtracking search tree. The engine writes
// it during the search; afterwards it is read-only.
//
// Nodes counts decision points only: cells already holding a clue are skipped
// without a node. Leaves counts terminal points, both solutions and dead
// ends. WidthByDepth has one slot per recursion depth; its sum must equal
// Nodes for every completed search.
type Stats struct {
	SolutionsFound int
	Duration       time.Duration
	MaxDepth       int
	Nodes          int
	Backtracks     int
	Leaves         int
	WidthByDepth   [puzzle.CellCount]int
}

// DeadEndLeaves returns the number of leaves that are not solutions.
func (s *Stats) DeadEndLeaves() int {
	if s.Leaves < s.SolutionsFound {
		return 0
	}
	return s.Leaves - s.SolutionsFound
}

// LeafRatio returns leaves / nodes, or 0 when no node was explored. A higher
// ratio means more of the explored tree was terminal.
func (s *Stats) LeafRatio() float64 {
	if s.Nodes == 0 {
		return 0
	}
	return float64(s.Leaves) / float64(s.Nodes)
}

// SolutionLeafPercent returns the percentage of leaves that are solutions,
// or 0 when there are no leaves.
func (s *Stats) SolutionLeafPercent() float64 {
	if s.Leaves == 0 {
		return 0
	}
	return float64(s.SolutionsFound) / float64(s.Leaves) * 100
}

// BranchingLevels returns the number of depths at which at least one node was
// visited.
func (s *Stats) BranchingLevels() int {
	n := 0
	for _, w := range s.WidthByDepth {
		if w > 0 {
			n++
		}
	}
	return n
}

// AverageBranchingFactor returns nodes per branching level, or 0 when the
// tree is empty.
func (s *Stats) AverageBranchingFactor() float64 {
	levels := s.BranchingLevels()
	if levels == 0 {
		return 0
	}
	return float64(s.Nodes) / float64(levels)
}

// MaxTreeWidth returns the largest per-depth node count and the first depth
// at which it occurs.
func (s *Stats) MaxTreeWidth() (width, depth int) {
	for d, w := range s.WidthByDepth {
		if w > width {
			width, depth = w, d
		}
	}
	return width, depth
}

// NodesFromWidths re-derives the node count from the width histogram.
func (s *Stats) NodesFromWidths() int {
	n := 0
	for _, w := range s.WidthByDepth {
		n += w
	}
	return n
}

// Consistent reports whether the width histogram sums to the tracked node
// count. This must hold for every completed search; a violation indicates an
// instrumentation bug, not a puzzle property.
func (s *Stats) Consistent() bool {
	return s.NodesFromWidths() == s.Nodes
}

// WriteAnalysis writes a human-readable report of the search tree shape,
// ending with a bar chart of node counts by depth.
func (s *Stats) WriteAnalysis(w io.Writer) error {
	maxWidth, maxWidthDepth := s.MaxTreeWidth()

	verification := "PASS"
	if !s.Consistent() {
		verification = "FAIL"
	}

	_, err := fmt.Fprintf(w, `=== Sudoku Search Tree Analysis ===
Summary:
  Solutions found: %d
  Search duration: %v
  Total nodes explored: %d
  Total leaves: %d (%d solutions, %d dead ends)
  Leaf ratio: %.2f%%
  Solution leaf percentage: %.6f%%
  Sum of tree widths: %d (verification: %s)
  Maximum tree width: %d at depth %d
  Maximum recursion depth: %d
  Backtracks: %d
`,
		s.SolutionsFound, s.Duration, s.Nodes,
		s.Leaves, s.SolutionsFound, s.DeadEndLeaves(),
		s.LeafRatio()*100, s.SolutionLeafPercent(),
		s.NodesFromWidths(), verification,
		maxWidth, maxWidthDepth,
		s.MaxDepth, s.Backtracks)
	if err != nil {
		return err
	}

	if err := s.writeBarChart(w); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, "=====================================")
	return err
}

const maxBarWidth = 50

// writeBarChart renders the non-zero entries of the width histogram, scaled
// to maxBarWidth characters.
func (s *Stats) writeBarChart(w io.Writer) error {
	maxWidth, _ := s.MaxTreeWidth()
	if maxWidth == 0 {
		_, err := fmt.Fprintln(w, "\nTree Width Distribution: (no data)")
		return err
	}

	if _, err := fmt.Fprintln(w, "\nTree Width Distribution (Bar Chart):"); err != nil {
		return err
	}

	numWidth := len(fmt.Sprint(maxWidth))
	scale := float64(maxBarWidth) / float64(maxWidth)

	for depth, width := range s.WidthByDepth {
		if width == 0 {
			continue
		}
		barLen := int(float64(width) * scale)
		if barLen < 1 {
			barLen = 1
		}
		if _, err := fmt.Fprintf(w, "  Depth %2d: %*d %s\n", depth, numWidth, width, strings.Repeat("█", barLen)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n  Scale: 1█ ≈ %.0f nodes\n", float64(maxWidth)/float64(maxBarWidth))
	return err
}
