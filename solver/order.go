package solver

import (
	"fmt"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
	"github.com/solverlab/sudoku/puzzle"
)

// orderKind discriminates the closed set of cell-ordering modes.
type orderKind uint8

const (
	orderRowMajor orderKind = iota
	orderRandomRowCol
	orderRandomCells
	orderExplicitRowCol
	orderExplicitCells
)

// Strategy selects the sequence in which the search visits the 81 cells.
// The zero value is the row-major default. Ordering is independent of board
// content; changing it reshapes the search tree without changing which
// solutions exist.
type Strategy struct {
	kind     orderKind
	rowOrder [9]int
	colOrder [9]int
	cells    []Cell
}

// RowMajor visits cells (0,0) through (8,8) in natural reading order.
func RowMajor() Strategy {
	return Strategy{kind: orderRowMajor}
}

// RandomRowCol shuffles the nine row indices and the nine column indices
// independently and crosses them in shuffled-row-major order. The row-major
// substructure within the cross product is preserved.
func RandomRowCol() Strategy {
	return Strategy{kind: orderRandomRowCol}
}

// RandomCells shuffles all 81 cells with no row or column grouping.
func RandomCells() Strategy {
	return Strategy{kind: orderRandomCells}
}

// ExplicitRowCol crosses caller-supplied row and column permutations.
func ExplicitRowCol(rows, cols [9]int) Strategy {
	return Strategy{kind: orderExplicitRowCol, rowOrder: rows, colOrder: cols}
}

// ExplicitCells visits exactly the supplied cell sequence.
func ExplicitCells(cells []Cell) Strategy {
	return Strategy{kind: orderExplicitCells, cells: append([]Cell(nil), cells...)}
}

func (s Strategy) String() string {
	switch s.kind {
	case orderRowMajor:
		return "row-major"
	case orderRandomRowCol:
		return "random-rowcol"
	case orderRandomCells:
		return "random-cells"
	case orderExplicitRowCol:
		return "explicit-rowcol"
	case orderExplicitCells:
		return "explicit-cells"
	default:
		return fmt.Sprintf("unknown(%d)", s.kind)
	}
}

var identityOrder = [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}

// crossOrder builds the cell sequence visiting rows[i] x cols[j] with j
// varying fastest.
func crossOrder(rows, cols [9]int) []Cell {
	cells := make([]Cell, 0, puzzle.CellCount)
	for _, r := range rows {
		for _, c := range cols {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}

// cellOrder materializes the strategy into a concrete 81-cell sequence,
// drawing from rng for the randomized variants. Explicit variants are
// validated; generated ones are bijections by construction.
func (s Strategy) cellOrder(rng *rand.Rand) ([]Cell, error) {
	switch s.kind {
	case orderRowMajor:
		return crossOrder(identityOrder, identityOrder), nil

	case orderRandomRowCol:
		rows, cols := identityOrder, identityOrder
		rng.Shuffle(9, func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		rng.Shuffle(9, func(i, j int) { cols[i], cols[j] = cols[j], cols[i] })
		return crossOrder(rows, cols), nil

	case orderRandomCells:
		cells := crossOrder(identityOrder, identityOrder)
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		return cells, nil

	case orderExplicitRowCol:
		cells := crossOrder(s.rowOrder, s.colOrder)
		// A duplicate or out-of-range index in either permutation surfaces
		// as a malformed crossed order.
		if err := checkOrder(cells); err != nil {
			return nil, err
		}
		return cells, nil

	case orderExplicitCells:
		cells := append([]Cell(nil), s.cells...)
		if err := checkOrder(cells); err != nil {
			return nil, err
		}
		return cells, nil

	default:
		return nil, fmt.Errorf("unknown order strategy %d", s.kind)
	}
}

// checkOrder verifies that cells is a bijection onto the 81 board positions.
// The search has no defense against a malformed order, so this runs before
// any search starts.
func checkOrder(cells []Cell) error {
	if len(cells) != puzzle.CellCount {
		return fmt.Errorf("cell order has %d cells, expected %d", len(cells), puzzle.CellCount)
	}
	seen := bitset.New(puzzle.CellCount)
	for i, cl := range cells {
		if cl.Row < 0 || cl.Row >= puzzle.Side || cl.Col < 0 || cl.Col >= puzzle.Side {
			return fmt.Errorf("cell order entry %d is (%d,%d), outside the grid", i, cl.Row, cl.Col)
		}
		idx := uint(cl.Row*puzzle.Side + cl.Col)
		if seen.Test(idx) {
			return fmt.Errorf("cell order visits (%d,%d) twice", cl.Row, cl.Col)
		}
		seen.Set(idx)
	}
	return nil
}
