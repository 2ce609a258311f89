// Package puzzle holds the 9x9 sudoku grid representation used across the
// module: parsing from the common 81-character and row-per-line text forms,
// rendering, and full-solution validation.
//
// A Grid is a plain value type. Copying a Grid copies the board, which is
// what the solver relies on when it records solutions.
package puzzle

import (
	"fmt"
	"strings"
)

const (
	// Side is the side length of the board.
	Side = 9
	// CellCount is the number of cells on the board.
	CellCount = Side * Side
)

// Grid is a 9x9 sudoku board. 0 marks an empty cell, 1..9 a placed digit.
type Grid [Side][Side]uint8

// Set places digit d at (r, c). It rejects out-of-range coordinates and
// digits; it does not check sudoku legality, which is the solver's job.
func (g *Grid) Set(r, c int, d uint8) error {
	if r < 0 || r >= Side || c < 0 || c >= Side {
		return fmt.Errorf("cell (%d,%d) outside the %dx%d grid", r, c, Side, Side)
	}
	if d < 1 || d > 9 {
		return fmt.Errorf("digit %d at (%d,%d) out of range 1-9", d, r, c)
	}
	g[r][c] = d
	return nil
}

// Clues returns the number of filled cells.
func (g Grid) Clues() int {
	n := 0
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid in the 81-character form, '.' for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + g[r][c])
			}
		}
	}
	return sb.String()
}

// Pretty renders the grid as nine rows with box separators, '_' for empty
// cells.
func (g Grid) Pretty() string {
	var sb strings.Builder
	for r := 0; r < Side; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < Side; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteString("| ")
			}
			if g[r][c] == 0 {
				sb.WriteString("_ ")
			} else {
				sb.WriteByte('0' + g[r][c])
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Solved reports whether the grid is completely filled and every row, column
// and box contains each digit 1..9 exactly once.
func (g Grid) Solved() bool {
	for r := 0; r < Side; r++ {
		var seen uint16
		for c := 0; c < Side; c++ {
			d := g[r][c]
			if d == 0 || seen&(1<<d) != 0 {
				return false
			}
			seen |= 1 << d
		}
	}
	for c := 0; c < Side; c++ {
		var seen uint16
		for r := 0; r < Side; r++ {
			d := g[r][c]
			if d == 0 || seen&(1<<d) != 0 {
				return false
			}
			seen |= 1 << d
		}
	}
	for br := 0; br < Side; br += 3 {
		for bc := 0; bc < Side; bc += 3 {
			var seen uint16
			for r := br; r < br+3; r++ {
				for c := bc; c < bc+3; c++ {
					d := g[r][c]
					if d == 0 || seen&(1<<d) != 0 {
						return false
					}
					seen |= 1 << d
				}
			}
		}
	}
	return true
}
