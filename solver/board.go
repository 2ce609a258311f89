package solver

import (
	"github.com/solverlab/sudoku/debug"
	"github.com/solverlab/sudoku/puzzle"
)

// Cell addresses one of the 81 board positions.
type Cell struct {
	Row, Col int
}

// digitBit returns the single-bit mask for digit d. Bit 0 is unused; bits
// 1..9 map to digits 1..9.
func digitBit(d uint8) uint16 {
	return 1 << d
}

// boxOf maps a cell to its 3x3 box index, row-major over boxes.
func boxOf(r, c int) int {
	return r/3*3 + c/3
}

// masks tracks, per row, column and box, which digits are already placed.
type masks struct {
	rows, cols, boxes [9]uint16
}

// masksOf builds the constraint masks for the filled cells of g. It does not
// detect illegal givens; a duplicated clue simply leaves its bit set once and
// the search fails to find a solution.
func masksOf(g *puzzle.Grid) masks {
	var m masks
	for r := 0; r < puzzle.Side; r++ {
		for c := 0; c < puzzle.Side; c++ {
			if d := g[r][c]; d != 0 {
				m.set(r, c, d)
			}
		}
	}
	return m
}

// canPlace reports whether digit d may be placed at (r, c) without violating
// row, column or box uniqueness. Pure and O(1); range checks are contract
// assertions, not runtime errors.
func (m *masks) canPlace(r, c int, d uint8) bool {
	debug.Assert(r >= 0 && r < 9 && c >= 0 && c < 9, "cell out of range")
	debug.Assert(d >= 1 && d <= 9, "digit out of range")
	b := digitBit(d)
	return m.rows[r]&b == 0 && m.cols[c]&b == 0 && m.boxes[boxOf(r, c)]&b == 0
}

func (m *masks) set(r, c int, d uint8) {
	b := digitBit(d)
	m.rows[r] |= b
	m.cols[c] |= b
	m.boxes[boxOf(r, c)] |= b
}

func (m *masks) clear(r, c int, d uint8) {
	b := digitBit(d)
	m.rows[r] &^= b
	m.cols[c] &^= b
	m.boxes[boxOf(r, c)] &^= b
}
