package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solverlab/sudoku/puzzle"
)

func TestRowMajorOrder(t *testing.T) {
	assert := require.New(t)

	order, err := RowMajor().cellOrder(rand.New(rand.NewSource(0)))
	assert.NoError(err)
	assert.Len(order, puzzle.CellCount)
	for i, cell := range order {
		assert.Equal(Cell{Row: i / puzzle.Side, Col: i % puzzle.Side}, cell)
	}
}

func TestGeneratedOrdersAreBijections(t *testing.T) {
	assert := require.New(t)

	strategies := []Strategy{RowMajor(), RandomRowCol(), RandomCells()}
	for _, s := range strategies {
		order, err := s.cellOrder(rand.New(rand.NewSource(7)))
		assert.NoError(err, s.String())
		assert.NoError(checkOrder(order), s.String())
	}
}

func TestRandomRowColKeepsRowRuns(t *testing.T) {
	assert := require.New(t)

	order, err := RandomRowCol().cellOrder(rand.New(rand.NewSource(3)))
	assert.NoError(err)

	// The cross product visits each shuffled row as a run of nine cells
	// sharing that row, columns in the same shuffled sequence each time.
	for run := 0; run < puzzle.Side; run++ {
		row := order[run*puzzle.Side].Row
		for i := 0; i < puzzle.Side; i++ {
			assert.Equal(row, order[run*puzzle.Side+i].Row)
			assert.Equal(order[i].Col, order[run*puzzle.Side+i].Col)
		}
	}
}

func TestSeededOrdersAreDeterministic(t *testing.T) {
	assert := require.New(t)

	for _, s := range []Strategy{RandomRowCol(), RandomCells()} {
		a, err := s.cellOrder(rand.New(rand.NewSource(99)))
		assert.NoError(err)
		b, err := s.cellOrder(rand.New(rand.NewSource(99)))
		assert.NoError(err)
		assert.Equal(a, b, s.String())

		c, err := s.cellOrder(rand.New(rand.NewSource(100)))
		assert.NoError(err)
		assert.NotEqual(a, c, s.String())
	}
}

func TestExplicitRowCol(t *testing.T) {
	assert := require.New(t)

	reversed := [9]int{8, 7, 6, 5, 4, 3, 2, 1, 0}
	order, err := ExplicitRowCol(reversed, identityOrder).cellOrder(nil)
	assert.NoError(err)
	assert.Equal(Cell{Row: 8, Col: 0}, order[0])
	assert.Equal(Cell{Row: 0, Col: 8}, order[80])
	assert.NoError(checkOrder(order))

	// A duplicated row index makes the crossed order visit cells twice.
	_, err = ExplicitRowCol([9]int{0, 0, 2, 3, 4, 5, 6, 7, 8}, identityOrder).cellOrder(nil)
	assert.ErrorContains(err, "twice")
}

func TestExplicitCellsValidation(t *testing.T) {
	assert := require.New(t)

	_, err := ExplicitCells(make([]Cell, 80)).cellOrder(nil)
	assert.ErrorContains(err, "expected 81")

	cells := crossOrder(identityOrder, identityOrder)
	cells[13] = Cell{Row: 9, Col: 0}
	_, err = ExplicitCells(cells).cellOrder(nil)
	assert.ErrorContains(err, "outside the grid")
}

func TestExplicitCellsCopiesInput(t *testing.T) {
	assert := require.New(t)

	cells := crossOrder(identityOrder, identityOrder)
	s := ExplicitCells(cells)
	cells[0] = Cell{Row: 8, Col: 8} // corrupt the caller's slice afterwards

	order, err := s.cellOrder(nil)
	assert.NoError(err)
	assert.Equal(Cell{Row: 0, Col: 0}, order[0])
}

func TestStrategyString(t *testing.T) {
	assert := require.New(t)
	assert.Equal("row-major", RowMajor().String())
	assert.Equal("random-rowcol", RandomRowCol().String())
	assert.Equal("random-cells", RandomCells().String())
	assert.Equal("explicit-rowcol", ExplicitRowCol(identityOrder, identityOrder).String())
	assert.Equal("explicit-cells", ExplicitCells(nil).String())
}
