package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const solvedGrid = "534678912" +
	"672195348" +
	"198342567" +
	"859761423" +
	"426853791" +
	"713924856" +
	"961537284" +
	"287419635" +
	"345286179"

const mediumGrid = "..3.2.6.." +
	"9..3.5..1" +
	"..18.64.." +
	"..81.29.." +
	"7.......8" +
	"..67.82.." +
	"..26.95.." +
	"8..2.3..9" +
	"..5.1.3.."

func TestSet(t *testing.T) {
	assert := require.New(t)

	var g Grid
	assert.NoError(g.Set(0, 0, 5))
	assert.Equal(uint8(5), g[0][0])

	assert.Error(g.Set(-1, 0, 5))
	assert.Error(g.Set(0, 9, 5))
	assert.Error(g.Set(9, 0, 5))
	assert.Error(g.Set(0, 0, 0))
	assert.Error(g.Set(0, 0, 10))
}

func TestClues(t *testing.T) {
	assert := require.New(t)

	var g Grid
	assert.Zero(g.Clues())
	assert.Equal(32, MustParse(mediumGrid).Clues())
	assert.Equal(81, MustParse(solvedGrid).Clues())
}

func TestStringRoundTrip(t *testing.T) {
	assert := require.New(t)

	g := MustParse(mediumGrid)
	assert.Equal(mediumGrid, g.String())

	// '0' cells normalize to '.'.
	g2 := MustParse(strings.ReplaceAll(mediumGrid, ".", "0"))
	assert.Equal(mediumGrid, g2.String())
}

func TestPretty(t *testing.T) {
	assert := require.New(t)

	out := MustParse(mediumGrid).Pretty()
	assert.Equal(2, strings.Count(out, "------+-------+------"))
	assert.Contains(out, "_")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(lines, 11) // 9 rows + 2 separators
}

func TestSolved(t *testing.T) {
	assert := require.New(t)

	assert.True(MustParse(solvedGrid).Solved())
	assert.False(MustParse(mediumGrid).Solved())

	var empty Grid
	assert.False(empty.Solved())

	// Duplicate in a row.
	g := MustParse(solvedGrid)
	g[0][0] = g[0][1]
	assert.False(g.Solved())

	// Swapping two unequal cells inside one box breaks their rows.
	g = MustParse(solvedGrid)
	g[4][4], g[3][3] = g[3][3], g[4][4]
	assert.False(g.Solved())
}
