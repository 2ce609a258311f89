package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert := require.New(t)

	g, err := Parse(mediumGrid)
	assert.NoError(err)
	assert.Equal(uint8(3), g[0][2])
	assert.Equal(uint8(0), g[0][0])
	assert.Equal(uint8(9), g[1][0])
}

func TestParseIgnoresWhitespace(t *testing.T) {
	assert := require.New(t)

	spaced := mediumGrid[:27] + "\n" + mediumGrid[27:54] + " \t" + mediumGrid[54:] + "\n"
	g, err := Parse(spaced)
	assert.NoError(err)
	assert.Equal(mediumGrid, g.String())
}

func TestParseErrors(t *testing.T) {
	assert := require.New(t)

	_, err := Parse("123")
	assert.ErrorContains(err, "expected 81")

	_, err = Parse(mediumGrid + ".")
	assert.ErrorContains(err, "expected 81")

	bad := "x" + mediumGrid[1:]
	_, err = Parse(bad)
	assert.ErrorContains(err, `'x'`)
	assert.ErrorContains(err, "position 1")
}

func TestParseFile(t *testing.T) {
	assert := require.New(t)

	content := `5 3 _ _ 7 _ _ _ _
6 _ _ 1 9 5 _ _ _
_ 9 8 _ _ _ _ 6 _

8 _ _ _ 6 _ _ _ 3
4 _ _ 8 _ 3 _ _ 1
7 _ _ _ 2 _ _ _ 6
_ 6 _ _ _ _ 2 8 _
_ _ _ 4 1 9 _ _ 5
_ _ _ _ 8 _ _ 7 9
`
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	assert.NoError(os.WriteFile(path, []byte(content), 0o600))

	g, err := ParseFile(path)
	assert.NoError(err)
	assert.Equal(uint8(5), g[0][0])
	assert.Equal(uint8(0), g[0][2])
	assert.Equal(uint8(9), g[8][8])
	assert.Equal(30, g.Clues())
}

func TestParseFileErrors(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()

	_, err := ParseFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(err, "read puzzle file")

	short := filepath.Join(dir, "short.txt")
	assert.NoError(os.WriteFile(short, []byte("1 2 3 4 5 6 7 8 9\n"), 0o600))
	_, err = ParseFile(short)
	assert.ErrorContains(err, "only 1 rows")

	badRow := filepath.Join(dir, "badrow.txt")
	assert.NoError(os.WriteFile(badRow, []byte("1 2 3\n"), 0o600))
	_, err = ParseFile(badRow)
	assert.ErrorContains(err, "expected 9")

	badEntry := filepath.Join(dir, "badentry.txt")
	assert.NoError(os.WriteFile(badEntry, []byte("1 2 3 4 x 6 7 8 9\n"), 0o600))
	_, err = ParseFile(badEntry)
	assert.ErrorContains(err, `"x"`)
}

func TestMustParsePanics(t *testing.T) {
	assert := require.New(t)
	assert.Panics(func() { MustParse("not a puzzle") })
}
