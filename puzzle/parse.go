package puzzle

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Parse reads a grid from the compact 81-character form. Whitespace is
// ignored; '.' and '0' mark empty cells. Positions in error messages are
// 1-based, matching the usual dataset conventions.
func Parse(s string) (Grid, error) {
	var g Grid
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(cleaned) != CellCount {
		return g, fmt.Errorf("puzzle has %d characters after removing whitespace, expected %d", len(cleaned), CellCount)
	}

	for i := 0; i < CellCount; i++ {
		r, c := i/Side, i%Side
		switch ch := cleaned[i]; {
		case ch == '.' || ch == '0':
			// empty cell
		case ch >= '1' && ch <= '9':
			g[r][c] = ch - '0'
		default:
			return Grid{}, fmt.Errorf("invalid character %q at position %d (row %d, col %d): only digits 1-9, '.' or '0' are allowed",
				ch, i+1, r+1, c+1)
		}
	}
	return g, nil
}

// ParseFile reads a grid from a file of nine whitespace-separated rows,
// '_' marking empty cells. Blank lines are skipped.
func ParseFile(path string) (Grid, error) {
	var g Grid
	content, err := os.ReadFile(path)
	if err != nil {
		return g, fmt.Errorf("read puzzle file: %w", err)
	}

	row := 0
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if row >= Side {
			return Grid{}, fmt.Errorf("%s: too many rows, expected %d", path, Side)
		}
		fields := strings.Fields(line)
		if len(fields) != Side {
			return Grid{}, fmt.Errorf("%s: row %d has %d entries, expected %d", path, row+1, len(fields), Side)
		}
		for col, f := range fields {
			if f == "_" {
				continue
			}
			if len(f) != 1 || f[0] < '1' || f[0] > '9' {
				return Grid{}, fmt.Errorf("%s: invalid entry %q at row %d, col %d", path, f, row+1, col+1)
			}
			g[row][col] = f[0] - '0'
		}
		row++
	}
	if row != Side {
		return Grid{}, fmt.Errorf("%s: only %d rows, expected %d", path, row, Side)
	}
	return g, nil
}

// MustParse is Parse for fixtures; it panics on malformed input.
func MustParse(s string) Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}
