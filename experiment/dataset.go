// Package experiment runs the solver over CSV puzzle datasets and records
// per-run search statistics, either one default-order run per puzzle (Batch)
// or many randomized-order runs per puzzle (RandomOrdering).
package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/solverlab/sudoku/solver"
)

// Puzzle is one row of an input dataset: the common
// id,puzzle,solution,clues,difficulty CSV layout. Only id and puzzle are
// required; the rest is carried through for correlation analysis.
type Puzzle struct {
	ID         int
	Puzzle     string
	Solution   string
	Clues      int
	Difficulty float64
}

// puzzleReader streams Puzzle rows from a headered CSV.
type puzzleReader struct {
	r       *csv.Reader
	columns map[string]int
}

func newPuzzleReader(r io.Reader) (*puzzleReader, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"id", "puzzle"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("dataset is missing the %q column", required)
		}
	}
	return &puzzleReader{r: cr, columns: columns}, nil
}

// next returns the next row, or io.EOF when the dataset is exhausted.
func (pr *puzzleReader) next() (Puzzle, error) {
	record, err := pr.r.Read()
	if err != nil {
		return Puzzle{}, err
	}

	field := func(name string) string {
		if i, ok := pr.columns[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	var p Puzzle
	if p.ID, err = strconv.Atoi(field("id")); err != nil {
		return Puzzle{}, fmt.Errorf("bad id %q: %w", field("id"), err)
	}
	p.Puzzle = field("puzzle")
	p.Solution = field("solution")
	if s := field("clues"); s != "" {
		if p.Clues, err = strconv.Atoi(s); err != nil {
			return Puzzle{}, fmt.Errorf("bad clues %q: %w", s, err)
		}
	}
	if s := field("difficulty"); s != "" {
		if p.Difficulty, err = strconv.ParseFloat(s, 64); err != nil {
			return Puzzle{}, fmt.Errorf("bad difficulty %q: %w", s, err)
		}
	}
	return p, nil
}

// ReadPuzzles loads a whole dataset into memory.
func ReadPuzzles(r io.Reader) ([]Puzzle, error) {
	pr, err := newPuzzleReader(r)
	if err != nil {
		return nil, err
	}
	var puzzles []Puzzle
	for {
		p, err := pr.next()
		if err == io.EOF {
			return puzzles, nil
		}
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}
}

var resultHeader = []string{
	"puzzle_id", "puzzle", "clues", "difficulty", "run_id",
	"solutions_found", "nodes_explored", "max_recursion_depth",
	"solve_time_ms", "is_solved", "leaves", "backtracks",
}

// resultWriter emits one CSV row per solver run.
type resultWriter struct {
	w *csv.Writer
}

func newResultWriter(w io.Writer) (*resultWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeader); err != nil {
		return nil, fmt.Errorf("write results header: %w", err)
	}
	return &resultWriter{w: cw}, nil
}

func (rw *resultWriter) write(p Puzzle, runID int, res *solver.Result) error {
	s := &res.Stats
	return rw.w.Write([]string{
		strconv.Itoa(p.ID),
		p.Puzzle,
		strconv.Itoa(p.Clues),
		strconv.FormatFloat(p.Difficulty, 'g', -1, 64),
		strconv.Itoa(runID),
		strconv.Itoa(s.SolutionsFound),
		strconv.Itoa(s.Nodes),
		strconv.Itoa(s.MaxDepth),
		strconv.FormatInt(s.Duration.Milliseconds(), 10),
		strconv.FormatBool(res.Solved()),
		strconv.Itoa(s.Leaves),
		strconv.Itoa(s.Backtracks),
	})
}

func (rw *resultWriter) flush() error {
	rw.w.Flush()
	return rw.w.Error()
}
