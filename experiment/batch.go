package experiment

import (
	"io"
	"math/rand"
	"time"

	"github.com/solverlab/sudoku/logger"
	"github.com/solverlab/sudoku/puzzle"
	"github.com/solverlab/sudoku/solver"
)

// BatchConfig controls a default-order pass over a dataset.
type BatchConfig struct {
	// Limit stops after this many processed puzzles; 0 means all.
	Limit int
	// Sample processes roughly every Nth puzzle; values below 2 process
	// every row. With a Seed the selection is an independent seeded 1-in-N
	// draw per row, without it a deterministic every-Nth stride.
	Sample int
	// Seed makes sampling reproducible.
	Seed *int64
	// Progress logs a line every N processed puzzles; 0 uses 1000.
	Progress int
}

// Summary aggregates a dataset pass.
type Summary struct {
	Processed  int
	TotalRuns  int
	TotalNodes int
	TotalTime  time.Duration
}

// Batch solves every selected puzzle of the dataset once with the row-major
// default order and writes one result row per puzzle. Malformed rows are
// logged and skipped.
func Batch(in io.Reader, out io.Writer, cfg BatchConfig) (*Summary, error) {
	log := logger.Logger()

	pr, err := newPuzzleReader(in)
	if err != nil {
		return nil, err
	}
	rw, err := newResultWriter(out)
	if err != nil {
		return nil, err
	}

	progress := cfg.Progress
	if progress <= 0 {
		progress = 1000
	}
	var rng *rand.Rand
	if cfg.Seed != nil {
		rng = rand.New(rand.NewSource(*cfg.Seed))
	}

	var summary Summary
	for i := 0; ; i++ {
		p, err := pr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Err(err).Int("row", i).Msg("skipping malformed dataset row")
			continue
		}

		if cfg.Sample > 1 {
			if rng != nil {
				if rng.Intn(cfg.Sample) != 0 {
					continue
				}
			} else if i%cfg.Sample != 0 {
				continue
			}
		}
		if cfg.Limit > 0 && summary.Processed >= cfg.Limit {
			break
		}

		g, err := puzzle.Parse(p.Puzzle)
		if err != nil {
			log.Warn().Err(err).Int("id", p.ID).Msg("skipping malformed puzzle")
			continue
		}

		res, err := solver.FindOne(g, solver.RowMajor())
		if err != nil {
			return nil, err
		}
		if err := rw.write(p, 0, res); err != nil {
			return nil, err
		}

		summary.Processed++
		summary.TotalRuns++
		summary.TotalNodes += res.Stats.Nodes
		summary.TotalTime += res.Stats.Duration

		if summary.Processed%progress == 0 {
			log.Info().
				Int("processed", summary.Processed).
				Int("nodes", summary.TotalNodes).
				Dur("solving", summary.TotalTime).
				Msg("batch progress")
		}
	}

	if err := rw.flush(); err != nil {
		return nil, err
	}
	log.Info().
		Int("processed", summary.Processed).
		Int("nodes", summary.TotalNodes).
		Dur("solving", summary.TotalTime).
		Msg("batch complete")
	return &summary, nil
}
