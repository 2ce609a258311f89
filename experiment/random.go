package experiment

import (
	"io"
	"math/rand"
	"time"

	"github.com/solverlab/sudoku/logger"
	"github.com/solverlab/sudoku/puzzle"
	"github.com/solverlab/sudoku/solver"
)

// RandomOrderingConfig controls a randomized-ordering experiment.
type RandomOrderingConfig struct {
	// SamplePuzzles is how many puzzles to draw from the dataset; 0 uses 100.
	SamplePuzzles int
	// RunsPerPuzzle is the number of runs per puzzle, including the baseline
	// default-order run; 0 uses 1000.
	RunsPerPuzzle int
	// Seed makes both the puzzle sampling and every per-run cell order
	// reproducible.
	Seed *int64
	// Progress logs a line every N puzzles; 0 uses 10.
	Progress int
}

// RandomOrdering measures search-tree variance across cell orderings. For
// each sampled puzzle it records a baseline row-major run as run 0, then
// RunsPerPuzzle-1 runs with independently randomized row/column orders, one
// result row per run.
func RandomOrdering(in io.Reader, out io.Writer, cfg RandomOrderingConfig) (*Summary, error) {
	log := logger.Logger()

	samplePuzzles := cfg.SamplePuzzles
	if samplePuzzles <= 0 {
		samplePuzzles = 100
	}
	runsPerPuzzle := cfg.RunsPerPuzzle
	if runsPerPuzzle <= 0 {
		runsPerPuzzle = 1000
	}
	progress := cfg.Progress
	if progress <= 0 {
		progress = 10
	}

	puzzles, err := ReadPuzzles(in)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Seed != nil {
		rng = rand.New(rand.NewSource(*cfg.Seed))
		rng.Shuffle(len(puzzles), func(i, j int) { puzzles[i], puzzles[j] = puzzles[j], puzzles[i] })
	}
	if len(puzzles) > samplePuzzles {
		puzzles = puzzles[:samplePuzzles]
	}

	rw, err := newResultWriter(out)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("puzzles", len(puzzles)).
		Int("runs_per_puzzle", runsPerPuzzle).
		Msg("starting random ordering experiment")

	start := time.Now()
	var summary Summary
	for _, p := range puzzles {
		g, err := puzzle.Parse(p.Puzzle)
		if err != nil {
			log.Warn().Err(err).Int("id", p.ID).Msg("skipping malformed puzzle")
			continue
		}

		for run := 0; run < runsPerPuzzle; run++ {
			opts := solver.Options{Strategy: solver.RandomRowCol()}
			if run == 0 {
				opts.Strategy = solver.RowMajor()
			}
			if rng != nil {
				seed := rng.Int63()
				opts.Seed = &seed
			}

			res, err := solver.Find(g, opts)
			if err != nil {
				return nil, err
			}
			if err := rw.write(p, run, res); err != nil {
				return nil, err
			}

			summary.TotalRuns++
			summary.TotalNodes += res.Stats.Nodes
			summary.TotalTime += res.Stats.Duration

			// Flush periodically so a long experiment is not lost whole.
			if summary.TotalRuns%100 == 0 {
				if err := rw.flush(); err != nil {
					return nil, err
				}
			}
		}

		summary.Processed++
		if summary.Processed%progress == 0 {
			log.Info().
				Int("puzzles", summary.Processed).
				Int("runs", summary.TotalRuns).
				Msg("experiment progress")
		}
	}

	if err := rw.flush(); err != nil {
		return nil, err
	}
	log.Info().
		Int("puzzles", summary.Processed).
		Int("runs", summary.TotalRuns).
		Int("nodes", summary.TotalNodes).
		Dur("took", time.Since(start)).
		Msg("experiment complete")
	return &summary, nil
}
