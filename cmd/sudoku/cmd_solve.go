package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solverlab/sudoku/puzzle"
	"github.com/solverlab/sudoku/solver"
)

var (
	solveAll   bool
	solveOrder string
	solveSeed  int64
	solveStats bool
	solveMax   int
)

var commandSolve = &cobra.Command{
	Use:   "solve [puzzle...]",
	Short: "Solve puzzles given as files or 81-character strings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return solve(cmd, args)
	},
}

func init() {
	commandSolve.Flags().BoolVarP(&solveAll, "all", "a", false, "find every solution instead of stopping at the first")
	commandSolve.Flags().StringVarP(&solveOrder, "order", "r", "row-major", "cell order: row-major, random-rowcol or random-cells")
	commandSolve.Flags().Int64VarP(&solveSeed, "seed", "s", 0, "seed for randomized cell orders")
	commandSolve.Flags().BoolVarP(&solveStats, "stats", "t", false, "print the search tree analysis")
	commandSolve.Flags().IntVarP(&solveMax, "max-display", "m", 5, "maximum number of solutions to print")
	mainCommand.AddCommand(commandSolve)
}

func solve(cmd *cobra.Command, args []string) error {
	strategy, err := parseStrategy(solveOrder)
	if err != nil {
		return err
	}
	opts := solver.Options{Strategy: strategy, FindAll: solveAll}
	if cmd.Flags().Changed("seed") {
		opts.Seed = &solveSeed
	}

	for _, arg := range args {
		g, err := loadPuzzle(arg)
		if err != nil {
			return err
		}

		res, err := solver.Find(g, opts)
		if err != nil {
			return err
		}

		fmt.Printf("Puzzle %s (%d clues):\n%s\n", arg, g.Clues(), g.Pretty())
		if len(res.Solutions) == 0 {
			fmt.Println("No solution found.")
		}
		for i, sol := range res.Solutions {
			if i >= solveMax {
				fmt.Printf("... and %d more solutions\n", len(res.Solutions)-solveMax)
				break
			}
			fmt.Printf("Solution %d:\n%s", i+1, sol.Pretty())
			if i < len(res.Solutions)-1 && i < solveMax-1 {
				fmt.Println(strings.Repeat("-", 20))
			}
		}
		if solveStats {
			if err := res.Stats.WriteAnalysis(os.Stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadPuzzle treats the argument as a file path when it names an existing
// file, and as an 81-character puzzle string otherwise.
func loadPuzzle(arg string) (puzzle.Grid, error) {
	if _, err := os.Stat(arg); err == nil {
		return puzzle.ParseFile(arg)
	}
	return puzzle.Parse(arg)
}

func parseStrategy(name string) (solver.Strategy, error) {
	switch name {
	case "row-major", "default":
		return solver.RowMajor(), nil
	case "random-rowcol":
		return solver.RandomRowCol(), nil
	case "random-cells":
		return solver.RandomCells(), nil
	default:
		return solver.Strategy{}, fmt.Errorf("unknown cell order %q", name)
	}
}
