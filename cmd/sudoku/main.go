package main

import (
	"github.com/spf13/cobra"

	"github.com/solverlab/sudoku/logger"
)

var mainCommand = &cobra.Command{
	Use:           "sudoku",
	Short:         "Backtracking sudoku solver with search-tree statistics",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		log := logger.Logger()
		log.Fatal().Err(err).Msg("command failed")
	}
}
