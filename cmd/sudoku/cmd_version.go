package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

var commandVersion = &cobra.Command{
	Use:   "version",
	Short: "Print current version of sudoku",
	Run:   printVersion,
	Args:  cobra.NoArgs,
}

var nameOnly bool

func init() {
	commandVersion.Flags().BoolVarP(&nameOnly, "name", "n", false, "print version name only")
	mainCommand.AddCommand(commandVersion)
}

func printVersion(cmd *cobra.Command, args []string) {
	os.Stdout.WriteString(versionString(nameOnly))
}

func versionString(nameOnly bool) string {
	if nameOnly {
		return Version + "\n"
	}
	return "sudoku " + Version + " (" + runtime.Version() + ", " + runtime.GOOS + ", " + runtime.GOARCH + ")\n"
}
