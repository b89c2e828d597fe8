// gridsnake is a terminal snake simulation on a fixed 20x20 grid.
//
// Usage:
//
//	gridsnake play           - Play in the current terminal
//	gridsnake serve          - Start SSH server for remote play
//	gridsnake scores         - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Platform frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible food placement
//	--db <path>     - Runs database path (default: ~/.gridsnake/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Snake on a fixed grid, in your terminal",
	Long: `gridsnake runs a tick-driven snake simulation in the terminal: the snake
moves every 150 ms, grows when it eats, and the field resets on any
collision. Finished runs are recorded in a local database.

Examples:
  gridsnake play
  gridsnake play --seed 42
  gridsnake serve --ssh :2222
  gridsnake scores --board`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Platform frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsnake/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
