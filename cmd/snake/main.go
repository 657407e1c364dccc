// snake is a terminal snake game with dashing, combo scoring and
// procedurally generated obstacle courses.
//
// Usage:
//
//	snake play               - Play locally
//	snake scores             - Show the leaderboard and run history
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set run history database path
//	--board <path>  - Set leaderboard file path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagBoardPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake with dashing and combos, in your terminal",
	Long: `A terminal snake game built around a deterministic fixed-step
simulation: hold dash for double speed and double points, chain food
within the combo window for up to 4x score, and survive the obstacle
course mode.

Available commands:
  play     - Play locally
  scores   - View the leaderboard and run history
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --mode obstacles --difficulty hard
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-engine/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagBoardPath, "board", "", "Path to leaderboard file (default: ~/.snake-engine/snake_scores.dat)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// boardPath resolves the leaderboard file location.
func boardPath() string {
	if flagBoardPath != "" {
		return flagBoardPath
	}
	return defaultBoardPath()
}
