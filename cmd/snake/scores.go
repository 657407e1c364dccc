package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snake-engine/internal/leaderboard"
	"snake-engine/internal/platform/tui"
	"snake-engine/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and run history",
	Long: `Open the interactive scores screen: the five-slot leaderboard on
top, the full run history below, with tabs per mode.

Examples:
  snake scores
  snake scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print the leaderboard to stdout instead")
}

func runScores(_ *cobra.Command, _ []string) {
	board, err := leaderboard.Load(boardPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading leaderboard: %v\n", err)
		os.Exit(1)
	}

	if flagScoresPlain {
		printScores(board)
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(board, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the board and recent runs as plain text.
func printScores(board *leaderboard.Board) {
	fmt.Println("High Scores")
	fmt.Println()

	if board.Len() == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-15s  %-8s  %s\n", "Rank", "Name", "Score", "Combo")
	fmt.Printf("  %-4s  %-15s  %-8s  %s\n", "----", "----", "-----", "-----")
	for i, e := range board.Entries() {
		fmt.Printf("  %-4d  %-15s  %-8d  x%d\n", i+1, e.Name, e.Score, e.MaxCombo)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return
	}
	defer store.Close()

	recent, err := store.RecentRuns(5)
	if err != nil || len(recent) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, e := range recent {
		fmt.Printf("  %-10s  %-15s  %-8d  %s\n",
			e.Mode, e.Player, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// timeSeed returns a wall-clock seed for non-reproducible rounds.
func timeSeed() int64 {
	return time.Now().UnixNano()
}

// defaultBoardPath is split out so main.go stays flag-only.
func defaultBoardPath() string {
	return leaderboard.DefaultPath()
}
