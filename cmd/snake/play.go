package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snake-engine/internal/config"
	"snake-engine/internal/core"
	"snake-engine/internal/engine"
	"snake-engine/internal/leaderboard"
	"snake-engine/internal/platform/tui"
	"snake-engine/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a local session. Without --mode the menu lets you pick.

Controls:
  Arrows/WASD        - Steer (also starts the round)
  Shift+Arrows       - Steer while dashing (2x speed, 2x points)
  P                  - Pause
  F3                 - Debug overlay
  Esc                - Back to menu
  Q/Ctrl+C           - Quit

Difficulty presets scale the base tick interval:
  easy   - 30% slower ticks
  normal - Default speed
  hard   - 20% faster ticks

Examples:
  snake play
  snake play --mode classic
  snake play --mode obstacles --difficulty hard
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Start directly in a mode: classic or obstacles")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	engineCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&engineCfg, config.DifficultyPreset(flagDifficulty))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	board, err := leaderboard.Load(boardPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load leaderboard: %v\n", err)
		board = nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without history - game still works
		store = nil
	}

	eng := engine.New(engineCfg)
	if mode, ok := parseMode(flagMode); ok {
		seed := flagSeed
		if seed == 0 {
			seed = timeSeed()
		}
		eng.StartRound(mode, seed)
	} else if flagMode != "" {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want classic or obstacles)\n", flagMode)
		os.Exit(1)
	}

	runErr := tui.Run(eng, board, boardPath(), store, cfg, os.Getenv("USER"))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func parseMode(s string) (engine.Mode, bool) {
	switch s {
	case "classic":
		return engine.ModeClassic, true
	case "obstacles":
		return engine.ModeObstacles, true
	}
	return "", false
}
