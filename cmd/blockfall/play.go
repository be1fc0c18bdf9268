package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var (
	playFlags      fieldFlags
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/H     - Move left
  Right/L    - Move right
  Down/J     - Soft drop (adds the drop height to the score)
  Up/Z/K     - Rotate counter-clockwise
  X          - Rotate clockwise
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at level 1, gravity speeds up with the level
  normal - Start at level 3, gravity speeds up with the level
  hard   - Start at level 8, gravity speeds up with the level
  fixed  - Keep the start level's gravity for the whole game

Without --difficulty or --level a difficulty menu is shown first.
Logs are discarded unless --log-file is set.

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --width 12 --height 24 --level 5
  blockfall play --config ./my-tetris.yaml --log-file blockfall.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playFlags.register(playCmd)
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Ask for a difficulty unless the command line already settled it
	difficulty := flagDifficulty
	if difficulty == "" && !cmd.Flags().Changed("level") && term.IsTerminal(int(os.Stdout.Fd())) {
		preset, ok, err := tui.RunDifficultySelector(width, height)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		difficulty = string(preset)
	}

	cfg, err := loadConfig(cmd, playFlags, difficulty)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("play",
		"width", cfg.Field.Width,
		"height", cfg.Field.Height,
		"level", cfg.StartLevel,
		"difficulty", difficulty)

	return tui.Run(game.New(cfg, logger), rc, logger)
}
