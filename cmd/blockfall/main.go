// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play      - Play in the terminal
//	blockfall sim       - Run a headless game with random input
//	blockfall pieces    - Print every piece in every rotation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game played in the terminal.
Complete rows to clear them; the game ends when a new piece has no room.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless game with random input
  pieces   - Print the shape table

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall sim --seed 42 --ticks 5000
  blockfall pieces`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(piecesCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when set
// and to fallback otherwise. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, closeFn, nil
}

// fieldFlags are the per-command overrides shared by play and sim.
type fieldFlags struct {
	width  int
	height int
	level  int
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "Field width in cells (overrides config)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Field height in cells (overrides config)")
	cmd.Flags().IntVar(&f.level, "level", 0, "Start level (overrides config and difficulty)")
}

// loadConfig loads the game config, then applies the difficulty preset and
// the flags that were set on the command line.
func loadConfig(cmd *cobra.Command, ff fieldFlags, difficulty string) (config.TetrisConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	if cmd.Flags().Changed("width") {
		cfg.Field.Width = ff.width
	}
	if cmd.Flags().Changed("height") {
		cfg.Field.Height = ff.height
	}
	if cmd.Flags().Changed("level") {
		cfg.StartLevel = ff.level
	}

	if err := cfg.Validate(); err != nil {
		return config.TetrisConfig{}, err
	}
	return cfg, nil
}
