// pyramid is Pyramid of Doom, a one-button arcade game: guide a walking chess
// piece through five levels of spikes and gears, collect the gem and escape
// through the portal.
//
// Usage:
//
//	pyramid play     - Play in the terminal
//	pyramid window   - Play in a desktop window
//	pyramid serve    - Start SSH server for remote play
//	pyramid levels   - Print the levels generated for a seed
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: from config, 60)
//	--seed <value>         - Set RNG seed for reproducible levels
//	--config <path>        - Use a specific config file
//	--difficulty <preset>  - easy, normal or hard
//	--log-level <level>    - debug, info, warn or error
//	--watch                - Reload the config file when it changes
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyramid/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pyramid",
	Short: "Pyramid of Doom - jump, collect the gem, escape the pyramid",
	Long: `Pyramid of Doom is a one-button arcade game. A chess piece walks
between the walls of a pyramid chamber on its own; you only decide when it
jumps. Touch the gem to open the portal, then reach the portal to clear the
level. Clear five levels to escape. Three hits and the run is over.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  levels   - Print the levels generated for a seed

Examples:
  pyramid play
  pyramid play --difficulty hard
  pyramid window --seed 42
  pyramid serve --ssh :2222
  pyramid levels --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the root logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the config through the search order and applies the
// difficulty preset.
func loadConfig() (config.PyramidConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PyramidConfig{}, "", err
	}
	cfg, err := config.LoadPyramid(flagConfig)
	if err != nil {
		return config.PyramidConfig{}, "", err
	}
	config.ApplyPyramidPreset(&cfg, preset)
	return cfg, preset, nil
}

// tickRate returns --fps when given, otherwise the configured rate.
func tickRate(cfg config.PyramidConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Runtime.TickRate
}

// startWatch watches the active config file when --watch is set. The
// returned stop function is always safe to call.
func startWatch(preset config.DifficultyPreset, logger *log.Logger) (<-chan config.PyramidConfig, func(), error) {
	noop := func() {}
	if !flagWatch {
		return nil, noop, nil
	}

	path := config.ResolvePath(flagConfig)
	if path == "" {
		logger.Warn("nothing to watch, using the built-in config")
		return nil, noop, nil
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, noop, err
	}
	logger.Info("watching config", "path", w.Path())

	reloads := w.Configs(func(c *config.PyramidConfig) {
		config.ApplyPyramidPreset(c, preset)
	}, logger)
	return reloads, func() { _ = w.Close() }, nil
}
