package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pyramid/internal/platform/window"
	"github.com/vovakirdan/pyramid/internal/pyramid"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Pyramid of Doom in a desktop window at its full 1344x756 resolution.

Controls:
  Space/Up   - Jump (hold to keep jumping)
  Enter      - Play / Next level / Restart
  H or ?     - How to play
  Esc        - Back
  Mouse      - Click the on-screen buttons
  Q          - Quit

Examples:
  pyramid window
  pyramid window --scale 0.75
  pyramid window --seed 42 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window size relative to 1344x756 (0 = from config)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "pyramid")
	if err != nil {
		return err
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	reloads, stop, err := startWatch(preset, logger)
	if err != nil {
		return err
	}
	defer stop()

	scale := cfg.Display.WindowScale
	if flagScale > 0 {
		scale = flagScale
	}

	game := pyramid.New(pyramid.WithConfig(cfg), pyramid.WithLogger(logger))
	return window.Run(game, window.Options{
		TickRate: tickRate(cfg),
		Scale:    scale,
		Seed:     flagSeed,
		Reloads:  reloads,
		Logger:   logger,
	})
}
