package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pyramid/internal/core"
	"github.com/vovakirdan/pyramid/internal/platform/tui"
	"github.com/vovakirdan/pyramid/internal/pyramid"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Pyramid of Doom in the terminal. The chamber is drawn with braille
characters and scaled to fit the terminal.

Controls:
  Space/Up   - Jump
  Enter      - Play / Next level / Restart
  ?          - How to play
  Esc        - Back
  Mouse      - Click the on-screen buttons
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is given, so they do not disturb the
game screen.

Examples:
  pyramid play
  pyramid play --difficulty easy
  pyramid play --seed 42 --log-file pyramid.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs a terminal; try 'pyramid window'")
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "pyramid")
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

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		v := pyramid.FitViewport(w, h-1, cfg.Display.TUIScale)
		logger.Debug("terminal", "width", w, "height", h, "scale", v.Scale)
	}

	game := pyramid.New(pyramid.WithConfig(cfg), pyramid.WithLogger(logger))
	rt := core.RuntimeConfig{TickRate: tickRate(cfg), Seed: flagSeed}

	return tui.Run(game, rt, tui.WithReloads(reloads), tui.WithModelLogger(logger))
}
