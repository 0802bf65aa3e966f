// Package window runs Pyramid of Doom in a desktop window using Ebiten.
// The world is drawn at its native 1344x756 resolution with the game's own
// sprite images, so what is seen is exactly what collides.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pyramid/internal/config"
	"github.com/vovakirdan/pyramid/internal/core"
	"github.com/vovakirdan/pyramid/internal/pyramid"
)

// Options configures the window front-end.
type Options struct {
	TickRate int
	Scale    float64 // window size relative to the world
	Seed     int64
	Reloads  <-chan config.PyramidConfig
	Logger   *log.Logger
}

// keyActions maps edge-triggered keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyEnter:  core.ActionConfirm,
	ebiten.KeySlash:  core.ActionHelp,
	ebiten.KeyH:      core.ActionHelp,
	ebiten.KeyEscape: core.ActionBack,
	ebiten.KeyB:      core.ActionBack,
	ebiten.KeyQ:      core.ActionQuit,
}

// App implements ebiten.Game around a pyramid.Game.
type App struct {
	game    *pyramid.Game
	frame   core.InputFrame
	reloads <-chan config.PyramidConfig
	logger  *log.Logger
	art     *artCache
}

// New wraps game for Ebiten.
func New(game *pyramid.Game, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		game:    game,
		frame:   core.NewInputFrame(),
		reloads: opts.Reloads,
		logger:  logger,
		art:     newArtCache(),
	}
}

// Update reads input and advances the game by one frame.
func (a *App) Update() error {
	a.pollReloads()

	a.frame.Clear()
	// Held: the piece jumps again as soon as it lands
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		a.frame.Set(core.ActionJump)
	}
	for k, action := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			a.frame.Set(action)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.frame.Click(x, y)
	}
	if ebiten.IsWindowBeingClosed() {
		a.frame.Set(core.ActionQuit)
	}

	if res := a.game.Step(a.frame); res.State.Terminated {
		return ebiten.Termination
	}
	return nil
}

// pollReloads hands at most one pending config to the game.
func (a *App) pollReloads() {
	if a.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-a.reloads:
		if !ok {
			a.reloads = nil
			return
		}
		a.game.Reconfigure(cfg)
		a.logger.Info("config reloaded, applies on next run")
	default:
	}
}

// Layout keeps the logical screen at world resolution; Ebiten scales it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return pyramid.WindowWidth, pyramid.WindowHeight
}

// Run opens the window and blocks until the game terminates.
func Run(game *pyramid.Game, opts Options) error {
	if opts.TickRate <= 0 {
		opts.TickRate = pyramid.TickRate
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	seed := core.ResolveSeed(opts.Seed)
	opts.Logger.Debug("starting window", "seed", seed, "tps", opts.TickRate)
	game.Reset(core.RuntimeConfig{TickRate: opts.TickRate, Seed: seed})

	ebiten.SetWindowSize(int(pyramid.WindowWidth*opts.Scale), int(pyramid.WindowHeight*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(opts.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(New(game, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
