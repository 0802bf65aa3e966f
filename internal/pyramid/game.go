// Package pyramid implements Pyramid of Doom, a side-view arcade game.
// A chess piece walks back and forth between two walls on its own; the only
// control is a jump. Each level holds spikes and gears to jump over, a gem to
// collect and a portal that opens once the gem is taken. Reach the portal on
// five levels to escape the pyramid.
//
// The game is a pure simulation in window pixels (1344x756). Front-ends feed
// it one core.InputFrame per frame and draw from Snapshot or Render.
package pyramid

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyramid/internal/config"
	"github.com/vovakirdan/pyramid/internal/core"
)

// Game implements the Pyramid of Doom state machine.
// A Game is not safe for concurrent use; front-ends drive it from one loop.
type Game struct {
	run        *RunState
	gen        *Generator
	bounds     Bounds
	cfg        config.PyramidConfig
	pending    *config.PyramidConfig // applied at the next full reset
	logger     *log.Logger
	tick       uint64
	terminated bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for screen transitions and level generation.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithConfig sets the tuning used by the game.
func WithConfig(cfg config.PyramidConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// New creates a new Pyramid of Doom game on the home screen.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultPyramidConfig(),
		bounds: DefaultBounds(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pyramid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pyramid of Doom"
}

// Reset starts a brand new run. The seed fixes every generated level.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.applyPending()
	g.gen = NewGenerator(rt.Seed, g.cfg.Generator.MaxAttempts, g.logger)
	g.run = NewRunState()
	g.tick = 0
	g.terminated = false
}

// Reconfigure queues new tuning. It takes effect on the next full reset so a
// level in progress keeps its speed.
func (g *Game) Reconfigure(cfg config.PyramidConfig) {
	g.pending = &cfg
	g.debug("config queued", "speed", cfg.Player.Speed, "max_attempts", cfg.Generator.MaxAttempts)
}

// Config returns the tuning currently in effect.
func (g *Game) Config() config.PyramidConfig {
	return g.cfg
}

// Speed returns the horizontal speed in pixels per frame.
func (g *Game) Speed() int {
	if g.cfg.Player.Speed <= 0 {
		return DefaultSpeed
	}
	return g.cfg.Player.Speed
}

// Run exposes the run state for front-ends and tests. Callers must not
// modify it.
func (g *Game) Run() *RunState {
	return g.run
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.terminated {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionQuit) {
		g.terminated = true
		g.debug("terminated", "screen", g.run.Screen)
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.run.Screen == Playing {
		g.stepPlaying(in)
	} else {
		g.press(g.run.Screen.Press(in))
	}

	return core.StepResult{State: g.State()}
}

// press applies a button on a non-playing screen.
func (g *Game) press(b Button) {
	switch {
	case b == ButtonNone:
		return
	case g.run.Screen == Home && b == ButtonPlay,
		g.run.Screen == LevelComplete && b == ButtonPlay:
		g.startLevel()
	case g.run.Screen == Home && b == ButtonHelp:
		g.setScreen(Instructions)
	case g.run.Screen == Instructions && b == ButtonBack:
		g.setScreen(Home)
	case (g.run.Screen == Win || g.run.Screen == Lose) && b == ButtonPlay:
		g.restart()
	}
}

// startLevel generates the current level and starts playing it.
func (g *Game) startLevel() {
	g.run.Load(g.gen.Generate(g.run.Level, g.bounds))
	g.setScreen(Playing)
}

// restart performs the full reset from a win or loss back to the home screen.
// The generator keeps its RNG so the next run gets new levels.
func (g *Game) restart() {
	g.applyPending()
	from := g.run.Screen
	g.run = NewRunState()
	g.debug("screen", "from", from, "to", g.run.Screen)
}

// stepPlaying runs one frame of play. The order is fixed: movement, jump
// input, hazard damage, invulnerability, gem, portal, end checks, jump arc,
// flicker and finally the border bounce.
func (g *Game) stepPlaying(in core.InputFrame) {
	r := g.run
	p := r.Player

	p.Move(g.Speed())

	if in.Has(core.ActionJump) {
		p.StartJump()
	}

	if !r.Invulnerable {
		for _, h := range r.Hazards {
			if Collided(p, h) {
				r.Damage()
				g.debug("hit", "variant", h.Variant, "lives", r.Lives)
				break
			}
		}
	}
	r.TickInvulnerability()

	if !r.GemCollected && Collided(p, r.Gem) {
		r.GemCollected = true
		g.debug("gem collected", "level", r.Level)
	}

	r.Portal = r.Portal.FacePlayer(p.X)
	entered := r.PortalActive() && Collided(p, r.Portal)

	if r.Lives <= 0 {
		g.setScreen(Lose)
		return
	}
	if entered {
		r.CompleteLevel()
		if r.Level > FinalLevel {
			g.setScreen(Win)
		} else {
			g.setScreen(LevelComplete)
		}
		return
	}

	p.Jump()
	p.Flicker(r.InvulnFrames)
	p.BounceAtBorders()
}

func (g *Game) setScreen(s ScreenState) {
	from := g.run.Screen
	g.run.Screen = s
	g.debug("screen", "from", from, "to", s, "level", g.run.Level, "lives", g.run.Lives)
}

// applyPending swaps in queued tuning.
func (g *Game) applyPending() {
	if g.pending == nil {
		return
	}
	g.cfg = *g.pending
	g.pending = nil
	if g.gen != nil {
		g.gen.SetMaxAttempts(g.cfg.Generator.MaxAttempts)
	}
	g.debug("config applied", "speed", g.cfg.Player.Speed)
}

func (g *Game) debug(msg string, keyvals ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, keyvals...)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Screen:     g.run.Screen.String(),
		Level:      g.run.Level,
		Lives:      g.run.Lives,
		Terminated: g.terminated,
	}
}
