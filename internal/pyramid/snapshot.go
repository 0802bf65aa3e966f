package pyramid

import "github.com/vovakirdan/pyramid/internal/sprite"

// ActorView is what a front-end needs to draw one actor.
type ActorView struct {
	X, Y    int
	Visible bool
	Sprite  sprite.Sprite // image and mask in the orientation to draw
}

// ObstacleView is an ActorView tagged with its variant.
type ObstacleView struct {
	ActorView
	Variant Variant
}

// Snapshot is the read-only frame state handed to front-ends.
type Snapshot struct {
	Tick         uint64
	Screen       ScreenState
	Level        int
	Lives        int
	Invulnerable bool
	InvulnFrames int
	Terminated   bool

	Player    ActorView
	Direction Direction
	JumpState JumpState
	Hazards   []ObstacleView
	Gem       ObstacleView
	Portal    ObstacleView
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	r := g.run
	p := r.Player

	snap := Snapshot{
		Tick:         g.tick,
		Screen:       r.Screen,
		Level:        r.Level,
		Lives:        r.Lives,
		Invulnerable: r.Invulnerable,
		InvulnFrames: r.InvulnFrames,
		Terminated:   g.terminated,
		Player: ActorView{
			X:       p.X,
			Y:       p.Y,
			Visible: p.Visible(),
			Sprite:  p.Sprite(),
		},
		Direction: p.Direction,
		JumpState: p.JumpState,
		Gem:       obstacleView(r.Gem, r.GemVisible()),
		Portal:    obstacleView(r.Portal, r.PortalActive()),
	}

	snap.Hazards = make([]ObstacleView, len(r.Hazards))
	for i, h := range r.Hazards {
		snap.Hazards[i] = obstacleView(h, true)
	}

	// Level content only exists while playing
	if r.Screen != Playing {
		snap.Hazards = snap.Hazards[:0]
		snap.Gem.Visible = false
		snap.Portal.Visible = false
		snap.Player.Visible = false
	}
	return snap
}

func obstacleView(o Obstacle, visible bool) ObstacleView {
	return ObstacleView{
		ActorView: ActorView{X: o.X, Y: o.Y, Visible: visible, Sprite: o.Sprite()},
		Variant:   o.Variant,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range snap.ints() {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

// ints flattens the simulation fields; sprites follow from them.
func (snap *Snapshot) ints() []int {
	vals := []int{
		int(snap.Screen), snap.Level, snap.Lives, snap.InvulnFrames,
		boolInt(snap.Invulnerable), boolInt(snap.Terminated),
		snap.Player.X, snap.Player.Y, boolInt(snap.Player.Visible),
		int(snap.Direction), int(snap.JumpState),
		snap.Gem.X, snap.Gem.Y, boolInt(snap.Gem.Visible),
		snap.Portal.X, snap.Portal.Y, boolInt(snap.Portal.Visible), boolInt(snap.Portal.Sprite.Flipped()),
	}
	for _, h := range snap.Hazards {
		vals = append(vals, int(h.Variant), h.X, h.Y)
	}
	return vals
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
