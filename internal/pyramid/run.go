package pyramid

// RunState holds everything that lives for one run of the game, from the home
// screen to a win or loss. A fresh RunState is a full reset.
type RunState struct {
	Screen       ScreenState
	Lives        int
	Level        int
	Hazards      []Obstacle
	Gem          Obstacle
	Portal       Obstacle
	InvulnFrames int  // frames elapsed in the current invulnerability window
	Invulnerable bool // hazard contact is ignored while set
	GemCollected bool // the portal is active once the gem is touched
	Player       *Player
}

// NewRunState returns the state of a brand new run on the home screen.
func NewRunState() *RunState {
	return &RunState{
		Screen: Home,
		Lives:  StartingLives,
		Level:  1,
		Player: NewPlayer(),
	}
}

// Load installs a generated layout for the current level.
func (r *RunState) Load(l Layout) {
	r.Hazards = l.Hazards
	r.Gem = l.Gem
	r.Portal = l.Portal
}

// Damage costs a life and opens the invulnerability window.
// Reports false, changing nothing, while already invulnerable.
func (r *RunState) Damage() bool {
	if r.Invulnerable {
		return false
	}
	r.Lives--
	r.Invulnerable = true
	r.InvulnFrames = 0
	return true
}

// TickInvulnerability advances the window by one frame and closes it after
// InvulnerabilityFrames frames.
func (r *RunState) TickInvulnerability() {
	if !r.Invulnerable {
		return
	}
	r.InvulnFrames++
	if r.InvulnFrames >= InvulnerabilityFrames {
		r.InvulnFrames = 0
		r.Invulnerable = false
	}
}

// CompleteLevel advances to the next level and clears per-level state.
func (r *RunState) CompleteLevel() {
	r.Level++
	r.Hazards = nil
	r.InvulnFrames = 0
	r.Invulnerable = false
	r.GemCollected = false
	r.Player = NewPlayer()
}

// GemVisible reports whether the gem is still waiting to be collected.
func (r *RunState) GemVisible() bool { return !r.GemCollected }

// PortalActive reports whether the portal is shown and can be entered.
func (r *RunState) PortalActive() bool { return r.GemCollected }
