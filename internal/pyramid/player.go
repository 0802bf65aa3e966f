package pyramid

import (
	"github.com/vovakirdan/pyramid/internal/core"
	"github.com/vovakirdan/pyramid/internal/sprite"
)

// Direction is the horizontal heading of the piece.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// JumpState tells whether the piece is on the floor or tracing an arc.
type JumpState int

const (
	Grounded JumpState = iota
	Airborne
)

// String returns "grounded" or "airborne".
func (s JumpState) String() string {
	if s == Airborne {
		return "airborne"
	}
	return "grounded"
}

// Player is the piece controlled by the user.
type Player struct {
	X, Y           int
	Direction      Direction
	JumpState      JumpState
	Vertex         int       // x of the current arc's apex
	StartDirection Direction // heading when the current jump began
	visible        bool
	sprite         sprite.Sprite
}

// NewPlayer returns a piece at the spawn point, grounded and facing right.
func NewPlayer() *Player {
	return &Player{
		X:              SpawnX,
		Y:              FloorLineY,
		Direction:      Right,
		JumpState:      Grounded,
		StartDirection: Right,
		visible:        true,
		sprite:         sprite.Piece(),
	}
}

// Pos returns the top-left corner of the piece.
func (p *Player) Pos() (int, int) { return p.X, p.Y }

// Mask returns the collision mask of the current orientation.
func (p *Player) Mask() *sprite.Mask { return p.sprite.Mask() }

// Sprite returns the current image/mask pair.
func (p *Player) Sprite() sprite.Sprite { return p.sprite }

// Visible reports whether the piece should be drawn this frame.
func (p *Player) Visible() bool { return p.visible }

// Airborne reports whether a jump arc is in progress.
func (p *Player) Airborne() bool { return p.JumpState == Airborne }

// Move advances the piece horizontally by speed pixels in its heading.
func (p *Player) Move(speed int) {
	p.X += speed * int(p.Direction)
}

// Bounce reverses the heading and mirrors the sprite.
func (p *Player) Bounce() {
	p.Direction = -p.Direction
	p.sprite = p.sprite.Mirror()
}

// BounceAtBorders bounces the piece when it is at a border and still heading
// into it. Reports whether a bounce happened.
func (p *Player) BounceAtBorders() bool {
	if (p.X <= LeftBorder && p.Direction == Left) || (p.X >= RightBorder && p.Direction == Right) {
		p.Bounce()
		return true
	}
	return false
}

// StartJump begins an arc from the floor. The apex is placed HalfJumpWidth
// ahead of the piece. Has no effect while already airborne.
func (p *Player) StartJump() bool {
	if p.JumpState != Grounded {
		return false
	}
	p.JumpState = Airborne
	p.StartDirection = p.Direction
	p.Vertex = p.X + HalfJumpWidth*int(p.Direction)
	return true
}

// Jump advances the arc by one frame: reflects the vertex after a mid-air
// bounce, evaluates the parabola at the current x and lands the piece once
// the parabola dips below the floor line.
func (p *Player) Jump() {
	if p.JumpState != Airborne {
		return
	}

	if p.Direction != p.StartDirection {
		switch {
		case p.Direction == Right && p.Vertex < LeftBorder+HalfJumpWidth:
			p.Vertex = LeftBorder + (LeftBorder - p.Vertex)
			p.StartDirection = p.Direction
		case p.Direction == Left && p.Vertex > RightBorder-HalfJumpWidth:
			p.Vertex = RightBorder - (p.Vertex - RightBorder)
			p.StartDirection = p.Direction
		}
	}

	dx := p.X - p.Vertex
	p.Y = core.FloorDiv(dx*dx, HalfJumpWidth) + ApexOffset

	if p.Y > FloorLineY {
		p.Y = FloorLineY
		p.JumpState = Grounded
	}
}

// Flicker sets visibility from an invulnerability frame counter: shown for
// the first half of every 20-frame period and hidden for the second.
func (p *Player) Flicker(frames int) {
	p.visible = FlickerVisible(frames)
}

// FlickerVisible is the pure visibility rule behind Flicker.
func FlickerVisible(frames int) bool {
	return core.Mod(frames, 2*FlickerHalfPeriod) < FlickerHalfPeriod
}
