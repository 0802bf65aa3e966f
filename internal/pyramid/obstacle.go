package pyramid

import (
	"github.com/vovakirdan/pyramid/internal/core"
	"github.com/vovakirdan/pyramid/internal/sprite"
)

// Variant identifies the kind of obstacle.
type Variant int

const (
	Spike Variant = iota
	Gear
	Gem
	Portal
)

// String returns the lowercase variant name.
func (v Variant) String() string {
	switch v {
	case Spike:
		return "spike"
	case Gear:
		return "gear"
	case Gem:
		return "gem"
	case Portal:
		return "portal"
	default:
		return "unknown"
	}
}

// Hazard reports whether touching this variant costs a life.
func (v Variant) Hazard() bool {
	return v == Spike || v == Gear
}

// variantSpec holds the per-variant art and height above the floor.
type variantSpec struct {
	art       func() sprite.Sprite
	clearance int
	color     core.Color
}

// variants is the variant lookup table. Clearance lifts the gem and gear
// into the jump arc and floats the portal above the ground hazards.
var variants = map[Variant]variantSpec{
	Spike:  {art: sprite.Spikes, clearance: 0, color: core.ColorGray},
	Gear:   {art: sprite.Gear, clearance: 160, color: core.ColorOrange},
	Gem:    {art: sprite.Gem, clearance: 160, color: core.ColorBrightCyan},
	Portal: {art: sprite.Portal, clearance: 90, color: core.ColorBrightMagenta},
}

// Clearance returns the gap between the floor and the bottom of the variant.
func (v Variant) Clearance() int {
	return variants[v].clearance
}

// Obstacle is a spike, gear, gem or portal placed in the level.
type Obstacle struct {
	Variant Variant
	X, Y    int
	sprite  sprite.Sprite
}

// NewObstacle creates an obstacle of the given variant at horizontal position
// x. The vertical position follows from the variant.
func NewObstacle(v Variant, x int) Obstacle {
	art := variants[v].art()
	return Obstacle{
		Variant: v,
		X:       x,
		Y:       WindowHeight - FloorHeight - art.Height() - v.Clearance(),
		sprite:  art,
	}
}

// Pos returns the top-left corner of the obstacle.
func (o Obstacle) Pos() (int, int) { return o.X, o.Y }

// Mask returns the obstacle's collision mask.
func (o Obstacle) Mask() *sprite.Mask { return o.sprite.Mask() }

// Sprite returns the obstacle's image/mask pair.
func (o Obstacle) Sprite() sprite.Sprite { return o.sprite }

// Width returns the obstacle width in pixels.
func (o Obstacle) Width() int { return o.sprite.Width() }

// Color returns the terminal color used to draw the variant.
func (o Obstacle) Color() core.Color { return variants[o.Variant].color }

// At returns a copy of the obstacle moved to x.
func (o Obstacle) At(x int) Obstacle {
	o.X = x
	return o
}

// FacePlayer returns the obstacle turned toward a piece at px: source art
// faces right, so the sprite is mirrored when the piece is not to its left.
func (o Obstacle) FacePlayer(px int) Obstacle {
	wantFlipped := px >= o.X
	if o.sprite.Flipped() != wantFlipped {
		o.sprite = o.sprite.Mirror()
	}
	return o
}
