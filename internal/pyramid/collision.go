package pyramid

import (
	"github.com/vovakirdan/pyramid/internal/core"
	"github.com/vovakirdan/pyramid/internal/sprite"
)

// Body is anything with a position and a collision mask.
type Body interface {
	Pos() (x, y int)
	Mask() *sprite.Mask
}

// Box returns the bounding box of b in window pixels.
func Box(b Body) core.Rect {
	x, y := b.Pos()
	m := b.Mask()
	return core.NewRect(x, y, m.Width(), m.Height())
}

// Collided reports whether the masks of a and b share at least one pixel at
// their current positions. The test is pixel-exact and symmetric; bounding
// boxes are checked first.
func Collided(a, b Body) bool {
	if !Box(a).Intersects(Box(b)) {
		return false
	}
	ax, ay := a.Pos()
	bx, by := b.Pos()
	return a.Mask().Overlap(b.Mask(), bx-ax, by-ay)
}
