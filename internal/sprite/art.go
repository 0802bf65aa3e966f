package sprite

import (
	"image"
	"image/color"
	"math"
	"sync"
)

// Art dimensions in pixels.
const (
	PieceSize    = 80
	SpikesWidth  = 120
	SpikesHeight = 40
	GearSize     = 70
	GemSize      = 44
	PortalWidth  = 60
	PortalHeight = 120
	HeartWidth   = 28
	HeartHeight  = 24
)

// Palette used by the procedural art. Front-ends reuse these so the terminal
// and window renderings agree.
var (
	Sandstone = color.NRGBA{R: 222, G: 184, B: 112, A: 255}
	Shadow    = color.NRGBA{R: 40, G: 28, B: 20, A: 255}
	Steel     = color.NRGBA{R: 176, G: 180, B: 188, A: 255}
	Bronze    = color.NRGBA{R: 196, G: 122, B: 52, A: 255}
	Emerald   = color.NRGBA{R: 64, G: 224, B: 176, A: 255}
	Violet    = color.NRGBA{R: 168, G: 84, B: 232, A: 255}
	Crimson   = color.NRGBA{R: 224, G: 40, B: 64, A: 255}
)

// paint renders a w×h image where fill decides each pixel's color.
// Pixels for which fill reports false stay fully transparent.
func paint(w, h int, fill func(x, y int) (color.NRGBA, bool)) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c, ok := fill(x, y); ok {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// triangle reports whether (x, y) lies in an upward triangle whose base spans
// the full width w on row h-1 and whose apex sits at the top center.
// Coordinates are doubled to stay on the integer grid.
func triangle(x, y, w, h int) bool {
	dx := 2*x + 1 - w
	if dx < 0 {
		dx = -dx
	}
	return dx*h <= (y+1)*w
}

func piece() *image.NRGBA {
	return paint(PieceSize, PieceSize, func(x, y int) (color.NRGBA, bool) {
		if !triangle(x, y, PieceSize, PieceSize) {
			return color.NRGBA{}, false
		}
		// The eye looks toward the direction of travel (right in source art).
		ex, ey := x-50, y-52
		if ex*ex+ey*ey <= 36 {
			return Shadow, true
		}
		if y%16 == 15 {
			return Bronze, true
		}
		return Sandstone, true
	})
}

func spikes() *image.NRGBA {
	const tooth = SpikesWidth / 3
	return paint(SpikesWidth, SpikesHeight, func(x, y int) (color.NRGBA, bool) {
		return Steel, triangle(x%tooth, y, tooth, SpikesHeight)
	})
}

func gear() *image.NRGBA {
	const (
		center = GearSize / 2
		outer  = 34.0
		body   = 27.0
		hub    = 10.0
		teeth  = 8
	)
	return paint(GearSize, GearSize, func(x, y int) (color.NRGBA, bool) {
		fx := float64(x) + 0.5 - center
		fy := float64(y) + 0.5 - center
		r := math.Hypot(fx, fy)
		if r <= hub || r > outer {
			return color.NRGBA{}, false
		}
		if r <= body {
			return Bronze, true
		}
		sector := int(math.Floor((math.Atan2(fy, fx) + math.Pi) / (2 * math.Pi) * 2 * teeth))
		return Bronze, sector%2 == 0
	})
}

func gem() *image.NRGBA {
	return paint(GemSize, GemSize, func(x, y int) (color.NRGBA, bool) {
		dx := 2*x + 1 - GemSize
		dy := 2*y + 1 - GemSize
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return Emerald, dx+dy <= GemSize
	})
}

func portal() *image.NRGBA {
	const (
		cx, cy = PortalWidth / 2.0, PortalHeight / 2.0
		rx, ry = PortalWidth / 2.0, PortalHeight / 2.0
		inset  = 9.0
	)
	return paint(PortalWidth, PortalHeight, func(x, y int) (color.NRGBA, bool) {
		fx := float64(x) + 0.5 - cx
		fy := float64(y) + 0.5 - cy
		outer := (fx*fx)/(rx*rx) + (fy*fy)/(ry*ry)
		if outer > 1 {
			return color.NRGBA{}, false
		}
		inner := (fx*fx)/((rx-inset)*(rx-inset)) + (fy*fy)/((ry-inset)*(ry-inset))
		if inner > 1 {
			return Violet, true
		}
		// Swirl on the trailing side so the portal has a facing.
		return Shadow, fx < -6 && fy > -20
	})
}

func heart() *image.NRGBA {
	return paint(HeartWidth, HeartHeight, func(x, y int) (color.NRGBA, bool) {
		fx := (float64(x) + 0.5 - HeartWidth/2.0) / (HeartWidth / 2.0) * 1.2
		fy := (HeartHeight/2.0 - float64(y) - 0.5) / (HeartHeight / 2.0) * 1.3
		v := fx*fx + fy*fy - 1
		return Crimson, v*v*v-fx*fx*fy*fy*fy <= 0
	})
}

var (
	artOnce sync.Once
	artSet  struct {
		piece, spikes, gear, gem, portal, heart Sprite
	}
)

func loadArt() {
	artOnce.Do(func() {
		artSet.piece = New(piece())
		artSet.spikes = New(spikes())
		artSet.gear = New(gear())
		artSet.gem = New(gem())
		artSet.portal = New(portal())
		artSet.heart = New(heart())
	})
}

// Piece returns the player's sprite, facing right.
func Piece() Sprite { loadArt(); return artSet.piece }

// Spikes returns the ground hazard sprite.
func Spikes() Sprite { loadArt(); return artSet.spikes }

// Gear returns the floating hazard sprite.
func Gear() Sprite { loadArt(); return artSet.gear }

// Gem returns the collectible sprite.
func Gem() Sprite { loadArt(); return artSet.gem }

// Portal returns the goal sprite, facing right.
func Portal() Sprite { loadArt(); return artSet.portal }

// Heart returns the HUD life icon.
func Heart() Sprite { loadArt(); return artSet.heart }
