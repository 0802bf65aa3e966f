// Package sprite provides immutable image/collision-mask pairs and the
// pixel-exact overlap test used for all collisions in the game.
package sprite

import (
	"image"
	"math/bits"
)

// AlphaThreshold is the alpha value a pixel must exceed to be part of a mask.
const AlphaThreshold = 127

// Mask is a W×H bitset marking the opaque pixels of an image.
// Rows are packed into 64-bit words. A Mask is never modified after creation.
type Mask struct {
	width  int
	height int
	stride int // words per row
	words  []uint64
}

// newMask allocates an empty mask.
func newMask(w, h int) *Mask {
	stride := (w + 63) / 64
	return &Mask{
		width:  w,
		height: h,
		stride: stride,
		words:  make([]uint64, stride*h),
	}
}

// MaskFromImage builds a mask from the alpha channel of img.
// The mask's origin is the image's Bounds().Min.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := newMask(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.set(x, y)
			}
		}
	}
	return m
}

// MaskFromFunc builds a mask by evaluating solid for every pixel.
func MaskFromFunc(w, h int, solid func(x, y int) bool) *Mask {
	m := newMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if solid(x, y) {
				m.set(x, y)
			}
		}
	}
	return m
}

func (m *Mask) set(x, y int) {
	m.words[y*m.stride+x/64] |= 1 << uint(x%64)
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// At reports whether the pixel at (x, y) is set.
// Out-of-range coordinates are never set.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.words[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Mirror returns a new mask flipped horizontally.
func (m *Mask) Mirror() *Mask {
	out := newMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.At(x, y) {
				out.set(m.width-1-x, y)
			}
		}
	}
	return out
}

// Equal reports whether two masks have the same size and set pixels.
func (m *Mask) Equal(other *Mask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, w := range m.words {
		if other.words[i] != w {
			return false
		}
	}
	return true
}

// Overlap reports whether any set pixel of m coincides with a set pixel of
// other when other's origin is placed at (dx, dy) in m's coordinates.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	// Intersection of the two bounding boxes, in m's coordinates
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.width, dx+other.width)
	y1 := min(m.height, dy+other.height)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
