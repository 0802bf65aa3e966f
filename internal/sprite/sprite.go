package sprite

import (
	"image"
	"image/draw"
)

// Sprite pairs an image with the collision mask derived from it.
// Sprites are values: mirroring produces a new Sprite and never touches the
// receiver, so the mask always describes the image it travels with.
type Sprite struct {
	img     *image.NRGBA
	mask    *Mask
	flipped bool
}

// New copies img and derives its mask.
func New(img image.Image) Sprite {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return Sprite{img: dst, mask: MaskFromImage(dst)}
}

// Image returns the sprite's pixels. Callers must not modify the result.
func (s Sprite) Image() image.Image { return s.img }

// Mask returns the sprite's collision mask.
func (s Sprite) Mask() *Mask { return s.mask }

// Width returns the sprite width in pixels.
func (s Sprite) Width() int { return s.mask.Width() }

// Height returns the sprite height in pixels.
func (s Sprite) Height() int { return s.mask.Height() }

// Flipped reports whether the sprite is mirrored relative to its source art.
func (s Sprite) Flipped() bool { return s.flipped }

// Mirror returns a horizontally flipped copy with a freshly derived mask.
func (s Sprite) Mirror() Sprite {
	w, h := s.img.Rect.Dx(), s.img.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetNRGBA(w-1-x, y, s.img.NRGBAAt(x, y))
		}
	}
	return Sprite{img: dst, mask: MaskFromImage(dst), flipped: !s.flipped}
}
