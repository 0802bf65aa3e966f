package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pyramid/internal/pyramid"
	"github.com/vovakirdan/pyramid/internal/sprite"
)

var (
	backdrop  = color.NRGBA{R: 24, G: 18, B: 14, A: 255}
	wallColor = color.NRGBA{R: 92, G: 74, B: 52, A: 255}
	panelFill = color.NRGBA{R: 0, G: 0, B: 0, A: 160}
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// artKey identifies one orientation of one piece of art.
type artKey struct {
	kind    int // a pyramid.Variant, or playerKind
	flipped bool
}

const (
	playerKind = -1
	heartKind  = -2
)

// artCache uploads each sprite orientation to the GPU once.
type artCache struct {
	images map[artKey]*ebiten.Image
	text   map[string]*ebiten.Image
}

func newArtCache() *artCache {
	return &artCache{
		images: make(map[artKey]*ebiten.Image),
		text:   make(map[string]*ebiten.Image),
	}
}

func (c *artCache) image(kind int, s sprite.Sprite) *ebiten.Image {
	k := artKey{kind: kind, flipped: s.Flipped()}
	img, ok := c.images[k]
	if !ok {
		img = ebiten.NewImageFromImage(s.Image())
		c.images[k] = img
	}
	return img
}

// label renders text once with the debug font.
func (c *artCache) label(s string) *ebiten.Image {
	img, ok := c.text[s]
	if !ok {
		img = ebiten.NewImage(len(s)*glyphW+2, glyphH)
		ebitenutil.DebugPrint(img, s)
		c.text[s] = img
	}
	return img
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	const (
		w     = float32(pyramid.WindowWidth)
		h     = float32(pyramid.WindowHeight)
		floor = float32(pyramid.FloorHeight)
		inset = float32(pyramid.BorderInset)
	)
	vector.FillRect(screen, 0, h-floor, w, floor, sprite.Sandstone, false)
	vector.FillRect(screen, 0, 0, inset, h-floor, wallColor, false)
	vector.FillRect(screen, w-inset, 0, inset, h-floor, wallColor, false)

	snap := a.game.Snapshot()
	for _, hz := range snap.Hazards {
		a.blit(screen, int(hz.Variant), hz.ActorView)
	}
	for _, o := range []pyramid.ObstacleView{snap.Gem, snap.Portal} {
		if o.Visible {
			a.blit(screen, int(o.Variant), o.ActorView)
		}
	}
	if snap.Player.Visible {
		a.blit(screen, playerKind, snap.Player)
	}

	a.drawHUD(screen, snap)
	if snap.Screen != pyramid.Playing {
		a.drawPanel(screen, snap)
	}
}

func (a *App) blit(screen *ebiten.Image, kind int, v pyramid.ActorView) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(v.X), float64(v.Y))
	screen.DrawImage(a.art.image(kind, v.Sprite), op)
}

// drawText draws s with its top-left corner at (x, y), scaled up from the
// debug font.
func (a *App) drawText(screen *ebiten.Image, s string, x, y, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(a.art.label(s), op)
}

// drawCentered draws s centred horizontally on cx.
func (a *App) drawCentered(screen *ebiten.Image, s string, cx, y, scale float64) {
	a.drawText(screen, s, cx-float64(len(s)*glyphW)*scale/2, y, scale)
}

func (a *App) drawHUD(screen *ebiten.Image, snap pyramid.Snapshot) {
	heart := sprite.Heart()
	for i := 0; i < snap.Lives; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(pyramid.BorderInset+12+i*(heart.Width()+6)), 20)
		screen.DrawImage(a.art.image(heartKind, heart), op)
	}
	level := min(snap.Level, pyramid.FinalLevel)
	a.drawText(screen, fmt.Sprintf("LEVEL %d/%d", level, pyramid.FinalLevel), pyramid.BorderInset+130, 22, 2)
}

func (a *App) drawPanel(screen *ebiten.Image, snap pyramid.Snapshot) {
	vector.FillRect(screen, 0, 0, pyramid.WindowWidth, pyramid.WindowHeight, panelFill, false)

	lines := pyramid.PanelText(snap)
	y := 160.0
	if snap.Screen == pyramid.Instructions {
		y = 200
	}
	for i, line := range lines {
		scale := 2.0
		if i == 0 {
			scale = 4
		}
		a.drawCentered(screen, line, pyramid.WindowWidth/2, y, scale)
		y += float64(glyphH)*scale + 8
	}

	for _, b := range snap.Screen.Buttons() {
		r := pyramid.ButtonRect(b)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, sprite.Sandstone, false)
		cx, cy := r.Center()
		scale := 3.0
		if r.W < 100 {
			scale = 2
		}
		a.drawCentered(screen, pyramid.ButtonLabel(snap.Screen, b), float64(cx), float64(cy)-float64(glyphH)*scale/2, scale)
	}
}
