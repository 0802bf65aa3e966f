package pyramid

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pyramid/internal/core"
	"github.com/vovakirdan/pyramid/internal/sprite"
)

// Braille cells pack a 2x4 grid of dots.
const (
	dotsX   = 2
	dotsY   = 4
	hudRows = 1
)

// brailleBits[row][col] is the bit for one dot of a braille cell.
var brailleBits = [dotsY][dotsX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Paint layers. A cell takes the color of its highest layer dot.
const (
	layerScenery uint8 = iota + 1
	layerHazard
	layerPickup
	layerPlayer
)

// Viewport maps the 1344x756 world onto terminal cells. One braille dot
// covers Scale x Scale window pixels.
type Viewport struct {
	Scale   int
	OffsetX int // first world column in cells
	OffsetY int // first world row in cells
	Cols    int // world width in cells
	Rows    int // world height in cells
}

// FitViewport lays out the world below the HUD row of a cols x rows
// terminal. scale <= 0 picks the smallest scale that fits.
func FitViewport(cols, rows, scale int) Viewport {
	cols = core.Max(cols, 1)
	worldRows := core.Max(rows-hudRows, 1)
	if scale <= 0 {
		scale = core.Max(
			ceilDiv(WindowWidth, cols*dotsX),
			ceilDiv(WindowHeight, worldRows*dotsY),
		)
		scale = core.Max(scale, 1)
	}

	v := Viewport{
		Scale:   scale,
		OffsetY: hudRows,
		Cols:    ceilDiv(ceilDiv(WindowWidth, scale), dotsX),
		Rows:    ceilDiv(ceilDiv(WindowHeight, scale), dotsY),
	}
	v.OffsetX = core.Max((cols-v.Cols)/2, 0)
	return v
}

// CellToWorld returns the window pixel at the centre of a terminal cell.
func (v Viewport) CellToWorld(cx, cy int) core.Point {
	return core.Point{
		X: (cx-v.OffsetX)*dotsX*v.Scale + v.Scale,
		Y: (cy-v.OffsetY)*dotsY*v.Scale + dotsY*v.Scale/2,
	}
}

// WorldToCell returns the terminal cell covering a window pixel.
func (v Viewport) WorldToCell(x, y int) (int, int) {
	return v.OffsetX + core.FloorDiv(x, dotsX*v.Scale), v.OffsetY + core.FloorDiv(y, dotsY*v.Scale)
}

// CellRect returns the cells covering a window-pixel rectangle.
func (v Viewport) CellRect(r core.Rect) core.Rect {
	x0, y0 := v.WorldToCell(r.X, r.Y)
	x1, y1 := v.WorldToCell(r.Right()-1, r.Bottom()-1)
	return core.RectFromBounds(x0, y0, x1, y1)
}

// canvas is a braille dot buffer covering the world.
type canvas struct {
	w, h   int
	layer  []uint8
	colors []core.Color
}

func newCanvas(w, h int) *canvas {
	return &canvas{
		w:      w,
		h:      h,
		layer:  make([]uint8, w*h),
		colors: make([]core.Color, w*h),
	}
}

func (c *canvas) dot(x, y int, col core.Color, layer uint8) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := y*c.w + x
	if layer >= c.layer[i] {
		c.layer[i] = layer
		c.colors[i] = col
	}
}

// paintRect sets every dot whose sample pixel lies inside r.
func (c *canvas) paintRect(scale int, r core.Rect, col core.Color, layer uint8) {
	for dy := core.FloorDiv(r.Y, scale); dy*scale < r.Bottom(); dy++ {
		for dx := core.FloorDiv(r.X, scale); dx*scale < r.Right(); dx++ {
			if r.Contains(dx*scale+scale/2, dy*scale+scale/2) {
				c.dot(dx, dy, col, layer)
			}
		}
	}
}

// paintMask sets every dot whose sample pixel is solid in m placed at (x, y).
func (c *canvas) paintMask(scale, x, y int, m *sprite.Mask, col core.Color, layer uint8) {
	for dy := core.FloorDiv(y, scale); dy*scale < y+m.Height(); dy++ {
		my := dy*scale + scale/2 - y
		if my < 0 || my >= m.Height() {
			continue
		}
		for dx := core.FloorDiv(x, scale); dx*scale < x+m.Width(); dx++ {
			mx := dx*scale + scale/2 - x
			if mx >= 0 && mx < m.Width() && m.At(mx, my) {
				c.dot(dx, dy, col, layer)
			}
		}
	}
}

// blit packs the dots into braille runes on dst.
func (c *canvas) blit(dst *core.Screen, v Viewport) {
	for cy := 0; cy < v.Rows; cy++ {
		for cx := 0; cx < v.Cols; cx++ {
			var bits rune
			var top uint8
			col := core.ColorDefault
			for row := 0; row < dotsY; row++ {
				for c2 := 0; c2 < dotsX; c2++ {
					x, y := cx*dotsX+c2, cy*dotsY+row
					if x >= c.w || y >= c.h {
						continue
					}
					i := y*c.w + x
					if c.layer[i] == 0 {
						continue
					}
					bits |= brailleBits[row][c2]
					if c.layer[i] > top {
						top = c.layer[i]
						col = c.colors[i]
					}
				}
			}
			if bits != 0 {
				dst.SetColored(v.OffsetX+cx, v.OffsetY+cy, 0x2800+bits, col)
			}
		}
	}
}

// Viewport returns the layout Render uses for a cols x rows screen.
func (g *Game) Viewport(cols, rows int) Viewport {
	return FitViewport(cols, rows, g.cfg.Display.TUIScale)
}

// Render draws the current frame to the screen as braille art.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.Viewport(dst.Width(), dst.Height())
	snap := g.Snapshot()

	c := newCanvas(v.Cols*dotsX, v.Rows*dotsY)
	c.paintRect(v.Scale, core.NewRect(0, WindowHeight-FloorHeight, WindowWidth, FloorHeight), core.ColorSand, layerScenery)
	c.paintRect(v.Scale, core.NewRect(0, 0, BorderInset, WindowHeight), core.ColorGray, layerScenery)
	c.paintRect(v.Scale, core.NewRect(WindowWidth-BorderInset, 0, BorderInset, WindowHeight), core.ColorGray, layerScenery)

	for _, h := range snap.Hazards {
		c.paintMask(v.Scale, h.X, h.Y, h.Sprite.Mask(), variants[h.Variant].color, layerHazard)
	}
	for _, o := range []ObstacleView{snap.Gem, snap.Portal} {
		if o.Visible {
			c.paintMask(v.Scale, o.X, o.Y, o.Sprite.Mask(), variants[o.Variant].color, layerPickup)
		}
	}
	if snap.Player.Visible {
		c.paintMask(v.Scale, snap.Player.X, snap.Player.Y, snap.Player.Sprite.Mask(), core.ColorBrightYellow, layerPlayer)
	}
	c.blit(dst, v)

	g.drawHUD(dst, v, snap)
	if snap.Screen != Playing {
		g.drawPanel(dst, v, snap)
	}
}

// drawHUD writes lives and level on the row above the world.
func (g *Game) drawHUD(dst *core.Screen, v Viewport, snap Snapshot) {
	x := v.OffsetX
	dst.DrawTextColored(x, 0, strings.Repeat("♥", core.Max(snap.Lives, 0)), core.ColorBrightRed)
	x += StartingLives + 1

	level := core.Clamp(snap.Level, 1, FinalLevel)
	dst.DrawTextColored(x, 0, fmt.Sprintf("Level %d/%d", level, FinalLevel), core.ColorSand)

	if snap.Invulnerable {
		dst.DrawTextColored(x+12, 0, "SAFE", core.ColorBrightCyan)
	}
}

// PanelText returns the text lines shown on a non-playing screen.
func PanelText(snap Snapshot) []string {
	switch snap.Screen {
	case Home:
		return []string{"PYRAMID OF DOOM", "Collect the gem, then enter the portal."}
	case Instructions:
		return []string{
			"HOW TO PLAY",
			"",
			"The piece walks on its own and turns at the walls.",
			"Press space to jump over spikes and gears.",
			"Touch the gem to open the portal, then walk into it.",
			"A hit costs a life. You are safe while flashing.",
			fmt.Sprintf("Clear %d levels to escape. Lose %d lives and it is over.", FinalLevel, StartingLives),
		}
	case LevelComplete:
		return []string{fmt.Sprintf("LEVEL %d CLEARED", snap.Level-1), fmt.Sprintf("Next up: level %d", snap.Level)}
	case Win:
		return []string{"YOU ESCAPED THE PYRAMID"}
	case Lose:
		return []string{"GAME OVER", fmt.Sprintf("Fell on level %d", snap.Level)}
	default:
		return nil
	}
}

// ButtonLabel returns the caption drawn inside b on the given screen.
func ButtonLabel(s ScreenState, b Button) string {
	switch b {
	case ButtonPlay:
		switch s {
		case LevelComplete:
			return "NEXT"
		case Win, Lose:
			return "RESTART"
		default:
			return "PLAY"
		}
	case ButtonHelp:
		return "?"
	case ButtonBack:
		return "<"
	default:
		return ""
	}
}

// drawPanel draws the text and buttons of a non-playing screen. Buttons sit
// on their window hit boxes so terminal clicks land where they are drawn.
func (g *Game) drawPanel(dst *core.Screen, v Viewport, snap Snapshot) {
	lines := PanelText(snap)
	_, top := v.WorldToCell(0, 150)
	if snap.Screen == Instructions {
		_, top = v.WorldToCell(0, 250)
	}
	top = core.Max(top-len(lines)/2, hudRows)
	for i, line := range lines {
		col := core.ColorSand
		if i == 0 {
			col = core.ColorBrightYellow
		}
		x := v.OffsetX + (v.Cols-len([]rune(line)))/2
		dst.DrawTextColored(core.Max(x, 0), top+i, line, col)
	}

	for _, b := range snap.Screen.Buttons() {
		label := ButtonLabel(snap.Screen, b)
		r := v.CellRect(ButtonRect(b))
		// Room for the border and the label
		r.W = core.Max(r.W, len([]rune(label))+2)
		r.H = core.Max(r.H, 3)
		dst.DrawRect(r, ' ')
		dst.DrawBox(r)
		cx := r.X + (r.W-len([]rune(label)))/2
		dst.DrawTextColored(cx, r.Y+r.H/2, label, core.ColorBrightYellow)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
