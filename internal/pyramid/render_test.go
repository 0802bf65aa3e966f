package pyramid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pyramid/internal/core"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		scale      int
		wantScale  int
	}{
		{"80x24 auto", 80, 24, 0, 9},
		{"200x60 auto", 200, 60, 0, 4},
		{"fixed scale", 80, 24, 12, 12},
		{"tiny terminal", 1, 1, 0, 672},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FitViewport(tt.cols, tt.rows, tt.scale)
			if v.Scale != tt.wantScale {
				t.Errorf("scale = %d, want %d", v.Scale, tt.wantScale)
			}
			if tt.scale == 0 && (v.Cols > tt.cols || v.Rows > core.Max(tt.rows-1, 1)) {
				t.Errorf("world %dx%d does not fit %dx%d", v.Cols, v.Rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := FitViewport(80, 24, 0)
	for cy := v.OffsetY; cy < v.OffsetY+v.Rows; cy++ {
		for cx := v.OffsetX; cx < v.OffsetX+v.Cols; cx++ {
			p := v.CellToWorld(cx, cy)
			if gx, gy := v.WorldToCell(p.X, p.Y); gx != cx || gy != cy {
				t.Fatalf("cell (%d,%d) -> (%d,%d) -> (%d,%d)", cx, cy, p.X, p.Y, gx, gy)
			}
		}
	}
}

func TestButtonCellsMapBackToHitBoxes(t *testing.T) {
	v := FitViewport(120, 40, 0)
	for _, b := range []Button{ButtonPlay, ButtonHelp, ButtonBack} {
		r := v.CellRect(ButtonRect(b))
		cx, cy := r.Center()
		p := v.CellToWorld(cx, cy)
		if !ButtonRect(b).Contains(p.X, p.Y) {
			t.Errorf("%s: centre cell maps to (%d,%d), outside hit box", b, p.X, p.Y)
		}
	}
}

func TestRenderScreens(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  []string
	}{
		{"home", func(g *Game) {}, []string{"PYRAMID OF DOOM", "PLAY", "?"}},
		{"instructions", func(g *Game) { g.Step(input(core.ActionHelp)) }, []string{"HOW TO PLAY", "<"}},
		{"playing", func(g *Game) { g.Step(input(core.ActionConfirm)) }, []string{"♥♥♥", "Level 1/5"}},
		{"lose", func(g *Game) { g.run.Screen = Lose }, []string{"GAME OVER", "RESTART"}},
		{"win", func(g *Game) { g.run.Screen = Win; g.run.Level = WinLevel }, []string{"ESCAPED", "Level 5/5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			tt.setup(g)
			screen := core.NewScreen(120, 40)
			g.Render(screen)
			out := screen.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("render missing %q", w)
				}
			}
		})
	}
}

func TestRenderDrawsPlayerAsBraille(t *testing.T) {
	g := New()
	g.Step(input(core.ActionConfirm))
	screen := core.NewScreen(120, 40)
	g.Render(screen)

	v := g.Viewport(120, 40)
	p := g.Run().Player
	cx, cy := v.WorldToCell(p.X+PieceSize/2, p.Y+PieceSize-1)
	cell := screen.GetCell(cx, cy)
	if cell.Rune < 0x2800 || cell.Rune > 0x28FF {
		t.Fatalf("cell (%d,%d) = %q, want braille", cx, cy, cell.Rune)
	}
	if cell.Color != core.ColorBrightYellow {
		t.Errorf("player cell color = %d, want bright yellow", cell.Color)
	}
}
