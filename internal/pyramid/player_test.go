package pyramid

import "testing"

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()
	if p.X != SpawnX || p.Y != FloorLineY {
		t.Errorf("spawn = (%d,%d), want (%d,%d)", p.X, p.Y, SpawnX, FloorLineY)
	}
	if p.Direction != Right || p.JumpState != Grounded || !p.Visible() {
		t.Errorf("unexpected initial state: %+v", p)
	}
}

func TestPlayerWalksToRightBorderAndBounces(t *testing.T) {
	p := NewPlayer()
	frames := 0
	for p.Direction == Right && frames < 1000 {
		p.Move(DefaultSpeed)
		p.BounceAtBorders()
		frames++
	}

	if frames != 161 {
		t.Errorf("bounced after %d frames, want 161", frames)
	}
	if p.X != RightBorder {
		t.Errorf("X = %d, want %d", p.X, RightBorder)
	}
	if !p.Sprite().Flipped() {
		t.Error("sprite should be mirrored after bounce")
	}
}

func TestBounceAtBordersNoOscillation(t *testing.T) {
	p := NewPlayer()
	p.X = LeftBorder + DefaultSpeed
	p.Bounce() // heading left

	p.Move(DefaultSpeed)
	if !p.BounceAtBorders() {
		t.Fatal("expected bounce at left border")
	}
	for i := 0; i < 5; i++ {
		p.Move(DefaultSpeed)
		if p.BounceAtBorders() {
			t.Fatalf("frame %d: bounced again at X=%d", i, p.X)
		}
	}
	if p.X != LeftBorder+5*DefaultSpeed {
		t.Errorf("X = %d, want %d", p.X, LeftBorder+5*DefaultSpeed)
	}
}

func TestJumpArc(t *testing.T) {
	p := NewPlayer()
	p.X = 500
	if !p.StartJump() {
		t.Fatal("StartJump from the floor should succeed")
	}
	if p.StartJump() {
		t.Error("StartJump while airborne should be ignored")
	}
	if p.Vertex != 500+HalfJumpWidth {
		t.Errorf("vertex = %d, want %d", p.Vertex, 500+HalfJumpWidth)
	}

	minY := p.Y
	frames := 0
	for p.Airborne() && frames < 200 {
		p.Move(DefaultSpeed)
		p.Jump()
		if p.Y < minY {
			minY = p.Y
		}
		frames++
	}

	if minY != ApexOffset {
		t.Errorf("apex Y = %d, want %d", minY, ApexOffset)
	}
	if frames != 46 {
		t.Errorf("landed after %d frames, want 46", frames)
	}
	if p.Y != FloorLineY {
		t.Errorf("landed at Y = %d, want %d", p.Y, FloorLineY)
	}
}

func TestJumpVertexReflection(t *testing.T) {
	tests := []struct {
		name       string
		x          int
		dir        Direction
		wantVertex int
	}{
		{"left wall", 70, Left, LeftBorder + (LeftBorder - (70 - HalfJumpWidth))},
		{"right wall", 1190, Right, RightBorder - ((1190 + HalfJumpWidth) - RightBorder)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			p.X = tt.x
			if tt.dir == Left {
				p.Bounce()
			}
			p.StartJump()
			p.Bounce()
			p.Jump()

			if p.Vertex != tt.wantVertex {
				t.Errorf("vertex = %d, want %d", p.Vertex, tt.wantVertex)
			}
			if p.StartDirection != p.Direction {
				t.Error("start direction should follow the reflection")
			}
			if p.Y > FloorLineY {
				t.Errorf("Y = %d below floor line", p.Y)
			}
		})
	}
}

func TestJumpNotReflectedAwayFromWalls(t *testing.T) {
	p := NewPlayer()
	p.X = 600
	p.StartJump()
	v := p.Vertex
	p.Bounce()
	p.Jump()
	if p.Vertex != v {
		t.Errorf("vertex moved from %d to %d", v, p.Vertex)
	}
}

func TestFlickerVisible(t *testing.T) {
	tests := []struct {
		frames int
		want   bool
	}{
		{0, true},
		{1, true},
		{9, true},
		{10, false},
		{19, false},
		{20, true},
		{115, false},
		{119, false},
	}

	for _, tt := range tests {
		if got := FlickerVisible(tt.frames); got != tt.want {
			t.Errorf("FlickerVisible(%d) = %v, want %v", tt.frames, got, tt.want)
		}
	}
}
