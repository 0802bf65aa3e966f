package pyramid

import (
	"testing"

	"github.com/vovakirdan/pyramid/internal/core"
)

func TestCollided(t *testing.T) {
	spike := NewObstacle(Spike, 600)
	gear := NewObstacle(Gear, 600)

	tests := []struct {
		name  string
		x, y  int
		other Obstacle
		want  bool
	}{
		{"standing on spike", 600, FloorLineY, spike, true},
		{"just left of spike", 600 - PieceSize, FloorLineY, spike, false},
		{"just right of spike", 600 + spike.Width(), FloorLineY, spike, false},
		{"jumping over spike", 600, ApexOffset, spike, false},
		{"walking under gear", 600, FloorLineY, gear, false},
		{"jumping into gear", 600, ApexOffset, gear, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			p.X, p.Y = tt.x, tt.y
			if got := Collided(p, tt.other); got != tt.want {
				t.Errorf("Collided = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollidedSymmetricAndRepeatable(t *testing.T) {
	gear := NewObstacle(Gear, 400)
	p := NewPlayer()

	for dx := -100; dx <= 100; dx += 9 {
		for dy := -100; dy <= 100; dy += 11 {
			p.X, p.Y = gear.X+dx, gear.Y+dy
			ab := Collided(p, gear)
			if ba := Collided(gear, p); ab != ba {
				t.Fatalf("offset (%d,%d): a,b = %v but b,a = %v", dx, dy, ab, ba)
			}
			if again := Collided(p, gear); again != ab {
				t.Fatalf("offset (%d,%d): result changed on repeat", dx, dy)
			}
		}
	}
}

func TestObstaclePlacement(t *testing.T) {
	tests := []struct {
		v    Variant
		want int
	}{
		{Spike, WindowHeight - FloorHeight - 40},
		{Gear, WindowHeight - FloorHeight - 70 - 160},
		{Gem, WindowHeight - FloorHeight - 44 - 160},
		{Portal, WindowHeight - FloorHeight - 120 - 90},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			if got := NewObstacle(tt.v, 0).Y; got != tt.want {
				t.Errorf("Y = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPortalFacesPlayer(t *testing.T) {
	portal := NewObstacle(Portal, 500)

	left := portal.FacePlayer(100)
	if left.Sprite().Flipped() {
		t.Error("portal should keep source art when the piece is to its left")
	}
	right := portal.FacePlayer(900)
	if !right.Sprite().Flipped() {
		t.Error("portal should be mirrored when the piece is to its right")
	}
	if again := right.FacePlayer(901); !again.Sprite().Flipped() {
		t.Error("facing the same side twice should not flip back")
	}
}

func TestBox(t *testing.T) {
	gear := NewObstacle(Gear, 400)
	want := core.NewRect(400, gear.Y, 70, 70)
	if got := Box(gear); got != want {
		t.Errorf("Box = %+v, want %+v", got, want)
	}
}

func TestCollidedDisjointBoxes(t *testing.T) {
	spike := NewObstacle(Spike, 600)
	p := NewPlayer()

	tests := []struct {
		name string
		x, y int
	}{
		{"touching left edge", 600 - PieceSize, FloorLineY},
		{"far left", 100, FloorLineY},
		{"above", 600, spike.Y - PieceSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.X, p.Y = tt.x, tt.y
			if Box(p).Intersects(Box(spike)) {
				t.Fatalf("boxes %+v and %+v overlap", Box(p), Box(spike))
			}
			if Collided(p, spike) || Collided(spike, p) {
				t.Error("bodies with disjoint boxes collided")
			}
		})
	}
}
