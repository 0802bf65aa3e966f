package pyramid

import "github.com/vovakirdan/pyramid/internal/sprite"

// Window geometry, in pixels.
const (
	WindowWidth  = 1344
	WindowHeight = 756
	FloorHeight  = 68 // Floor thickness measured from the bottom edge
	BorderInset  = 68 // Distance of each border wall from the window edge
)

// Player geometry and motion.
const (
	PieceSize    = sprite.PieceSize
	LeftBorder   = BorderInset
	RightBorder  = WindowWidth - BorderInset - PieceSize
	FloorLineY   = WindowHeight - FloorHeight - PieceSize // Resting y of the piece
	SpawnX       = 69
	DefaultSpeed = 7 // Horizontal pixels per frame
)

// Jump arc. HalfJumpWidth is half the horizontal span of one jump; the apex
// sits HalfJumpWidth pixels above the floor line.
const (
	HalfJumpWidth = 160
	ApexOffset    = FloorLineY - HalfJumpWidth
)

// Run rules.
const (
	StartingLives         = 3
	FinalLevel            = 5
	WinLevel              = FinalLevel + 1
	InvulnerabilityFrames = 120 // 2 seconds at 60 fps
	FlickerHalfPeriod     = 10
	TickRate              = 60
)

// Level generation.
const (
	HazardSeparation   = 250 // Minimum horizontal distance between hazards
	PortalGemClearance = 100 // Extra distance between portal and gem beyond the portal width
	DefaultMaxAttempts = 1000
)
