package pyramid

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyramid/internal/core"
)

// Bounds is the horizontal play area between the two walls.
type Bounds struct {
	Left  int // x of the left wall
	Right int // x of the right wall
}

// DefaultBounds returns the play area of the standard window.
func DefaultBounds() Bounds {
	return Bounds{Left: BorderInset, Right: WindowWidth - BorderInset}
}

// Insets keep each placement away from the walls: hazards start well clear
// of the spawn point, the portal may use the whole area.
var placementInsets = map[Variant]struct{ left, right int }{
	Spike:  {300, 100},
	Gear:   {300, 100},
	Gem:    {100, 100},
	Portal: {0, 0},
}

// Range returns the inclusive interval of valid x positions for an obstacle
// of width w and the given variant. hi < lo means nothing fits.
func (b Bounds) Range(v Variant, w int) (lo, hi int) {
	in := placementInsets[v]
	return b.Left + in.left, b.Right - in.right - w
}

// Layout is the content of one level.
type Layout struct {
	Hazards []Obstacle
	Gem     Obstacle
	Portal  Obstacle
}

// Generator places hazards, the gem and the portal for a level.
// Each rejection loop is capped at MaxAttempts random draws; after that the
// generator scans the range in order and, if the constraint cannot be met,
// relaxes it instead of looping forever.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	logger      *log.Logger
}

// NewGenerator creates a generator with its own RNG.
// maxAttempts <= 0 selects DefaultMaxAttempts. logger may be nil.
func NewGenerator(seed int64, maxAttempts int, logger *log.Logger) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// SetMaxAttempts changes the random draw cap. n <= 0 selects DefaultMaxAttempts.
func (g *Generator) SetMaxAttempts(n int) {
	if n <= 0 {
		n = DefaultMaxAttempts
	}
	g.maxAttempts = n
}

// HazardCount returns how many hazards a level holds.
func HazardCount(level int) int {
	if level < 0 {
		return 0
	}
	return level / 2
}

// Generate builds the layout for level inside bounds.
func (g *Generator) Generate(level int, bounds Bounds) Layout {
	var layout Layout

	for i := 0; i < HazardCount(level); i++ {
		v := Spike
		if g.rng.Intn(2) == 1 {
			v = Gear
		}
		hazard, ok := g.placeHazard(v, bounds, layout.Hazards)
		if !ok {
			g.warn("dropping hazard that cannot be separated", "level", level, "variant", v)
			continue
		}
		layout.Hazards = append(layout.Hazards, hazard)
	}

	layout.Gem = g.placeGem(bounds, layout.Hazards)
	layout.Portal = g.placePortal(bounds, layout.Gem)

	if g.logger != nil {
		g.logger.Info("level generated",
			"level", level,
			"hazards", len(layout.Hazards),
			"gem", layout.Gem.X,
			"portal", layout.Portal.X,
		)
	}
	return layout
}

// placeHazard finds an x at least HazardSeparation away from every placed hazard.
func (g *Generator) placeHazard(v Variant, bounds Bounds, placed []Obstacle) (Obstacle, bool) {
	o := NewObstacle(v, 0)
	separated := func(x int) bool {
		for _, other := range placed {
			if core.Abs(x-other.X) < HazardSeparation {
				return false
			}
		}
		return true
	}

	x, ok := g.search(bounds, v, o.Width(), separated)
	return o.At(x), ok
}

// placeGem finds an x where the gem does not touch any hazard.
func (g *Generator) placeGem(bounds Bounds, hazards []Obstacle) Obstacle {
	gem := NewObstacle(Gem, 0)
	touching := func(x int) int {
		n := 0
		for _, h := range hazards {
			if Collided(gem.At(x), h) {
				n++
			}
		}
		return n
	}

	x, ok := g.search(bounds, Gem, gem.Width(), func(x int) bool { return touching(x) == 0 })
	if !ok {
		x = g.best(bounds, Gem, gem.Width(), func(x int) int { return -touching(x) })
		g.warn("gem overlaps a hazard", "x", x)
	}
	return gem.At(x)
}

// placePortal finds an x far enough from the gem.
func (g *Generator) placePortal(bounds Bounds, gem Obstacle) Obstacle {
	portal := NewObstacle(Portal, 0)
	minDist := portal.Width() + PortalGemClearance
	distance := func(x int) int { return core.Abs(x - gem.X) }

	x, ok := g.search(bounds, Portal, portal.Width(), func(x int) bool { return distance(x) >= minDist })
	if !ok {
		x = g.best(bounds, Portal, portal.Width(), distance)
		g.warn("portal closer to gem than required", "x", x, "distance", distance(x))
	}
	return portal.At(x)
}

// search draws up to maxAttempts random positions, then scans the range left
// to right. Reports false only when no position in the range satisfies accept.
func (g *Generator) search(bounds Bounds, v Variant, w int, accept func(x int) bool) (int, bool) {
	lo, hi := bounds.Range(v, w)
	if hi < lo {
		return lo, false
	}

	for i := 0; i < g.maxAttempts; i++ {
		x := lo + g.rng.Intn(hi-lo+1)
		if accept(x) {
			return x, true
		}
	}

	g.warn("random placement exhausted, scanning", "variant", v, "attempts", g.maxAttempts)
	for x := lo; x <= hi; x++ {
		if accept(x) {
			return x, true
		}
	}
	return lo, false
}

// best returns the position in range with the highest score; ties go left.
func (g *Generator) best(bounds Bounds, v Variant, w int, score func(x int) int) int {
	lo, hi := bounds.Range(v, w)
	if hi < lo {
		return lo
	}
	bestX, bestScore := lo, score(lo)
	for x := lo + 1; x <= hi; x++ {
		if s := score(x); s > bestScore {
			bestX, bestScore = x, s
		}
	}
	return bestX
}

func (g *Generator) warn(msg string, keyvals ...any) {
	if g.logger != nil {
		g.logger.Warn(msg, keyvals...)
	}
}
