package gunner

import (
	"github.com/vovakirdan/retro-gunner/internal/core"
)

// Surface is the visual texture of a platform. It has no physical effect.
type Surface string

const (
	SurfaceGrass   Surface = "grass"
	SurfaceAsphalt Surface = "asphalt"
)

// Platform is static level geometry. X/Y is the center.
type Platform struct {
	X, Y    float64
	W, H    float64
	Surface Surface
}

// Box returns the platform's collision box.
func (p Platform) Box() core.AABB {
	return core.BoxAround(core.V2(p.X, p.Y), p.W, p.H)
}

// Top returns the y-coordinate actors rest on.
func (p Platform) Top() float64 {
	return p.Y + p.H/2
}

// Level is the immutable geometry of one level index.
type Level struct {
	Index     int
	Platforms []Platform
}

// Layout names, one per distinct geometry.
const (
	LayoutTraining = "training grounds"
	LayoutTiers    = "twin tiers"
	LayoutSteps    = "stepping stones"
	LayoutArena    = "arena"
)

// LayoutName returns the name of the geometry used for a level index.
func LayoutName(index int) string {
	switch index {
	case 1:
		return LayoutTraining
	case 2:
		return LayoutTiers
	case 3:
		return LayoutSteps
	default:
		return LayoutArena
	}
}

// GenerateLevel returns the geometry of a 1-based level index. Levels above 3
// reuse the arena layout. The result is freshly allocated on every call.
func GenerateLevel(index int) Level {
	var platforms []Platform

	switch index {
	case 1:
		platforms = []Platform{
			{X: 0, Y: -3, W: 20, H: 1, Surface: SurfaceGrass},
			{X: -8, Y: -1, W: 6, H: 0.5, Surface: SurfaceAsphalt},
			{X: 8, Y: 0, W: 6, H: 0.5, Surface: SurfaceAsphalt},
			{X: 0, Y: 2, W: 10, H: 0.5, Surface: SurfaceGrass},
		}
	case 2:
		platforms = []Platform{
			{X: 0, Y: -3, W: 25, H: 1, Surface: SurfaceAsphalt},
			{X: -10, Y: -1, W: 5, H: 0.5, Surface: SurfaceAsphalt},
			{X: 10, Y: -1, W: 5, H: 0.5, Surface: SurfaceAsphalt},
			{X: -5, Y: 1, W: 8, H: 0.5, Surface: SurfaceAsphalt},
			{X: 5, Y: 1, W: 8, H: 0.5, Surface: SurfaceAsphalt},
			{X: 0, Y: 3, W: 12, H: 0.5, Surface: SurfaceGrass},
		}
	case 3:
		platforms = []Platform{
			{X: 0, Y: -3, W: 30, H: 1, Surface: SurfaceGrass},
			{X: -12, Y: -1.5, W: 4, H: 0.5, Surface: SurfaceAsphalt},
			{X: -6, Y: -0.5, W: 4, H: 0.5, Surface: SurfaceAsphalt},
			{X: 0, Y: 0.5, W: 6, H: 0.5, Surface: SurfaceAsphalt},
			{X: 6, Y: -0.5, W: 4, H: 0.5, Surface: SurfaceAsphalt},
			{X: 12, Y: -1.5, W: 4, H: 0.5, Surface: SurfaceAsphalt},
			{X: 0, Y: 2.5, W: 15, H: 0.5, Surface: SurfaceGrass},
		}
	default:
		platforms = []Platform{
			{X: 0, Y: -3, W: 35, H: 1, Surface: SurfaceAsphalt},
			{X: -10, Y: 0, W: 8, H: 0.5, Surface: SurfaceAsphalt},
			{X: 10, Y: 0, W: 8, H: 0.5, Surface: SurfaceAsphalt},
			{X: 0, Y: 2, W: 20, H: 0.5, Surface: SurfaceAsphalt},
		}
	}

	return Level{Index: index, Platforms: platforms}
}

// Bounds returns the horizontal extent covered by platforms.
func (l Level) Bounds() (minX, maxX float64) {
	for i, p := range l.Platforms {
		left, right := p.X-p.W/2, p.X+p.W/2
		if i == 0 || left < minX {
			minX = left
		}
		if i == 0 || right > maxX {
			maxX = right
		}
	}
	return minX, maxX
}

// Floor returns the lowest platform, the ground everything falls back to.
// Ties go to the wider platform.
func (l Level) Floor() Platform {
	var floor Platform
	for i, p := range l.Platforms {
		if i == 0 || p.Top() < floor.Top() || (p.Top() == floor.Top() && p.W > floor.W) {
			floor = p
		}
	}
	return floor
}
