package system

import (
	"math"

	"github.com/younwookim/sunrun/internal/domain/entity"
)

// Shadow is the drop shadow ellipse drawn under the actor
type Shadow struct {
	CX, CY   float64 // ellipse center
	RX, RY   float64
	Alpha    float64
	Visible  bool
	OnGround bool
}

// ShadowFor projects the actor's shadow onto the nearest platform below it.
// Without a platform below, the shadow falls on the ground line of the level.
func ShadowFor(a *entity.Actor, world *CollisionWorld) Shadow {
	if p, dist, ok := world.GroundBelow(a); ok {
		scale := math.Max(0.3, 1-dist/200)
		alpha := math.Max(0.1, 0.6-dist/400)
		w := a.W * 0.8 * scale
		return Shadow{
			CX:      a.X + a.W/2,
			CY:      p.Y,
			RX:      w / 2,
			RY:      8 * scale / 2,
			Alpha:   alpha,
			Visible: true,
		}
	}

	groundY, ok := groundLine(world)
	if !ok || a.Y+a.H > groundY {
		return Shadow{}
	}
	dist := groundY - (a.Y + a.H)
	scale := math.Max(0.3, 1-dist/300)
	alpha := math.Max(0.1, 0.6-dist/500)
	w := a.W * 0.8 * scale
	return Shadow{
		CX:       a.X + a.W/2,
		CY:       groundY,
		RX:       w / 2,
		RY:       10 * scale / 2,
		Alpha:    alpha,
		Visible:  true,
		OnGround: true,
	}
}

func groundLine(world *CollisionWorld) (float64, bool) {
	for _, p := range world.Platforms() {
		if p.Kind == entity.PlatformGround {
			return p.Y, true
		}
	}
	return 0, false
}
