package system

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
	"github.com/younwookim/sunrun/internal/domain/entity"
)

const (
	tagSolid  = "solid"
	tagQuery  = "query"
	cellSize  = 32
	querySkin = 1.0
)

// CollisionWorld holds the static platforms of a level and resolves the actor
// against them. Platforms are indexed in a resolv space used as broad-phase;
// the narrow-phase is an exact strict AABB test.
type CollisionWorld struct {
	platforms []entity.Platform
	policies  entity.PolicyTable
	width     float64
	height    float64

	space *resolv.Space
	query *resolv.Object
}

// NewCollisionWorld copies the level's platform list and builds the index
func NewCollisionWorld(level *entity.Level, policies entity.PolicyTable) *CollisionWorld {
	if policies == nil {
		policies = entity.DefaultPolicies()
	}

	platforms := make([]entity.Platform, len(level.Platforms))
	copy(platforms, level.Platforms)

	w := &CollisionWorld{
		platforms: platforms,
		policies:  policies,
		width:     level.Width,
		height:    level.Height,
	}

	spaceW, spaceH := level.Width, level.Height
	for _, p := range platforms {
		spaceW = math.Max(spaceW, p.Right())
		spaceH = math.Max(spaceH, p.Bottom())
	}
	cellsW := int(math.Ceil(spaceW)) + cellSize
	cellsH := int(math.Ceil(spaceH)) + cellSize
	w.space = resolv.NewSpace(cellsW, cellsH, cellSize, cellSize)

	for i, p := range platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tagSolid, p.Kind.String())
		obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
		obj.Data = i
		w.space.Add(obj)
	}

	w.query = resolv.NewObject(0, 0, 1, 1, tagQuery)
	w.space.Add(w.query)

	return w
}

// Platforms returns the platform list. Callers must not modify it.
func (w *CollisionWorld) Platforms() []entity.Platform {
	return w.platforms
}

// Policy returns the collision policy applied to a platform kind
func (w *CollisionWorld) Policy(kind entity.PlatformKind) entity.CollisionPolicy {
	return w.policies.For(kind)
}

// Size returns the level dimensions the world was built for
func (w *CollisionWorld) Size() (float64, float64) {
	return w.width, w.height
}

// Candidates returns the indices of platforms near r, in platform-list order.
// The result is a superset of the overlapping platforms; edge-touching
// neighbours are included.
func (w *CollisionWorld) Candidates(r entity.Rect) []int {
	w.query.X = r.X - querySkin
	w.query.Y = r.Y - querySkin
	w.query.W = r.W + 2*querySkin
	w.query.H = r.H + 2*querySkin
	w.query.Update()

	check := w.query.Check(0, 0, tagSolid)
	if check == nil {
		return nil
	}

	indices := make([]int, 0, len(check.Objects))
	seen := make(map[int]bool, len(check.Objects))
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

// Resolve pushes the actor out of every overlapping platform along the axis
// of minimum penetration, gated by the platform's policy and the actor's
// direction of travel. OnGround and Wall are recomputed.
func (w *CollisionWorld) Resolve(a *entity.Actor) {
	a.OnGround = false
	a.Wall = entity.WallNone

	for _, i := range w.Candidates(a.Rect()) {
		p := w.platforms[i]
		if !a.Rect().Overlaps(p.Rect) {
			continue
		}
		w.resolveOne(a, p)
	}

	w.detectWalls(a)
}

type side int

const (
	sideLeft side = iota
	sideRight
	sideTop
	sideBottom
)

// minPenetration returns the side with the smallest overlap.
// Ties go to the earlier side in left, right, top, bottom order.
func minPenetration(a, p entity.Rect) side {
	pen := [4]float64{
		sideLeft:   a.Right() - p.X,
		sideRight:  p.Right() - a.X,
		sideTop:    a.Bottom() - p.Y,
		sideBottom: p.Bottom() - a.Y,
	}
	best := sideLeft
	for s := sideRight; s <= sideBottom; s++ {
		if pen[s] < pen[best] {
			best = s
		}
	}
	return best
}

func (w *CollisionWorld) resolveOne(a *entity.Actor, p entity.Platform) {
	policy := w.policies.For(p.Kind)

	switch minPenetration(a.Rect(), p.Rect) {
	case sideTop:
		if a.VelY > 0 && policy.Top {
			a.Y = p.Y - a.H
			a.VelY = 0
			a.OnGround = true
			a.IsJumping = false
		}
	case sideBottom:
		if a.VelY < 0 && policy.Bottom {
			a.Y = p.Bottom()
			a.VelY = 0
		}
	case sideLeft:
		if a.VelX > 0 && policy.Sides {
			a.X = p.X - a.W
			a.VelX = 0
			a.Wall = entity.WallRight
		}
	case sideRight:
		if a.VelX < 0 && policy.Sides {
			a.X = p.Right()
			a.VelX = 0
			a.Wall = entity.WallLeft
		}
	}
}

// detectWalls latches Wall when the actor's side is flush with a platform
// that vertically overlaps it.
func (w *CollisionWorld) detectWalls(a *entity.Actor) {
	if a.Wall != entity.WallNone {
		return
	}
	r := a.Rect()
	for _, i := range w.Candidates(r) {
		p := w.platforms[i]
		if !w.policies.For(p.Kind).Sides {
			continue
		}
		if !(r.Y < p.Bottom() && r.Bottom() > p.Y) {
			continue
		}
		switch {
		case r.Right() == p.X:
			a.Wall = entity.WallRight
			return
		case r.X == p.Right():
			a.Wall = entity.WallLeft
			return
		}
	}
}

// GroundBelow returns the nearest platform whose top is at or below the
// actor's feet and which horizontally overlaps it.
func (w *CollisionWorld) GroundBelow(a *entity.Actor) (entity.Platform, float64, bool) {
	var (
		best  entity.Platform
		dist  = math.Inf(1)
		found bool
	)
	r := a.Rect()
	for _, p := range w.platforms {
		if r.Right() > p.X && r.X < p.Right() && r.Bottom() <= p.Y {
			d := p.Y - r.Bottom()
			if d < dist {
				best, dist, found = p, d, true
			}
		}
	}
	return best, dist, found
}
