package entity

// Rect is an axis-aligned rectangle in world space (y grows downward)
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two rectangles intersect with positive area.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// PlatformKind tags a platform with its collision behaviour
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformFloating
)

// String returns the level-file name of the kind
func (k PlatformKind) String() string {
	switch k {
	case PlatformGround:
		return "ground"
	case PlatformFloating:
		return "platform"
	default:
		return "unknown"
	}
}

// ParsePlatformKind converts a level-file type tag into a PlatformKind.
// Unknown tags are treated as floating platforms.
func ParsePlatformKind(s string) PlatformKind {
	if s == "ground" {
		return PlatformGround
	}
	return PlatformFloating
}

// Platform is a static solid rectangle
type Platform struct {
	Rect
	Kind PlatformKind
}

// CollisionPolicy lists which faces of a platform resolve collisions
type CollisionPolicy struct {
	Top    bool
	Sides  bool
	Bottom bool
}

// PolicyTable maps each platform kind to its collision policy
type PolicyTable map[PlatformKind]CollisionPolicy

// DefaultPolicies returns the standard table: ground is solid on top and
// sides, floating platforms additionally stop a body moving up into them.
func DefaultPolicies() PolicyTable {
	return PolicyTable{
		PlatformGround:   {Top: true, Sides: true, Bottom: false},
		PlatformFloating: {Top: true, Sides: true, Bottom: true},
	}
}

// For returns the policy of kind, falling back to fully solid
func (t PolicyTable) For(kind PlatformKind) CollisionPolicy {
	if p, ok := t[kind]; ok {
		return p
	}
	return CollisionPolicy{Top: true, Sides: true, Bottom: true}
}

// Point is a world-space coordinate
type Point struct {
	X, Y float64
}

// LevelSettings holds per-level physics overrides. Zero values mean
// "use the global physics configuration".
type LevelSettings struct {
	Gravity           float64
	JumpForce         float64
	CameraFollowSpeed float64
}

// Light describes the ambient sun of a level
type Light struct {
	X, Y      float64
	Radius    float64
	Intensity float64
}

// LevelColors are the fill colors used for untextured platform drawing
type LevelColors struct {
	PlatformTop  string
	PlatformBody string
	GroundLine   string
}

// Level is the read-only level descriptor consumed by the core
type Level struct {
	Name      string
	Width     float64
	Height    float64
	Platforms []Platform
	Spawn     Point
	Settings  LevelSettings
	Light     Light
	Colors    LevelColors
}

// Ground returns the first ground platform, if any
func (l *Level) Ground() (Platform, bool) {
	for _, p := range l.Platforms {
		if p.Kind == PlatformGround {
			return p, true
		}
	}
	return Platform{}, false
}
