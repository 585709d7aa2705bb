package entity

// EffectType identifies a decorative effect. At most one instance of each
// type is live at a time.
type EffectType int

const (
	EffectWalk EffectType = iota
	EffectRun
	EffectJump
	EffectTypeCount
)

// String returns the effect name used for sprite lookup
func (t EffectType) String() string {
	switch t {
	case EffectWalk:
		return "walk"
	case EffectRun:
		return "run"
	case EffectJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Locomotion reports whether the effect follows the actor
func (t EffectType) Locomotion() bool {
	return t == EffectWalk || t == EffectRun
}

// EffectSpec holds the per-type animation and placement constants
type EffectSpec struct {
	Frames     int
	FrameDelay float64 // seconds
	OffsetX    float64
	OffsetY    float64
	Size       float64
	Loop       bool
}

// Effect is a live effect instance
type Effect struct {
	Type        EffectType
	X, Y        float64
	Frame       int
	FrameTime   float64
	FacingRight bool
}
