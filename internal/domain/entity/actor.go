package entity

// ActorSize is the fixed width and height of the player body in pixels
const ActorSize = 64

// WallContact records which side the actor is pressed against
type WallContact int

const (
	WallNone WallContact = iota
	WallLeft
	WallRight
)

// AnimState selects one of the actor's animation clocks
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimRun
	AnimJump
	animStateCount
)

// String returns the animation name
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	default:
		return "unknown"
	}
}

// AnimClock is a looping frame counter advanced by wall-clock time
type AnimClock struct {
	Frames     int
	FrameDelay float64 // seconds per frame
	Frame      int
	FrameTime  float64
}

// Advance adds dt seconds and steps at most one frame
func (c *AnimClock) Advance(dt float64) {
	if c.Frames <= 0 {
		return
	}
	c.FrameTime += dt
	if c.FrameTime >= c.FrameDelay {
		c.FrameTime = 0
		c.Frame = (c.Frame + 1) % c.Frames
	}
}

// Actor is the single player-controlled dynamic body.
// Position and velocity are in pixels and pixels per tick.
type Actor struct {
	X, Y       float64
	VelX, VelY float64
	W, H       float64

	FacingRight bool
	OnGround    bool
	IsJumping   bool
	IsRunning   bool

	// CurrentSpeed is the ramped horizontal speed magnitude
	CurrentSpeed float64
	JumpCooldown int
	// CanJump latches false on a jump until the jump action is released
	CanJump bool
	Wall    WallContact

	Anims [animStateCount]AnimClock
}

// NewActor creates an actor at the given spawn position
func NewActor(x, y float64) *Actor {
	a := &Actor{
		W:           ActorSize,
		H:           ActorSize,
		FacingRight: true,
		CanJump:     true,
	}
	a.Anims[AnimIdle] = AnimClock{Frames: 1, FrameDelay: 0.2}
	a.Anims[AnimWalk] = AnimClock{Frames: 2, FrameDelay: 0.2}
	a.Anims[AnimRun] = AnimClock{Frames: 2, FrameDelay: 0.1}
	a.Anims[AnimJump] = AnimClock{Frames: 1, FrameDelay: 0.2}
	a.Reset(x, y)
	return a
}

// Reset repositions the actor and clears its motion state
func (a *Actor) Reset(x, y float64) {
	a.X, a.Y = x, y
	a.VelX, a.VelY = 0, 0
	a.OnGround = false
	a.IsJumping = false
	a.IsRunning = false
	a.CurrentSpeed = 0
	a.JumpCooldown = 0
	a.CanJump = true
	a.Wall = WallNone
	for i := range a.Anims {
		a.Anims[i].Frame = 0
		a.Anims[i].FrameTime = 0
	}
}

// Rect returns the actor's bounding box
func (a *Actor) Rect() Rect {
	return Rect{X: a.X, Y: a.Y, W: a.W, H: a.H}
}

// AnimState returns the animation that is currently playing
func (a *Actor) AnimState() AnimState {
	switch {
	case a.IsJumping:
		return AnimJump
	case a.VelX != 0 && a.IsRunning:
		return AnimRun
	case a.VelX != 0:
		return AnimWalk
	default:
		return AnimIdle
	}
}
