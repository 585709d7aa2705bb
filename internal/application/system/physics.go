package system

import (
	"math"

	"github.com/younwookim/sunrun/internal/domain/entity"
	"github.com/younwookim/sunrun/internal/infrastructure/config"
)

// Actions is the per-tick snapshot of the logical actions
type Actions struct {
	Left  bool
	Right bool
	Run   bool
	Jump  bool
}

// PhysicsSystem integrates the actor one fixed tick at a time
type PhysicsSystem struct {
	world *CollisionWorld

	gravity       float64
	jumpForce     float64
	cooldownTicks int
	respawnY      float64

	acceleration float64
	maxWalk      float64
	maxRun       float64
	runThreshold float64
	decelFactor  float64

	// OnJump fires with the actor's pre-jump position when a jump starts
	OnJump func(x, y float64, facingRight bool)
}

// NewPhysicsSystem creates a physics system for one level and movement profile.
// Non-zero level settings override the configured gravity and jump force.
func NewPhysicsSystem(cfg *config.PhysicsConfig, profile string, level *entity.Level, world *CollisionWorld) *PhysicsSystem {
	p := cfg.Profile(profile)
	s := &PhysicsSystem{
		world:         world,
		gravity:       cfg.Physics.Gravity,
		jumpForce:     cfg.Jump.Force,
		cooldownTicks: cfg.Jump.CooldownTicks,
		respawnY:      cfg.Physics.RespawnY,
		acceleration:  p.Acceleration,
		maxWalk:       p.MaxWalkSpeed,
		maxRun:        p.MaxRunSpeed,
		runThreshold:  cfg.Movement.RunThreshold,
		decelFactor:   cfg.Movement.DecelerationFactor,
	}
	if s.decelFactor == 0 {
		s.decelFactor = 2
	}
	if level.Settings.Gravity != 0 {
		s.gravity = level.Settings.Gravity
	}
	if level.Settings.JumpForce != 0 {
		s.jumpForce = level.Settings.JumpForce
	}
	return s
}

// World returns the collision world the system resolves against
func (s *PhysicsSystem) World() *CollisionWorld {
	return s.world
}

// Update advances the actor by one tick. While locked, horizontal motion is
// cancelled but an airborne actor keeps falling.
func (s *PhysicsSystem) Update(a *entity.Actor, in Actions, locked bool) {
	if locked {
		a.CurrentSpeed = 0
		a.VelX = 0
		a.IsRunning = false
		if !a.OnGround {
			a.VelY += s.gravity
			a.Y += a.VelY
			s.world.Resolve(a)
			s.applyBounds(a)
		}
		return
	}

	if a.JumpCooldown > 0 {
		a.JumpCooldown--
	}
	if !in.Jump {
		a.CanJump = true
	}

	s.updateSpeed(a, in)
	s.applyDirection(a, in)
	s.tryJump(a, in)

	a.VelY += s.gravity
	a.X += a.VelX
	a.Y += a.VelY

	s.world.Resolve(a)
	s.applyBounds(a)
}

// updateSpeed ramps CurrentSpeed toward the walk or run target
func (s *PhysicsSystem) updateSpeed(a *entity.Actor, in Actions) {
	if in.Left || in.Right {
		target := s.maxWalk
		if in.Run {
			target = s.maxRun
		}
		a.CurrentSpeed = math.Min(a.CurrentSpeed+s.acceleration, target)
	} else {
		a.CurrentSpeed = math.Max(a.CurrentSpeed-s.decelFactor*s.acceleration, 0)
	}
	a.IsRunning = a.CurrentSpeed >= s.runThreshold*s.maxRun
}

// applyDirection sets VelX and facing. Right wins when both are held.
func (s *PhysicsSystem) applyDirection(a *entity.Actor, in Actions) {
	a.VelX = 0
	if in.Left {
		a.VelX = -a.CurrentSpeed
		a.FacingRight = false
	}
	if in.Right {
		a.VelX = a.CurrentSpeed
		a.FacingRight = true
	}

	if (a.VelX > 0 && a.Wall == entity.WallRight) || (a.VelX < 0 && a.Wall == entity.WallLeft) {
		a.VelX = 0
	}
}

func (s *PhysicsSystem) tryJump(a *entity.Actor, in Actions) {
	if !in.Jump || !a.OnGround || a.JumpCooldown != 0 || !a.CanJump {
		return
	}

	x, y := a.X, a.Y
	a.VelY = s.jumpForce
	a.OnGround = false
	a.IsJumping = true
	a.JumpCooldown = s.cooldownTicks
	a.CanJump = false

	if s.OnJump != nil {
		s.OnJump(x, y, a.FacingRight)
	}
}

// applyBounds clamps X to the level and respawns an actor that fell out
func (s *PhysicsSystem) applyBounds(a *entity.Actor) {
	levelW, levelH := s.world.Size()

	maxX := math.Max(levelW-a.W, 0)
	if a.X < 0 {
		a.X = 0
	} else if a.X > maxX {
		a.X = maxX
	}

	if a.Y > levelH {
		a.Y = s.respawnY
		a.VelY = 0
		a.OnGround = true
		a.IsJumping = false
	}
}
