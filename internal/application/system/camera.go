package system

import (
	"math"

	"github.com/younwookim/sunrun/internal/domain/entity"
)

// CameraSystem moves the camera toward the actor and keeps it inside the level
type CameraSystem struct {
	levelW, levelH float64
}

// NewCameraSystem creates a camera system for a level of the given size
func NewCameraSystem(levelW, levelH float64) *CameraSystem {
	return &CameraSystem{levelW: levelW, levelH: levelH}
}

// Resize updates the level bounds after a level swap
func (s *CameraSystem) Resize(levelW, levelH float64) {
	s.levelW, s.levelH = levelW, levelH
}

// target returns the unclamped camera position that centers the actor
func (s *CameraSystem) target(c *entity.Camera, a *entity.Actor) (float64, float64) {
	offX := c.ViewW/2 - a.W/2
	offY := c.ViewH/2 - a.H/2
	return a.X - offX, a.Y - offY
}

// Update eases the camera toward the actor. The camera does not move while inactive.
func (s *CameraSystem) Update(c *entity.Camera, a *entity.Actor, active bool) {
	if !active {
		return
	}
	tx, ty := s.target(c, a)
	c.X += (tx - c.X) * c.FollowSpeed
	c.Y += (ty - c.Y) * c.FollowSpeed
	s.clamp(c)
}

// Snap moves the camera straight to the actor
func (s *CameraSystem) Snap(c *entity.Camera, a *entity.Actor) {
	c.X, c.Y = s.target(c, a)
	s.clamp(c)
}

func (s *CameraSystem) clamp(c *entity.Camera) {
	maxX := math.Max(s.levelW-c.ViewW, 0)
	maxY := math.Max(s.levelH-c.ViewH, 0)
	c.X = math.Min(math.Max(c.X, 0), maxX)
	c.Y = math.Min(math.Max(c.Y, 0), maxY)
}
