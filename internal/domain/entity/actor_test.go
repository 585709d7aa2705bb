package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewActor(t *testing.T) {
	a := NewActor(200, 592)

	assert.Equal(t, 200.0, a.X)
	assert.Equal(t, 592.0, a.Y)
	assert.Equal(t, Rect{X: 200, Y: 592, W: ActorSize, H: ActorSize}, a.Rect())
	assert.True(t, a.FacingRight)
	assert.True(t, a.CanJump)
	assert.False(t, a.OnGround)
	assert.Equal(t, WallNone, a.Wall)
	assert.Equal(t, AnimIdle, a.AnimState())
}

func TestActor_Reset(t *testing.T) {
	a := NewActor(0, 0)
	a.VelX, a.VelY = 5, -3
	a.OnGround, a.IsJumping, a.IsRunning = true, true, true
	a.CurrentSpeed = 8
	a.JumpCooldown = 12
	a.CanJump = false
	a.Wall = WallRight
	a.FacingRight = false
	a.Anims[AnimWalk].Frame = 1
	a.Anims[AnimWalk].FrameTime = 0.1

	a.Reset(50, 60)

	assert.Equal(t, 50.0, a.X)
	assert.Equal(t, 60.0, a.Y)
	assert.Zero(t, a.VelX)
	assert.Zero(t, a.VelY)
	assert.False(t, a.OnGround)
	assert.False(t, a.IsJumping)
	assert.False(t, a.IsRunning)
	assert.Zero(t, a.CurrentSpeed)
	assert.Zero(t, a.JumpCooldown)
	assert.True(t, a.CanJump)
	assert.Equal(t, WallNone, a.Wall)
	assert.Equal(t, AnimClock{Frames: 2, FrameDelay: 0.2}, a.Anims[AnimWalk])
	assert.False(t, a.FacingRight, "facing survives a reset")
}

func TestActor_AnimState(t *testing.T) {
	tests := []struct {
		name    string
		velX    float64
		running bool
		jumping bool
		want    AnimState
	}{
		{"idle", 0, false, false, AnimIdle},
		{"walk", 3, false, false, AnimWalk},
		{"walk left", -3, false, false, AnimWalk},
		{"run", 7, true, false, AnimRun},
		{"running flag without motion", 0, true, false, AnimIdle},
		{"jump wins", 7, true, true, AnimJump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(0, 0)
			a.VelX = tt.velX
			a.IsRunning = tt.running
			a.IsJumping = tt.jumping
			assert.Equal(t, tt.want, a.AnimState())
			assert.NotEqual(t, "unknown", tt.want.String())
		})
	}
}

func TestAnimClock_Advance(t *testing.T) {
	c := AnimClock{Frames: 3, FrameDelay: 0.5}

	c.Advance(0.25)
	assert.Equal(t, 0, c.Frame)
	c.Advance(0.25)
	assert.Equal(t, 1, c.Frame)
	assert.Zero(t, c.FrameTime)

	c.Advance(5)
	assert.Equal(t, 2, c.Frame, "one frame per call")
	c.Advance(0.5)
	assert.Equal(t, 0, c.Frame, "wraps")

	empty := AnimClock{}
	empty.Advance(1)
	assert.Equal(t, 0, empty.Frame)
}
