package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/sunrun/internal/domain/entity"
)

func TestShadowFor_Platform(t *testing.T) {
	world := createTestWorld(testLedge)

	tests := []struct {
		name      string
		y         float64
		wantY     float64
		wantRX    float64
		wantAlpha float64
	}{
		{"standing", 592, 656, 25.6, 0.6},
		{"hundred above", 492, 656, 12.8, 0.35},
		{"high up", 192, 656, 7.68, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShadowFor(entity.NewActor(500, tt.y), world)
			assert.True(t, s.Visible)
			assert.False(t, s.OnGround)
			assert.Equal(t, 532.0, s.CX)
			assert.Equal(t, tt.wantY, s.CY)
			assert.InDelta(t, tt.wantRX, s.RX, 1e-9)
			assert.InDelta(t, tt.wantAlpha, s.Alpha, 1e-9)
		})
	}

	t.Run("ledge above the ground", func(t *testing.T) {
		s := ShadowFor(entity.NewActor(1050, 336), world)
		assert.Equal(t, 400.0, s.CY)
		assert.Equal(t, 0.6, s.Alpha)
	})
}

func TestShadowFor_GroundLine(t *testing.T) {
	level := &entity.Level{
		Width:  2560,
		Height: 720,
		Platforms: []entity.Platform{
			{Rect: entity.Rect{X: 0, Y: 656, W: 500, H: 64}, Kind: entity.PlatformGround},
		},
	}
	world := NewCollisionWorld(level, nil)

	s := ShadowFor(entity.NewActor(1000, 500), world)
	assert.True(t, s.Visible)
	assert.True(t, s.OnGround)
	assert.Equal(t, 656.0, s.CY)
	assert.InDelta(t, 1-92.0/300, s.RX/25.6, 1e-9)
	assert.InDelta(t, 0.6-92.0/500, s.Alpha, 1e-9)

	t.Run("below the ground line", func(t *testing.T) {
		s := ShadowFor(entity.NewActor(1000, 700), world)
		assert.False(t, s.Visible)
	})

	t.Run("no ground", func(t *testing.T) {
		empty := NewCollisionWorld(&entity.Level{Width: 100, Height: 100}, nil)
		assert.Equal(t, Shadow{}, ShadowFor(entity.NewActor(0, 0), empty))
	})
}
