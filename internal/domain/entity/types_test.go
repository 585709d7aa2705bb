package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"shares right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"shares bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"shares corner", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(r), "symmetric")
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 3, Y: 4, W: 10, H: 20}
	assert.Equal(t, 13.0, r.Right())
	assert.Equal(t, 24.0, r.Bottom())
}

func TestPlatformKind(t *testing.T) {
	assert.Equal(t, PlatformGround, ParsePlatformKind("ground"))
	assert.Equal(t, PlatformFloating, ParsePlatformKind("platform"))
	assert.Equal(t, PlatformFloating, ParsePlatformKind(""))
	assert.Equal(t, PlatformFloating, ParsePlatformKind("Ground"))

	assert.Equal(t, "ground", PlatformGround.String())
	assert.Equal(t, "platform", PlatformFloating.String())
	assert.Equal(t, "unknown", PlatformKind(9).String())
}

func TestPolicyTable_For(t *testing.T) {
	table := DefaultPolicies()

	assert.Equal(t, CollisionPolicy{Top: true, Sides: true}, table.For(PlatformGround))
	assert.Equal(t, CollisionPolicy{Top: true, Sides: true, Bottom: true}, table.For(PlatformFloating))

	t.Run("missing kind is fully solid", func(t *testing.T) {
		sparse := PolicyTable{PlatformGround: {Top: true}}
		assert.Equal(t, CollisionPolicy{Top: true, Sides: true, Bottom: true}, sparse.For(PlatformFloating))
	})
}

func TestLevel_Ground(t *testing.T) {
	level := &Level{Platforms: []Platform{
		{Rect: Rect{X: 100, Y: 300, W: 50, H: 10}, Kind: PlatformFloating},
		{Rect: Rect{X: 0, Y: 656, W: 2560, H: 64}, Kind: PlatformGround},
	}}

	g, ok := level.Ground()
	assert.True(t, ok)
	assert.Equal(t, 656.0, g.Y)

	_, ok = (&Level{}).Ground()
	assert.False(t, ok)
}

func TestEffectType(t *testing.T) {
	assert.Equal(t, "walk", EffectWalk.String())
	assert.Equal(t, "run", EffectRun.String())
	assert.Equal(t, "jump", EffectJump.String())
	assert.Equal(t, "unknown", EffectTypeCount.String())

	assert.True(t, EffectWalk.Locomotion())
	assert.True(t, EffectRun.Locomotion())
	assert.False(t, EffectJump.Locomotion())
}

func TestCamera(t *testing.T) {
	c := &Camera{X: 100, Y: 50, ViewW: 1280, ViewH: 720}

	x, y := c.WorldToScreen(300, 400)
	assert.Equal(t, 200.0, x)
	assert.Equal(t, 350.0, y)

	assert.True(t, c.Visible(Rect{X: 0, Y: 0, W: 101, H: 51}))
	assert.False(t, c.Visible(Rect{X: 0, Y: 0, W: 100, H: 720}), "ends at the left edge")
	assert.True(t, c.Visible(Rect{X: 1379, Y: 700, W: 64, H: 64}))
	assert.False(t, c.Visible(Rect{X: 1380, Y: 700, W: 64, H: 64}), "starts at the right edge")
}
