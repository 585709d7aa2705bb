package config

import "github.com/younwookim/sunrun/internal/domain/entity"

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig                    `json:"display"`
	Physics   PhysicsSettings                  `json:"physics"`
	Movement  MovementConfig                   `json:"movement"`
	Jump      JumpConfig                       `json:"jump"`
	Collision CollisionConfig                  `json:"collision"`
	Effects   EffectsConfig                    `json:"effects"`
	Camera    CameraConfig                     `json:"camera"`
	Input     InputConfig                      `json:"input"`
	Audio     AudioConfig                      `json:"audio"`
	Lighting  LightingConfig                   `json:"lighting"`
	Loading   LoadingConfig                    `json:"loading"`
	Profiles  map[string]MovementProfileConfig `json:"profiles"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type PhysicsSettings struct {
	Gravity  float64 `json:"gravity"`
	RespawnY float64 `json:"respawnY"` // fixed reset height after falling out of the level
}

type MovementConfig struct {
	// RunThreshold is the fraction of MaxRunSpeed at which the actor counts as running
	RunThreshold float64 `json:"runThreshold"`
	// DecelerationFactor multiplies acceleration when no direction is held
	DecelerationFactor float64 `json:"decelerationFactor"`
}

// MovementProfileConfig holds the per-device speed constants
type MovementProfileConfig struct {
	Acceleration float64 `json:"acceleration"`
	MaxWalkSpeed float64 `json:"maxWalkSpeed"`
	MaxRunSpeed  float64 `json:"maxRunSpeed"`
}

type JumpConfig struct {
	Force         float64 `json:"force"`
	CooldownTicks int     `json:"cooldownTicks"`
}

type CollisionConfig struct {
	Ground   PolicyConfig `json:"ground"`
	Floating PolicyConfig `json:"floating"`
}

type PolicyConfig struct {
	Top    bool `json:"top"`
	Sides  bool `json:"sides"`
	Bottom bool `json:"bottom"`
}

// Policies converts the collision section into a policy table
func (c CollisionConfig) Policies() entity.PolicyTable {
	return entity.PolicyTable{
		entity.PlatformGround:   entity.CollisionPolicy(c.Ground),
		entity.PlatformFloating: entity.CollisionPolicy(c.Floating),
	}
}

type EffectsConfig struct {
	Alpha float64          `json:"alpha"`
	Walk  EffectSpecConfig `json:"walk"`
	Run   EffectSpecConfig `json:"run"`
	Jump  EffectSpecConfig `json:"jump"`
}

type EffectSpecConfig struct {
	Frames     int     `json:"frames"`
	FrameDelay float64 `json:"frameDelay"` // seconds
	OffsetX    float64 `json:"offsetX"`
	OffsetY    float64 `json:"offsetY"`
	Size       float64 `json:"size"`
	Loop       bool    `json:"loop"`
}

// Specs returns the effect specs indexed by effect type
func (c EffectsConfig) Specs() [entity.EffectTypeCount]entity.EffectSpec {
	return [entity.EffectTypeCount]entity.EffectSpec{
		entity.EffectWalk: entity.EffectSpec(c.Walk),
		entity.EffectRun:  entity.EffectSpec(c.Run),
		entity.EffectJump: entity.EffectSpec(c.Jump),
	}
}

type CameraConfig struct {
	FollowSpeed float64 `json:"followSpeed"`
}

type InputConfig struct {
	JoystickDeadZone float64 `json:"joystickDeadZone"` // pixels
	JoystickRadius   float64 `json:"joystickRadius"`
	GamepadDeadZone  float64 `json:"gamepadDeadZone"`
	StickThreshold   float64 `json:"stickThreshold"`
	TriggerThreshold float64 `json:"triggerThreshold"`
}

type AudioConfig struct {
	Music         string  `json:"music"`
	DefaultVolume float64 `json:"defaultVolume"`
	VolumeStep    float64 `json:"volumeStep"`
	VolumeScale   float64 `json:"volumeScale"`
	SampleRate    int     `json:"sampleRate"`
}

type LightingConfig struct {
	Enabled      bool    `json:"enabled"`
	OverlayInner float64 `json:"overlayInner"`
	OverlayOuter float64 `json:"overlayOuter"`
	OverlayAlpha float64 `json:"overlayAlpha"`
}

type LoadingConfig struct {
	StartDelay  float64 `json:"startDelay"` // seconds between 100% and the start prompt
	Concurrency int     `json:"concurrency"`
}

// Profile returns the named movement profile, falling back to desktop
func (c *PhysicsConfig) Profile(name string) MovementProfileConfig {
	if p, ok := c.Profiles[name]; ok {
		return p
	}
	return c.Profiles["desktop"]
}
