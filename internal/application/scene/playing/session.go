package playing

import (
	"github.com/younwookim/sunrun/internal/application/state"
	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/domain/entity"
	"github.com/younwookim/sunrun/internal/infrastructure/config"
)

// Session is the simulation half of the playing scene. It owns the actor,
// the systems that move it and the camera, and knows nothing about ebiten.
type Session struct {
	cfg     *config.PhysicsConfig
	profile string

	level   *entity.Level
	actor   *entity.Actor
	physics *system.PhysicsSystem
	effects *system.EffectSystem
	camSys  *system.CameraSystem
	camera  entity.Camera
	state   state.GameState
	ticks   int
}

// NewSession creates a session in the Ready state with the actor at the spawn
func NewSession(cfg *config.PhysicsConfig, profile string, level *entity.Level) *Session {
	s := &Session{
		cfg:     cfg,
		profile: profile,
		effects: system.NewEffectSystem(cfg.Effects.Specs()),
		state:   state.StateReady,
		camera: entity.Camera{
			ViewW: float64(cfg.Display.ScreenWidth),
			ViewH: float64(cfg.Display.ScreenHeight),
		},
	}
	s.load(level)
	return s
}

// load builds the level-dependent systems and places the actor at the spawn
func (s *Session) load(level *entity.Level) {
	world := system.NewCollisionWorld(level, s.cfg.Collision.Policies())
	s.level = level
	s.physics = system.NewPhysicsSystem(s.cfg, s.profile, level, world)
	s.physics.OnJump = s.effects.ActivateJump

	if s.actor == nil {
		s.actor = entity.NewActor(level.Spawn.X, level.Spawn.Y)
	} else {
		s.actor.Reset(level.Spawn.X, level.Spawn.Y)
	}

	s.camera.FollowSpeed = s.cfg.Camera.FollowSpeed
	if level.Settings.CameraFollowSpeed != 0 {
		s.camera.FollowSpeed = level.Settings.CameraFollowSpeed
	}
	if s.camSys == nil {
		s.camSys = system.NewCameraSystem(level.Width, level.Height)
	} else {
		s.camSys.Resize(level.Width, level.Height)
	}

	s.effects.Clear()
	s.camSys.Snap(&s.camera, s.actor)
}

// Start leaves the start screen: the actor goes back to the spawn with
// no effects running and play begins.
func (s *Session) Start() {
	s.actor.Reset(s.level.Spawn.X, s.level.Spawn.Y)
	s.effects.Clear()
	s.camSys.Snap(&s.camera, s.actor)
	s.ticks = 0
	s.state = state.StatePlaying
}

// SwapLevel replaces the level in place, keeping the current state
func (s *Session) SwapLevel(level *entity.Level) {
	s.load(level)
}

// Tick advances the simulation by one frame. Physics runs per tick while
// animations and effects use the measured delta.
func (s *Session) Tick(in system.Actions, dt float64) {
	if !s.state.Active() {
		return
	}

	s.physics.Update(s.actor, in, s.state.InputLocked())
	system.UpdateAnimation(s.actor, dt)
	s.effects.Update(s.actor, dt)
	s.camSys.Update(&s.camera, s.actor, s.state.Active())
	s.ticks++
}

// OpenSettings locks input behind the settings panel
func (s *Session) OpenSettings() {
	if s.state == state.StatePlaying {
		s.state = state.StateSettings
	}
}

// CloseSettings returns to play
func (s *Session) CloseSettings() {
	if s.state == state.StateSettings {
		s.state = state.StatePlaying
	}
}

// State returns the current game state
func (s *Session) State() state.GameState {
	return s.state
}

// Level returns the loaded level
func (s *Session) Level() *entity.Level {
	return s.level
}

// Actor returns the player actor
func (s *Session) Actor() *entity.Actor {
	return s.actor
}

// Camera returns the viewport
func (s *Session) Camera() *entity.Camera {
	return &s.camera
}

// Effects returns the effect system
func (s *Session) Effects() *system.EffectSystem {
	return s.effects
}

// World returns the collision world of the loaded level
func (s *Session) World() *system.CollisionWorld {
	return s.physics.World()
}

// Ticks returns the number of ticks simulated since Start
func (s *Session) Ticks() int {
	return s.ticks
}

// Profile returns the movement profile name
func (s *Session) Profile() string {
	return s.profile
}
