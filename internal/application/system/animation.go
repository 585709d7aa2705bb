package system

import "github.com/younwookim/sunrun/internal/domain/entity"

// Sprite keys of the player
const (
	SpriteIdle  = "idle"
	SpriteMove1 = "move1"
	SpriteMove2 = "move2"
	SpriteRun1  = "run1"
	SpriteRun2  = "run2"
)

// UpdateAnimation advances the clock of the actor's current animation by dt seconds
func UpdateAnimation(a *entity.Actor, dt float64) {
	a.Anims[a.AnimState()].Advance(dt)
}

// SpriteFor picks the player sprite for the current pose. Airborne actors
// show the walk or run frame they had when moving, idle otherwise.
func SpriteFor(a *entity.Actor) string {
	if a.VelX == 0 {
		return SpriteIdle
	}
	if a.IsRunning {
		if a.Anims[entity.AnimRun].Frame == 0 {
			return SpriteRun1
		}
		return SpriteRun2
	}
	if a.Anims[entity.AnimWalk].Frame == 0 {
		return SpriteMove1
	}
	return SpriteMove2
}
