package main

import (
	"fmt"
	"log"
	"math"

	"github.com/younwookim/sunrun/internal/application/replay"
	"github.com/younwookim/sunrun/internal/application/scene/playing"
	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/domain/entity"
	"github.com/younwookim/sunrun/internal/infrastructure/config"
)

// replayTolerance absorbs float formatting in the replay file
const replayTolerance = 1e-6

// runReplay plays recorded input through a fresh session and returns the
// actor's final pose.
func runReplay(cfg *config.PhysicsConfig, level *entity.Level, data replay.ReplayData) replay.FinalState {
	session := playing.NewSession(cfg, data.Profile, level)
	session.Start()

	r := replay.NewReplayer(data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		if in.Locked {
			session.OpenSettings()
		} else {
			session.CloseSettings()
		}
		session.Tick(system.Actions{Left: in.Left, Right: in.Right, Run: in.Run, Jump: in.Jump}, in.DT)
	}

	a := session.Actor()
	return replay.FinalState{X: a.X, Y: a.Y, VelX: a.VelX, VelY: a.VelY, OnGround: a.OnGround}
}

// verifyReplay compares a headless run with the pose stored in the recording
func verifyReplay(cfg *config.PhysicsConfig, level *entity.Level, data replay.ReplayData) error {
	got := runReplay(cfg, level, data)
	log.Printf("replay: %d frames, final x=%.2f y=%.2f vx=%.2f vy=%.2f ground=%v",
		len(data.Frames), got.X, got.Y, got.VelX, got.VelY, got.OnGround)

	if data.Final == nil {
		return nil
	}
	want := *data.Final
	if !near(got.X, want.X) || !near(got.Y, want.Y) || !near(got.VelX, want.VelX) ||
		!near(got.VelY, want.VelY) || got.OnGround != want.OnGround {
		return fmt.Errorf("replay diverged: got %+v, recorded %+v", got, want)
	}
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= replayTolerance
}
