// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sunrun/internal/application/scene"
)

// maxDT caps the measured frame delta so a stalled frame does not fast-forward animations
const maxDT = 0.25

// Game implements ebiten.Game and manages Scene transitions.
// Scenes receive the measured wall-clock delta of each frame.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	now     func() time.Time
	last    time.Time
	fixedDT float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.delta())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// delta returns the seconds elapsed since the previous Update
func (g *Game) delta() float64 {
	if g.fixedDT > 0 {
		return g.fixedDT
	}

	t := g.now()
	if g.last.IsZero() {
		g.last = t
		return 1.0 / float64(ebiten.TPS())
	}
	dt := t.Sub(g.last).Seconds()
	g.last = t

	if dt < 0 {
		return 0
	}
	if dt > maxDT {
		return maxDT
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT fixes the delta time passed to scenes instead of measuring it.
// Useful for testing and replays.
func (g *Game) SetDT(dt float64) {
	g.fixedDT = dt
}

// SetClock replaces the wall clock used to measure frame deltas
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}
