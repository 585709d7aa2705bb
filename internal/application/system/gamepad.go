package system

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GamepadState is a polled standard-layout gamepad reading
type GamepadState struct {
	Connected bool
	StickX    float64
	DpadLeft  bool
	DpadRight bool
	Trigger   float64 // right trigger value in [0,1]
	A         bool    // bottom face button
}

// GamepadMapping holds the analog thresholds
type GamepadMapping struct {
	DeadZone         float64
	StickThreshold   float64
	TriggerThreshold float64
}

// ApplyDeadZone zeroes analog values inside the dead zone
func (m GamepadMapping) ApplyDeadZone(v float64) float64 {
	if math.Abs(v) > m.DeadZone {
		return v
	}
	return 0
}

// Movement returns -1, 0 or 1 from the stick or d-pad. Right wins.
func (m GamepadMapping) Movement(s GamepadState) int {
	x := m.ApplyDeadZone(s.StickX)
	dir := 0
	if x < -m.StickThreshold || s.DpadLeft {
		dir = -1
	}
	if x > m.StickThreshold || s.DpadRight {
		dir = 1
	}
	return dir
}

// Pressed maps the gamepad state to an action
func (m GamepadMapping) Pressed(s GamepadState, a Action) bool {
	if !s.Connected {
		return false
	}
	switch a {
	case ActionLeft:
		return m.Movement(s) == -1
	case ActionRight:
		return m.Movement(s) == 1
	case ActionRun:
		return s.Trigger > m.TriggerThreshold
	case ActionJump:
		return s.A
	}
	return false
}

// GamepadSource polls the first connected gamepad with a standard layout
type GamepadSource struct {
	id        ebiten.GamepadID
	connected bool
	name      string
	ids       []ebiten.GamepadID
}

// NewGamepadSource creates an unconnected gamepad source
func NewGamepadSource() *GamepadSource {
	return &GamepadSource{}
}

// Status returns the connected gamepad's name
func (g *GamepadSource) Status() (string, bool) {
	return g.name, g.connected
}

// Poll tracks connection changes and returns the current reading
func (g *GamepadSource) Poll() GamepadState {
	if g.connected && inpututil.IsGamepadJustDisconnected(g.id) {
		log.Printf("gamepad: disconnected %q", g.name)
		g.connected = false
		g.name = ""
	}

	if !g.connected {
		g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
		for _, id := range g.ids {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			g.id = id
			g.connected = true
			g.name = ebiten.GamepadName(id)
			log.Printf("gamepad: connected %q", g.name)
			break
		}
	}

	if !g.connected {
		return GamepadState{}
	}

	return GamepadState{
		Connected: true,
		StickX:    ebiten.StandardGamepadAxisValue(g.id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		DpadLeft:  ebiten.IsStandardGamepadButtonPressed(g.id, ebiten.StandardGamepadButtonLeftLeft),
		DpadRight: ebiten.IsStandardGamepadButtonPressed(g.id, ebiten.StandardGamepadButtonLeftRight),
		Trigger:   ebiten.StandardGamepadButtonValue(g.id, ebiten.StandardGamepadButtonFrontBottomRight),
		A:         ebiten.IsStandardGamepadButtonPressed(g.id, ebiten.StandardGamepadButtonRightBottom),
	}
}
