package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sunrun/internal/domain/entity"
)

// TouchPoint is a screen-space contact from a finger or the mouse
type TouchPoint struct {
	X, Y float64
}

// TouchButton is an on-screen button bound to an action
type TouchButton struct {
	Action Action
	Label  string
	Bounds entity.Rect
}

// TouchLayout positions the on-screen controls
type TouchLayout struct {
	Buttons        []TouchButton
	JoystickX      float64
	JoystickY      float64
	JoystickRadius float64
	DeadZone       float64
}

// DefaultTouchLayout places the joystick bottom-left and the buttons
// bottom-right of a viewW x viewH screen.
func DefaultTouchLayout(viewW, viewH, radius, deadZone float64) TouchLayout {
	const size = 96
	const margin = 32
	return TouchLayout{
		Buttons: []TouchButton{
			{Action: ActionLeft, Label: "<", Bounds: entity.Rect{X: margin, Y: viewH - 3*size - margin, W: size, H: size}},
			{Action: ActionRight, Label: ">", Bounds: entity.Rect{X: margin + size + 16, Y: viewH - 3*size - margin, W: size, H: size}},
			{Action: ActionRun, Label: "RUN", Bounds: entity.Rect{X: viewW - 2*size - 2*margin, Y: viewH - size - margin, W: size, H: size}},
			{Action: ActionJump, Label: "JUMP", Bounds: entity.Rect{X: viewW - size - margin, Y: viewH - size - margin, W: size, H: size}},
		},
		JoystickX:      margin + radius*1.5,
		JoystickY:      viewH - margin - radius*1.5,
		JoystickRadius: radius,
		DeadZone:       deadZone,
	}
}

// TouchControls turns touch points into button and joystick state
type TouchControls struct {
	layout   TouchLayout
	buttons  map[Action]bool
	joyDir   int
	knobX    float64
	knobY    float64
	joyTouch bool
}

// NewTouchControls creates touch controls with the given layout
func NewTouchControls(layout TouchLayout) *TouchControls {
	return &TouchControls{
		layout:  layout,
		buttons: make(map[Action]bool),
		knobX:   layout.JoystickX,
		knobY:   layout.JoystickY,
	}
}

// Layout returns the control layout
func (t *TouchControls) Layout() TouchLayout {
	return t.layout
}

// JoystickDirection maps a horizontal displacement to -1, 0 or 1
func JoystickDirection(dx, deadZone float64) int {
	switch {
	case dx < -deadZone:
		return -1
	case dx > deadZone:
		return 1
	default:
		return 0
	}
}

// Apply recomputes button and joystick state from the current contacts
func (t *TouchControls) Apply(points []TouchPoint) {
	for k := range t.buttons {
		delete(t.buttons, k)
	}
	t.joyDir = 0
	t.joyTouch = false
	t.knobX, t.knobY = t.layout.JoystickX, t.layout.JoystickY

	for _, p := range points {
		hit := false
		for _, b := range t.layout.Buttons {
			if p.X >= b.Bounds.X && p.X < b.Bounds.Right() && p.Y >= b.Bounds.Y && p.Y < b.Bounds.Bottom() {
				t.buttons[b.Action] = true
				hit = true
			}
		}
		if hit || t.joyTouch {
			continue
		}

		dx := p.X - t.layout.JoystickX
		dy := p.Y - t.layout.JoystickY
		reach := t.layout.JoystickRadius * 2
		if math.Hypot(dx, dy) > reach {
			continue
		}
		t.joyTouch = true
		t.joyDir = JoystickDirection(dx, t.layout.DeadZone)

		if d := math.Hypot(dx, dy); d > t.layout.JoystickRadius {
			dx *= t.layout.JoystickRadius / d
			dy *= t.layout.JoystickRadius / d
		}
		t.knobX = t.layout.JoystickX + dx
		t.knobY = t.layout.JoystickY + dy
	}
}

// Pressed reports the touch state of an action
func (t *TouchControls) Pressed(a Action) bool {
	if t.buttons[a] {
		return true
	}
	switch a {
	case ActionLeft:
		return t.joyDir == -1
	case ActionRight:
		return t.joyDir == 1
	}
	return false
}

// ButtonDown reports whether an on-screen button is held
func (t *TouchControls) ButtonDown(a Action) bool {
	return t.buttons[a]
}

// Knob returns the joystick knob position
func (t *TouchControls) Knob() (float64, float64) {
	return t.knobX, t.knobY
}

// PollTouches collects active touches, using the left mouse button as a touch proxy
func PollTouches(dst []TouchPoint) []TouchPoint {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, TouchPoint{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, TouchPoint{X: float64(x), Y: float64(y)})
	}
	return dst
}
