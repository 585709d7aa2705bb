package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/sunrun/internal/infrastructure/config"
)

// KeySource reports keyboard state as key names
type KeySource interface {
	AppendPressed(dst []string) []string
	AppendJustPressed(dst []string) []string
}

// GamepadReader polls a gamepad
type GamepadReader interface {
	Poll() GamepadState
}

// TouchReader appends the current touch points
type TouchReader func(dst []TouchPoint) []TouchPoint

// KeyboardSource reads the ebiten keyboard
type KeyboardSource struct {
	keys []ebiten.Key
}

func (k *KeyboardSource) AppendPressed(dst []string) []string {
	k.keys = inpututil.AppendPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		dst = append(dst, key.String())
	}
	return dst
}

func (k *KeyboardSource) AppendJustPressed(dst []string) []string {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		dst = append(dst, key.String())
	}
	return dst
}

// Aggregator merges keyboard, touch and gamepad input into logical actions
type Aggregator struct {
	keymap  *Keymap
	keys    KeySource
	pad     GamepadReader
	mapping GamepadMapping
	touch   *TouchControls
	touches TouchReader

	pressed     []string
	justPressed []string
	padState    GamepadState
	points      []TouchPoint
}

// NewAggregator creates an aggregator. pad, touch and touches may be nil.
func NewAggregator(cfg *config.PhysicsConfig, keymap *Keymap, keys KeySource, pad GamepadReader, touch *TouchControls, touches TouchReader) *Aggregator {
	return &Aggregator{
		keymap: keymap,
		keys:   keys,
		pad:    pad,
		mapping: GamepadMapping{
			DeadZone:         cfg.Input.GamepadDeadZone,
			StickThreshold:   cfg.Input.StickThreshold,
			TriggerThreshold: cfg.Input.TriggerThreshold,
		},
		touch:   touch,
		touches: touches,
	}
}

// Keymap returns the key bindings
func (a *Aggregator) Keymap() *Keymap {
	return a.keymap
}

// Touch returns the touch controls, or nil when touch input is off
func (a *Aggregator) Touch() *TouchControls {
	return a.touch
}

// Poll samples every device once per tick. While the keymap is capturing,
// the first newly pressed key is consumed as the new binding.
func (a *Aggregator) Poll() {
	a.pressed = a.keys.AppendPressed(a.pressed[:0])
	a.justPressed = a.keys.AppendJustPressed(a.justPressed[:0])

	if _, ok := a.keymap.Capturing(); ok && len(a.justPressed) > 0 {
		a.keymap.HandleKeyPress(a.justPressed[0])
	}

	if a.pad != nil {
		a.padState = a.pad.Poll()
	}

	if a.touch != nil && a.touches != nil {
		a.points = a.touches(a.points[:0])
		a.touch.Apply(a.points)
	}
}

// GamepadState returns the last gamepad reading
func (a *Aggregator) GamepadState() GamepadState {
	return a.padState
}

// IsActionPressed reports whether any device holds the action
func (a *Aggregator) IsActionPressed(act Action) bool {
	for _, key := range a.pressed {
		if a.keymap.Matches(act, key) {
			return true
		}
	}
	if a.touch != nil && a.touch.Pressed(act) {
		return true
	}
	return a.mapping.Pressed(a.padState, act)
}

// Actions returns the snapshot consumed by the physics system
func (a *Aggregator) Actions() Actions {
	return Actions{
		Left:  a.IsActionPressed(ActionLeft),
		Right: a.IsActionPressed(ActionRight),
		Run:   a.IsActionPressed(ActionRun),
		Jump:  a.IsActionPressed(ActionJump),
	}
}
