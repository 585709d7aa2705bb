package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestGamepadMapping() GamepadMapping {
	return GamepadMapping{DeadZone: 0.3, StickThreshold: 0.5, TriggerThreshold: 0.3}
}

func TestGamepadMapping_DeadZone(t *testing.T) {
	m := createTestGamepadMapping()

	assert.Equal(t, 0.0, m.ApplyDeadZone(0.2))
	assert.Equal(t, 0.0, m.ApplyDeadZone(-0.3))
	assert.Equal(t, 0.31, m.ApplyDeadZone(0.31))
	assert.Equal(t, -0.9, m.ApplyDeadZone(-0.9))
}

func TestGamepadMapping_Movement(t *testing.T) {
	m := createTestGamepadMapping()

	tests := []struct {
		name  string
		state GamepadState
		want  int
	}{
		{"centered", GamepadState{}, 0},
		{"stick below threshold", GamepadState{StickX: 0.45}, 0},
		{"stick right", GamepadState{StickX: 0.8}, 1},
		{"stick left", GamepadState{StickX: -0.8}, -1},
		{"dpad left", GamepadState{DpadLeft: true}, -1},
		{"dpad right", GamepadState{DpadRight: true}, 1},
		{"right wins", GamepadState{DpadLeft: true, DpadRight: true}, 1},
		{"dpad beats centered stick", GamepadState{StickX: 0.1, DpadLeft: true}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Movement(tt.state))
		})
	}
}

func TestGamepadMapping_Pressed(t *testing.T) {
	m := createTestGamepadMapping()

	s := GamepadState{Connected: true, StickX: -1, Trigger: 0.6, A: true}
	assert.True(t, m.Pressed(s, ActionLeft))
	assert.False(t, m.Pressed(s, ActionRight))
	assert.True(t, m.Pressed(s, ActionRun))
	assert.True(t, m.Pressed(s, ActionJump))

	s.Trigger = 0.3
	assert.False(t, m.Pressed(s, ActionRun), "trigger must exceed the threshold")

	s.Connected = false
	for _, a := range AllActions {
		assert.False(t, m.Pressed(s, a), "disconnected pad reports nothing")
	}
}
