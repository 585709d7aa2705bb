package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sunrun/internal/infrastructure/settings"
)

func TestKeymap_Defaults(t *testing.T) {
	k := NewKeymap()

	assert.Equal(t, "ArrowLeft", k.Binding(ActionLeft))
	assert.Equal(t, "ArrowRight", k.Binding(ActionRight))
	assert.Equal(t, "Shift", k.Binding(ActionRun))
	assert.Equal(t, "Space", k.Binding(ActionJump))
}

func TestKeymap_Matches(t *testing.T) {
	k := NewKeymap()

	tests := []struct {
		name    string
		action  Action
		pressed string
		want    bool
	}{
		{"exact", ActionLeft, "ArrowLeft", true},
		{"other key", ActionLeft, "ArrowRight", false},
		{"left shift", ActionRun, "ShiftLeft", true},
		{"right shift", ActionRun, "ShiftRight", true},
		{"space name", ActionJump, "Space", true},
		{"space char", ActionJump, " ", true},
		{"empty", ActionJump, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, k.Matches(tt.action, tt.pressed))
		})
	}
}

func TestKeymap_Capture(t *testing.T) {
	k := NewKeymap()

	assert.False(t, k.HandleKeyPress("KeyA"), "not capturing")
	assert.Equal(t, "ArrowLeft", k.Binding(ActionLeft))

	k.BeginCapture(ActionLeft)
	a, ok := k.Capturing()
	require.True(t, ok)
	assert.Equal(t, ActionLeft, a)

	assert.True(t, k.HandleKeyPress("KeyA"))
	assert.Equal(t, "KeyA", k.Binding(ActionLeft))
	assert.True(t, k.Matches(ActionLeft, "KeyA"))
	assert.False(t, k.Matches(ActionLeft, "ArrowLeft"))

	_, ok = k.Capturing()
	assert.False(t, ok, "capture ends after one key")

	t.Run("space is normalized", func(t *testing.T) {
		k.BeginCapture(ActionRun)
		k.HandleKeyPress(" ")
		assert.Equal(t, "Space", k.Binding(ActionRun))
	})

	t.Run("cancel keeps binding", func(t *testing.T) {
		k.BeginCapture(ActionJump)
		k.CancelCapture()
		assert.False(t, k.HandleKeyPress("KeyZ"))
		assert.Equal(t, "Space", k.Binding(ActionJump))
	})

	t.Run("reset", func(t *testing.T) {
		k.BeginCapture(ActionJump)
		k.Reset()
		_, ok := k.Capturing()
		assert.False(t, ok)
		assert.Equal(t, DefaultBindings(), k.bindings)
	})
}

func TestKeymap_SaveLoad(t *testing.T) {
	store := settings.NewMemoryStore()

	k := NewKeymap()
	k.Bind(ActionJump, "KeyW")
	k.Bind(ActionRun, "KeyX")
	require.NoError(t, k.Save(store))

	loaded := NewKeymap()
	loaded.Load(store)
	assert.Equal(t, "KeyW", loaded.Binding(ActionJump))
	assert.Equal(t, "KeyX", loaded.Binding(ActionRun))
	assert.Equal(t, "ArrowLeft", loaded.Binding(ActionLeft))
}

func TestKeymap_LoadFallback(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		k := NewKeymap()
		k.Load(settings.NewMemoryStore())
		assert.Equal(t, DefaultBindings(), k.bindings)
	})

	t.Run("malformed", func(t *testing.T) {
		store := settings.NewMemoryStore()
		require.NoError(t, store.SaveItem(settings.KeyControls, []byte("{not json")))

		k := NewKeymap()
		k.Load(store)
		assert.Equal(t, DefaultBindings(), k.bindings)
	})

	t.Run("partial", func(t *testing.T) {
		store := settings.NewMemoryStore()
		require.NoError(t, store.SaveItem(settings.KeyControls, []byte(`{"jump":" ","left":""}`)))

		k := NewKeymap()
		k.Load(store)
		assert.Equal(t, "Space", k.Binding(ActionJump))
		assert.Equal(t, "ArrowLeft", k.Binding(ActionLeft), "empty entries are ignored")
	})
}

func TestKeymap_CaptureModifier(t *testing.T) {
	tests := []struct {
		captured string
		want     string
		other    string
	}{
		{"ShiftLeft", "Shift", "ShiftRight"},
		{"ShiftRight", "Shift", "ShiftLeft"},
		{"ControlLeft", "Control", "ControlRight"},
		{"AltRight", "Alt", "AltLeft"},
		{"MetaLeft", "Meta", "MetaRight"},
	}

	for _, tt := range tests {
		t.Run(tt.captured, func(t *testing.T) {
			k := NewKeymap()
			k.BeginCapture(ActionRun)
			require.True(t, k.HandleKeyPress(tt.captured))

			assert.Equal(t, tt.want, k.Binding(ActionRun))
			assert.True(t, k.Matches(ActionRun, tt.captured))
			assert.True(t, k.Matches(ActionRun, tt.other), "either side matches")
			assert.True(t, k.Matches(ActionRun, tt.want))
			assert.False(t, k.Matches(ActionRun, "KeyA"))
		})
	}

	t.Run("stored sided binding is folded", func(t *testing.T) {
		store := settings.NewMemoryStore()
		require.NoError(t, store.SaveItem(settings.KeyControls, []byte(`{"run":"ShiftLeft"}`)))

		k := NewKeymap()
		k.Load(store)
		assert.Equal(t, "Shift", k.Binding(ActionRun))
		assert.True(t, k.Matches(ActionRun, "ShiftRight"))
	})
}
