package playing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/infrastructure/audio"
	"github.com/younwookim/sunrun/internal/infrastructure/settings"
)

type failingStore struct{}

func (failingStore) LoadItem(string) ([]byte, error) { return nil, nil }

func (failingStore) SaveItem(string, []byte) error { return errors.New("disk full") }

func newTestPreferences(store settings.Store) (*preferences, *int) {
	applied := 0
	return &preferences{
		keymap: system.NewKeymap(),
		mixer:  audio.NewMixer(0.5, 0.1, 1),
		store:  store,
		apply:  func() { applied++ },
	}, &applied
}

func storedString(t *testing.T, store settings.Store, key string) string {
	t.Helper()
	data, err := store.LoadItem(key)
	require.NoError(t, err)
	return string(data)
}

func TestPreferences_AudioChangesAreStored(t *testing.T) {
	store := settings.NewMemoryStore()
	prefs, applied := newTestPreferences(store)

	prefs.VolumeUp()
	assert.Equal(t, "0.6", storedString(t, store, settings.KeyVolume))
	assert.Equal(t, "false", storedString(t, store, settings.KeyMute))

	prefs.ToggleMute()
	assert.Equal(t, "true", storedString(t, store, settings.KeyMute))

	prefs.VolumeDown()
	prefs.VolumeDown()
	assert.Equal(t, "0.4", storedString(t, store, settings.KeyVolume))
	assert.Equal(t, 4, *applied)

	restored := audio.NewMixer(1, 0.1, 1)
	restored.Load(store)
	assert.InDelta(t, 0.4, restored.Volume(), 1e-9)
	assert.True(t, restored.Muted())
}

func TestPreferences_ResetControlsIsStored(t *testing.T) {
	store := settings.NewMemoryStore()
	prefs, _ := newTestPreferences(store)
	prefs.keymap.Bind(system.ActionJump, "KeyW")
	require.NoError(t, prefs.SaveControls())

	require.NoError(t, prefs.ResetControls())

	var saved map[system.Action]string
	require.NoError(t, json.Unmarshal([]byte(storedString(t, store, settings.KeyControls)), &saved))
	assert.Equal(t, system.DefaultBindings(), saved)

	fresh := system.NewKeymap()
	fresh.Bind(system.ActionJump, "KeyW")
	fresh.Load(store)
	assert.Equal(t, "Space", fresh.Binding(system.ActionJump))
}

func TestPreferences_SaveErrors(t *testing.T) {
	prefs, _ := newTestPreferences(failingStore{})

	prefs.VolumeUp()
	assert.InDelta(t, 0.6, prefs.mixer.Volume(), 1e-9)
	assert.Error(t, prefs.ResetControls())
	assert.Error(t, prefs.SaveAll())
}

func TestPreferences_NoStore(t *testing.T) {
	prefs, applied := newTestPreferences(nil)

	prefs.ToggleMute()
	assert.True(t, prefs.mixer.Muted())
	assert.Equal(t, 1, *applied)
	assert.NoError(t, prefs.ResetControls())
	assert.NoError(t, prefs.SaveAll())
}
