package audio

import (
	"math"

	"github.com/younwookim/sunrun/internal/infrastructure/settings"
)

// Mixer holds the user volume and mute state
type Mixer struct {
	volume float64
	muted  bool
	step   float64
	scale  float64
}

// NewMixer creates a mixer. scale converts the user volume into the
// playback gain; step is the increment used by VolumeUp and VolumeDown.
func NewMixer(volume, step, scale float64) *Mixer {
	m := &Mixer{step: step, scale: scale}
	m.SetVolume(volume)
	return m
}

// Volume returns the user volume in [0,1]
func (m *Mixer) Volume() float64 {
	return m.volume
}

// Muted reports whether playback is muted
func (m *Mixer) Muted() bool {
	return m.muted
}

// SetVolume clamps v to [0,1], rounded to one decimal
func (m *Mixer) SetVolume(v float64) {
	v = math.Round(v*10) / 10
	m.volume = math.Min(math.Max(v, 0), 1)
}

// VolumeUp raises the volume by one step
func (m *Mixer) VolumeUp() {
	m.SetVolume(m.volume + m.step)
}

// VolumeDown lowers the volume by one step
func (m *Mixer) VolumeDown() {
	m.SetVolume(m.volume - m.step)
}

// ToggleMute flips the mute state
func (m *Mixer) ToggleMute() {
	m.muted = !m.muted
}

// SetMuted sets the mute state
func (m *Mixer) SetMuted(muted bool) {
	m.muted = muted
}

// Effective returns the playback gain
func (m *Mixer) Effective() float64 {
	if m.muted {
		return 0
	}
	return m.volume * m.scale
}

// Load restores volume and mute from the settings store
func (m *Mixer) Load(store settings.Store) {
	m.SetVolume(settings.LoadFloat(store, settings.KeyVolume, m.volume))
	m.muted = settings.LoadBool(store, settings.KeyMute, m.muted)
}

// Save persists volume and mute
func (m *Mixer) Save(store settings.Store) error {
	if err := settings.SaveFloat(store, settings.KeyVolume, m.volume); err != nil {
		return err
	}
	return settings.SaveBool(store, settings.KeyMute, m.muted)
}
