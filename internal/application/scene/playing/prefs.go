package playing

import (
	"log"

	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/infrastructure/audio"
	"github.com/younwookim/sunrun/internal/infrastructure/settings"
)

// preferences applies settings panel changes and persists each one as it
// happens. A nil store keeps changes in memory only.
type preferences struct {
	keymap *system.Keymap
	mixer  *audio.Mixer
	store  settings.Store
	// apply pushes mixer changes to the playing music
	apply func()
}

func (p *preferences) VolumeUp() {
	p.changeAudio(p.mixer.VolumeUp)
}

func (p *preferences) VolumeDown() {
	p.changeAudio(p.mixer.VolumeDown)
}

func (p *preferences) ToggleMute() {
	p.changeAudio(p.mixer.ToggleMute)
}

// ResetControls restores the default bindings and stores them
func (p *preferences) ResetControls() error {
	p.keymap.Reset()
	return p.SaveControls()
}

func (p *preferences) changeAudio(change func()) {
	change()
	if p.apply != nil {
		p.apply()
	}
	_ = p.SaveAudio()
}

// SaveControls writes the key bindings
func (p *preferences) SaveControls() error {
	if p.store == nil || p.keymap == nil {
		return nil
	}
	if err := p.keymap.Save(p.store); err != nil {
		log.Printf("settings: %v", err)
		return err
	}
	return nil
}

// SaveAudio writes volume and mute
func (p *preferences) SaveAudio() error {
	if p.store == nil || p.mixer == nil {
		return nil
	}
	if err := p.mixer.Save(p.store); err != nil {
		log.Printf("settings: failed to save audio: %v", err)
		return err
	}
	return nil
}

// SaveAll writes every preference, reporting the first failure
func (p *preferences) SaveAll() error {
	errControls := p.SaveControls()
	errAudio := p.SaveAudio()
	if errControls != nil {
		return errControls
	}
	return errAudio
}
