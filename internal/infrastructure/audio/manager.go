package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// DefaultSampleRate is used when the config does not name one
const DefaultSampleRate = 44100

// Manager plays the looping background music. Failures are logged and
// leave the game silent until a later PlayMusic loads the track.
type Manager struct {
	ctx    *audio.Context
	fsys   fs.FS
	music  string
	mixer  *Mixer
	player *audio.Player

	// newPlayer loads the track; nil means load
	newPlayer func() (*audio.Player, error)
	lastErr   string

	wanted bool // music requested by the player
	paused bool // paused because the window lost focus
}

// NewManager creates a manager for the music file inside fsys. fsys may be nil.
func NewManager(fsys fs.FS, music string, sampleRate int, mixer *Mixer) *Manager {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Manager{
		ctx:   ctx,
		fsys:  fsys,
		music: music,
		mixer: mixer,
	}
}

// Mixer returns the volume state
func (m *Manager) Mixer() *Mixer {
	return m.mixer
}

// PlayMusic starts or resumes the background music
func (m *Manager) PlayMusic() {
	m.wanted = true
	if m.player == nil {
		p, err := m.open()
		if err != nil {
			if err.Error() != m.lastErr {
				log.Printf("audio: %v", err)
				m.lastErr = err.Error()
			}
			return
		}
		m.lastErr = ""
		m.player = p
	}
	m.player.SetVolume(m.mixer.Effective())
	if !m.mixer.Muted() {
		m.player.Play()
	}
}

// StopMusic stops playback and rewinds
func (m *Manager) StopMusic() {
	m.wanted = false
	if m.player == nil {
		return
	}
	m.player.Pause()
	if err := m.player.Rewind(); err != nil {
		log.Printf("audio: rewind failed: %v", err)
	}
}

// Apply pushes the mixer state to the player
func (m *Manager) Apply() {
	if m.player == nil {
		return
	}
	m.player.SetVolume(m.mixer.Effective())
	switch {
	case m.mixer.Muted() || !m.wanted:
		m.player.Pause()
	case !m.paused:
		m.player.Play()
	}
}

// Update pauses music while the window is unfocused and resumes it after
func (m *Manager) Update() {
	if m.player == nil {
		return
	}
	focused := ebiten.IsFocused()
	switch {
	case !focused && !m.paused:
		m.paused = true
		m.player.Pause()
	case focused && m.paused:
		m.paused = false
		if m.wanted && !m.mixer.Muted() {
			m.player.Play()
		}
	}
}

// Close releases the player
func (m *Manager) Close() error {
	if m.player == nil {
		return nil
	}
	return m.player.Close()
}

func (m *Manager) open() (*audio.Player, error) {
	if m.newPlayer != nil {
		return m.newPlayer()
	}
	return m.load()
}

func (m *Manager) load() (*audio.Player, error) {
	if m.fsys == nil || m.music == "" {
		return nil, fmt.Errorf("no music configured")
	}
	data, err := fs.ReadFile(m.fsys, m.music)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", m.music, err)
	}

	stream, length, err := decode(m.ctx.SampleRate(), m.music, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", m.music, err)
	}

	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return p, nil
}

func decode(sampleRate int, name string, src io.ReadSeeker) (io.ReadSeeker, int64, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format %q", path.Ext(name))
	}
}
