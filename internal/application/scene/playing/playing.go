// Package playing provides the main gameplay scene.
package playing

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/sunrun/internal/application/scene"
	"github.com/younwookim/sunrun/internal/application/state"
	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/domain/entity"
	"github.com/younwookim/sunrun/internal/infrastructure/audio"
	"github.com/younwookim/sunrun/internal/infrastructure/config"
	"github.com/younwookim/sunrun/internal/infrastructure/settings"
	"golang.org/x/image/font/basicfont"
)

// Options wires the playing scene to its collaborators. Config, Level and
// Input are required and the settings panel needs Music. The rest may be zero.
type Options struct {
	Config  *config.PhysicsConfig
	Profile string
	Level   *entity.Level
	Input   *system.Aggregator
	Gamepad *system.GamepadSource
	Music   *audio.Manager
	Store   settings.Store
	Images  map[string]image.Image

	// RecordPath enables input recording; "auto" picks a timestamped name.
	// LevelKey is the name the level was loaded by, stored in recordings.
	RecordPath string
	LevelKey   string

	// LevelEvents carries changed level files; ReloadLevel turns one into a level
	LevelEvents <-chan string
	ReloadLevel func(file string) (*entity.Level, error)
}

// Playing is the main gameplay scene: the start screen, play and the
// settings panel all run here on top of one Session.
type Playing struct {
	opts    Options
	session *Session
	input   *system.Aggregator

	prefs    *preferences
	panel    *settingsPanel
	sprites  map[string]*ebiten.Image
	lighting *lighting
	face     ebtext.Face
	prompt   *gween.Sequence
	alpha    float32

	recorder *Recorder
}

// New creates a new Playing scene in the Ready state
func New(opts Options) *Playing {
	prompt := gween.NewSequence(
		gween.New(0.4, 1, 0.8, ease.InOutSine),
		gween.New(1, 0.4, 0.8, ease.InOutSine),
	)
	prompt.SetLoop(-1)

	p := &Playing{
		opts:    opts,
		session: NewSession(opts.Config, opts.Profile, opts.Level),
		input:   opts.Input,
		prompt:  prompt,
		alpha:   1,
	}
	p.prefs = &preferences{store: opts.Store}
	if opts.Input != nil {
		p.prefs.keymap = opts.Input.Keymap()
	}
	if opts.Music != nil {
		p.prefs.mixer = opts.Music.Mixer()
		p.prefs.apply = opts.Music.Apply
	}
	return p
}

// Session returns the simulation behind the scene
func (p *Playing) Session() *Session {
	return p.session
}

// Recorder returns the active recorder, or nil when recording is off
func (p *Playing) Recorder() *Recorder {
	return p.recorder
}

// SwapLevel loads a new level while the game runs
func (p *Playing) SwapLevel(level *entity.Level) {
	p.session.SwapLevel(level)
	log.Printf("level: swapped to %q (%d platforms)", level.Name, len(level.Platforms))
}

// Start begins play: actor at the spawn, effects cleared, music on
func (p *Playing) Start() {
	p.session.Start()
	if p.opts.Music != nil {
		p.opts.Music.PlayMusic()
	}
	if p.opts.RecordPath != "" {
		key := p.opts.LevelKey
		if key == "" {
			key = p.session.Level().Name
		}
		p.recorder = NewRecorder(key, p.session.Profile())
		log.Printf("Recording enabled: %s", p.recordFilename())
	}
}

// Update implements scene.Scene
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	_, wasCapturing := p.input.Keymap().Capturing()
	p.input.Poll()
	if _, capturing := p.input.Keymap().Capturing(); wasCapturing && !capturing {
		_ = p.prefs.SaveControls()
	}
	if p.opts.Music != nil {
		p.opts.Music.Update()
	}
	p.drainLevelEvents()

	switch p.session.State() {
	case state.StateReady:
		p.alpha, _, _ = p.prompt.Update(float32(dt))
		if startPressed() {
			p.Start()
		}
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.openSettings()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
	case state.StateSettings:
		if !wasCapturing && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.closeSettings()
		} else if p.panel != nil {
			p.panel.Update()
		}
	}

	actions := p.input.Actions()
	if p.recorder != nil && p.session.State().Active() {
		p.recorder.RecordFrame(actions, p.session.State().InputLocked(), dt)
	}
	p.session.Tick(actions, dt)

	return nil, nil
}

// drainLevelEvents reloads every changed level file without blocking
func (p *Playing) drainLevelEvents() {
	if p.opts.LevelEvents == nil || p.opts.ReloadLevel == nil {
		return
	}
	for {
		select {
		case file, ok := <-p.opts.LevelEvents:
			if !ok {
				p.opts.LevelEvents = nil
				return
			}
			level, err := p.opts.ReloadLevel(file)
			if err != nil {
				log.Printf("level: reload %s: %v", file, err)
				continue
			}
			p.SwapLevel(level)
		default:
			return
		}
	}
}

func (p *Playing) openSettings() {
	if p.panel == nil {
		cfg := p.opts.Config.Display
		p.panel = newSettingsPanel(cfg.ScreenWidth, cfg.ScreenHeight, p.prefs, p.closeSettings)
	}
	p.session.OpenSettings()
}

func (p *Playing) closeSettings() {
	p.input.Keymap().CancelCapture()
	p.session.CloseSettings()
}

func startPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (p *Playing) recordFilename() string {
	if p.opts.RecordPath == "auto" {
		p.opts.RecordPath = GenerateFilename()
	}
	return p.opts.RecordPath
}

// saveRecording writes the current recording with the actor's final pose
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename()
	p.recorder.SetFinal(p.session.Actor())
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.face = ebtext.NewGoXFace(basicfont.Face7x13)
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	p.Close()
}

// Close saves any pending recording and stops the music
func (p *Playing) Close() {
	p.saveRecording()
	p.recorder = nil
	if p.opts.Music != nil {
		p.opts.Music.StopMusic()
	}
}
