package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sunrun/internal/application/game"
	"github.com/younwookim/sunrun/internal/application/replay"
	"github.com/younwookim/sunrun/internal/application/scene"
	"github.com/younwookim/sunrun/internal/application/scene/loading"
	"github.com/younwookim/sunrun/internal/application/scene/playing"
	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/domain/entity"
	"github.com/younwookim/sunrun/internal/infrastructure/assets"
	"github.com/younwookim/sunrun/internal/infrastructure/audio"
	"github.com/younwookim/sunrun/internal/infrastructure/config"
	"github.com/younwookim/sunrun/internal/infrastructure/settings"
	"github.com/younwookim/sunrun/internal/infrastructure/watch"
)

const appName = "sunrun"

func main() {
	// Parse command line flags
	levelFlag := flag.String("level", "test", "Level name or file under levels/")
	profileFlag := flag.String("profile", "desktop", "Movement profile (desktop, mobile)")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	assetsFlag := flag.String("assets", "assets", "Asset directory")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or auto)")
	replayFlag := flag.String("replay", "", "Verify a recorded replay headlessly and exit")
	watchFlag := flag.Bool("watch", false, "Reload levels when their files change (needs -config)")
	flag.Parse()

	loader, err := newConfigLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := replayFile(cfg, loader, *replayFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	level, err := loadLevel(loader, *levelFlag)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	store := settings.OpenOrMemory(appName)
	keymap := system.NewKeymap()
	keymap.Load(store)
	mixer := audio.NewMixer(cfg.Audio.DefaultVolume, cfg.Audio.VolumeStep, cfg.Audio.VolumeScale)
	mixer.Load(store)

	assetFS := os.DirFS(*assetsFlag)
	music := audio.NewManager(assetFS, cfg.Audio.Music, cfg.Audio.SampleRate, mixer)
	defer func() { _ = music.Close() }()

	gamepad := system.NewGamepadSource()
	var touch *system.TouchControls
	var touches system.TouchReader
	if *profileFlag == "mobile" {
		layout := system.DefaultTouchLayout(
			float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight),
			cfg.Input.JoystickRadius, cfg.Input.JoystickDeadZone,
		)
		touch = system.NewTouchControls(layout)
		touches = system.PollTouches
	}
	input := system.NewAggregator(cfg, keymap, &system.KeyboardSource{}, gamepad, touch, touches)

	opts := playing.Options{
		Config:     cfg,
		Profile:    *profileFlag,
		Level:      level,
		Input:      input,
		Gamepad:    gamepad,
		Music:      music,
		Store:      store,
		RecordPath: *recordFlag,
		LevelKey:   *levelFlag,
	}

	if *watchFlag {
		if *configFlag == "" {
			log.Printf("level watch needs -config, ignoring -watch")
		} else {
			w, err := watch.NewWatcher(filepath.Join(*configFlag, config.LevelsDir))
			if err != nil {
				log.Fatalf("Failed to watch levels: %v", err)
			}
			defer func() { _ = w.Close() }()
			go logWatchErrors(w.Errors)
			opts.LevelEvents = w.Events
			opts.ReloadLevel = levelReloader(loader, *configFlag)
			log.Printf("Watching %s for level changes", filepath.Join(*configFlag, config.LevelsDir))
		}
	}

	var play *playing.Playing
	assetLoader := assets.NewLoader(assetFS, assets.Manifest(), cfg.Loading.Concurrency)
	first := loading.New(assetLoader, cfg.Loading.StartDelay, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight,
		func(images map[string]image.Image) scene.Scene {
			if n := assetLoader.Failed(); n > 0 {
				log.Printf("assets: %d of %d images replaced by placeholders", n, len(images))
			}
			opts.Images = images
			play = playing.New(opts)
			return play
		})

	g := game.New(first, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	if play != nil {
		play.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// newConfigLoader reads configs from dir, or from the embedded copy when dir is empty
func newConfigLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func loadLevel(loader *config.Loader, name string) (*entity.Level, error) {
	levelCfg, err := loader.LoadLevel(name)
	if err != nil {
		if names, lerr := loader.ListLevels(); lerr == nil && len(names) > 0 {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(names, ", "))
		}
		return nil, err
	}
	return system.LoadLevel(levelCfg)
}

// levelReloader maps watcher paths back into the config directory
func levelReloader(loader *config.Loader, dir string) func(string) (*entity.Level, error) {
	return func(file string) (*entity.Level, error) {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return nil, fmt.Errorf("level %s is outside %s: %w", file, dir, err)
		}
		levelCfg, err := loader.LoadLevelFile(filepath.ToSlash(rel))
		if err != nil {
			return nil, err
		}
		return system.LoadLevel(levelCfg)
	}
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		log.Printf("level watch: %v", err)
	}
}

// replayFile loads a recording and checks it against a headless run
func replayFile(cfg *config.PhysicsConfig, loader *config.Loader, file string) error {
	data, err := replay.LoadReplay(file)
	if err != nil {
		return err
	}
	if data.Level == "" {
		return errors.New("replay does not name its level")
	}
	level, err := loadLevel(loader, data.Level)
	if err != nil {
		return err
	}
	return verifyReplay(cfg, level, *data)
}
