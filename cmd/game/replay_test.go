package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/sunrun/internal/application/replay"
	"github.com/younwookim/sunrun/internal/application/scene/playing"
	"github.com/younwookim/sunrun/internal/application/system"
	"github.com/younwookim/sunrun/internal/infrastructure/config"
)

func loadTestConfig(t *testing.T) (*config.Loader, *config.PhysicsConfig) {
	t.Helper()
	loader, err := newConfigLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)
	return loader, cfg
}

// recordRun plays a scripted run on the test level and returns the recording
func recordRun(t *testing.T, frames int) replay.ReplayData {
	t.Helper()
	loader, cfg := loadTestConfig(t)
	level, err := loadLevel(loader, "test")
	require.NoError(t, err)

	session := playing.NewSession(cfg, "desktop", level)
	session.Start()
	rec := playing.NewRecorder("test", "desktop")
	for i := 0; i < frames; i++ {
		in := system.Actions{
			Right: i%120 < 80,
			Left:  i%120 >= 90,
			Run:   i%60 > 30,
			Jump:  i%45 == 10,
		}
		locked := i >= 200 && i < 220
		if locked {
			session.OpenSettings()
		} else {
			session.CloseSettings()
		}
		rec.RecordFrame(in, locked, 1.0/60)
		session.Tick(in, 1.0/60)
	}
	rec.SetFinal(session.Actor())
	return rec.GetData()
}

func TestEmbeddedConfigs(t *testing.T) {
	loader, cfg := loadTestConfig(t)
	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)

	names, err := loader.ListLevels()
	require.NoError(t, err)
	assert.Equal(t, []string{"test.json", "test.tmx", "test.yaml"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			level, err := loadLevel(loader, name)
			require.NoError(t, err)
			assert.Len(t, level.Platforms, 14)
			assert.Equal(t, 2560.0, level.Width)
			assert.Equal(t, 720.0, level.Height)
			assert.Equal(t, 200.0, level.Spawn.X)
		})
	}
}

func TestLoadLevel_ListsAvailable(t *testing.T) {
	loader, _ := loadTestConfig(t)
	_, err := loadLevel(loader, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level nope not found")
	assert.Contains(t, err.Error(), "available: test.json, test.tmx, test.yaml")
}

func TestVerifyReplay(t *testing.T) {
	loader, cfg := loadTestConfig(t)
	level, err := loadLevel(loader, "test")
	require.NoError(t, err)
	data := recordRun(t, 300)

	assert.NoError(t, verifyReplay(cfg, level, data))

	t.Run("diverged", func(t *testing.T) {
		bad := data
		final := *data.Final
		final.X += 10
		bad.Final = &final
		assert.ErrorContains(t, verifyReplay(cfg, level, bad), "diverged")
	})

	t.Run("no final state", func(t *testing.T) {
		bare := data
		bare.Final = nil
		assert.NoError(t, verifyReplay(cfg, level, bare))
	})
}

func TestReplayFile(t *testing.T) {
	loader, cfg := loadTestConfig(t)
	data := recordRun(t, 120)

	file := filepath.Join(t.TempDir(), "run.json")
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, raw, 0o644))

	assert.NoError(t, replayFile(cfg, loader, file))

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, replayFile(cfg, loader, filepath.Join(t.TempDir(), "missing.json")))
	})

	t.Run("no level", func(t *testing.T) {
		data.Level = ""
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(file, raw, 0o644))
		assert.ErrorContains(t, replayFile(cfg, loader, file), "level")
	})
}
