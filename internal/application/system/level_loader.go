package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/sunrun/internal/domain/entity"
	"github.com/younwookim/sunrun/internal/infrastructure/config"
)

// ErrEmptyLevel is returned for levels without size or platforms
var ErrEmptyLevel = errors.New("level has no size or platforms")

// Defaults applied to levels that omit them
var (
	DefaultLight  = entity.Light{X: 1180, Y: 50, Radius: 400, Intensity: 0.9}
	DefaultColors = entity.LevelColors{PlatformTop: "#32CD32", PlatformBody: "#8B4513", GroundLine: "#32CD32"}
)

// LoadLevel converts a LevelConfig into a Level entity
func LoadLevel(cfg *config.LevelConfig) (*entity.Level, error) {
	if cfg.RoomWidth <= 0 || cfg.RoomHeight <= 0 || len(cfg.Platforms) == 0 {
		return nil, fmt.Errorf("level %q: %w", cfg.Name, ErrEmptyLevel)
	}

	platforms := make([]entity.Platform, 0, len(cfg.Platforms))
	for i, p := range cfg.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("level %q: platform %d has non-positive size", cfg.Name, i)
		}
		platforms = append(platforms, entity.Platform{
			Rect: entity.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height},
			Kind: entity.ParsePlatformKind(p.Type),
		})
	}

	level := &entity.Level{
		Name:      cfg.Name,
		Width:     cfg.RoomWidth,
		Height:    cfg.RoomHeight,
		Platforms: platforms,
		Spawn:     entity.Point{X: cfg.PlayerStart.X, Y: cfg.PlayerStart.Y},
		Settings: entity.LevelSettings{
			Gravity:           cfg.Settings.Gravity,
			JumpForce:         cfg.Settings.JumpForce,
			CameraFollowSpeed: cfg.Settings.CameraFollowSpeed,
		},
		Light: DefaultLight,
		Colors: entity.LevelColors{
			PlatformTop:  orDefault(cfg.Colors.PlatformTop, DefaultColors.PlatformTop),
			PlatformBody: orDefault(cfg.Colors.PlatformBody, DefaultColors.PlatformBody),
			GroundLine:   orDefault(cfg.Colors.GroundLine, DefaultColors.GroundLine),
		},
	}
	if cfg.Light != nil {
		level.Light = entity.Light(*cfg.Light)
	}

	return level, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
