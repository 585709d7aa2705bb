package config

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object layer and names recognised in TMX levels
const (
	tiledPlatformLayer = "platforms"
	tiledSpawnObject   = "spawn"
	tiledKindProperty  = "kind"
)

// loadTiledLevel reads a Tiled map. Platforms are the rectangles of the
// "platforms" object layer, tagged by their "kind" property. The object
// named "spawn" is the player start and carries the level properties.
func loadTiledLevel(fsys fs.FS, file string) (*LevelConfig, error) {
	m, err := tiled.LoadFile(file, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load TMX %s: %w", file, err)
	}

	cfg := &LevelConfig{
		RoomWidth:  float64(m.Width * m.TileWidth),
		RoomHeight: float64(m.Height * m.TileHeight),
	}

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			if o.Name == tiledSpawnObject {
				cfg.PlayerStart = PointConfig{X: o.X, Y: o.Y}
				cfg.Name = o.Properties.GetString("name")
				cfg.Settings = LevelSettings{
					Gravity:           o.Properties.GetFloat("gravity"),
					JumpForce:         o.Properties.GetFloat("jumpForce"),
					CameraFollowSpeed: o.Properties.GetFloat("cameraFollowSpeed"),
				}
				cfg.Colors = ColorsConfig{
					PlatformTop:  o.Properties.GetString("platformTop"),
					PlatformBody: o.Properties.GetString("platformBody"),
					GroundLine:   o.Properties.GetString("groundLine"),
				}
				continue
			}
			if og.Name != tiledPlatformLayer {
				continue
			}
			kind := o.Properties.GetString(tiledKindProperty)
			if kind == "" {
				kind = o.Name
			}
			cfg.Platforms = append(cfg.Platforms, PlatformConfig{
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
				Type:   kind,
			})
		}
	}

	return cfg, nil
}
