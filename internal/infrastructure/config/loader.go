package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LevelsDir is the directory holding level descriptors
const LevelsDir = "levels"

var levelExts = []string{".yaml", ".yml", ".json", ".tmx"}

// Loader loads game configuration from files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path.Join(l.basePath, "physics.json"), err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads a level by name or by file name. A bare name is looked up
// under levels/ with each supported extension in turn.
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	file, err := l.resolveLevel(name)
	if err != nil {
		return nil, err
	}
	return l.LoadLevelFile(file)
}

// LoadLevelFile loads a level descriptor, choosing the decoder by extension
func (l *Loader) LoadLevelFile(file string) (*LevelConfig, error) {
	switch strings.ToLower(path.Ext(file)) {
	case ".tmx":
		return loadTiledLevel(l.fsys, file)
	case ".json":
		return l.decodeLevel(file, json.Unmarshal)
	case ".yaml", ".yml":
		return l.decodeLevel(file, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("unsupported level format %s", file)
	}
}

func (l *Loader) decodeLevel(file string, unmarshal func([]byte, any) error) (*LevelConfig, error) {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", file, err)
	}

	var cfg LevelConfig
	if err := unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", file, err)
	}

	return &cfg, nil
}

func (l *Loader) resolveLevel(name string) (string, error) {
	if path.Ext(name) != "" {
		if strings.Contains(name, "/") {
			return name, nil
		}
		return path.Join(LevelsDir, name), nil
	}
	for _, ext := range levelExts {
		file := path.Join(LevelsDir, name+ext)
		if _, err := fs.Stat(l.fsys, file); err == nil {
			return file, nil
		}
	}
	return "", fmt.Errorf("level %s not found in %s", name, path.Join(l.basePath, LevelsDir))
}

// ListLevels returns the names of every level file, sorted
func (l *Loader) ListLevels() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		for _, want := range levelExts {
			if ext == want {
				names = append(names, e.Name())
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
