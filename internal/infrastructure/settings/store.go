package settings

import (
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/quasilyte/gdata"
)

// Keys used in the settings store
const (
	KeyControls = "platformerControls"
	KeyVolume   = "gameVolume"
	KeyMute     = "gameMute"
)

// Store is a flat key-value settings store. LoadItem returns nil data
// without error for a missing key.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Open opens the on-disk store for the application
func Open(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return m, nil
}

// OpenOrMemory opens the on-disk store and falls back to memory on failure
func OpenOrMemory(appName string) Store {
	s, err := Open(appName)
	if err != nil {
		log.Printf("settings: %v, using in-memory store", err)
		return NewMemoryStore()
	}
	return s
}

// MemoryStore keeps settings in memory
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) LoadItem(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) SaveItem(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), data...)
	return nil
}

// LoadFloat reads a float value, returning def when missing or malformed
func LoadFloat(s Store, key string, def float64) float64 {
	data, err := s.LoadItem(key)
	if err != nil {
		log.Printf("settings: failed to load %s: %v", key, err)
		return def
	}
	if data == nil {
		return def
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		log.Printf("settings: failed to parse %s: %v", key, err)
		return def
	}
	return v
}

// LoadBool reads a "true"/"false" value, returning def when missing
func LoadBool(s Store, key string, def bool) bool {
	data, err := s.LoadItem(key)
	if err != nil {
		log.Printf("settings: failed to load %s: %v", key, err)
		return def
	}
	if data == nil {
		return def
	}
	return string(data) == "true"
}

// SaveFloat stores a float value
func SaveFloat(s Store, key string, v float64) error {
	if err := s.SaveItem(key, []byte(strconv.FormatFloat(v, 'f', -1, 64))); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// SaveBool stores a bool value
func SaveBool(s Store, key string, v bool) error {
	if err := s.SaveItem(key, []byte(strconv.FormatBool(v))); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
