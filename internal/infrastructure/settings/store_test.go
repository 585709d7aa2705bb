package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) SaveItem(string, []byte) error    { return errors.New("disk gone") }

func TestMemoryStore_MissingKey(t *testing.T) {
	s := NewMemoryStore()
	data, err := s.LoadItem(KeyControls)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SaveItem("k", []byte("v")))

	data, err := s.LoadItem("k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(data))

	// returned slice is a copy
	data[0] = 'x'
	again, _ := s.LoadItem("k")
	assert.Equal(t, "v", string(again))
}

func TestFloatAndBool(t *testing.T) {
	s := NewMemoryStore()

	assert.Equal(t, 0.5, LoadFloat(s, KeyVolume, 0.5))
	assert.False(t, LoadBool(s, KeyMute, false))

	require.NoError(t, SaveFloat(s, KeyVolume, 0.7))
	require.NoError(t, SaveBool(s, KeyMute, true))

	assert.InDelta(t, 0.7, LoadFloat(s, KeyVolume, 0.5), 1e-9)
	assert.True(t, LoadBool(s, KeyMute, false))

	raw, _ := s.LoadItem(KeyMute)
	assert.Equal(t, "true", string(raw))
}

func TestMalformedValuesFallBack(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.SaveItem(KeyVolume, []byte("loud")))
	assert.Equal(t, 0.5, LoadFloat(s, KeyVolume, 0.5))
}

func TestFailingStore(t *testing.T) {
	var s failingStore
	assert.Equal(t, 0.3, LoadFloat(s, KeyVolume, 0.3))
	assert.True(t, LoadBool(s, KeyMute, true))
	assert.Error(t, SaveFloat(s, KeyVolume, 1))
	assert.Error(t, SaveBool(s, KeyMute, true))
}
