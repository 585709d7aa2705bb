package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameInput_OmitsFalseActions(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, R: true, DT: 0.016})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"r":true,"dt":0.016}`, string(data))
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: "1.0",
		Level:   "test",
		Frames: []FrameInput{
			{F: 0, L: true, DT: 0.016},
			{F: 1, R: true, S: true, J: true, DT: 0.017},
			{F: 2},
			{F: 3, K: true, DT: 0.016},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, 0.016, input.DT)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Run)
	assert.True(t, input.Jump)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, ReplayInput{}, input)

	// Frame 3
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Locked)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5, "test")
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	data := CreateTestReplayData(10, "test")
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestReplayer_Metadata(t *testing.T) {
	data := CreateTestReplayData(1, "cave")
	data.Profile = "mobile"
	replayer := NewReplayer(data)

	assert.Equal(t, "cave", replayer.Level())
	assert.Equal(t, "mobile", replayer.Profile())

	_, ok := replayer.Final()
	assert.False(t, ok)

	data.Final = &FinalState{X: 10, Y: 20, OnGround: true}
	final, ok := NewReplayer(data).Final()
	require.True(t, ok)
	assert.Equal(t, 10.0, final.X)
	assert.True(t, final.OnGround)
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3, "test")
	data.Frames[0].R = true
	replayer := NewReplayer(data)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Right)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, "test")

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "test", data.Level)
	assert.Equal(t, "desktop", data.Profile)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.InDelta(t, 1.0/60.0, frame.DT, 1e-12)
	}
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		raw, err := json.Marshal(CreateTestReplayData(4, "test"))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		data, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Len(t, data.Frames, 4)
	})

	t.Run("no frames", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","frames":[]}`), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorIs(t, err, ErrNoFrames)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})
}
