package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNoFrames is returned when replay data holds no frames
var ErrNoFrames = errors.New("replay has no frames")

// ReplayInput represents input state during replay
type ReplayInput struct {
	Left   bool
	Right  bool
	Run    bool
	Jump   bool
	Locked bool
	DT     float64
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoFrames)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Left:   fi.L,
		Right:  fi.R,
		Run:    fi.S,
		Jump:   fi.J,
		Locked: fi.K,
		DT:     fi.DT,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Profile returns the movement profile the replay was recorded with
func (r *Replayer) Profile() string {
	return r.data.Profile
}

// Final returns the recorded final state, if any
func (r *Replayer) Final() (FinalState, bool) {
	if r.data.Final == nil {
		return FinalState{}, false
	}
	return *r.data.Final, true
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, level string) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Level:     level,
		Profile:   "desktop",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			DT: 1.0 / 60.0,
		}
	}

	return data
}
