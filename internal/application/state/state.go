package state

// GameState represents the current state of the game
type GameState int

const (
	StateLoading GameState = iota
	StateReady
	StatePlaying
	StateSettings
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Active reports whether the simulation runs in this state
func (s GameState) Active() bool {
	return s == StatePlaying || s == StateSettings
}

// InputLocked reports whether player input is ignored in this state
func (s GameState) InputLocked() bool {
	return s != StatePlaying
}
