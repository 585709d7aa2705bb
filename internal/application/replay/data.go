package replay

// FrameInput records the logical actions for a single tick
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	L  bool    `json:"l,omitempty"` // Left
	R  bool    `json:"r,omitempty"` // Right
	S  bool    `json:"s,omitempty"` // Run (sprint)
	J  bool    `json:"j,omitempty"` // Jump
	K  bool    `json:"k,omitempty"` // Input locked (settings open)
	DT float64 `json:"dt"`          // Wall-clock delta in seconds
}

// FinalState is the actor pose at the end of a recording
type FinalState struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VelX     float64 `json:"vx"`
	VelY     float64 `json:"vy"`
	OnGround bool    `json:"g"`
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	Profile   string       `json:"profile"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Final     *FinalState  `json:"final,omitempty"`
}
