package config

// LevelConfig is the root config for level descriptor files (YAML, JSON or TMX)
type LevelConfig struct {
	Name        string           `json:"name" yaml:"name"`
	RoomWidth   float64          `json:"roomWidth" yaml:"roomWidth"`
	RoomHeight  float64          `json:"roomHeight" yaml:"roomHeight"`
	Platforms   []PlatformConfig `json:"platforms" yaml:"platforms"`
	PlayerStart PointConfig      `json:"playerStart" yaml:"playerStart"`
	Settings    LevelSettings    `json:"settings" yaml:"settings"`
	Light       *LightConfig     `json:"light,omitempty" yaml:"light,omitempty"`
	Colors      ColorsConfig     `json:"colors" yaml:"colors"`
}

type PlatformConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Type   string  `json:"type" yaml:"type"` // "ground" or "platform"
}

type PointConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type LevelSettings struct {
	Gravity           float64 `json:"gravity" yaml:"gravity"`
	JumpForce         float64 `json:"jumpForce" yaml:"jumpForce"`
	CameraFollowSpeed float64 `json:"cameraFollowSpeed" yaml:"cameraFollowSpeed"`
}

type LightConfig struct {
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	Radius    float64 `json:"radius" yaml:"radius"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
}

type ColorsConfig struct {
	PlatformTop  string `json:"platformTop" yaml:"platformTop"`
	PlatformBody string `json:"platformBody" yaml:"platformBody"`
	GroundLine   string `json:"groundLine" yaml:"groundLine"`
}
