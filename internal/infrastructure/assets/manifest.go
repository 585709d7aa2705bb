package assets

import "fmt"

// Entry maps a sprite key to its file under the asset root
type Entry struct {
	Key  string
	Path string
}

// Effect frame counts per sprite family
const (
	WalkEffectFrames = 6
	RunEffectFrames  = 2
	JumpEffectFrames = 5
)

// Manifest returns every image the game loads
func Manifest() []Entry {
	entries := []Entry{
		{"idle", "images/player/idle.png"},
		{"move1", "images/player/move1.png"},
		{"move2", "images/player/move2.png"},
		{"run1", "images/player/run1.png"},
		{"run2", "images/player/run2.png"},
	}
	for i := 1; i <= WalkEffectFrames; i++ {
		entries = append(entries, effectEntry("moveef", i))
	}
	for i := 1; i <= RunEffectFrames; i++ {
		entries = append(entries, effectEntry("runef", i))
	}
	for i := 1; i <= JumpEffectFrames; i++ {
		entries = append(entries, effectEntry("jumpef", i))
	}
	entries = append(entries,
		Entry{"wall", "images/environment/wall.png"},
		Entry{"grass", "images/environment/grass.png"},
		Entry{"platform", "images/environment/platform.png"},
	)
	return entries
}

func effectEntry(prefix string, frame int) Entry {
	key := fmt.Sprintf("%s%d", prefix, frame)
	return Entry{Key: key, Path: "images/effects/" + key + ".png"}
}

// EffectKey returns the sprite key of an effect frame (0-based)
func EffectKey(effect string, frame int) string {
	prefix := effect
	if effect == "walk" {
		prefix = "move"
	}
	return fmt.Sprintf("%sef%d", prefix, frame+1)
}
