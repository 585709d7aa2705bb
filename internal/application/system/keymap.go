package system

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/younwookim/sunrun/internal/infrastructure/settings"
)

// Action is a logical input action
type Action string

const (
	ActionLeft  Action = "left"
	ActionRight Action = "right"
	ActionRun   Action = "run"
	ActionJump  Action = "jump"
)

// AllActions lists the actions in display order
var AllActions = []Action{ActionLeft, ActionRight, ActionRun, ActionJump}

// DefaultBindings returns the default key binding per action
func DefaultBindings() map[Action]string {
	return map[Action]string{
		ActionLeft:  "ArrowLeft",
		ActionRight: "ArrowRight",
		ActionRun:   "Shift",
		ActionJump:  "Space",
	}
}

// Keymap holds remappable key bindings and the capture mode used to rebind them
type Keymap struct {
	bindings  map[Action]string
	capturing Action
}

// NewKeymap creates a keymap with the default bindings
func NewKeymap() *Keymap {
	return &Keymap{bindings: DefaultBindings()}
}

// Binding returns the key bound to an action
func (k *Keymap) Binding(a Action) string {
	return k.bindings[a]
}

// Bind assigns a key to an action
func (k *Keymap) Bind(a Action, key string) {
	k.bindings[a] = normalizeKey(key)
}

// Reset restores the default bindings and leaves capture mode
func (k *Keymap) Reset() {
	k.bindings = DefaultBindings()
	k.capturing = ""
}

// BeginCapture makes the next key press rebind the action
func (k *Keymap) BeginCapture(a Action) {
	k.capturing = a
}

// CancelCapture leaves capture mode without rebinding
func (k *Keymap) CancelCapture() {
	k.capturing = ""
}

// Capturing returns the action waiting for a key, if any
func (k *Keymap) Capturing() (Action, bool) {
	return k.capturing, k.capturing != ""
}

// HandleKeyPress consumes a key press while capturing. It reports whether
// the press was used for a binding.
func (k *Keymap) HandleKeyPress(key string) bool {
	if k.capturing == "" {
		return false
	}
	k.Bind(k.capturing, key)
	k.capturing = ""
	return true
}

// Matches reports whether a pressed key name satisfies the action's binding
func (k *Keymap) Matches(a Action, pressed string) bool {
	return keyMatches(k.bindings[a], pressed)
}

// modifiers are bound by their generic name so either side matches
var modifiers = []string{"Shift", "Control", "Alt", "Meta"}

// normalizeKey folds sided modifiers such as "ShiftLeft" into their
// generic name and the literal space into "Space".
func normalizeKey(key string) string {
	if key == " " {
		return "Space"
	}
	for _, m := range modifiers {
		if key == m+"Left" || key == m+"Right" {
			return m
		}
	}
	return key
}

func isModifier(key string) bool {
	for _, m := range modifiers {
		if key == m {
			return true
		}
	}
	return false
}

// keyMatches compares a binding against a pressed key name. A modifier
// binding covers both sides and "Space" also accepts the literal space.
func keyMatches(binding, pressed string) bool {
	if binding == "" {
		return false
	}
	if pressed == binding {
		return true
	}
	switch {
	case isModifier(binding):
		return strings.HasPrefix(pressed, binding)
	case binding == "Space":
		return pressed == " "
	}
	return false
}

// Save writes the bindings as JSON under the controls key
func (k *Keymap) Save(store settings.Store) error {
	data, err := json.Marshal(k.bindings)
	if err != nil {
		return fmt.Errorf("failed to encode controls: %w", err)
	}
	if err := store.SaveItem(settings.KeyControls, data); err != nil {
		return fmt.Errorf("failed to save controls: %w", err)
	}
	return nil
}

// Load replaces bindings with stored ones. Missing or invalid data keeps
// the current bindings.
func (k *Keymap) Load(store settings.Store) {
	data, err := store.LoadItem(settings.KeyControls)
	if err != nil {
		log.Printf("settings: failed to load controls: %v", err)
		return
	}
	if data == nil {
		return
	}
	var saved map[Action]string
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("settings: failed to parse controls: %v", err)
		return
	}
	for _, a := range AllActions {
		if key, ok := saved[a]; ok && key != "" {
			k.bindings[a] = normalizeKey(key)
		}
	}
}
