package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPrevLevel
	ActionNextLevel
	ActionToggleDebug
	ActionReload
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPrevLevel: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA, ebiten.KeyPageUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD, ebiten.KeyPageDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionReload: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
		},
	}
}
