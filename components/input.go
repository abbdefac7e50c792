package components

import (
	cfg "github.com/automoto/ldtk/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the state of a single action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData stores double-buffered action state for the frame
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
