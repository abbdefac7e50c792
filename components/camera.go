package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world-space offset levels are drawn at. While PanX/PanY
// are set the camera is moving towards a new level.
type CameraData struct {
	Position math.Vec2
	PanX     *gween.Tween
	PanY     *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
