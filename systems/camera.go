package systems

import (
	"github.com/automoto/ldtk/components"
	"github.com/automoto/ldtk/config"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// LevelOrigin is the world position a level is placed at. Only the free and
// grid layouts place levels in a shared world; linear levels all sit at the
// origin.
func LevelOrigin(res *leveldata.Resources, lvl *leveldata.Level) leveldata.Vec2 {
	switch res.Layout {
	case leveldata.LayoutFree, leveldata.LayoutGridVania:
		return leveldata.Vec2{X: float64(lvl.WorldX), Y: float64(lvl.WorldY)}
	}
	return leveldata.Vec2{}
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	dt := float32(1.0 / 60.0)
	if camera.PanX != nil {
		x, done := camera.PanX.Update(dt)
		camera.Position.X = float64(x)
		if done {
			camera.PanX = nil
		}
	}
	if camera.PanY != nil {
		y, done := camera.PanY.Update(dt)
		camera.Position.Y = float64(y)
		if done {
			camera.PanY = nil
		}
	}
}

// PanCameraTo starts moving the camera to target. With instant set, or a
// zero pan duration, the camera jumps there.
func PanCameraTo(e *ecs.ECS, target leveldata.Vec2, instant bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if instant || config.Camera.PanDuration <= 0 {
		camera.Position.X = target.X
		camera.Position.Y = target.Y
		camera.PanX = nil
		camera.PanY = nil
		return
	}

	d := config.Camera.PanDuration
	camera.PanX = gween.New(float32(camera.Position.X), float32(target.X), d, ease.OutQuad)
	camera.PanY = gween.New(float32(camera.Position.Y), float32(target.Y), d, ease.OutQuad)
}

// screenOrigin is where the level's top-left corner lands on screen.
func screenOrigin(e *ecs.ECS, res *leveldata.Resources, lvl *leveldata.Level) leveldata.Vec2 {
	origin := LevelOrigin(res, lvl)
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		origin.X -= camera.Position.X
		origin.Y -= camera.Position.Y
	}
	return origin
}
