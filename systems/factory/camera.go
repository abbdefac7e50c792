package factory

import (
	"github.com/automoto/ldtk/archetypes"
	"github.com/automoto/ldtk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}

func CreateViewer(ecs *ecs.ECS, reloads <-chan string) *donburi.Entry {
	viewer := archetypes.Viewer.Spawn(ecs)
	components.Viewer.Set(viewer, &components.ViewerData{Reloads: reloads})
	return viewer
}
