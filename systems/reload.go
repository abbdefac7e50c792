package systems

import (
	"log"

	"github.com/automoto/ldtk/assets"
	"github.com/automoto/ldtk/components"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReload reloads the project when the watcher reported a change or a
// reload was requested. A project that fails to load leaves the previous
// one on screen.
func UpdateReload(e *ecs.ECS) {
	viewer := getViewer(e)

	changed := drainReloads(viewer)
	if !changed && !viewer.ReloadRequested {
		return
	}
	viewer.ReloadRequested = false

	if err := ReloadProject(e); err != nil {
		log.Printf("Warning: Could not reload project: %v", err)
		viewer.Status = "reload failed: " + err.Error()
	}
}

func drainReloads(viewer *components.ViewerData) bool {
	if viewer.Reloads == nil {
		return false
	}
	changed := false
	for {
		select {
		case name, ok := <-viewer.Reloads:
			if !ok {
				viewer.Reloads = nil
				return changed
			}
			log.Printf("Changed: %s", name)
			changed = true
		default:
			return changed
		}
	}
}

// ReloadProject reads the project and its textures again. The current level
// is kept if it still exists, otherwise the first level is shown.
func ReloadProject(e *ecs.ECS) error {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	levelData := components.Level.Get(levelEntry)

	textures, err := assets.LoadProjectTextures(levelData.ProjectPath)
	if err != nil {
		return err
	}
	res, err := leveldata.LoadProject(levelData.ProjectPath, textures)
	if err != nil {
		return err
	}

	coord := levelData.Current
	if _, err := res.Level(coord); err != nil {
		coords := res.Coords()
		if len(coords) == 0 {
			return err
		}
		coord = coords[0]
	}

	levelData.Resources = res
	levelData.Textures = textures
	log.Printf("Reloaded project: %d levels, %d tilesets", len(res.Levels), len(res.Tilesets))
	return GoToLevel(e, coord, true)
}
