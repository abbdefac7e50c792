package systems

import (
	"log"

	"github.com/automoto/ldtk/components"
	cfg "github.com/automoto/ldtk/config"
	"github.com/automoto/ldtk/shared/leveldata"
	"github.com/automoto/ldtk/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNavigation reacts to the viewer actions pressed this frame.
func UpdateNavigation(e *ecs.ECS) {
	input := getOrCreateInput(e)
	viewer := getViewer(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		viewer.ShowDebug = !viewer.ShowDebug
	}
	if GetAction(input, cfg.ActionReload).JustPressed {
		viewer.ReloadRequested = true
	}

	step := 0
	if GetAction(input, cfg.ActionPrevLevel).JustPressed {
		step--
	}
	if GetAction(input, cfg.ActionNextLevel).JustPressed {
		step++
	}
	if step == 0 {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	next, ok := levelData.Resources.Step(levelData.Current, step)
	if !ok || next == levelData.Current {
		return
	}
	if err := GoToLevel(e, next, false); err != nil {
		log.Printf("Warning: Could not switch to level %s: %v", next, err)
	}
}

// GoToLevel makes coord the current level, rebuilds its walls and spawn
// points and moves the camera onto it.
func GoToLevel(e *ecs.ECS, coord leveldata.Coord, instant bool) error {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	levelData := components.Level.Get(levelEntry)
	lvl, err := levelData.Resources.Level(coord)
	if err != nil {
		return err
	}

	prev := levelData.Current
	levelData.Current = coord
	if err := factory.PopulateLevel(e); err != nil {
		levelData.Current = prev
		if restoreErr := factory.PopulateLevel(e); restoreErr != nil {
			log.Printf("Warning: Could not restore level %s: %v", prev, restoreErr)
		}
		return err
	}

	PanCameraTo(e, LevelOrigin(levelData.Resources, lvl), instant)
	getViewer(e).Status = lvl.Identifier + " " + coord.String()
	SaveLastLevel(levelData.ProjectPath, coord)
	return nil
}

func getViewer(e *ecs.ECS) *components.ViewerData {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		entry = factory.CreateViewer(e, nil)
	}
	return components.Viewer.Get(entry)
}
